package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/beandata/coffeeshop-api/internal/model"
)

// insert.go implements the all-or-nothing batch loads used by ingestion.
// Each batch runs inside a single transaction using the COPY protocol:
// either every row commits or none are visible to subsequent reads.

// InsertCustomers persists a batch of customers atomically.
// Returns the number of rows written.
func (s *Store) InsertCustomers(ctx context.Context, rows []model.Customer) (int64, error) {
	cols := []string{
		"customer_id", "customer_first_name", "home_store", "customer_email",
		"customer_since", "loyalty_card_number", "birthdate", "gender",
	}
	return s.copyBatch(ctx, "customer", cols, len(rows), func(i int) ([]any, error) {
		c := rows[i]
		return []any{
			c.CustomerID, c.CustomerFirstName, c.HomeStore, c.CustomerEmail,
			c.CustomerSince, c.LoyaltyCardNumber, c.Birthdate, c.Gender,
		}, nil
	})
}

// InsertProducts persists a batch of products atomically.
func (s *Store) InsertProducts(ctx context.Context, rows []model.Product) (int64, error) {
	cols := []string{
		"product_id", "product_group", "product_category", "product_type",
		"product", "product_description", "unit_of_measure",
		"current_wholesale_price", "current_retail_price",
		"tax_exempt_yn", "promo_yn", "new_product_yn",
	}
	return s.copyBatch(ctx, "product", cols, len(rows), func(i int) ([]any, error) {
		p := rows[i]
		wholesale, err := numericArg(p.CurrentWholesalePrice)
		if err != nil {
			return nil, err
		}
		retail, err := numericArg(p.CurrentRetailPrice)
		if err != nil {
			return nil, err
		}
		return []any{
			p.ProductID, p.ProductGroup, p.ProductCategory, p.ProductType,
			p.Product, p.ProductDescription, p.UnitOfMeasure,
			wholesale, retail,
			p.TaxExemptYN, p.PromoYN, p.NewProductYN,
		}, nil
	})
}

// InsertReceipts persists a batch of receipt line items atomically.
func (s *Store) InsertReceipts(ctx context.Context, rows []model.Receipt) (int64, error) {
	cols := []string{
		"transaction_id", "timestamp", "transaction_date", "transaction_year",
		"sales_outlet_id", "staff_id", "customer_id", "instore_yn",
		"order", "line_item_id", "product_id", "quantity",
		"line_item_amount", "unit_price", "promo_item_yn",
	}
	return s.copyBatch(ctx, "receipt", cols, len(rows), func(i int) ([]any, error) {
		r := rows[i]
		amount, err := numericArg(r.LineItemAmount)
		if err != nil {
			return nil, err
		}
		unit, err := numericArg(r.UnitPrice)
		if err != nil {
			return nil, err
		}
		return []any{
			r.TransactionID, r.Timestamp, r.TransactionDate, r.TransactionYear,
			r.SalesOutletID, r.StaffID, r.CustomerID, r.InstoreYN,
			r.Order, r.LineItemID, r.ProductID, r.Quantity,
			amount, unit, r.PromoItemYN,
		}, nil
	})
}

// copyBatch wraps a COPY in a transaction. The deferred rollback is a no-op
// once the commit succeeds.
func (s *Store) copyBatch(ctx context.Context, table string, cols []string, n int, row func(int) ([]any, error)) (int64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin %s batch: %w", table, err)
	}
	defer tx.Rollback(ctx)

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{table}, cols, pgx.CopyFromSlice(n, row))
	if err != nil {
		return 0, fmt.Errorf("copy into %s: %w", table, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit %s batch: %w", table, err)
	}
	return copied, nil
}
