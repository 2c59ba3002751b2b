package store

import (
	"context"
	"fmt"
	"time"
)

// queries.go holds the read side: three analytical queries, each a single
// declarative statement. Queries are stateless and safe to run concurrently.

// BirthdayCustomer is the projection returned by CustomersWithBirthday.
type BirthdayCustomer struct {
	CustomerID        int64
	CustomerFirstName string
}

// ProductSales is the projection returned by TopSellingProducts.
type ProductSales struct {
	Product    string
	TotalSales int64
}

// CustomerLastOrder is the projection returned by LastOrderPerCustomer.
type CustomerLastOrder struct {
	CustomerID    int64
	CustomerEmail string
	LastOrderDate time.Time
}

// CustomersWithBirthday returns every customer whose birthdate falls on the
// given month and day, matched across years.
func (s *Store) CustomersWithBirthday(ctx context.Context, month time.Month, day int) ([]BirthdayCustomer, error) {
	const q = `
		SELECT customer_id, customer_first_name
		FROM customer
		WHERE EXTRACT(MONTH FROM birthdate) = $1
		  AND EXTRACT(DAY FROM birthdate) = $2
		ORDER BY customer_id`

	rows, err := s.pool.Query(ctx, q, int(month), day)
	if err != nil {
		return nil, fmt.Errorf("querying birthdays: %w", err)
	}
	defer rows.Close()

	var out []BirthdayCustomer
	for rows.Next() {
		var c BirthdayCustomer
		if err := rows.Scan(&c.CustomerID, &c.CustomerFirstName); err != nil {
			return nil, fmt.Errorf("scanning birthday row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// TopSellingProducts returns up to limit products ordered by descending count
// of receipt line items in the given year. An empty result is returned as an
// empty slice; the caller decides how to surface it.
func (s *Store) TopSellingProducts(ctx context.Context, year, limit int) ([]ProductSales, error) {
	const q = `
		SELECT p.product, COUNT(*) AS total_sales
		FROM receipt r
		JOIN product p ON p.product_id = r.product_id
		WHERE r.transaction_year = $1
		GROUP BY p.product
		ORDER BY total_sales DESC, p.product
		LIMIT $2`

	rows, err := s.pool.Query(ctx, q, year, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top products: %w", err)
	}
	defer rows.Close()

	var out []ProductSales
	for rows.Next() {
		var p ProductSales
		if err := rows.Scan(&p.Product, &p.TotalSales); err != nil {
			return nil, fmt.Errorf("scanning product sales row: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// LastOrderPerCustomer returns, for every customer with at least one receipt,
// the transaction date of their most recent order. DISTINCT ON over the
// timestamp replaces the window-function formulation with the Postgres idiom.
func (s *Store) LastOrderPerCustomer(ctx context.Context) ([]CustomerLastOrder, error) {
	const q = `
		SELECT DISTINCT ON (r.customer_id)
			r.customer_id, c.customer_email, r.transaction_date
		FROM receipt r
		JOIN customer c ON c.customer_id = r.customer_id
		ORDER BY r.customer_id, r."timestamp" DESC`

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying last orders: %w", err)
	}
	defer rows.Close()

	var out []CustomerLastOrder
	for rows.Next() {
		var c CustomerLastOrder
		if err := rows.Scan(&c.CustomerID, &c.CustomerEmail, &c.LastOrderDate); err != nil {
			return nil, fmt.Errorf("scanning last order row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
