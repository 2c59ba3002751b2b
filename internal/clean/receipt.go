package clean

import "github.com/beandata/coffeeshop-api/internal/model"

// Receipts cleans raw sales receipt line items into typed records.
//
// The combined timestamp is derived by joining transaction_date and
// transaction_time with a single space; transaction_year is the calendar year
// of that timestamp. The raw transaction_time column is fully consumed by the
// derivation and not persisted.
func Receipts(header []string, rows [][]string) ([]model.Receipt, error) {
	idx := MakeHeaderIndex(header)
	out := make([]model.Receipt, 0, len(rows))

	for i, values := range rows {
		row := Row{Entity: "receipt", Line: i + 2, Index: idx, Values: values}
		if row.Empty() {
			continue
		}

		rawDate, err := row.Text("transaction_date")
		if err != nil {
			return nil, err
		}
		rawTime, err := row.Text("transaction_time")
		if err != nil {
			return nil, err
		}

		var rc model.Receipt
		rc.Timestamp, err = ParseDateTime(rawDate + " " + rawTime)
		if err != nil {
			return nil, row.fail("transaction_time", rawDate+" "+rawTime, err)
		}
		rc.TransactionYear = rc.Timestamp.Year()
		if rc.TransactionDate, err = row.Date("transaction_date"); err != nil {
			return nil, err
		}

		if rc.TransactionID, err = row.Int("transaction_id"); err != nil {
			return nil, err
		}
		if rc.SalesOutletID, err = row.Int("sales_outlet_id"); err != nil {
			return nil, err
		}
		if rc.StaffID, err = row.Int("staff_id"); err != nil {
			return nil, err
		}
		if rc.CustomerID, err = row.Int("customer_id"); err != nil {
			return nil, err
		}
		if rc.Order, err = row.Int("order"); err != nil {
			return nil, err
		}
		if rc.LineItemID, err = row.Int("line_item_id"); err != nil {
			return nil, err
		}
		if rc.ProductID, err = row.Int("product_id"); err != nil {
			return nil, err
		}
		if rc.Quantity, err = row.Int("quantity"); err != nil {
			return nil, err
		}
		if rc.LineItemAmount, err = row.Price("line_item_amount"); err != nil {
			return nil, err
		}
		if rc.UnitPrice, err = row.Price("unit_price"); err != nil {
			return nil, err
		}
		if rc.InstoreYN, err = row.Flag("instore_yn"); err != nil {
			return nil, err
		}
		if rc.PromoItemYN, err = row.Flag("promo_item_yn"); err != nil {
			return nil, err
		}

		out = append(out, rc)
	}

	return out, nil
}
