package clean

import "github.com/beandata/coffeeshop-api/internal/model"

// Customers cleans raw customer rows into typed records.
//
// Rows whose email is empty after cleaning are dropped rather than failed;
// the second return value is the dropped count so the loader can log it.
// The raw birth_year column is superseded by birthdate and ignored.
func Customers(header []string, rows [][]string) ([]model.Customer, int, error) {
	idx := MakeHeaderIndex(header)
	out := make([]model.Customer, 0, len(rows))
	dropped := 0

	for i, values := range rows {
		row := Row{Entity: "customer", Line: i + 2, Index: idx, Values: values}
		if row.Empty() {
			continue
		}

		email, err := row.Text("customer_email")
		if err != nil {
			return nil, 0, err
		}
		email = CleanEmail(email)
		if email == "" {
			dropped++
			continue
		}

		var c model.Customer
		c.CustomerEmail = email
		if c.CustomerID, err = row.Int("customer_id"); err != nil {
			return nil, 0, err
		}
		if c.CustomerFirstName, err = row.Text("customer_first_name"); err != nil {
			return nil, 0, err
		}
		if c.HomeStore, err = row.Int("home_store"); err != nil {
			return nil, 0, err
		}
		if c.LoyaltyCardNumber, err = row.NumericID("loyalty_card_number"); err != nil {
			return nil, 0, err
		}
		if c.CustomerSince, err = row.Date("customer_since"); err != nil {
			return nil, 0, err
		}
		if c.Birthdate, err = row.Date("birthdate"); err != nil {
			return nil, 0, err
		}
		if c.Gender, err = row.Text("gender"); err != nil {
			return nil, 0, err
		}

		out = append(out, c)
	}

	return out, dropped, nil
}
