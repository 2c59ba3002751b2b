package clean

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Headers mirror the raw exports, including the hyphenated first-name column
// that only becomes addressable after normalization.
var customerHeader = []string{
	"customer_id", "home_store", "customer_first-name", "customer_email",
	"customer_since", "loyalty_card_number", "birthdate", "gender", "birth_year",
}

var productHeader = []string{
	"product_id", "product_group", "product_category", "product_type",
	"product", "product_description", "unit_of_measure",
	"current_wholesale_price", "current_retail_price",
	"tax_exempt_yn", "promo_yn", "new_product_yn",
}

var receiptHeader = []string{
	"transaction_id", "transaction_date", "transaction_time",
	"sales_outlet_id", "staff_id", "customer_id", "instore_yn", "order",
	"line_item_id", "product_id", "quantity", "line_item_amount",
	"unit_price", "promo_item_yn",
}

func TestCustomers(t *testing.T) {
	rows := [][]string{
		{"1", "3", "Kelly", " Jane.DOE+1@Example.com ", "2017-01-06", "908-424-2890", "1950-05-29", "F", "1950"},
	}

	got, dropped, err := Customers(customerHeader, rows)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 0, dropped)

	c := got[0]
	assert.Equal(t, int64(1), c.CustomerID)
	assert.Equal(t, "Kelly", c.CustomerFirstName)
	assert.Equal(t, int64(3), c.HomeStore)
	assert.Equal(t, "jane.doe1@example.com", c.CustomerEmail)
	assert.Equal(t, int64(9084242890), c.LoyaltyCardNumber)
	assert.Equal(t, time.Date(2017, 1, 6, 0, 0, 0, 0, time.UTC), c.CustomerSince)
	assert.Equal(t, time.Date(1950, 5, 29, 0, 0, 0, 0, time.UTC), c.Birthdate)
	assert.Equal(t, "F", c.Gender)
}

func TestCustomers_DropsEmptyEmail(t *testing.T) {
	rows := [][]string{
		{"1", "3", "Kelly", "kelly@x.com", "2017-01-06", "123", "1950-05-29", "F", "1950"},
		{"2", "3", "Sam", "   ", "2018-02-07", "456", "1960-06-30", "M", "1960"},
		{"3", "3", "Ann", "###", "2019-03-08", "789", "1970-07-31", "F", "1970"},
	}

	got, dropped, err := Customers(customerHeader, rows)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 2, dropped)
	assert.Equal(t, "kelly@x.com", got[0].CustomerEmail)
}

func TestCustomers_UnparseableLoyaltyNumber(t *testing.T) {
	rows := [][]string{
		{"1", "3", "Kelly", "kelly@x.com", "2017-01-06", "none", "1950-05-29", "F", "1950"},
	}

	_, _, err := Customers(customerHeader, rows)
	require.Error(t, err)

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, "customer", rowErr.Entity)
	assert.Equal(t, "loyalty_card_number", rowErr.Column)
	assert.Equal(t, "none", rowErr.Value)
	assert.Equal(t, 2, rowErr.Line)
}

func TestCustomers_MissingColumn(t *testing.T) {
	header := []string{"customer_id", "home_store"}
	rows := [][]string{{"1", "3"}}

	_, _, err := Customers(header, rows)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestCustomers_SkipsEmptyRows(t *testing.T) {
	rows := [][]string{
		{"", "", "", "", "", "", "", "", ""},
		{"1", "3", "Kelly", "kelly@x.com", "2017-01-06", "123", "1950-05-29", "F", "1950"},
	}

	got, dropped, err := Customers(customerHeader, rows)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 0, dropped)
}

func TestProducts(t *testing.T) {
	rows := [][]string{
		{"22", "Beverages", "Coffee", "Drip coffee", "Brazilian", "Our best drip", "oz", "14.4", "$18.00", "Y", "N", "Maybe"},
	}

	got, err := Products(productHeader, rows)
	require.NoError(t, err)
	require.Len(t, got, 1)

	p := got[0]
	assert.Equal(t, int64(22), p.ProductID)
	assert.Equal(t, "Beverages", p.ProductGroup)
	assert.Equal(t, "Brazilian", p.Product)
	assert.Equal(t, "14.4", p.CurrentWholesalePrice.String())
	assert.Equal(t, "18", p.CurrentRetailPrice.String())
	assert.True(t, p.TaxExemptYN)
	assert.False(t, p.PromoYN)
	// Unrecognized flag values default to false, never null.
	assert.False(t, p.NewProductYN)
}

func TestProducts_BadRetailPrice(t *testing.T) {
	rows := [][]string{
		{"22", "Beverages", "Coffee", "Drip coffee", "Brazilian", "", "oz", "14.4", "n/a", "Y", "N", "N"},
	}

	_, err := Products(productHeader, rows)
	require.Error(t, err)

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, "product", rowErr.Entity)
	assert.Equal(t, "current_retail_price", rowErr.Column)
	assert.Equal(t, "n/a", rowErr.Value)
}

func TestReceipts(t *testing.T) {
	rows := [][]string{
		{"7", "2023-05-01", "14:30:00", "3", "12", "1", "Y", "1", "1", "22", "2", "9.00", "4.50", "N"},
	}

	got, err := Receipts(receiptHeader, rows)
	require.NoError(t, err)
	require.Len(t, got, 1)

	r := got[0]
	assert.Equal(t, time.Date(2023, 5, 1, 14, 30, 0, 0, time.UTC), r.Timestamp)
	assert.Equal(t, 2023, r.TransactionYear)
	assert.Equal(t, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), r.TransactionDate)
	assert.Equal(t, int64(7), r.TransactionID)
	assert.Equal(t, int64(22), r.ProductID)
	assert.Equal(t, int64(2), r.Quantity)
	assert.Equal(t, "9", r.LineItemAmount.String())
	assert.Equal(t, "4.5", r.UnitPrice.String())
	assert.True(t, r.InstoreYN)
	assert.False(t, r.PromoItemYN)
}

func TestReceipts_BadTime(t *testing.T) {
	rows := [][]string{
		{"7", "2023-05-01", "mid-afternoon", "3", "12", "1", "Y", "1", "1", "22", "2", "9.00", "4.50", "N"},
	}

	_, err := Receipts(receiptHeader, rows)
	require.Error(t, err)

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, "receipt", rowErr.Entity)
	assert.Equal(t, 2, rowErr.Line)
}

func TestReceipts_ErrorStopsAtFirstBadRow(t *testing.T) {
	rows := [][]string{
		{"7", "2023-05-01", "14:30:00", "3", "12", "1", "Y", "1", "1", "22", "2", "9.00", "4.50", "N"},
		{"8", "not-a-date", "14:30:00", "3", "12", "1", "Y", "1", "1", "22", "2", "9.00", "4.50", "N"},
	}

	_, err := Receipts(receiptHeader, rows)
	require.Error(t, err)

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 3, rowErr.Line)
}

func TestRowError_Message(t *testing.T) {
	err := &RowError{
		Entity: "customer",
		Column: "birthdate",
		Line:   5,
		Value:  "soon",
		Err:    errors.New("invalid date"),
	}
	msg := err.Error()
	assert.Contains(t, msg, "customer")
	assert.Contains(t, msg, "birthdate")
	assert.Contains(t, msg, `"soon"`)
	assert.Contains(t, msg, "line 5")
}
