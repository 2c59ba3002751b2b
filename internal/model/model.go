// Package model defines the typed records persisted by the ingestion step
// and read back by the query endpoints. Records are built once from cleaned
// CSV rows and never mutated afterwards.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a loyalty-program customer.
type Customer struct {
	CustomerID        int64
	CustomerFirstName string
	HomeStore         int64
	CustomerEmail     string
	CustomerSince     time.Time // date only
	LoyaltyCardNumber int64
	Birthdate         time.Time // date only
	Gender            string
}

// Product is a catalog entry with its category hierarchy and price points.
type Product struct {
	ProductID             int64
	ProductGroup          string
	ProductCategory       string
	ProductType           string
	Product               string
	ProductDescription    string
	UnitOfMeasure         string
	CurrentWholesalePrice decimal.Decimal
	CurrentRetailPrice    decimal.Decimal
	TaxExemptYN           bool
	PromoYN               bool
	NewProductYN          bool
}

// Receipt is a single sales receipt line item. Timestamp and TransactionYear
// are derived during cleaning from the raw transaction date and time columns;
// the raw time column itself is not persisted.
type Receipt struct {
	TransactionID   int64
	Timestamp       time.Time
	TransactionDate time.Time // date only
	TransactionYear int
	SalesOutletID   int64
	StaffID         int64
	CustomerID      int64
	InstoreYN       bool
	Order           int64
	LineItemID      int64
	ProductID       int64
	Quantity        int64
	LineItemAmount  decimal.Decimal
	UnitPrice       decimal.Decimal
	PromoItemYN     bool
}
