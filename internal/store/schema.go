package store

import (
	"context"
	"fmt"
)

// schema.go creates the tables and indexes at startup. The dataset is loaded
// once and read-only afterwards, so there is no migration history to manage;
// CREATE IF NOT EXISTS keeps repeated startups harmless.

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customer (
		customer_id         BIGINT PRIMARY KEY,
		customer_first_name TEXT NOT NULL,
		home_store          BIGINT NOT NULL,
		customer_email      TEXT NOT NULL,
		customer_since      DATE NOT NULL,
		loyalty_card_number BIGINT NOT NULL,
		birthdate           DATE NOT NULL,
		gender              TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS product (
		product_id              BIGINT PRIMARY KEY,
		product_group           TEXT NOT NULL,
		product_category        TEXT NOT NULL,
		product_type            TEXT NOT NULL,
		product                 TEXT NOT NULL,
		product_description     TEXT NOT NULL DEFAULT '',
		unit_of_measure         TEXT NOT NULL DEFAULT '',
		current_wholesale_price NUMERIC(10,2) NOT NULL,
		current_retail_price    NUMERIC(10,2) NOT NULL,
		tax_exempt_yn           BOOLEAN NOT NULL DEFAULT FALSE,
		promo_yn                BOOLEAN NOT NULL DEFAULT FALSE,
		new_product_yn          BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS receipt (
		row_id           BIGSERIAL PRIMARY KEY,
		transaction_id   BIGINT NOT NULL,
		"timestamp"      TIMESTAMP NOT NULL,
		transaction_date DATE NOT NULL,
		transaction_year INT NOT NULL,
		sales_outlet_id  BIGINT NOT NULL,
		staff_id         BIGINT NOT NULL,
		customer_id      BIGINT NOT NULL,
		instore_yn       BOOLEAN NOT NULL DEFAULT FALSE,
		"order"          BIGINT NOT NULL,
		line_item_id     BIGINT NOT NULL,
		product_id       BIGINT NOT NULL,
		quantity         BIGINT NOT NULL,
		line_item_amount NUMERIC(10,2) NOT NULL,
		unit_price       NUMERIC(10,2) NOT NULL,
		promo_item_yn    BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_receipt_transaction_year ON receipt (transaction_year)`,
	`CREATE INDEX IF NOT EXISTS idx_receipt_customer_ts ON receipt (customer_id, "timestamp" DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_receipt_product ON receipt (product_id)`,
}

// Migrate creates the schema if it does not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
