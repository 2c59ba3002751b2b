// Package ingest performs the one-time CSV load at process startup.
//
// Each entity source is read, cleaned, and persisted as a single atomic
// batch, but only if the target table is still empty. Re-running the loader
// against a populated store is a no-op, which makes ingestion idempotent
// across restarts. Any failure is fatal to the caller: the process must not
// serve queries over a half-loaded store.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/beandata/coffeeshop-api/internal/clean"
	"github.com/beandata/coffeeshop-api/internal/config"
	"github.com/beandata/coffeeshop-api/internal/model"
)

// Store is the persistence contract the loader needs: an emptiness check and
// an all-or-nothing batch insert per entity kind.
type Store interface {
	HasRows(ctx context.Context, table string) (bool, error)
	InsertCustomers(ctx context.Context, rows []model.Customer) (int64, error)
	InsertProducts(ctx context.Context, rows []model.Product) (int64, error)
	InsertReceipts(ctx context.Context, rows []model.Receipt) (int64, error)
}

// Status reports how a single entity load ended.
type Status string

const (
	StatusLoaded  Status = "loaded"
	StatusSkipped Status = "skipped"
)

// LoadResult describes the outcome of one entity load.
type LoadResult struct {
	Entity  string
	Status  Status
	Rows    int64
	Dropped int // customer rows discarded for an empty cleaned email
}

// Loader reads the raw CSV sources and loads them through the cleaners.
type Loader struct {
	store Store
	cfg   config.IngestConfig
	runID string
}

// NewLoader creates a Loader. Each loader carries a run ID that tags every
// log entry produced by one ingestion pass.
func NewLoader(store Store, cfg config.IngestConfig) *Loader {
	return &Loader{store: store, cfg: cfg, runID: uuid.NewString()}
}

// Run loads products, customers, and receipts in that order, mirroring the
// file order of the source exports. The first failure aborts the run.
func (l *Loader) Run(ctx context.Context) ([]LoadResult, error) {
	log := slog.Default().With("run_id", l.runID)
	log.Info("ingestion starting")

	loads := []func(context.Context) (LoadResult, error){
		l.loadProducts,
		l.loadCustomers,
		l.loadReceipts,
	}

	var results []LoadResult
	for _, load := range loads {
		res, err := load(ctx)
		if err != nil {
			return results, err
		}
		switch res.Status {
		case StatusSkipped:
			log.Info("table already populated, skipping", "entity", res.Entity)
		default:
			log.Info("table loaded", "entity", res.Entity, "rows", res.Rows, "dropped", res.Dropped)
		}
		results = append(results, res)
	}

	log.Info("ingestion complete")
	return results, nil
}

func (l *Loader) loadProducts(ctx context.Context) (LoadResult, error) {
	res := LoadResult{Entity: "product"}

	header, rows, err := readCSV(l.cfg.ProductPath)
	if err != nil {
		return res, err
	}
	products, err := clean.Products(header, rows)
	if err != nil {
		return res, fmt.Errorf("cleaning products: %w", err)
	}

	has, err := l.store.HasRows(ctx, "product")
	if err != nil {
		return res, err
	}
	if has {
		res.Status = StatusSkipped
		return res, nil
	}

	res.Rows, err = l.store.InsertProducts(ctx, products)
	if err != nil {
		return res, err
	}
	res.Status = StatusLoaded
	return res, nil
}

func (l *Loader) loadCustomers(ctx context.Context) (LoadResult, error) {
	res := LoadResult{Entity: "customer"}

	header, rows, err := readCSV(l.cfg.CustomerPath)
	if err != nil {
		return res, err
	}
	customers, dropped, err := clean.Customers(header, rows)
	if err != nil {
		return res, fmt.Errorf("cleaning customers: %w", err)
	}
	res.Dropped = dropped
	if dropped > 0 {
		slog.Warn("dropped customer rows with empty cleaned email",
			"run_id", l.runID, "dropped", dropped)
	}

	has, err := l.store.HasRows(ctx, "customer")
	if err != nil {
		return res, err
	}
	if has {
		res.Status = StatusSkipped
		return res, nil
	}

	res.Rows, err = l.store.InsertCustomers(ctx, customers)
	if err != nil {
		return res, err
	}
	res.Status = StatusLoaded
	return res, nil
}

func (l *Loader) loadReceipts(ctx context.Context) (LoadResult, error) {
	res := LoadResult{Entity: "receipt"}

	header, rows, err := readCSV(l.cfg.ReceiptPath)
	if err != nil {
		return res, err
	}
	receipts, err := clean.Receipts(header, rows)
	if err != nil {
		return res, fmt.Errorf("cleaning receipts: %w", err)
	}

	has, err := l.store.HasRows(ctx, "receipt")
	if err != nil {
		return res, err
	}
	if has {
		res.Status = StatusSkipped
		return res, nil
	}

	res.Rows, err = l.store.InsertReceipts(ctx, receipts)
	if err != nil {
		return res, err
	}
	res.Status = StatusLoaded
	return res, nil
}

// readCSV reads a whole source file, returning the header row and data rows.
// Sources are small one-time exports, so buffering them fully is fine.
func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening source: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("%s: no data rows after header", path)
	}

	header := records[0]
	// Excel exports often lead with a UTF-8 BOM glued to the first header cell.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return header, records[1:], nil
}
