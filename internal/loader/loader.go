package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"salesiq/internal/records"
	"salesiq/pkg/contracts/domain"
)

// Paths names the six CSV files of a dataset
type Paths struct {
	Merchants    string
	Items        string
	Invoices     string
	InvoiceItems string
	Transactions string
	Customers    string
}

// Loader parses entity tables into a records.Dataset
type Loader struct {
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates a loader. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		validate: validator.New(),
		logger:   logger.With(slog.String("component", "loader")),
	}
}

// LoadCSV reads the six entity CSV files concurrently and assembles the
// dataset. Any parse, validation, or integrity failure aborts the load.
func (l *Loader) LoadCSV(ctx context.Context, paths Paths) (*records.Dataset, error) {
	var (
		merchants    []domain.Merchant
		items        []domain.Item
		invoices     []domain.Invoice
		invoiceItems []domain.InvoiceItem
		transactions []domain.Transaction
		customers    []domain.Customer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := l.readCSV(paths.Merchants)
		if err != nil {
			return err
		}
		merchants, err = l.decodeMerchants(t)
		return err
	})
	g.Go(func() error {
		t, err := l.readCSV(paths.Items)
		if err != nil {
			return err
		}
		items, err = l.decodeItems(t)
		return err
	})
	g.Go(func() error {
		t, err := l.readCSV(paths.Invoices)
		if err != nil {
			return err
		}
		invoices, err = l.decodeInvoices(t)
		return err
	})
	g.Go(func() error {
		t, err := l.readCSV(paths.InvoiceItems)
		if err != nil {
			return err
		}
		invoiceItems, err = l.decodeInvoiceItems(t)
		return err
	})
	g.Go(func() error {
		t, err := l.readCSV(paths.Transactions)
		if err != nil {
			return err
		}
		transactions, err = l.decodeTransactions(t)
		return err
	})
	g.Go(func() error {
		t, err := l.readCSV(paths.Customers)
		if err != nil {
			return err
		}
		customers, err = l.decodeCustomers(t)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	ds := records.NewDataset(merchants, items, invoices, invoiceItems, transactions, customers)
	if err := verifyIntegrity(ds); err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	l.logger.InfoContext(gctx, "dataset loaded",
		slog.Int("merchants", ds.Merchants.Len()),
		slog.Int("items", ds.Items.Len()),
		slog.Int("invoices", ds.Invoices.Len()),
		slog.Int("invoice_items", ds.InvoiceItems.Len()),
		slog.Int("transactions", ds.Transactions.Len()),
		slog.Int("customers", ds.Customers.Len()),
	)
	return ds, nil
}

// readCSV reads one CSV file into a header-mapped table
func (l *Loader) readCSV(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // header mapping tolerates ragged rows
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return newTable(path, rows)
}

// verifyIntegrity checks the dataset's referential invariants: every
// line item references an existing invoice and item, every invoice an
// existing merchant and customer, every transaction an existing invoice.
func verifyIntegrity(ds *records.Dataset) error {
	for _, inv := range ds.Invoices.All() {
		if _, ok := ds.Merchants.FindByID(inv.MerchantID); !ok {
			return fmt.Errorf("invoice %d references unknown merchant %d", inv.ID, inv.MerchantID)
		}
		if _, ok := ds.Customers.FindByID(inv.CustomerID); !ok {
			return fmt.Errorf("invoice %d references unknown customer %d", inv.ID, inv.CustomerID)
		}
	}
	for _, it := range ds.Items.All() {
		if _, ok := ds.Merchants.FindByID(it.MerchantID); !ok {
			return fmt.Errorf("item %d references unknown merchant %d", it.ID, it.MerchantID)
		}
	}
	for _, li := range ds.InvoiceItems.All() {
		if _, ok := ds.Invoices.FindByID(li.InvoiceID); !ok {
			return fmt.Errorf("invoice item %d references unknown invoice %d", li.ID, li.InvoiceID)
		}
		if _, ok := ds.Items.FindByID(li.ItemID); !ok {
			return fmt.Errorf("invoice item %d references unknown item %d", li.ID, li.ItemID)
		}
	}
	for _, tx := range ds.Transactions.All() {
		if _, ok := ds.Invoices.FindByID(tx.InvoiceID); !ok {
			return fmt.Errorf("transaction %d references unknown invoice %d", tx.ID, tx.InvoiceID)
		}
	}
	return nil
}
