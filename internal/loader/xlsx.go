package loader

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"salesiq/internal/records"
)

// Sheet names expected in a dataset workbook, one per entity table
const (
	SheetMerchants    = "merchants"
	SheetItems        = "items"
	SheetInvoices     = "invoices"
	SheetInvoiceItems = "invoice_items"
	SheetTransactions = "transactions"
	SheetCustomers    = "customers"
)

// LoadWorkbook reads a single Excel workbook holding one sheet per
// entity table and assembles the dataset. Sheet lookup is
// case-insensitive on the names above; each sheet carries the same
// header row its CSV counterpart would.
func (l *Loader) LoadWorkbook(ctx context.Context, path string) (*records.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := func(name string) (*table, error) {
		rows, err := f.GetRows(resolveSheet(f, name))
		if err != nil {
			return nil, fmt.Errorf("%s: sheet %q: %w", path, name, err)
		}
		return newTable(fmt.Sprintf("%s#%s", path, name), rows)
	}

	tm, err := sheet(SheetMerchants)
	if err != nil {
		return nil, err
	}
	merchants, err := l.decodeMerchants(tm)
	if err != nil {
		return nil, fmt.Errorf("load workbook: %w", err)
	}

	ti, err := sheet(SheetItems)
	if err != nil {
		return nil, err
	}
	items, err := l.decodeItems(ti)
	if err != nil {
		return nil, fmt.Errorf("load workbook: %w", err)
	}

	tv, err := sheet(SheetInvoices)
	if err != nil {
		return nil, err
	}
	invoices, err := l.decodeInvoices(tv)
	if err != nil {
		return nil, fmt.Errorf("load workbook: %w", err)
	}

	tl, err := sheet(SheetInvoiceItems)
	if err != nil {
		return nil, err
	}
	invoiceItems, err := l.decodeInvoiceItems(tl)
	if err != nil {
		return nil, fmt.Errorf("load workbook: %w", err)
	}

	tt, err := sheet(SheetTransactions)
	if err != nil {
		return nil, err
	}
	transactions, err := l.decodeTransactions(tt)
	if err != nil {
		return nil, fmt.Errorf("load workbook: %w", err)
	}

	tc, err := sheet(SheetCustomers)
	if err != nil {
		return nil, err
	}
	customers, err := l.decodeCustomers(tc)
	if err != nil {
		return nil, fmt.Errorf("load workbook: %w", err)
	}

	ds := records.NewDataset(merchants, items, invoices, invoiceItems, transactions, customers)
	if err := verifyIntegrity(ds); err != nil {
		return nil, fmt.Errorf("load workbook: %w", err)
	}

	l.logger.InfoContext(ctx, "workbook loaded",
		slog.String("path", path),
		slog.Int("merchants", ds.Merchants.Len()),
		slog.Int("invoices", ds.Invoices.Len()),
	)
	return ds, nil
}

// resolveSheet finds the actual sheet name matching the expected one,
// tolerating case differences and stray whitespace in the workbook
func resolveSheet(f *excelize.File, want string) string {
	for _, name := range f.GetSheetList() {
		if strings.EqualFold(strings.TrimSpace(name), want) {
			return name
		}
	}
	return want
}
