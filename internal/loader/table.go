package loader

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"salesiq/pkg/contracts/domain"
)

// timeLayouts are the timestamp forms accepted in source data, tried in
// order. Dates without a time component are common in invoice exports.
var timeLayouts = []string{
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// table is one decoded entity sheet: a header-name to column-index map
// plus the data rows in source order.
type table struct {
	source string
	cols   map[string]int
	rows   [][]string
}

func newTable(source string, rows [][]string) (*table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", source)
	}
	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(stripBOM(h)))] = i
	}
	return &table{source: source, cols: cols, rows: rows[1:]}, nil
}

// stripBOM removes a UTF-8 byte order mark, which Excel-produced CSVs
// prepend to the first header cell
func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}

// rowError addresses an error to its source row. Row numbering is
// 1-based and counts the header, matching what an editor shows.
func (t *table) rowError(row int, err error) error {
	return fmt.Errorf("%s row %d: %w", t.source, row+2, err)
}

func (t *table) field(row []string, name string) (string, error) {
	i, ok := t.cols[name]
	if !ok {
		return "", fmt.Errorf("missing column %q", name)
	}
	if i >= len(row) {
		return "", nil
	}
	return strings.TrimSpace(row[i]), nil
}

func (t *table) intField(row []string, name string) (int, error) {
	s, err := t.field(row, name)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", name, err)
	}
	return n, nil
}

func (t *table) decimalField(row []string, name string) (decimal.Decimal, error) {
	s, err := t.field(row, name)
	if err != nil {
		return decimal.Zero, err
	}
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("column %q: %w", name, err)
	}
	return d, nil
}

func (t *table) timeField(row []string, name string) (time.Time, error) {
	s, err := t.field(row, name)
	if err != nil {
		return time.Time{}, err
	}
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("column %q: unrecognized timestamp %q", name, s)
}

func (l *Loader) decodeMerchants(t *table) ([]domain.Merchant, error) {
	out := make([]domain.Merchant, 0, len(t.rows))
	for i, row := range t.rows {
		var m domain.Merchant
		var err error
		if m.ID, err = t.intField(row, "id"); err != nil {
			return nil, t.rowError(i, err)
		}
		if m.Name, err = t.field(row, "name"); err != nil {
			return nil, t.rowError(i, err)
		}
		if err = l.validate.Struct(m); err != nil {
			return nil, t.rowError(i, err)
		}
		out = append(out, m)
	}
	return out, nil
}

func (l *Loader) decodeItems(t *table) ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(t.rows))
	for i, row := range t.rows {
		var it domain.Item
		var err error
		if it.ID, err = t.intField(row, "id"); err != nil {
			return nil, t.rowError(i, err)
		}
		if it.Name, err = t.field(row, "name"); err != nil {
			return nil, t.rowError(i, err)
		}
		if it.Description, err = t.field(row, "description"); err != nil {
			return nil, t.rowError(i, err)
		}
		if it.UnitPrice, err = t.decimalField(row, "unit_price"); err != nil {
			return nil, t.rowError(i, err)
		}
		if it.MerchantID, err = t.intField(row, "merchant_id"); err != nil {
			return nil, t.rowError(i, err)
		}
		if it.CreatedAt, err = t.timeField(row, "created_at"); err != nil {
			return nil, t.rowError(i, err)
		}
		if it.UpdatedAt, err = t.timeField(row, "updated_at"); err != nil {
			return nil, t.rowError(i, err)
		}
		if err = l.validate.Struct(it); err != nil {
			return nil, t.rowError(i, err)
		}
		out = append(out, it)
	}
	return out, nil
}

func (l *Loader) decodeInvoices(t *table) ([]domain.Invoice, error) {
	out := make([]domain.Invoice, 0, len(t.rows))
	for i, row := range t.rows {
		var inv domain.Invoice
		var err error
		if inv.ID, err = t.intField(row, "id"); err != nil {
			return nil, t.rowError(i, err)
		}
		if inv.CustomerID, err = t.intField(row, "customer_id"); err != nil {
			return nil, t.rowError(i, err)
		}
		if inv.MerchantID, err = t.intField(row, "merchant_id"); err != nil {
			return nil, t.rowError(i, err)
		}
		status, err := t.field(row, "status")
		if err != nil {
			return nil, t.rowError(i, err)
		}
		inv.Status = domain.InvoiceStatus(strings.ToLower(status))
		if inv.CreatedAt, err = t.timeField(row, "created_at"); err != nil {
			return nil, t.rowError(i, err)
		}
		if inv.UpdatedAt, err = t.timeField(row, "updated_at"); err != nil {
			return nil, t.rowError(i, err)
		}
		if err = l.validate.Struct(inv); err != nil {
			return nil, t.rowError(i, err)
		}
		out = append(out, inv)
	}
	return out, nil
}

func (l *Loader) decodeInvoiceItems(t *table) ([]domain.InvoiceItem, error) {
	out := make([]domain.InvoiceItem, 0, len(t.rows))
	for i, row := range t.rows {
		var li domain.InvoiceItem
		var err error
		if li.ID, err = t.intField(row, "id"); err != nil {
			return nil, t.rowError(i, err)
		}
		if li.ItemID, err = t.intField(row, "item_id"); err != nil {
			return nil, t.rowError(i, err)
		}
		if li.InvoiceID, err = t.intField(row, "invoice_id"); err != nil {
			return nil, t.rowError(i, err)
		}
		if li.Quantity, err = t.intField(row, "quantity"); err != nil {
			return nil, t.rowError(i, err)
		}
		if li.Quantity < 0 {
			return nil, t.rowError(i, fmt.Errorf("column %q: negative quantity %d", "quantity", li.Quantity))
		}
		if li.UnitPrice, err = t.decimalField(row, "unit_price"); err != nil {
			return nil, t.rowError(i, err)
		}
		if li.CreatedAt, err = t.timeField(row, "created_at"); err != nil {
			return nil, t.rowError(i, err)
		}
		if li.UpdatedAt, err = t.timeField(row, "updated_at"); err != nil {
			return nil, t.rowError(i, err)
		}
		if err = l.validate.Struct(li); err != nil {
			return nil, t.rowError(i, err)
		}
		out = append(out, li)
	}
	return out, nil
}

func (l *Loader) decodeTransactions(t *table) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0, len(t.rows))
	for i, row := range t.rows {
		var tx domain.Transaction
		var err error
		if tx.ID, err = t.intField(row, "id"); err != nil {
			return nil, t.rowError(i, err)
		}
		if tx.InvoiceID, err = t.intField(row, "invoice_id"); err != nil {
			return nil, t.rowError(i, err)
		}
		if tx.CreditCardNumber, err = t.field(row, "credit_card_number"); err != nil {
			return nil, t.rowError(i, err)
		}
		if tx.CreditCardExpirationDate, err = t.field(row, "credit_card_expiration_date"); err != nil {
			return nil, t.rowError(i, err)
		}
		result, err := t.field(row, "result")
		if err != nil {
			return nil, t.rowError(i, err)
		}
		tx.Result = domain.TransactionResult(strings.ToLower(result))
		if tx.CreatedAt, err = t.timeField(row, "created_at"); err != nil {
			return nil, t.rowError(i, err)
		}
		if tx.UpdatedAt, err = t.timeField(row, "updated_at"); err != nil {
			return nil, t.rowError(i, err)
		}
		if err = l.validate.Struct(tx); err != nil {
			return nil, t.rowError(i, err)
		}
		out = append(out, tx)
	}
	return out, nil
}

func (l *Loader) decodeCustomers(t *table) ([]domain.Customer, error) {
	out := make([]domain.Customer, 0, len(t.rows))
	for i, row := range t.rows {
		var cu domain.Customer
		var err error
		if cu.ID, err = t.intField(row, "id"); err != nil {
			return nil, t.rowError(i, err)
		}
		if cu.FirstName, err = t.field(row, "first_name"); err != nil {
			return nil, t.rowError(i, err)
		}
		if cu.LastName, err = t.field(row, "last_name"); err != nil {
			return nil, t.rowError(i, err)
		}
		if cu.CreatedAt, err = t.timeField(row, "created_at"); err != nil {
			return nil, t.rowError(i, err)
		}
		if cu.UpdatedAt, err = t.timeField(row, "updated_at"); err != nil {
			return nil, t.rowError(i, err)
		}
		if err = l.validate.Struct(cu); err != nil {
			return nil, t.rowError(i, err)
		}
		out = append(out, cu)
	}
	return out, nil
}
