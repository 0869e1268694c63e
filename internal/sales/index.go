package sales

import (
	"salesiq/internal/records"
	"salesiq/pkg/contracts/domain"
)

// Index is the relationship index: cached foreign-key groupings of child
// records by parent id, so the analyst never rescans a collection per
// query. All tables are built eagerly at construction; after that the
// index is read-only, which keeps it safe to share if the host happens to
// be multi-threaded.
//
// Groups preserve source collection order. Lookups for an unknown parent
// return an empty slice, never nil.
type Index struct {
	itemsByMerchant       map[int][]domain.Item
	invoicesByMerchant    map[int][]domain.Invoice
	linesByInvoice        map[int][]domain.InvoiceItem
	transactionsByInvoice map[int][]domain.Transaction
	invoicesByDate        map[string][]domain.Invoice
}

// NewIndex builds all grouping tables from the dataset in one pass per
// collection.
func NewIndex(ds *records.Dataset) *Index {
	ix := &Index{
		itemsByMerchant:       make(map[int][]domain.Item),
		invoicesByMerchant:    make(map[int][]domain.Invoice),
		linesByInvoice:        make(map[int][]domain.InvoiceItem),
		transactionsByInvoice: make(map[int][]domain.Transaction),
		invoicesByDate:        make(map[string][]domain.Invoice),
	}
	for _, it := range ds.Items.All() {
		ix.itemsByMerchant[it.MerchantID] = append(ix.itemsByMerchant[it.MerchantID], it)
	}
	for _, inv := range ds.Invoices.All() {
		ix.invoicesByMerchant[inv.MerchantID] = append(ix.invoicesByMerchant[inv.MerchantID], inv)
		ix.invoicesByDate[inv.DateKey()] = append(ix.invoicesByDate[inv.DateKey()], inv)
	}
	for _, li := range ds.InvoiceItems.All() {
		ix.linesByInvoice[li.InvoiceID] = append(ix.linesByInvoice[li.InvoiceID], li)
	}
	for _, tx := range ds.Transactions.All() {
		ix.transactionsByInvoice[tx.InvoiceID] = append(ix.transactionsByInvoice[tx.InvoiceID], tx)
	}
	return ix
}

// ItemsFor returns the merchant's items in source order
func (ix *Index) ItemsFor(merchantID int) []domain.Item {
	if g, ok := ix.itemsByMerchant[merchantID]; ok {
		return g
	}
	return []domain.Item{}
}

// InvoicesFor returns the merchant's invoices in source order
func (ix *Index) InvoicesFor(merchantID int) []domain.Invoice {
	if g, ok := ix.invoicesByMerchant[merchantID]; ok {
		return g
	}
	return []domain.Invoice{}
}

// LinesFor returns the invoice's line items in source order
func (ix *Index) LinesFor(invoiceID int) []domain.InvoiceItem {
	if g, ok := ix.linesByInvoice[invoiceID]; ok {
		return g
	}
	return []domain.InvoiceItem{}
}

// TransactionsFor returns the invoice's payment attempts in source order
func (ix *Index) TransactionsFor(invoiceID int) []domain.Transaction {
	if g, ok := ix.transactionsByInvoice[invoiceID]; ok {
		return g
	}
	return []domain.Transaction{}
}

// InvoicesOn returns the invoices created on the given canonical
// YYYY-MM-DD date key, in source order
func (ix *Index) InvoicesOn(dateKey string) []domain.Invoice {
	if g, ok := ix.invoicesByDate[dateKey]; ok {
		return g
	}
	return []domain.Invoice{}
}
