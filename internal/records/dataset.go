package records

import (
	"salesiq/pkg/contracts/domain"
)

// Dataset bundles the six record collections an analysis session runs
// over. It is assembled once by the composition root from loader output
// and passed to the analyst by reference; nothing mutates it afterwards.
type Dataset struct {
	Merchants    *Merchants
	Items        *Items
	Invoices     *Invoices
	InvoiceItems *InvoiceItems
	Transactions *Transactions
	Customers    *Customers
}

// NewDataset wraps already-parsed entity slices into indexed collections
func NewDataset(
	merchants []domain.Merchant,
	items []domain.Item,
	invoices []domain.Invoice,
	invoiceItems []domain.InvoiceItem,
	transactions []domain.Transaction,
	customers []domain.Customer,
) *Dataset {
	return &Dataset{
		Merchants:    NewMerchants(merchants),
		Items:        NewItems(items),
		Invoices:     NewInvoices(invoices),
		InvoiceItems: NewInvoiceItems(invoiceItems),
		Transactions: NewTransactions(transactions),
		Customers:    NewCustomers(customers),
	}
}
