package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"salesiq/internal/records"
	"salesiq/pkg/contracts/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newFixtureDataset builds the small hand-checked dataset the analyst
// tests run against.
//
// Item counts per merchant are [3,2,0,1] and invoice counts are the same,
// giving mean 1.5 and population std dev sqrt(1.25) ~= 1.118. Item prices
// are [10,10,10,10,10,100]: mean 25, sigma sqrt(1125) ~= 33.54, so only
// the 100.00 item clears mean+2sigma (~92.08).
func newFixtureDataset() *records.Dataset {
	merchants := []domain.Merchant{
		{ID: 1, Name: "Alpha Goods"},
		{ID: 2, Name: "Beta Supply"},
		{ID: 3, Name: "Gamma Trading"},
		{ID: 4, Name: "Delta Imports"},
	}
	items := []domain.Item{
		{ID: 1, Name: "Anvil", Description: "Drop-forged anvil", UnitPrice: price("10.00"), MerchantID: 1},
		{ID: 2, Name: "Mallet", Description: "Rubber mallet", UnitPrice: price("10.00"), MerchantID: 1},
		{ID: 3, Name: "Chisel", Description: "Wood chisel", UnitPrice: price("10.00"), MerchantID: 1},
		{ID: 4, Name: "Twine", Description: "Jute twine, 50m", UnitPrice: price("10.00"), MerchantID: 2},
		{ID: 5, Name: "Burlap", Description: "Burlap sheet", UnitPrice: price("10.00"), MerchantID: 2},
		{ID: 6, Name: "Chronograph", Description: "Swiss chronograph", UnitPrice: price("100.00"), MerchantID: 4},
	}
	customers := []domain.Customer{
		{ID: 1, FirstName: "Ada", LastName: "Osei"},
		{ID: 2, FirstName: "Bram", LastName: "Koster"},
		{ID: 3, FirstName: "Carla", LastName: "Ruiz"},
	}
	// 2009-02-07 is a Saturday, 2009-02-09 a Monday, 2009-02-11 a Wednesday
	invoices := []domain.Invoice{
		{ID: 1, CustomerID: 1, MerchantID: 1, Status: domain.StatusShipped, CreatedAt: day(2009, time.February, 7)},
		{ID: 2, CustomerID: 1, MerchantID: 1, Status: domain.StatusShipped, CreatedAt: day(2009, time.February, 7)},
		{ID: 3, CustomerID: 2, MerchantID: 2, Status: domain.StatusPending, CreatedAt: day(2009, time.February, 9)},
		{ID: 4, CustomerID: 2, MerchantID: 2, Status: domain.StatusReturned, CreatedAt: day(2009, time.February, 11)},
		{ID: 5, CustomerID: 3, MerchantID: 1, Status: domain.StatusShipped, CreatedAt: day(2009, time.February, 11)},
		{ID: 6, CustomerID: 3, MerchantID: 4, Status: domain.StatusPending, CreatedAt: day(2009, time.February, 11)},
	}
	// Line prices deliberately differ from current item prices: revenue
	// math must read the snapshot on the line.
	invoiceItems := []domain.InvoiceItem{
		{ID: 1, ItemID: 1, InvoiceID: 1, Quantity: 2, UnitPrice: price("10.00")},
		{ID: 2, ItemID: 2, InvoiceID: 1, Quantity: 3, UnitPrice: price("5.50")},
		{ID: 3, ItemID: 6, InvoiceID: 2, Quantity: 1, UnitPrice: price("100.00")},
		{ID: 4, ItemID: 4, InvoiceID: 3, Quantity: 4, UnitPrice: price("2.25")},
		{ID: 5, ItemID: 3, InvoiceID: 5, Quantity: 2, UnitPrice: price("10.00")},
		{ID: 6, ItemID: 6, InvoiceID: 6, Quantity: 1, UnitPrice: price("99.99")},
	}
	transactions := []domain.Transaction{
		{ID: 1, InvoiceID: 1, Result: domain.ResultFailed},
		{ID: 2, InvoiceID: 1, Result: domain.ResultSuccess},
		{ID: 3, InvoiceID: 2, Result: domain.ResultSuccess},
		{ID: 4, InvoiceID: 3, Result: domain.ResultFailed},
		{ID: 5, InvoiceID: 5, Result: domain.ResultSuccess},
		{ID: 6, InvoiceID: 6, Result: domain.ResultSuccess},
	}
	return records.NewDataset(merchants, items, invoices, invoiceItems, transactions, customers)
}

// newInvoiceCountDataset builds a dataset whose only purpose is a given
// invoice-count distribution: merchant i+1 receives counts[i] shipped
// invoices and nothing else.
func newInvoiceCountDataset(counts []int) *records.Dataset {
	merchants := make([]domain.Merchant, len(counts))
	invoices := []domain.Invoice{}
	nextInvoice := 1
	for i, n := range counts {
		merchants[i] = domain.Merchant{ID: i + 1, Name: "Merchant"}
		for j := 0; j < n; j++ {
			invoices = append(invoices, domain.Invoice{
				ID:         nextInvoice,
				CustomerID: 1,
				MerchantID: i + 1,
				Status:     domain.StatusShipped,
				CreatedAt:  day(2009, time.February, 7),
			})
			nextInvoice++
		}
	}
	customers := []domain.Customer{{ID: 1, FirstName: "Ada", LastName: "Osei"}}
	return records.NewDataset(merchants, nil, invoices, nil, nil, customers)
}
