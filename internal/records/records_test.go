package records

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesiq/pkg/contracts/domain"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testDataset() *Dataset {
	return NewDataset(
		[]domain.Merchant{
			{ID: 10, Name: "Alpha Goods"},
			{ID: 20, Name: "Beta Supply"},
		},
		[]domain.Item{
			{ID: 1, Name: "Anvil", Description: "Drop-forged ANVIL", UnitPrice: price("25.00"), MerchantID: 10},
			{ID: 2, Name: "Mallet", Description: "Rubber mallet", UnitPrice: price("9.99"), MerchantID: 10},
			{ID: 3, Name: "Twine", Description: "Jute twine", UnitPrice: price("25.00"), MerchantID: 20},
		},
		[]domain.Invoice{
			{ID: 1, CustomerID: 7, MerchantID: 10, Status: domain.StatusShipped},
			{ID: 2, CustomerID: 7, MerchantID: 20, Status: domain.StatusPending},
			{ID: 3, CustomerID: 8, MerchantID: 10, Status: domain.StatusShipped},
		},
		[]domain.InvoiceItem{
			{ID: 1, ItemID: 1, InvoiceID: 1, Quantity: 2, UnitPrice: price("25.00")},
			{ID: 2, ItemID: 2, InvoiceID: 1, Quantity: 1, UnitPrice: price("9.99")},
			{ID: 3, ItemID: 1, InvoiceID: 3, Quantity: 1, UnitPrice: price("24.00")},
		},
		[]domain.Transaction{
			{ID: 1, InvoiceID: 1, CreditCardNumber: "4242424242424242", Result: domain.ResultSuccess},
			{ID: 2, InvoiceID: 2, CreditCardNumber: "4000056655665556", Result: domain.ResultFailed},
			{ID: 3, InvoiceID: 2, CreditCardNumber: "4242424242424242", Result: domain.ResultSuccess},
		},
		[]domain.Customer{
			{ID: 7, FirstName: "Ada", LastName: "Osei"},
			{ID: 8, FirstName: "Bram", LastName: "Koster"},
		},
	)
}

func TestFindByID(t *testing.T) {
	ds := testDataset()

	t.Run("hit", func(t *testing.T) {
		m, ok := ds.Merchants.FindByID(20)
		require.True(t, ok)
		assert.Equal(t, "Beta Supply", m.Name)

		it, ok := ds.Items.FindByID(2)
		require.True(t, ok)
		assert.Equal(t, "Mallet", it.Name)

		inv, ok := ds.Invoices.FindByID(3)
		require.True(t, ok)
		assert.Equal(t, 8, inv.CustomerID)
	})

	t.Run("miss reports ok=false, no error", func(t *testing.T) {
		_, ok := ds.Merchants.FindByID(999)
		assert.False(t, ok)
		_, ok = ds.Items.FindByID(999)
		assert.False(t, ok)
		_, ok = ds.Invoices.FindByID(999)
		assert.False(t, ok)
		_, ok = ds.InvoiceItems.FindByID(999)
		assert.False(t, ok)
		_, ok = ds.Transactions.FindByID(999)
		assert.False(t, ok)
		_, ok = ds.Customers.FindByID(999)
		assert.False(t, ok)
	})
}

func TestForeignKeyFilters(t *testing.T) {
	ds := testDataset()

	t.Run("strict id equality, source order", func(t *testing.T) {
		items := ds.Items.FindAllByMerchantID(10)
		require.Len(t, items, 2)
		assert.Equal(t, 1, items[0].ID)
		assert.Equal(t, 2, items[1].ID)

		invoices := ds.Invoices.FindAllByMerchantID(10)
		require.Len(t, invoices, 2)
		assert.Equal(t, []int{1, 3}, []int{invoices[0].ID, invoices[1].ID})

		assert.Len(t, ds.Invoices.FindAllByCustomerID(7), 2)
		assert.Len(t, ds.InvoiceItems.FindAllByInvoiceID(1), 2)
		assert.Len(t, ds.InvoiceItems.FindAllByItemID(1), 2)
		assert.Len(t, ds.Transactions.FindAllByInvoiceID(2), 2)
	})

	t.Run("no match returns empty, never nil", func(t *testing.T) {
		got := ds.Items.FindAllByMerchantID(999)
		assert.NotNil(t, got)
		assert.Empty(t, got)

		txs := ds.Transactions.FindAllByInvoiceID(999)
		assert.NotNil(t, txs)
		assert.Empty(t, txs)
	})
}

func TestItemFilters(t *testing.T) {
	ds := testDataset()

	t.Run("find by name", func(t *testing.T) {
		it, ok := ds.Items.FindByName("Twine")
		require.True(t, ok)
		assert.Equal(t, 3, it.ID)

		_, ok = ds.Items.FindByName("Chisel")
		assert.False(t, ok)
	})

	t.Run("description search is case-insensitive", func(t *testing.T) {
		found := ds.Items.FindAllWithDescription("anvil")
		require.Len(t, found, 1)
		assert.Equal(t, 1, found[0].ID)
	})

	t.Run("find by exact price", func(t *testing.T) {
		assert.Len(t, ds.Items.FindAllByPrice(price("25.00")), 2)
		assert.Empty(t, ds.Items.FindAllByPrice(price("25.01")))
	})

	t.Run("price range is inclusive", func(t *testing.T) {
		found := ds.Items.FindAllByPriceInRange(price("9.99"), price("25.00"))
		assert.Len(t, found, 3)

		found = ds.Items.FindAllByPriceInRange(price("10.00"), price("24.99"))
		assert.Empty(t, found)
	})
}

func TestStatusAndResultFilters(t *testing.T) {
	ds := testDataset()

	assert.Len(t, ds.Invoices.FindAllByStatus(domain.StatusShipped), 2)
	assert.Len(t, ds.Invoices.FindAllByStatus(domain.StatusReturned), 0)
	assert.Len(t, ds.Transactions.FindAllByResult(domain.ResultSuccess), 2)
	assert.Len(t, ds.Transactions.FindAllByCreditCardNumber("4242424242424242"), 2)
}

func TestCollectionOrderPreserved(t *testing.T) {
	ds := testDataset()

	all := ds.Merchants.All()
	require.Len(t, all, 2)
	assert.Equal(t, 10, all[0].ID)
	assert.Equal(t, 20, all[1].ID)
	assert.Equal(t, 2, ds.Merchants.Len())
	assert.Equal(t, 3, ds.Items.Len())
}
