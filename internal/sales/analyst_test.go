package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesiq/internal/records"
	"salesiq/pkg/contracts/domain"
)

func merchantIDs(merchants []domain.Merchant) []int {
	ids := make([]int, len(merchants))
	for i, m := range merchants {
		ids[i] = m.ID
	}
	return ids
}

func TestItemsPerMerchant(t *testing.T) {
	a := NewAnalyst(newFixtureDataset())

	t.Run("one count per merchant in collection order", func(t *testing.T) {
		assert.Equal(t, []float64{3, 2, 0, 1}, a.ItemsPerMerchant())
	})

	t.Run("average rounds to two decimals", func(t *testing.T) {
		avg, err := a.AverageItemsPerMerchant()
		require.NoError(t, err)
		assert.Equal(t, 1.5, avg)
	})

	t.Run("standard deviation uses population formula", func(t *testing.T) {
		// sqrt(5/4) ~= 1.1180; the sample formula would give ~1.29
		sd, err := a.AverageItemsPerMerchantStandardDeviation()
		require.NoError(t, err)
		assert.Equal(t, 1.12, sd)
	})

	t.Run("high item count is mean plus one sigma, strict", func(t *testing.T) {
		high, err := a.MerchantsWithHighItemCount()
		require.NoError(t, err)
		assert.Equal(t, []int{1}, merchantIDs(high))
	})
}

func TestInvoicesPerMerchant(t *testing.T) {
	a := NewAnalyst(newFixtureDataset())

	t.Run("one count per merchant in collection order", func(t *testing.T) {
		assert.Equal(t, []float64{3, 2, 0, 1}, a.InvoicesPerMerchant())
	})

	t.Run("average and standard deviation", func(t *testing.T) {
		avg, err := a.AverageInvoicesPerMerchant()
		require.NoError(t, err)
		assert.Equal(t, 1.5, avg)

		sd, err := a.AverageInvoicesPerMerchantStandardDeviation()
		require.NoError(t, err)
		assert.Equal(t, 1.12, sd)
	})

	t.Run("no merchant clears two sigma on a flat distribution", func(t *testing.T) {
		top, err := a.TopMerchantsByInvoiceCount()
		require.NoError(t, err)
		assert.Empty(t, top)

		bottom, err := a.BottomMerchantsByInvoiceCount()
		require.NoError(t, err)
		assert.Empty(t, bottom)
	})
}

func TestTopMerchantsByInvoiceCountOutlier(t *testing.T) {
	// counts [9,1,1,1,0,0]: mean 2, sigma sqrt(10) ~= 3.16, so only the
	// 9-invoice merchant clears mean + 2*sigma ~= 8.32
	a := NewAnalyst(newInvoiceCountDataset([]int{9, 1, 1, 1, 0, 0}))

	top, err := a.TopMerchantsByInvoiceCount()
	require.NoError(t, err)
	assert.Equal(t, []int{1}, merchantIDs(top))

	bottom, err := a.BottomMerchantsByInvoiceCount()
	require.NoError(t, err)
	assert.Empty(t, bottom)
}

func TestBottomMerchantsByInvoiceCountOutlier(t *testing.T) {
	// counts [10,10,10,10,10,0]: mean ~8.33, sigma ~3.73, so only the
	// idle merchant falls below mean - 2*sigma ~= 0.88
	a := NewAnalyst(newInvoiceCountDataset([]int{10, 10, 10, 10, 10, 0}))

	bottom, err := a.BottomMerchantsByInvoiceCount()
	require.NoError(t, err)
	assert.Equal(t, []int{6}, merchantIDs(bottom))

	top, err := a.TopMerchantsByInvoiceCount()
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestGoldenItems(t *testing.T) {
	t.Run("strictly above mean plus two sigma", func(t *testing.T) {
		a := NewAnalyst(newFixtureDataset())
		golden, err := a.GoldenItems()
		require.NoError(t, err)
		require.Len(t, golden, 1)
		assert.Equal(t, 6, golden[0].ID)
	})

	t.Run("item exactly at the threshold is excluded", func(t *testing.T) {
		// Uniform prices: sigma is 0 and the threshold equals every
		// price, so nothing qualifies.
		ds := records.NewDataset(
			[]domain.Merchant{{ID: 1, Name: "Alpha Goods"}},
			[]domain.Item{
				{ID: 1, Name: "Anvil", UnitPrice: price("50.00"), MerchantID: 1},
				{ID: 2, Name: "Mallet", UnitPrice: price("50.00"), MerchantID: 1},
			},
			nil, nil, nil, nil,
		)
		golden, err := NewAnalyst(ds).GoldenItems()
		require.NoError(t, err)
		assert.Empty(t, golden)
	})

	t.Run("no items fails loudly", func(t *testing.T) {
		ds := records.NewDataset(
			[]domain.Merchant{{ID: 1, Name: "Alpha Goods"}},
			nil, nil, nil, nil, nil,
		)
		_, err := NewAnalyst(ds).GoldenItems()
		assert.ErrorIs(t, err, ErrUndefinedStatistic)
	})
}

func TestAverageItemPriceForMerchant(t *testing.T) {
	a := NewAnalyst(newFixtureDataset())

	t.Run("rounded decimal mean of the merchant's prices", func(t *testing.T) {
		avg, ok := a.AverageItemPriceForMerchant(1)
		require.True(t, ok)
		assert.True(t, avg.Equal(price("10.00")), "got %s", avg)

		avg, ok = a.AverageItemPriceForMerchant(4)
		require.True(t, ok)
		assert.True(t, avg.Equal(price("100.00")), "got %s", avg)
	})

	t.Run("merchant without items has no average", func(t *testing.T) {
		_, ok := a.AverageItemPriceForMerchant(3)
		assert.False(t, ok)
	})

	t.Run("unknown merchant has no average", func(t *testing.T) {
		_, ok := a.AverageItemPriceForMerchant(999)
		assert.False(t, ok)
	})

	t.Run("average of averages excludes itemless merchants", func(t *testing.T) {
		// (10.00 + 10.00 + 100.00) / 3; merchant 3 contributes nothing
		avg, err := a.AverageAveragePricePerMerchant()
		require.NoError(t, err)
		assert.True(t, avg.Equal(price("40.00")), "got %s", avg)
	})
}

func TestTopDaysByInvoiceCount(t *testing.T) {
	a := NewAnalyst(newFixtureDataset())

	// Buckets: Wed 3, Sat 2, Mon 1, rest 0. Mean 6/7, sigma ~1.12,
	// threshold ~1.98: both Wednesday and Saturday clear it.
	days, err := a.TopDaysByInvoiceCount()
	require.NoError(t, err)
	assert.Equal(t, []string{"Wednesday", "Saturday"}, days)
}

func TestInvoiceStatus(t *testing.T) {
	a := NewAnalyst(newFixtureDataset())

	tests := []struct {
		status   domain.InvoiceStatus
		expected float64
	}{
		{domain.StatusPending, 33.33},
		{domain.StatusShipped, 50},
		{domain.StatusReturned, 16.67},
	}

	sum := 0.0
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			pct, err := a.InvoiceStatus(tt.status)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, pct)
		})
		sum += tt.expected
	}

	t.Run("percentages sum to 100 within rounding", func(t *testing.T) {
		assert.InDelta(t, 100.0, sum, 0.02)
	})

	t.Run("no invoices fails loudly", func(t *testing.T) {
		empty := NewAnalyst(records.NewDataset(nil, nil, nil, nil, nil, nil))
		_, err := empty.InvoiceStatus(domain.StatusPending)
		assert.ErrorIs(t, err, ErrUndefinedStatistic)
	})
}

func TestInvoicePaidInFull(t *testing.T) {
	a := NewAnalyst(newFixtureDataset())

	tests := []struct {
		name      string
		invoiceID int
		paid      bool
	}{
		{"failed then successful attempt", 1, true},
		{"single successful attempt", 2, true},
		{"only failed attempts", 3, false},
		{"no transactions at all", 4, false},
		{"unknown invoice", 666, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.paid, a.InvoicePaidInFull(tt.invoiceID))
		})
	}

	t.Run("idempotent across repeated calls", func(t *testing.T) {
		assert.Equal(t, a.InvoicePaidInFull(1), a.InvoicePaidInFull(1))
	})
}

func TestInvoiceTotal(t *testing.T) {
	a := NewAnalyst(newFixtureDataset())

	tests := []struct {
		name      string
		invoiceID int
		expected  string
	}{
		{"multiple lines, exact sum", 1, "36.50"},
		{"single line", 2, "100.00"},
		{"no line items", 4, "0"},
		{"unknown invoice", 999, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := a.InvoiceTotal(tt.invoiceID)
			assert.True(t, total.Equal(price(tt.expected)), "got %s", total)
		})
	}
}

func TestInvoicesByDate(t *testing.T) {
	a := NewAnalyst(newFixtureDataset())

	t.Run("exact date match", func(t *testing.T) {
		invoices, err := a.InvoicesByDate("2009-02-07")
		require.NoError(t, err)
		assert.Len(t, invoices, 2)
	})

	t.Run("date with no invoices is empty", func(t *testing.T) {
		invoices, err := a.InvoicesByDate("2009-02-10")
		require.NoError(t, err)
		assert.Empty(t, invoices)
	})

	t.Run("malformed date is an invalid argument", func(t *testing.T) {
		_, err := a.InvoicesByDate("07-02-2009")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestTotalRevenueByDate(t *testing.T) {
	a := NewAnalyst(newFixtureDataset())

	tests := []struct {
		name     string
		date     string
		expected string
	}{
		{"both invoices paid", "2009-02-07", "136.50"},
		{"unpaid invoice excluded", "2009-02-11", "119.99"},
		{"only failed attempts contribute nothing", "2009-02-09", "0"},
		{"no invoices on date", "2009-02-10", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := a.TotalRevenueByDate(tt.date)
			require.NoError(t, err)
			assert.True(t, total.Equal(price(tt.expected)), "got %s", total)
		})
	}

	t.Run("malformed date is an invalid argument", func(t *testing.T) {
		_, err := a.TotalRevenueByDate("2009/02/07")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestTopRevenueEarners(t *testing.T) {
	a := NewAnalyst(newFixtureDataset())

	t.Run("paid revenue per merchant", func(t *testing.T) {
		assert.True(t, a.RevenueForMerchant(1).Equal(price("156.50")))
		// merchant 2's only revenue is an unpaid invoice
		assert.True(t, a.RevenueForMerchant(2).Equal(price("0")))
		assert.True(t, a.RevenueForMerchant(4).Equal(price("99.99")))
	})

	t.Run("explicit limit", func(t *testing.T) {
		top, err := a.TopRevenueEarners(2)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 4}, merchantIDs(top))
	})

	t.Run("zero limit means the default of 20", func(t *testing.T) {
		top, err := a.TopRevenueEarners(0)
		require.NoError(t, err)
		// fewer merchants than the default: everyone is returned,
		// zero-revenue ties keep collection order
		assert.Equal(t, []int{1, 4, 2, 3}, merchantIDs(top))
	})

	t.Run("negative limit is an invalid argument", func(t *testing.T) {
		_, err := a.TopRevenueEarners(-1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestAnalystEmptyDataset(t *testing.T) {
	a := NewAnalyst(records.NewDataset(nil, nil, nil, nil, nil, nil))

	_, err := a.AverageItemsPerMerchant()
	assert.ErrorIs(t, err, ErrUndefinedStatistic)

	_, err = a.AverageInvoicesPerMerchant()
	assert.ErrorIs(t, err, ErrUndefinedStatistic)

	_, err = a.AverageAveragePricePerMerchant()
	assert.ErrorIs(t, err, ErrUndefinedStatistic)
}
