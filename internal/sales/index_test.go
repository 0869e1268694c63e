package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexGroupings(t *testing.T) {
	ix := NewIndex(newFixtureDataset())

	t.Run("items by merchant preserve source order", func(t *testing.T) {
		items := ix.ItemsFor(1)
		require.Len(t, items, 3)
		assert.Equal(t, []int{1, 2, 3}, []int{items[0].ID, items[1].ID, items[2].ID})
	})

	t.Run("invoices by merchant", func(t *testing.T) {
		invoices := ix.InvoicesFor(1)
		require.Len(t, invoices, 3)
		assert.Equal(t, []int{1, 2, 5}, []int{invoices[0].ID, invoices[1].ID, invoices[2].ID})
	})

	t.Run("lines by invoice", func(t *testing.T) {
		lines := ix.LinesFor(1)
		require.Len(t, lines, 2)
		assert.Equal(t, 1, lines[0].ID)
		assert.Equal(t, 2, lines[1].ID)
	})

	t.Run("transactions by invoice", func(t *testing.T) {
		txs := ix.TransactionsFor(1)
		require.Len(t, txs, 2)
		assert.False(t, txs[0].Succeeded())
		assert.True(t, txs[1].Succeeded())
	})

	t.Run("invoices by date key", func(t *testing.T) {
		assert.Len(t, ix.InvoicesOn("2009-02-07"), 2)
		assert.Len(t, ix.InvoicesOn("2009-02-11"), 3)
	})

	t.Run("unknown parents return empty, never nil", func(t *testing.T) {
		assert.NotNil(t, ix.ItemsFor(999))
		assert.Empty(t, ix.ItemsFor(999))
		assert.NotNil(t, ix.InvoicesFor(999))
		assert.Empty(t, ix.InvoicesFor(999))
		assert.NotNil(t, ix.LinesFor(999))
		assert.Empty(t, ix.LinesFor(999))
		assert.NotNil(t, ix.TransactionsFor(999))
		assert.Empty(t, ix.TransactionsFor(999))
		assert.NotNil(t, ix.InvoicesOn("1999-01-01"))
		assert.Empty(t, ix.InvoicesOn("1999-01-01"))
	})

	t.Run("merchant with no children groups empty", func(t *testing.T) {
		assert.Empty(t, ix.ItemsFor(3))
		assert.Empty(t, ix.InvoicesFor(3))
	})

	t.Run("repeated lookups are stable", func(t *testing.T) {
		first := ix.ItemsFor(2)
		second := ix.ItemsFor(2)
		assert.Equal(t, first, second)
	})
}
