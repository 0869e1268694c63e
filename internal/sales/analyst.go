package sales

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"salesiq/internal/records"
	"salesiq/pkg/contracts/domain"
)

// DefaultTopEarners is the ranking size used by TopRevenueEarners when
// the caller passes no explicit limit.
const DefaultTopEarners = 20

// Analyst answers analytical queries over an immutable dataset. It is
// built by the composition root from already-loaded collections; the
// relationship index is constructed eagerly so every query after that is
// a pure read.
type Analyst struct {
	ds *records.Dataset
	ix *Index
}

// NewAnalyst constructs an analyst over the given dataset
func NewAnalyst(ds *records.Dataset) *Analyst {
	return &Analyst{ds: ds, ix: NewIndex(ds)}
}

// ItemsPerMerchant returns one item count per merchant, in merchant
// collection order. Merchants with no items contribute 0.
func (a *Analyst) ItemsPerMerchant() []float64 {
	merchants := a.ds.Merchants.All()
	counts := make([]float64, len(merchants))
	for i, m := range merchants {
		counts[i] = float64(len(a.ix.ItemsFor(m.ID)))
	}
	return counts
}

// AverageItemsPerMerchant returns the mean item count per merchant,
// rounded to two decimals
func (a *Analyst) AverageItemsPerMerchant() (float64, error) {
	mean, err := Mean(a.ItemsPerMerchant())
	if err != nil {
		return 0, fmt.Errorf("average items per merchant: %w", err)
	}
	return Round2(mean), nil
}

// AverageItemsPerMerchantStandardDeviation returns the population
// standard deviation of item counts per merchant, rounded to two decimals
func (a *Analyst) AverageItemsPerMerchantStandardDeviation() (float64, error) {
	sd, err := PopStdDev(a.ItemsPerMerchant())
	if err != nil {
		return 0, fmt.Errorf("items per merchant std dev: %w", err)
	}
	return Round2(sd), nil
}

// MerchantsWithHighItemCount returns merchants whose item count is more
// than one standard deviation above the mean. The threshold is strict and
// computed on unrounded statistics.
func (a *Analyst) MerchantsWithHighItemCount() ([]domain.Merchant, error) {
	counts := a.ItemsPerMerchant()
	threshold, err := zScoreThreshold(counts, 1)
	if err != nil {
		return nil, fmt.Errorf("merchants with high item count: %w", err)
	}
	return a.merchantsAboveCount(counts, threshold), nil
}

// InvoicesPerMerchant returns one invoice count per merchant, in merchant
// collection order. Merchants with no invoices contribute 0.
func (a *Analyst) InvoicesPerMerchant() []float64 {
	merchants := a.ds.Merchants.All()
	counts := make([]float64, len(merchants))
	for i, m := range merchants {
		counts[i] = float64(len(a.ix.InvoicesFor(m.ID)))
	}
	return counts
}

// AverageInvoicesPerMerchant returns the mean invoice count per merchant,
// rounded to two decimals
func (a *Analyst) AverageInvoicesPerMerchant() (float64, error) {
	mean, err := Mean(a.InvoicesPerMerchant())
	if err != nil {
		return 0, fmt.Errorf("average invoices per merchant: %w", err)
	}
	return Round2(mean), nil
}

// AverageInvoicesPerMerchantStandardDeviation returns the population
// standard deviation of invoice counts per merchant, rounded to two
// decimals
func (a *Analyst) AverageInvoicesPerMerchantStandardDeviation() (float64, error) {
	sd, err := PopStdDev(a.InvoicesPerMerchant())
	if err != nil {
		return 0, fmt.Errorf("invoices per merchant std dev: %w", err)
	}
	return Round2(sd), nil
}

// TopMerchantsByInvoiceCount returns merchants whose invoice count is
// more than two standard deviations above the mean
func (a *Analyst) TopMerchantsByInvoiceCount() ([]domain.Merchant, error) {
	counts := a.InvoicesPerMerchant()
	threshold, err := zScoreThreshold(counts, 2)
	if err != nil {
		return nil, fmt.Errorf("top merchants by invoice count: %w", err)
	}
	return a.merchantsAboveCount(counts, threshold), nil
}

// BottomMerchantsByInvoiceCount returns merchants whose invoice count is
// more than two standard deviations below the mean
func (a *Analyst) BottomMerchantsByInvoiceCount() ([]domain.Merchant, error) {
	counts := a.InvoicesPerMerchant()
	threshold, err := zScoreThreshold(counts, -2)
	if err != nil {
		return nil, fmt.Errorf("bottom merchants by invoice count: %w", err)
	}
	merchants := a.ds.Merchants.All()
	out := []domain.Merchant{}
	for i, m := range merchants {
		if counts[i] < threshold {
			out = append(out, m)
		}
	}
	return out, nil
}

// GoldenItems returns items priced strictly more than two standard
// deviations above the mean item price. The statistics run in float
// space; the boundary comparison is against the item's exact decimal
// price, so an item priced exactly at mean+2 sigma is excluded.
func (a *Analyst) GoldenItems() ([]domain.Item, error) {
	items := a.ds.Items.All()
	prices := make([]float64, len(items))
	for i, it := range items {
		prices[i] = it.UnitPrice.InexactFloat64()
	}
	threshold, err := zScoreThreshold(prices, 2)
	if err != nil {
		return nil, fmt.Errorf("golden items: %w", err)
	}
	cutoff := decimal.NewFromFloat(threshold)
	out := []domain.Item{}
	for _, it := range items {
		if it.UnitPrice.GreaterThan(cutoff) {
			out = append(out, it)
		}
	}
	return out, nil
}

// AverageItemPriceForMerchant returns the mean unit price of the
// merchant's items rounded to two decimals, as an exact decimal.
// ok is false when the merchant is unknown or lists no items: a merchant
// without items has no average to report.
func (a *Analyst) AverageItemPriceForMerchant(merchantID int) (decimal.Decimal, bool) {
	items := a.ix.ItemsFor(merchantID)
	if len(items) == 0 {
		return decimal.Zero, false
	}
	prices := make([]decimal.Decimal, len(items))
	for i, it := range items {
		prices[i] = it.UnitPrice
	}
	mean, err := MeanDecimal(prices)
	if err != nil {
		return decimal.Zero, false
	}
	return Round2Decimal(mean), true
}

// AverageAveragePricePerMerchant returns the mean, across merchants, of
// each merchant's average item price, rounded to two decimals. Merchants
// with no items are excluded from the outer mean.
func (a *Analyst) AverageAveragePricePerMerchant() (decimal.Decimal, error) {
	averages := []decimal.Decimal{}
	for _, m := range a.ds.Merchants.All() {
		if avg, ok := a.AverageItemPriceForMerchant(m.ID); ok {
			averages = append(averages, avg)
		}
	}
	mean, err := MeanDecimal(averages)
	if err != nil {
		return decimal.Zero, fmt.Errorf("average average price per merchant: %w", err)
	}
	return Round2Decimal(mean), nil
}

// TopDaysByInvoiceCount buckets invoices by the weekday of their creation
// date and returns the weekday names whose count is more than one
// standard deviation above the mean of the seven buckets. Weekdays with
// no invoices count as 0; the result follows Sunday-first weekday order
// and may name several days.
func (a *Analyst) TopDaysByInvoiceCount() ([]string, error) {
	var buckets [7]float64
	for _, inv := range a.ds.Invoices.All() {
		buckets[int(inv.CreatedAt.Weekday())]++
	}
	threshold, err := zScoreThreshold(buckets[:], 1)
	if err != nil {
		return nil, fmt.Errorf("top days by invoice count: %w", err)
	}
	days := []string{}
	for i, count := range buckets {
		if count > threshold {
			days = append(days, time.Weekday(i).String())
		}
	}
	return days, nil
}

// InvoiceStatus returns the percentage of invoices carrying the given
// status, rounded to two decimals
func (a *Analyst) InvoiceStatus(status domain.InvoiceStatus) (float64, error) {
	matched := len(a.ds.Invoices.FindAllByStatus(status))
	pct, err := Percentage(matched, a.ds.Invoices.Len())
	if err != nil {
		return 0, fmt.Errorf("invoice status %s: %w", status, err)
	}
	return pct, nil
}

// InvoicePaidInFull reports whether the invoice has at least one
// successful payment attempt. Unknown invoice ids are simply not paid.
func (a *Analyst) InvoicePaidInFull(invoiceID int) bool {
	for _, tx := range a.ix.TransactionsFor(invoiceID) {
		if tx.Succeeded() {
			return true
		}
	}
	return false
}

// InvoiceTotal returns the exact decimal sum of quantity x unit price
// over the invoice's line items, with no intermediate rounding. An
// invoice with no line items, or an unknown id, totals zero.
func (a *Analyst) InvoiceTotal(invoiceID int) decimal.Decimal {
	total := decimal.Zero
	for _, li := range a.ix.LinesFor(invoiceID) {
		total = total.Add(li.LineTotal())
	}
	return total
}

// InvoicesByDate returns all invoices created on the given calendar date.
// The date must be in canonical YYYY-MM-DD form; anything else is an
// invalid argument, not an empty result.
func (a *Analyst) InvoicesByDate(date string) ([]domain.Invoice, error) {
	key, err := canonicalDateKey(date)
	if err != nil {
		return nil, err
	}
	return a.ix.InvoicesOn(key), nil
}

// TotalRevenueByDate sums InvoiceTotal over the paid-in-full invoices
// created on the given date. Unpaid invoices on that date contribute
// nothing; a date with no invoices totals zero.
func (a *Analyst) TotalRevenueByDate(date string) (decimal.Decimal, error) {
	key, err := canonicalDateKey(date)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, inv := range a.ix.InvoicesOn(key) {
		if a.InvoicePaidInFull(inv.ID) {
			total = total.Add(a.InvoiceTotal(inv.ID))
		}
	}
	return total, nil
}

// RevenueForMerchant returns the merchant's total paid revenue: the sum
// of invoice totals over the merchant's paid-in-full invoices only.
func (a *Analyst) RevenueForMerchant(merchantID int) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range a.ix.InvoicesFor(merchantID) {
		if a.InvoicePaidInFull(inv.ID) {
			total = total.Add(a.InvoiceTotal(inv.ID))
		}
	}
	return total
}

// TopRevenueEarners returns the n merchants with the highest paid
// revenue, descending. Ties keep merchant collection order. A limit of 0
// selects DefaultTopEarners; a negative limit is an invalid argument.
func (a *Analyst) TopRevenueEarners(n int) ([]domain.Merchant, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative ranking limit %d", ErrInvalidArgument, n)
	}
	if n == 0 {
		n = DefaultTopEarners
	}
	merchants := a.ds.Merchants.All()
	type earner struct {
		merchant domain.Merchant
		revenue  decimal.Decimal
	}
	ranked := make([]earner, len(merchants))
	for i, m := range merchants {
		ranked[i] = earner{merchant: m, revenue: a.RevenueForMerchant(m.ID)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].revenue.GreaterThan(ranked[j].revenue)
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]domain.Merchant, n)
	for i := range out {
		out[i] = ranked[i].merchant
	}
	return out, nil
}

// zScoreThreshold returns mean + k*sigma over xs with both statistics
// unrounded. Negative k gives a below-mean threshold.
func zScoreThreshold(xs []float64, k float64) (float64, error) {
	mean, err := Mean(xs)
	if err != nil {
		return 0, err
	}
	sd, err := PopStdDev(xs)
	if err != nil {
		return 0, err
	}
	return mean + k*sd, nil
}

// merchantsAboveCount returns merchants whose parallel count strictly
// exceeds the threshold, preserving merchant collection order
func (a *Analyst) merchantsAboveCount(counts []float64, threshold float64) []domain.Merchant {
	merchants := a.ds.Merchants.All()
	out := []domain.Merchant{}
	for i, m := range merchants {
		if counts[i] > threshold {
			out = append(out, m)
		}
	}
	return out
}

// canonicalDateKey validates and normalizes a calendar date to the
// YYYY-MM-DD key used by the relationship index
func canonicalDateKey(date string) (string, error) {
	t, err := time.Parse(domain.DateKeyLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w: date %q is not in YYYY-MM-DD form", ErrInvalidArgument, date)
	}
	return t.Format(domain.DateKeyLayout), nil
}
