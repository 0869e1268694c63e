package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"salesiq/internal/records"
	"salesiq/internal/sales"
	"salesiq/pkg/contracts/domain"
)

// CountStats is a per-merchant count distribution summary
type CountStats struct {
	Average           float64 `json:"average"`
	StandardDeviation float64 `json:"standard_deviation"`
}

// RevenueEarner pairs a merchant with its total paid revenue
type RevenueEarner struct {
	Merchant domain.Merchant `json:"merchant"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// AnalystService provides analytics query functionality
type AnalystService struct {
	analyst *sales.Analyst
	logger  *slog.Logger
}

// NewAnalystService creates a new analyst service using the default logger
func NewAnalystService(ds *records.Dataset) *AnalystService {
	return NewAnalystServiceWithLogger(ds, slog.Default())
}

// NewAnalystServiceWithLogger creates a new analyst service with a
// specific logger
func NewAnalystServiceWithLogger(ds *records.Dataset, logger *slog.Logger) *AnalystService {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "analyst-service"))

	logger.Info("AnalystService initialized",
		slog.Int("merchants", ds.Merchants.Len()),
		slog.Int("items", ds.Items.Len()),
		slog.Int("invoices", ds.Invoices.Len()))

	return &AnalystService{
		analyst: NewAnalystForDataset(ds),
		logger:  logger,
	}
}

// NewAnalystForDataset builds the query engine for a dataset. Split out
// so the exporter can share one analyst with the service.
func NewAnalystForDataset(ds *records.Dataset) *sales.Analyst {
	return sales.NewAnalyst(ds)
}

// ItemCountStats returns the mean and population standard deviation of
// item counts per merchant
func (s *AnalystService) ItemCountStats(ctx context.Context) (CountStats, error) {
	s.logger.DebugContext(ctx, "query", slog.String("name", "item_count_stats"))

	avg, err := s.analyst.AverageItemsPerMerchant()
	if err != nil {
		return CountStats{}, err
	}
	sd, err := s.analyst.AverageItemsPerMerchantStandardDeviation()
	if err != nil {
		return CountStats{}, err
	}
	return CountStats{Average: avg, StandardDeviation: sd}, nil
}

// InvoiceCountStats returns the mean and population standard deviation
// of invoice counts per merchant
func (s *AnalystService) InvoiceCountStats(ctx context.Context) (CountStats, error) {
	s.logger.DebugContext(ctx, "query", slog.String("name", "invoice_count_stats"))

	avg, err := s.analyst.AverageInvoicesPerMerchant()
	if err != nil {
		return CountStats{}, err
	}
	sd, err := s.analyst.AverageInvoicesPerMerchantStandardDeviation()
	if err != nil {
		return CountStats{}, err
	}
	return CountStats{Average: avg, StandardDeviation: sd}, nil
}

// MerchantsWithHighItemCount returns merchants stocking far more items
// than their peers
func (s *AnalystService) MerchantsWithHighItemCount(ctx context.Context) ([]domain.Merchant, error) {
	s.logger.DebugContext(ctx, "query", slog.String("name", "high_item_count"))
	return s.analyst.MerchantsWithHighItemCount()
}

// TopMerchantsByInvoiceCount returns merchants with far more invoices
// than their peers
func (s *AnalystService) TopMerchantsByInvoiceCount(ctx context.Context) ([]domain.Merchant, error) {
	s.logger.DebugContext(ctx, "query", slog.String("name", "top_by_invoice_count"))
	return s.analyst.TopMerchantsByInvoiceCount()
}

// BottomMerchantsByInvoiceCount returns merchants with far fewer
// invoices than their peers
func (s *AnalystService) BottomMerchantsByInvoiceCount(ctx context.Context) ([]domain.Merchant, error) {
	s.logger.DebugContext(ctx, "query", slog.String("name", "bottom_by_invoice_count"))
	return s.analyst.BottomMerchantsByInvoiceCount()
}

// GoldenItems returns items priced far above the catalog average
func (s *AnalystService) GoldenItems(ctx context.Context) ([]domain.Item, error) {
	s.logger.DebugContext(ctx, "query", slog.String("name", "golden_items"))
	return s.analyst.GoldenItems()
}

// AverageItemPriceForMerchant returns the merchant's mean item price.
// Merchants that are unknown or list no items map to ErrNotFound.
func (s *AnalystService) AverageItemPriceForMerchant(ctx context.Context, merchantID int) (decimal.Decimal, error) {
	s.logger.DebugContext(ctx, "query",
		slog.String("name", "average_item_price"),
		slog.Int("merchant_id", merchantID))

	avg, ok := s.analyst.AverageItemPriceForMerchant(merchantID)
	if !ok {
		return decimal.Zero, fmt.Errorf("merchant %d has no item prices: %w", merchantID, ErrNotFound)
	}
	return avg, nil
}

// AverageAveragePricePerMerchant returns the mean of the per-merchant
// average item prices
func (s *AnalystService) AverageAveragePricePerMerchant(ctx context.Context) (decimal.Decimal, error) {
	s.logger.DebugContext(ctx, "query", slog.String("name", "average_average_price"))
	return s.analyst.AverageAveragePricePerMerchant()
}

// TopDaysByInvoiceCount returns the weekday names with unusually many
// invoices
func (s *AnalystService) TopDaysByInvoiceCount(ctx context.Context) ([]string, error) {
	s.logger.DebugContext(ctx, "query", slog.String("name", "top_days"))
	return s.analyst.TopDaysByInvoiceCount()
}

// InvoiceStatusShare returns the percentage of invoices carrying the
// given status. An unknown status name is an invalid argument.
func (s *AnalystService) InvoiceStatusShare(ctx context.Context, status string) (float64, error) {
	s.logger.DebugContext(ctx, "query",
		slog.String("name", "invoice_status"),
		slog.String("status", status))

	st := domain.InvoiceStatus(status)
	if !st.IsValid() {
		return 0, fmt.Errorf("%w: unknown invoice status %q", sales.ErrInvalidArgument, status)
	}
	return s.analyst.InvoiceStatus(st)
}

// InvoicePaidInFull reports whether the invoice has a successful
// payment. Unknown invoice ids are not paid.
func (s *AnalystService) InvoicePaidInFull(ctx context.Context, invoiceID int) bool {
	s.logger.DebugContext(ctx, "query",
		slog.String("name", "invoice_paid"),
		slog.Int("invoice_id", invoiceID))
	return s.analyst.InvoicePaidInFull(invoiceID)
}

// InvoiceTotal returns the exact decimal total of the invoice's line
// items. Unknown invoice ids total zero.
func (s *AnalystService) InvoiceTotal(ctx context.Context, invoiceID int) decimal.Decimal {
	s.logger.DebugContext(ctx, "query",
		slog.String("name", "invoice_total"),
		slog.Int("invoice_id", invoiceID))
	return s.analyst.InvoiceTotal(invoiceID)
}

// InvoicesByDate returns the invoices created on a YYYY-MM-DD date
func (s *AnalystService) InvoicesByDate(ctx context.Context, date string) ([]domain.Invoice, error) {
	s.logger.DebugContext(ctx, "query",
		slog.String("name", "invoices_by_date"),
		slog.String("date", date))
	return s.analyst.InvoicesByDate(date)
}

// TotalRevenueByDate returns the paid revenue booked on a YYYY-MM-DD
// date
func (s *AnalystService) TotalRevenueByDate(ctx context.Context, date string) (decimal.Decimal, error) {
	s.logger.DebugContext(ctx, "query",
		slog.String("name", "revenue_by_date"),
		slog.String("date", date))
	return s.analyst.TotalRevenueByDate(date)
}

// TopRevenueEarners returns the n merchants with the highest paid
// revenue, each paired with that revenue. A limit of 0 selects the
// default ranking size.
func (s *AnalystService) TopRevenueEarners(ctx context.Context, n int) ([]RevenueEarner, error) {
	s.logger.DebugContext(ctx, "query",
		slog.String("name", "top_revenue_earners"),
		slog.Int("limit", n))

	merchants, err := s.analyst.TopRevenueEarners(n)
	if err != nil {
		return nil, err
	}
	out := make([]RevenueEarner, len(merchants))
	for i, m := range merchants {
		out[i] = RevenueEarner{Merchant: m, Revenue: s.analyst.RevenueForMerchant(m.ID)}
	}
	return out, nil
}
