package http

import (
	"context"

	"github.com/shopspring/decimal"

	"salesiq/internal/services"
	"salesiq/pkg/contracts/domain"
)

// AnalystServiceInterface defines the queries the analyst handler needs.
// Implemented by services.AnalystService; tests substitute their own.
type AnalystServiceInterface interface {
	ItemCountStats(ctx context.Context) (services.CountStats, error)
	InvoiceCountStats(ctx context.Context) (services.CountStats, error)
	MerchantsWithHighItemCount(ctx context.Context) ([]domain.Merchant, error)
	TopMerchantsByInvoiceCount(ctx context.Context) ([]domain.Merchant, error)
	BottomMerchantsByInvoiceCount(ctx context.Context) ([]domain.Merchant, error)
	GoldenItems(ctx context.Context) ([]domain.Item, error)
	AverageItemPriceForMerchant(ctx context.Context, merchantID int) (decimal.Decimal, error)
	TopDaysByInvoiceCount(ctx context.Context) ([]string, error)
	InvoiceStatusShare(ctx context.Context, status string) (float64, error)
	InvoicePaidInFull(ctx context.Context, invoiceID int) bool
	InvoiceTotal(ctx context.Context, invoiceID int) decimal.Decimal
	InvoicesByDate(ctx context.Context, date string) ([]domain.Invoice, error)
	TotalRevenueByDate(ctx context.Context, date string) (decimal.Decimal, error)
	TopRevenueEarners(ctx context.Context, n int) ([]services.RevenueEarner, error)
}
