package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/shopspring/decimal"

	apierrors "salesiq/internal/errors"
	"salesiq/internal/services"
	"salesiq/pkg/contracts/domain"
)

// AnalystHandler handles analytics query requests
type AnalystHandler struct {
	service      AnalystServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewAnalystHandler creates a new analyst handler
func NewAnalystHandler(service AnalystServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *AnalystHandler {
	return &AnalystHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "analyst_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the analyst query routes
func (h *AnalystHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Route("/merchants", func(r chi.Router) {
		r.Get("/item-stats", h.GetItemStats)
		r.Get("/invoice-stats", h.GetInvoiceStats)
		r.Get("/high-item-count", h.GetHighItemCount)
		r.Get("/top-by-invoice-count", h.GetTopByInvoiceCount)
		r.Get("/bottom-by-invoice-count", h.GetBottomByInvoiceCount)
		r.Get("/top-revenue-earners", h.GetTopRevenueEarners)
		r.Get("/{merchantID}/average-item-price", h.GetAverageItemPrice)
	})

	r.Get("/items/golden", h.GetGoldenItems)
	r.Get("/days/top", h.GetTopDays)

	r.Route("/invoices", func(r chi.Router) {
		r.Get("/", h.GetInvoicesByDate)
		r.Get("/status/{status}", h.GetInvoiceStatusShare)
		r.Get("/{invoiceID}/total", h.GetInvoiceTotal)
		r.Get("/{invoiceID}/paid", h.GetInvoicePaid)
	})

	r.Get("/revenue", h.GetRevenueByDate)

	return r
}

// merchantListResponse wraps merchant result sets so clients always see
// an object, never a bare array
type merchantListResponse struct {
	Merchants []domain.Merchant `json:"merchants"`
	Count     int               `json:"count"`
}

// GetItemStats returns the item count distribution across merchants
func (h *AnalystHandler) GetItemStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.ItemCountStats(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, stats)
}

// GetInvoiceStats returns the invoice count distribution across merchants
func (h *AnalystHandler) GetInvoiceStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.InvoiceCountStats(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, stats)
}

// GetHighItemCount returns merchants stocking far more items than their
// peers
func (h *AnalystHandler) GetHighItemCount(w http.ResponseWriter, r *http.Request) {
	merchants, err := h.service.MerchantsWithHighItemCount(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, merchantListResponse{Merchants: merchants, Count: len(merchants)})
}

// GetTopByInvoiceCount returns merchants with far more invoices than
// their peers
func (h *AnalystHandler) GetTopByInvoiceCount(w http.ResponseWriter, r *http.Request) {
	merchants, err := h.service.TopMerchantsByInvoiceCount(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, merchantListResponse{Merchants: merchants, Count: len(merchants)})
}

// GetBottomByInvoiceCount returns merchants with far fewer invoices than
// their peers
func (h *AnalystHandler) GetBottomByInvoiceCount(w http.ResponseWriter, r *http.Request) {
	merchants, err := h.service.BottomMerchantsByInvoiceCount(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, merchantListResponse{Merchants: merchants, Count: len(merchants)})
}

// GetTopRevenueEarners returns the highest-revenue merchants. The
// optional limit query parameter caps the ranking size.
func (h *AnalystHandler) GetTopRevenueEarners(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.errorHandler.HandleError(w, r,
				apierrors.ErrValidation("limit", "limit must be an integer"))
			return
		}
		limit = n
	}

	earners, err := h.service.TopRevenueEarners(r.Context(), limit)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]any{
		"earners": earners,
		"count":   len(earners),
	})
}

// GetAverageItemPrice returns the merchant's mean item price
func (h *AnalystHandler) GetAverageItemPrice(w http.ResponseWriter, r *http.Request) {
	merchantID, err := strconv.Atoi(chi.URLParam(r, "merchantID"))
	if err != nil {
		h.errorHandler.HandleError(w, r,
			apierrors.ErrValidation("merchantID", "merchant id must be an integer"))
		return
	}

	avg, err := h.service.AverageItemPriceForMerchant(r.Context(), merchantID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			h.errorHandler.HandleError(w, r, apierrors.ErrNotFound(err.Error()))
			return
		}
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]any{
		"merchant_id":        merchantID,
		"average_item_price": avg,
	})
}

// GetGoldenItems returns items priced far above the catalog average
func (h *AnalystHandler) GetGoldenItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GoldenItems(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]any{
		"items": items,
		"count": len(items),
	})
}

// GetTopDays returns the weekdays with unusually many invoices
func (h *AnalystHandler) GetTopDays(w http.ResponseWriter, r *http.Request) {
	days, err := h.service.TopDaysByInvoiceCount(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]any{"days": days})
}

// GetInvoiceStatusShare returns the percentage of invoices carrying the
// given status
func (h *AnalystHandler) GetInvoiceStatusShare(w http.ResponseWriter, r *http.Request) {
	status := chi.URLParam(r, "status")

	pct, err := h.service.InvoiceStatusShare(r.Context(), status)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]any{
		"status":     status,
		"percentage": pct,
	})
}

// GetInvoiceTotal returns the invoice's exact decimal total
func (h *AnalystHandler) GetInvoiceTotal(w http.ResponseWriter, r *http.Request) {
	invoiceID, err := strconv.Atoi(chi.URLParam(r, "invoiceID"))
	if err != nil {
		h.errorHandler.HandleError(w, r,
			apierrors.ErrValidation("invoiceID", "invoice id must be an integer"))
		return
	}
	render.JSON(w, r, map[string]any{
		"invoice_id": invoiceID,
		"total":      h.service.InvoiceTotal(r.Context(), invoiceID),
	})
}

// GetInvoicePaid reports whether the invoice is paid in full
func (h *AnalystHandler) GetInvoicePaid(w http.ResponseWriter, r *http.Request) {
	invoiceID, err := strconv.Atoi(chi.URLParam(r, "invoiceID"))
	if err != nil {
		h.errorHandler.HandleError(w, r,
			apierrors.ErrValidation("invoiceID", "invoice id must be an integer"))
		return
	}
	render.JSON(w, r, map[string]any{
		"invoice_id": invoiceID,
		"paid":       h.service.InvoicePaidInFull(r.Context(), invoiceID),
	})
}

// GetInvoicesByDate returns invoices created on the date query parameter
func (h *AnalystHandler) GetInvoicesByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.errorHandler.HandleError(w, r,
			apierrors.ErrValidation("date", "date query parameter is required"))
		return
	}

	invoices, err := h.service.InvoicesByDate(r.Context(), date)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]any{
		"date":     date,
		"invoices": invoices,
		"count":    len(invoices),
	})
}

// GetRevenueByDate returns the paid revenue booked on the date query
// parameter
func (h *AnalystHandler) GetRevenueByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.errorHandler.HandleError(w, r,
			apierrors.ErrValidation("date", "date query parameter is required"))
		return
	}

	total, err := h.service.TotalRevenueByDate(r.Context(), date)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, revenueResponse{Date: date, Revenue: total})
}

// revenueResponse renders a dated revenue figure with the money kept as
// a decimal string
type revenueResponse struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}
