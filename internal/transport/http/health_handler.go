package http

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"salesiq/internal/records"
	"salesiq/pkg/contracts"
)

// HealthHandler reports process liveness and dataset shape
type HealthHandler struct {
	ds      *records.Dataset
	started time.Time
}

// NewHealthHandler creates a health handler for the loaded dataset
func NewHealthHandler(ds *records.Dataset) *HealthHandler {
	return &HealthHandler{ds: ds, started: time.Now()}
}

// ServeHTTP renders the health document
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]any{
		"status":    "healthy",
		"version":   contracts.Version,
		"uptime":    time.Since(h.started).Round(time.Second).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"dataset": map[string]int{
			"merchants":     h.ds.Merchants.Len(),
			"items":         h.ds.Items.Len(),
			"invoices":      h.ds.Invoices.Len(),
			"invoice_items": h.ds.InvoiceItems.Len(),
			"transactions":  h.ds.Transactions.Len(),
			"customers":     h.ds.Customers.Len(),
		},
	})
}
