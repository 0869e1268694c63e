package exporter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"salesiq/internal/records"
	"salesiq/internal/sales"
)

// MerchantSummary is one merchant's row in the summary report
type MerchantSummary struct {
	MerchantID       int              `json:"merchant_id"`
	Name             string           `json:"name"`
	ItemCount        int              `json:"item_count"`
	InvoiceCount     int              `json:"invoice_count"`
	AverageItemPrice *decimal.Decimal `json:"average_item_price,omitempty"`
	Revenue          decimal.Decimal  `json:"revenue"`
}

// Summary is the full analyst summary report
type Summary struct {
	Merchants        []MerchantSummary `json:"merchants"`
	TopRevenueEarner *MerchantSummary  `json:"top_revenue_earner,omitempty"`
}

// SummaryExporter renders the analyst summary report
type SummaryExporter struct {
	ds      *records.Dataset
	analyst *sales.Analyst
	csv     *CSVWriter
	dir     string
	logger  *slog.Logger
}

// NewSummaryExporter creates a summary exporter writing under dir
func NewSummaryExporter(ds *records.Dataset, analyst *sales.Analyst, dir string, logger *slog.Logger) *SummaryExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryExporter{
		ds:      ds,
		analyst: analyst,
		csv:     NewCSVWriter(dir),
		dir:     dir,
		logger:  logger.With(slog.String("component", "exporter")),
	}
}

// BuildSummary computes the summary rows in merchant collection order.
// Revenue ranks the top earner; merchants without items omit the price
// average.
func (e *SummaryExporter) BuildSummary() Summary {
	merchants := e.ds.Merchants.All()
	rows := make([]MerchantSummary, len(merchants))

	var top *MerchantSummary
	for i, m := range merchants {
		row := MerchantSummary{
			MerchantID:   m.ID,
			Name:         m.Name,
			ItemCount:    len(e.ds.Items.FindAllByMerchantID(m.ID)),
			InvoiceCount: len(e.ds.Invoices.FindAllByMerchantID(m.ID)),
			Revenue:      e.analyst.RevenueForMerchant(m.ID),
		}
		if avg, ok := e.analyst.AverageItemPriceForMerchant(m.ID); ok {
			row.AverageItemPrice = &avg
		}
		rows[i] = row
		if top == nil || row.Revenue.GreaterThan(top.Revenue) {
			top = &rows[i]
		}
	}
	return Summary{Merchants: rows, TopRevenueEarner: top}
}

// Export writes the summary as merchant_summary.csv and
// merchant_summary.json under the reports directory
func (e *SummaryExporter) Export(ctx context.Context) error {
	summary := e.BuildSummary()

	headers := []string{"merchant_id", "name", "item_count", "invoice_count", "average_item_price", "revenue"}
	rows := make([][]string, len(summary.Merchants))
	for i, m := range summary.Merchants {
		avg := ""
		if m.AverageItemPrice != nil {
			avg = m.AverageItemPrice.String()
		}
		rows[i] = []string{
			strconv.Itoa(m.MerchantID),
			m.Name,
			strconv.Itoa(m.ItemCount),
			strconv.Itoa(m.InvoiceCount),
			avg,
			m.Revenue.String(),
		}
	}
	if err := e.csv.Write("merchant_summary.csv", headers, rows); err != nil {
		return fmt.Errorf("export summary csv: %w", err)
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	jsonPath := filepath.Join(e.dir, "merchant_summary.json")
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return fmt.Errorf("export summary json: %w", err)
	}

	e.logger.InfoContext(ctx, "summary exported",
		slog.String("dir", e.dir),
		slog.Int("merchants", len(summary.Merchants)))
	return nil
}
