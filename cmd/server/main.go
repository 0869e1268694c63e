// Command server loads the sales dataset and serves the analytics API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"salesiq/internal/app"
)

func main() {
	exportSummary := flag.Bool("export-summary", false,
		"write the merchant summary report after loading and exit")
	flag.Parse()

	ctx := context.Background()

	application, err := app.NewApplication(ctx)
	if err != nil {
		slog.Error("failed to initialize application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *exportSummary {
		if err := application.ExportSummary(ctx); err != nil {
			slog.Error("failed to export summary", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	if err := application.Run(); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
