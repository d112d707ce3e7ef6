// ABOUTME: Dashboard and dataset listing commands
// ABOUTME: Read-only aggregate views over the server's catalog

package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
)

// cmdDashboard shows the aggregate counts the server keeps for models,
// datasets, and predictions.
func (a *app) cmdDashboard(ctx context.Context) error {
	summary, err := a.api.DashboardSummary(ctx)
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Dashboard")
	cyan.Println("  ---------")
	fmt.Printf("  Models:    %d\n", summary.TotalModels)
	fmt.Printf("  Datasets:  %d\n", summary.TotalDatasets)
	if summary.LatestModelAccuracy != nil {
		fmt.Printf("  Latest model accuracy: %.1f%%\n", *summary.LatestModelAccuracy*100)
	}

	if stats := summary.PredictionStats; stats != nil {
		fmt.Println()
		cyan.Println("  Predictions")
		cyan.Println("  -----------")
		fmt.Printf("  Total:              %d\n", stats.TotalPredictions)
		fmt.Printf("  Berprestasi:        %d\n", stats.BerprestasiCount)
		fmt.Printf("  Tidak Berprestasi:  %d\n", stats.TidakBerprestasiCount)
	}

	if len(summary.StatusDistribution) > 0 {
		fmt.Println()
		cyan.Println("  Status distribution")
		cyan.Println("  -------------------")
		for status, count := range summary.StatusDistribution {
			fmt.Printf("  %-20s %d\n", status, count)
		}
	}
	fmt.Println()
	return nil
}

// cmdDatasets lists the uploaded training datasets.
func (a *app) cmdDatasets(ctx context.Context) error {
	datasets, err := a.api.ListDatasets(ctx)
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Training Datasets")
	cyan.Println("  -----------------")

	if len(datasets) == 0 {
		fmt.Println("  (no datasets)")
		fmt.Println()
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tNAME\tROWS\tUPLOADED")
	fmt.Fprintln(w, "  --\t----\t----\t--------")
	for _, d := range datasets {
		rows := "-"
		if d.RowCount != nil {
			rows = fmt.Sprintf("%d", *d.RowCount)
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\n", d.ID, truncate(d.Name, 32), rows, formatTime(d.UploadedAt))
	}
	w.Flush()
	fmt.Println()
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// formatTime compacts a server RFC3339 timestamp for table display.
func formatTime(s string) string {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format("Jan 02 15:04")
	}
	return s
}
