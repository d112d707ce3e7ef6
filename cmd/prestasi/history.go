// ABOUTME: Local prediction history command
// ABOUTME: Reads the SQLite store this client writes after each prediction

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/prestasi/prestasi-cli/internal/history"
)

// cmdHistory shows predictions made from this machine, newest first.
func (a *app) cmdHistory(ctx context.Context, args []string) error {
	limit := 20
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-n", "--limit":
			if i+1 < len(args) {
				n, err := strconv.Atoi(args[i+1])
				if err != nil || n < 1 {
					return fmt.Errorf("invalid limit %q", args[i+1])
				}
				limit = n
				i++
			}
		}
	}

	store, err := history.Open(a.cfg.Storage.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Prediction History")
	cyan.Println("  ------------------")

	if len(entries) == 0 {
		fmt.Println("  (no predictions recorded yet)")
		fmt.Println()
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  WHEN\tMODEL\tNAMA\tPREDICTION\tCONFIDENCE")
	fmt.Fprintln(w, "  ----\t-----\t----\t----------\t----------")
	for _, e := range entries {
		nama := e.Nama
		if nama == "" {
			nama = "-"
		}
		fmt.Fprintf(w, "  %s\t%d\t%s\t%s\t%.1f%%\n",
			e.CreatedAt.Local().Format("Jan 02 15:04"), e.ModelID, truncate(nama, 28), e.Prediction, e.Probability*100)
	}
	w.Flush()

	counts, err := store.Counts(ctx)
	if err == nil && len(counts) > 0 {
		fmt.Println()
		fmt.Printf("  Totals: ")
		first := true
		for outcome, n := range counts {
			if !first {
				fmt.Print("   ")
			}
			fmt.Printf("%s: %d", outcome, n)
			first = false
		}
		fmt.Println()
	}
	fmt.Println()
	return nil
}
