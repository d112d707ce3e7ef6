// ABOUTME: Prediction commands: single student from flags, batch from CSV
// ABOUTME: Successful predictions are appended to the local history store

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/prestasi/prestasi-cli/internal/api"
	"github.com/prestasi/prestasi-cli/internal/history"
)

// cmdPredict scores one student, or a CSV of students with "predict batch".
func (a *app) cmdPredict(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "batch" {
		return a.cmdPredictBatch(ctx, args[1:])
	}
	return a.cmdPredictSingle(ctx, args)
}

func (a *app) cmdPredictSingle(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("predict", flag.ContinueOnError)
	modelID := fs.Int("model", 0, "model id to predict with")
	nama := fs.String("nama", "", "student name (optional, display only)")

	var scores api.StudentScores
	fs.Float64Var(&scores.PAI, "pai", 0, "Pendidikan Agama Islam grade")
	fs.Float64Var(&scores.PendidikanPancasila, "pancasila", 0, "Pendidikan Pancasila grade")
	fs.Float64Var(&scores.BahasaIndonesia, "indonesia", 0, "Bahasa Indonesia grade")
	fs.Float64Var(&scores.Matematika, "matematika", 0, "Matematika grade")
	fs.Float64Var(&scores.IPA, "ipa", 0, "IPA grade")
	fs.Float64Var(&scores.IPS, "ips", 0, "IPS grade")
	fs.Float64Var(&scores.BahasaInggris, "inggris", 0, "Bahasa Inggris grade")
	fs.Float64Var(&scores.Penjas, "penjas", 0, "Penjas grade")
	fs.Float64Var(&scores.TIK, "tik", 0, "TIK grade")
	fs.Float64Var(&scores.SBK, "sbk", 0, "SBK grade")
	fs.Float64Var(&scores.Prakarya, "prakarya", 0, "Prakarya grade")
	fs.Float64Var(&scores.BahasaSunda, "sunda", 0, "Bahasa Sunda grade")
	fs.Float64Var(&scores.BTQ, "btq", 0, "BTQ grade")
	fs.Float64Var(&scores.Absen, "absen", 0, "absence count")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *modelID == 0 {
		return fmt.Errorf("usage: predict --model <id> [--nama <name>] --matematika <grade> ...")
	}

	req := api.PredictRequest{StudentScores: scores, ModelID: *modelID, Nama: *nama}
	resp, err := a.api.PredictSingle(ctx, req)
	if err != nil {
		return err
	}

	printPrediction(resp)

	if store := a.openHistory(); store != nil {
		defer store.Close()
		a.recordPrediction(ctx, store, *modelID, resp.Nama, resp.Prediction, resp.Probability)
	}
	return nil
}

func printPrediction(resp *api.PredictResponse) {
	fmt.Println()
	if resp.Nama != "" {
		fmt.Printf("  Student:     %s\n", resp.Nama)
	}

	label := color.New(color.FgGreen, color.Bold)
	if resp.Prediction != "Berprestasi" {
		label = color.New(color.FgYellow, color.Bold)
	}
	fmt.Printf("  Prediction:  ")
	label.Println(resp.Prediction)

	if p, ok := resp.Probability[resp.Prediction]; ok {
		fmt.Printf("  Confidence:  %.1f%%\n", p*100)
	}
	fmt.Println()
}

func (a *app) cmdPredictBatch(ctx context.Context, args []string) error {
	var csvPath string
	modelID := 0

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--model", "-m":
			if i+1 < len(args) {
				id, err := strconv.Atoi(args[i+1])
				if err != nil {
					return fmt.Errorf("invalid model id %q", args[i+1])
				}
				modelID = id
				i++
			}
		default:
			csvPath = args[i]
		}
	}

	if csvPath == "" || modelID == 0 {
		return fmt.Errorf("usage: predict batch <csv> --model <id>")
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("opening batch file: %w", err)
	}
	defer f.Close()

	resp, err := a.api.PredictBatch(ctx, modelID, filepath.Base(csvPath), f)
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Printf("  Batch results (%d rows)\n", resp.TotalCount)
	cyan.Println("  ----------------------")

	store := a.openHistory()
	if store != nil {
		defer store.Close()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ROW\tNAMA\tPREDICTION\tCONFIDENCE")
	fmt.Fprintln(w, "  ---\t----\t----------\t----------")
	for _, r := range resp.Results {
		confidence := "-"
		if p, ok := r.Probability[r.Prediction]; ok {
			confidence = fmt.Sprintf("%.1f%%", p*100)
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\n", r.RowIndex, truncate(r.Nama, 28), r.Prediction, confidence)
		if store != nil {
			a.recordPrediction(ctx, store, modelID, r.Nama, r.Prediction, r.Probability)
		}
	}
	w.Flush()

	fmt.Println()
	fmt.Printf("  Berprestasi: %d   Tidak Berprestasi: %d\n",
		resp.BerprestasiCount, resp.TidakBerprestasiCount)
	fmt.Println()
	return nil
}

// openHistory opens the local history store. Failures are warnings: a
// broken history file never blocks a prediction.
func (a *app) openHistory() *history.Store {
	store, err := history.Open(a.cfg.Storage.HistoryPath)
	if err != nil {
		color.Yellow("warning: history unavailable: %v", err)
		return nil
	}
	return store
}

// recordPrediction appends to the local history store, best-effort: a
// history failure never fails the prediction that already succeeded.
func (a *app) recordPrediction(ctx context.Context, store *history.Store, modelID int, nama, prediction string, probability map[string]float64) {
	if err := store.Record(ctx, modelID, nama, prediction, probability[prediction]); err != nil {
		color.Yellow("warning: recording history: %v", err)
	}
}
