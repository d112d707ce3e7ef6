// ABOUTME: Model catalog commands: list, show, train, rename, delete
// ABOUTME: Training and deletion are gated on the resolved permission set

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
)

// cmdModels handles model subcommands.
func (a *app) cmdModels(ctx context.Context, args []string) error {
	subcmd := "list"
	if len(args) > 0 {
		subcmd = args[0]
		args = args[1:]
	}

	switch subcmd {
	case "list", "ls":
		return a.cmdModelsList(ctx)
	case "show", "get":
		return a.cmdModelsShow(ctx, args)
	case "train":
		return a.cmdModelsTrain(ctx, args)
	case "rename":
		return a.cmdModelsRename(ctx, args)
	case "delete", "rm", "remove":
		return a.cmdModelsDelete(ctx, args)
	case "template":
		fmt.Println(a.api.TemplateURL())
		return nil
	default:
		return fmt.Errorf("unknown models subcommand: %s (use list, show, train, rename, delete, template)", subcmd)
	}
}

func (a *app) cmdModelsList(ctx context.Context) error {
	models, err := a.api.ListModels(ctx)
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Trained Models")
	cyan.Println("  --------------")

	if len(models) == 0 {
		fmt.Println("  (no models trained yet)")
		fmt.Println()
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tNAME\tACCURACY\tCREATED")
	fmt.Fprintln(w, "  --\t----\t--------\t-------")
	for _, m := range models {
		accuracy := "-"
		if m.Accuracy != nil {
			accuracy = fmt.Sprintf("%.1f%%", *m.Accuracy*100)
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\n", m.ID, truncate(m.Name, 32), accuracy, formatTime(m.CreatedAt))
	}
	w.Flush()
	fmt.Println()
	return nil
}

func (a *app) cmdModelsShow(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: models show <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid model id %q", args[0])
	}

	m, err := a.api.GetModel(ctx, id)
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Printf("  Model %d: %s\n", m.ID, m.Name)
	cyan.Println("  --------------------")
	if m.Accuracy != nil {
		fmt.Printf("  Accuracy:   %.1f%%\n", *m.Accuracy*100)
	}
	fmt.Printf("  Created:    %s\n", formatTime(m.CreatedAt))

	if metrics := m.Metrics; metrics != nil {
		fmt.Printf("  Precision:  %.3f\n", metrics.Precision)
		fmt.Printf("  Recall:     %.3f\n", metrics.Recall)
		fmt.Printf("  F1 score:   %.3f\n", metrics.F1Score)
		if metrics.TrainingSamples > 0 {
			fmt.Printf("  Samples:    %d train / %d test\n", metrics.TrainingSamples, metrics.TestSamples)
		}

		if len(metrics.FeatureImportance) > 0 {
			fmt.Println()
			cyan.Println("  Feature importance")
			cyan.Println("  ------------------")
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for feature, weight := range metrics.FeatureImportance {
				fmt.Fprintf(w, "  %s\t%.4f\n", feature, weight)
			}
			w.Flush()
		}
	}
	fmt.Println()
	return nil
}

func (a *app) cmdModelsTrain(ctx context.Context, args []string) error {
	if !a.session.Permissions().CanCreateModel {
		return fmt.Errorf("your role cannot train models")
	}

	var csvPath, name string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--name", "-n":
			if i+1 < len(args) {
				name = args[i+1]
				i++
			}
		default:
			csvPath = args[i]
		}
	}

	if csvPath == "" {
		return fmt.Errorf("usage: models train <csv> [--name <name>]")
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("opening training file: %w", err)
	}
	defer f.Close()

	fmt.Println("Training... this can take a while on large datasets.")
	m, err := a.api.TrainModel(ctx, name, filepath.Base(csvPath), f)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	green.Printf("✓ Trained model %d: %s\n", m.ID, m.Name)
	if m.Accuracy != nil {
		fmt.Printf("  Accuracy: %.1f%%\n", *m.Accuracy*100)
	}
	return nil
}

func (a *app) cmdModelsRename(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: models rename <id> <name>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid model id %q", args[0])
	}

	m, err := a.api.RenameModel(ctx, id, args[1])
	if err != nil {
		return err
	}

	color.Green("✓ Renamed model %d to %s\n", m.ID, m.Name)
	return nil
}

func (a *app) cmdModelsDelete(ctx context.Context, args []string) error {
	if !a.session.Permissions().CanDeleteModel {
		return fmt.Errorf("your role cannot delete models")
	}
	if len(args) < 1 {
		return fmt.Errorf("usage: models delete <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid model id %q", args[0])
	}

	if err := a.api.DeleteModel(ctx, id); err != nil {
		return err
	}

	color.Green("✓ Deleted model %d\n", id)
	return nil
}
