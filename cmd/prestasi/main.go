// ABOUTME: CLI client for the student achievement prediction server
// ABOUTME: Session-aware command dispatch with route-guarded views

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/prestasi/prestasi-cli/internal/api"
	"github.com/prestasi/prestasi-cli/internal/config"
	"github.com/prestasi/prestasi-cli/internal/credentials"
	"github.com/prestasi/prestasi-cli/internal/gateway"
	"github.com/prestasi/prestasi-cli/internal/routes"
	"github.com/prestasi/prestasi-cli/internal/session"
)

const banner = `
                        _             _
  _ __  _ __ ___  ___ _| |_ __ _ ___ (_)
 | '_ \| '__/ _ \/ __|_  __/ _' / __|| |
 | |_) | | |  __/\__ \ | || (_| \__ \| |
 | .__/|_|  \___||___/ \__\__,_|___/|_|
 |_|
`

// app wires the credential store, gateway, API client, and session
// controller together. Composition happens exactly once, in newApp.
type app struct {
	cfg     *config.Config
	creds   credentials.Store
	gw      *gateway.Gateway
	api     *api.Client
	session *session.Controller
}

func newApp(cfg *config.Config) *app {
	creds := credentials.NewFileStore(cfg.Storage.TokenPath)

	gw := gateway.New(cfg.Server.BaseURL, creds, slog.Default())
	gw.SetTimeout(cfg.Server.Timeout)

	apiClient := api.New(gw)
	ctrl := session.New(apiClient, creds, slog.Default())

	// A 401 anywhere forces the session down; the next guarded command
	// redirects to login.
	gw.OnAuthExpired(ctrl.ForceExpire)

	return &app{cfg: cfg, creds: creds, gw: gw, api: apiClient, session: ctrl}
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		printUsage()
		return
	}

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg.Logging)

	a := newApp(cfg)

	if err := a.run(context.Background(), cmd, args); err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
}

// run resolves the session, consults the route guard, and dispatches.
// Every view goes through the guard; logout is an action, not a view, and
// is always allowed.
func (a *app) run(ctx context.Context, view string, args []string) error {
	if view == "logout" {
		return a.cmdLogout(ctx)
	}

	route, ok := routes.Lookup(view)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", view)
		printUsage()
		os.Exit(1)
	}

	if err := a.session.Bootstrap(ctx); err != nil {
		return err
	}

	switch route.Decide(a.session.Snapshot()) {
	case routes.Wait:
		return fmt.Errorf("session is still resolving, try again")
	case routes.RedirectLogin:
		color.Yellow("Not logged in. Run: prestasi login")
		os.Exit(1)
	case routes.RedirectHome:
		if snap := a.session.Snapshot(); snap.User != nil && view == "login" {
			color.Yellow("Already logged in as %s.", snap.User.Username)
		} else {
			color.Yellow("Not available for your role, showing the dashboard.")
		}
		return a.cmdDashboard(ctx)
	}

	return a.dispatch(ctx, view, args)
}

func (a *app) dispatch(ctx context.Context, view string, args []string) error {
	switch view {
	case "login":
		return a.cmdLogin(ctx, args)
	case "dashboard":
		return a.cmdDashboard(ctx)
	case "models":
		return a.cmdModels(ctx, args)
	case "predict":
		return a.cmdPredict(ctx, args)
	case "datasets":
		return a.cmdDatasets(ctx)
	case "history":
		return a.cmdHistory(ctx, args)
	case "profile":
		return a.cmdProfile(ctx, args)
	case "whoami":
		return a.cmdWhoami(ctx)
	case "status":
		return a.cmdStatus(ctx)
	case "users":
		return a.cmdUsers(ctx, args)
	}
	return fmt.Errorf("no handler for view %s", view)
}

func setupLogging(cfg config.LoggingConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func printUsage() {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Print(banner)
	fmt.Println()
	fmt.Println("Usage: prestasi <command> [args]")
	fmt.Println()
	yellow.Println("Commands:")
	fmt.Println("  login [username]          Log in to the prediction server")
	fmt.Println("  logout                    Log out and forget the stored session")
	fmt.Println("  whoami                    Show the logged-in account")
	fmt.Println("  status                    Show server, session, and token status")
	fmt.Println("  dashboard                 Show model and prediction summary")
	fmt.Println("  models                    List trained models")
	fmt.Println("  models show <id>          Show one model's metrics")
	fmt.Println("  models train <csv>        Train a new model from a CSV file")
	fmt.Println("  models rename <id> <name> Rename a model")
	fmt.Println("  models delete <id>        Delete a model")
	fmt.Println("  models template           Print the training CSV template URL")
	fmt.Println("  predict --model <id> ...  Predict one student from subject grades")
	fmt.Println("  predict batch <csv>       Predict every row of a CSV file")
	fmt.Println("  datasets                  List uploaded training datasets")
	fmt.Println("  history [-n <count>]      Show recent predictions made locally")
	fmt.Println("  profile                   Show your profile")
	fmt.Println("  profile update            Edit your name or password")
	fmt.Println("  users                     List accounts (SUPER_ADMIN)")
	fmt.Println("  users create              Register an account (SUPER_ADMIN)")
	fmt.Println("  users update <id>         Edit an account (SUPER_ADMIN)")
	fmt.Println("  users delete <id>         Delete an account (SUPER_ADMIN)")
	fmt.Println()
	yellow.Println("Environment:")
	fmt.Println("  PRESTASI_CONFIG           Config file path (default: ~/.config/prestasi/config.yaml)")
	fmt.Println("  PRESTASI_BASE_URL         Server base URL (default: " + config.DefaultBaseURL + ")")
	fmt.Println("  PRESTASI_LOG_LEVEL        debug, info, warn, or error")
	fmt.Println()
	yellow.Println("Examples:")
	fmt.Println("  prestasi login admin")
	fmt.Println("  prestasi models train nilai-semester-1.csv --name 'Semester 1'")
	fmt.Println("  prestasi predict --model 3 --matematika 85 --ipa 78 --absen 2")
	fmt.Println()
}
