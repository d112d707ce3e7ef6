// ABOUTME: Login, logout, whoami, and status commands
// ABOUTME: Interactive credential prompt; status decodes the token expiry

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/term"

	"github.com/prestasi/prestasi-cli/internal/permissions"
)

// cmdLogin prompts for missing credentials and starts a session.
func (a *app) cmdLogin(ctx context.Context, args []string) error {
	var username string
	if len(args) > 0 {
		username = args[0]
	}

	reader := bufio.NewReader(os.Stdin)
	if username == "" {
		fmt.Print("Username: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading username: %w", err)
		}
		username = strings.TrimSpace(line)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, username, password); err != nil {
		return err
	}

	snap := a.session.Snapshot()
	green := color.New(color.FgGreen)
	green.Printf("✓ Logged in as %s", snap.User.Username)
	fmt.Printf(" (%s)\n", snap.User.Role.Label())
	return nil
}

// readPassword reads without echo when stdin is a terminal, and falls back
// to a plain line read when it is not (piped input, tests).
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		data, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(data), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// cmdLogout ends the session locally. Works even when no session exists.
func (a *app) cmdLogout(ctx context.Context) error {
	if err := a.session.Bootstrap(ctx); err != nil {
		return err
	}
	a.session.Logout()
	color.Green("✓ Logged out")
	return nil
}

// cmdWhoami shows the logged-in account.
func (a *app) cmdWhoami(ctx context.Context) error {
	snap := a.session.Snapshot()
	u := snap.User

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Identity")
	cyan.Println("  --------")
	fmt.Printf("  Username:  %s\n", u.Username)
	fmt.Printf("  Name:      %s\n", u.Name)
	fmt.Printf("  Role:      %s\n", u.Role.Label())

	perms := permissions.Resolve(u.Role)
	fmt.Printf("  Can register accounts:  %v\n", perms.CanAccessRegister)
	fmt.Printf("  Can train models:       %v\n", perms.CanCreateModel)
	fmt.Printf("  Can delete models:      %v\n", perms.CanDeleteModel)
	fmt.Println()
	return nil
}

// cmdStatus shows the server endpoint, session identity, and when the
// stored token expires.
func (a *app) cmdStatus(ctx context.Context) error {
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	cyan.Print(banner)
	fmt.Println()
	fmt.Printf("  Server:    %s\n", a.cfg.Server.BaseURL)

	snap := a.session.Snapshot()
	green.Printf("  Identity:  ")
	fmt.Printf("%s (%s)\n", snap.User.Username, snap.User.Role.Label())

	if expiry, ok := a.tokenExpiry(); ok {
		if remaining := time.Until(expiry); remaining > 0 {
			fmt.Printf("  Token:     expires %s (%s left)\n",
				expiry.Format("Jan 02 15:04"), remaining.Round(time.Minute))
		} else {
			yellow.Println("  Token:     expired")
		}
	} else {
		fmt.Println("  Token:     no expiry claim")
	}
	fmt.Println()
	return nil
}

// tokenExpiry decodes the stored token's exp claim without verifying the
// signature. Display only; the server remains the authority on validity.
func (a *app) tokenExpiry() (time.Time, bool) {
	token, ok := a.creds.Get()
	if !ok {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
