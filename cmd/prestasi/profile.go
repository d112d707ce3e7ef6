// ABOUTME: Own-profile commands: show and self-service edits
// ABOUTME: Edits go through PUT /auth/me and refresh the cached session user

package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/prestasi/prestasi-cli/internal/api"
)

// cmdProfile shows or edits the authenticated account's own profile.
func (a *app) cmdProfile(ctx context.Context, args []string) error {
	subcmd := "show"
	if len(args) > 0 {
		subcmd = args[0]
		args = args[1:]
	}

	switch subcmd {
	case "show":
		return a.cmdProfileShow(ctx)
	case "update", "edit":
		return a.cmdProfileUpdate(ctx, args)
	default:
		return fmt.Errorf("unknown profile subcommand: %s (use show, update)", subcmd)
	}
}

func (a *app) cmdProfileShow(ctx context.Context) error {
	u, err := a.api.Me(ctx)
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Profile")
	cyan.Println("  -------")
	fmt.Printf("  Username:  %s\n", u.Username)
	fmt.Printf("  Name:      %s\n", u.Name)
	fmt.Printf("  Role:      %s\n", u.Role.Label())
	fmt.Printf("  Created:   %s\n", formatTime(u.CreatedAt))
	fmt.Println()
	return nil
}

func (a *app) cmdProfileUpdate(ctx context.Context, args []string) error {
	var req api.UpdateMeRequest
	promptPassword := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--name", "-n":
			if i+1 < len(args) {
				req.Name = args[i+1]
				i++
			}
		case "--password", "-p":
			promptPassword = true
		}
	}

	if promptPassword {
		password, err := readPassword("New password: ")
		if err != nil {
			return err
		}
		confirm, err := readPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}
		req.Password = password
	}

	if req.Name == "" && req.Password == "" {
		return fmt.Errorf("usage: profile update [--name <name>] [--password]")
	}

	if _, err := a.api.UpdateMe(ctx, req); err != nil {
		return err
	}

	// Keep the session's cached user in sync with the edit.
	if err := a.session.RefreshUser(ctx); err != nil {
		color.Yellow("warning: profile updated but refresh failed: %v", err)
	}

	color.Green("✓ Profile updated")
	return nil
}
