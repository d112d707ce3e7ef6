// ABOUTME: User administration commands, reachable only for SUPER_ADMIN
// ABOUTME: The route guard enforces the role before any of these run

package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/prestasi/prestasi-cli/internal/api"
	"github.com/prestasi/prestasi-cli/internal/permissions"
)

// cmdUsers handles account administration subcommands.
func (a *app) cmdUsers(ctx context.Context, args []string) error {
	subcmd := "list"
	if len(args) > 0 {
		subcmd = args[0]
		args = args[1:]
	}

	switch subcmd {
	case "list", "ls":
		return a.cmdUsersList(ctx)
	case "create", "register", "add":
		return a.cmdUsersCreate(ctx, args)
	case "update", "edit":
		return a.cmdUsersUpdate(ctx, args)
	case "delete", "rm", "remove":
		return a.cmdUsersDelete(ctx, args)
	default:
		return fmt.Errorf("unknown users subcommand: %s (use list, create, update, delete)", subcmd)
	}
}

func (a *app) cmdUsersList(ctx context.Context) error {
	users, err := a.api.ListUsers(ctx)
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Accounts")
	cyan.Println("  --------")

	if len(users) == 0 {
		fmt.Println("  (no accounts)")
		fmt.Println()
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tUSERNAME\tNAME\tROLE\tCREATED")
	fmt.Fprintln(w, "  --\t--------\t----\t----\t-------")
	for _, u := range users {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
			truncate(u.ID, 12), u.Username, truncate(u.Name, 24), u.Role.Label(), formatTime(u.CreatedAt))
	}
	w.Flush()
	fmt.Println()
	return nil
}

func (a *app) cmdUsersCreate(ctx context.Context, args []string) error {
	req := api.RegisterRequest{Role: string(permissions.RoleUser)}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--username", "-u":
			if i+1 < len(args) {
				req.Username = args[i+1]
				i++
			}
		case "--name", "-n":
			if i+1 < len(args) {
				req.Name = args[i+1]
				i++
			}
		case "--role", "-r":
			if i+1 < len(args) {
				req.Role = args[i+1]
				i++
			}
		}
	}

	if req.Username == "" || req.Name == "" {
		return fmt.Errorf("usage: users create --username <u> --name <n> [--role SUPER_ADMIN|ADMIN|USER]")
	}

	password, err := readPassword("Password for new account: ")
	if err != nil {
		return err
	}
	req.Password = password

	u, err := a.api.Register(ctx, req)
	if err != nil {
		return err
	}

	color.Green("✓ Created account %s (%s)\n", u.Username, u.Role.Label())
	return nil
}

func (a *app) cmdUsersUpdate(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: users update <id> [--username <u>] [--name <n>] [--role <r>] [--password]")
	}
	id := args[0]
	args = args[1:]

	var req api.UpdateUserRequest
	promptPassword := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--username", "-u":
			if i+1 < len(args) {
				req.Username = args[i+1]
				i++
			}
		case "--name", "-n":
			if i+1 < len(args) {
				req.Name = args[i+1]
				i++
			}
		case "--role", "-r":
			if i+1 < len(args) {
				req.Role = args[i+1]
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
		req.Password = password
	}

	if req.Username == "" && req.Name == "" && req.Role == "" && req.Password == "" {
		return fmt.Errorf("nothing to update")
	}

	u, err := a.api.UpdateUser(ctx, id, req)
	if err != nil {
		return err
	}

	color.Green("✓ Updated account %s\n", u.Username)
	return nil
}

func (a *app) cmdUsersDelete(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: users delete <id>")
	}
	id := args[0]

	if snap := a.session.Snapshot(); snap.User != nil && snap.User.ID == id {
		return fmt.Errorf("refusing to delete the account you are logged in as")
	}

	if err := a.api.DeleteUser(ctx, id); err != nil {
		return err
	}

	color.Green("✓ Deleted account %s\n", id)
	return nil
}
