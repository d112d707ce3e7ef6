// ABOUTME: The client's route table mapping view names to admission policies
// ABOUTME: Unknown views fall back to the home redirect, like the old catch-all

package routes

import "github.com/prestasi/prestasi-cli/internal/permissions"

// HomeRoute is the default view redirects land on.
const HomeRoute = "dashboard"

// table lists every navigable view. User administration is the only
// role-restricted view; everything else needs just an authenticated user.
var table = []Route{
	{Name: "login", Public: true},
	{Name: "dashboard"},
	{Name: "models"},
	{Name: "predict"},
	{Name: "datasets"},
	{Name: "history"},
	{Name: "profile"},
	{Name: "whoami"},
	{Name: "status"},
	{Name: "users", AllowedRoles: []permissions.Role{permissions.RoleSuperAdmin}},
}

// Lookup finds a route by view name.
func Lookup(name string) (Route, bool) {
	for _, r := range table {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}
