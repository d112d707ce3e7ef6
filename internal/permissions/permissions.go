// ABOUTME: Role enumeration and per-role capability resolution
// ABOUTME: Capabilities are a flat lookup table, not a privilege hierarchy

package permissions

import "fmt"

// Role identifies a user's role as reported by the server.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleUser       Role = "USER"
)

// ValidRoles lists all roles the server can assign.
var ValidRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleUser}

// ParseRole converts a wire value into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleUser:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Valid reports whether the role is a member of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// Label returns the display name for a role.
func (r Role) Label() string {
	switch r {
	case RoleSuperAdmin:
		return "Super Admin"
	case RoleAdmin:
		return "Admin"
	case RoleUser:
		return "User"
	}
	return string(r)
}

// PermissionSet holds the capabilities derived from a role. Each capability
// is granted independently; no capability implies another.
type PermissionSet struct {
	CanAccessRegister bool
	CanCreateModel    bool
	CanDeleteModel    bool
}

// capabilities is the authoritative role-to-capability table. Adding a role
// means adding a row here and a case to the switches above.
var capabilities = map[Role]PermissionSet{
	RoleSuperAdmin: {
		CanAccessRegister: true,
		CanCreateModel:    true,
		CanDeleteModel:    true,
	},
	RoleAdmin: {
		CanAccessRegister: false,
		CanCreateModel:    true,
		CanDeleteModel:    true,
	},
	RoleUser: {
		CanAccessRegister: false,
		CanCreateModel:    false,
		CanDeleteModel:    false,
	},
}

// Resolve maps a role to its capability set. Unknown roles resolve to the
// zero set, which grants nothing.
func Resolve(r Role) PermissionSet {
	return capabilities[r]
}
