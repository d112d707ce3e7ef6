// ABOUTME: Tests for role parsing and capability resolution
// ABOUTME: Exercises the full capability table over the closed role set

package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Exhaustive(t *testing.T) {
	tests := []struct {
		role Role
		want PermissionSet
	}{
		{RoleSuperAdmin, PermissionSet{CanAccessRegister: true, CanCreateModel: true, CanDeleteModel: true}},
		{RoleAdmin, PermissionSet{CanAccessRegister: false, CanCreateModel: true, CanDeleteModel: true}},
		{RoleUser, PermissionSet{CanAccessRegister: false, CanCreateModel: false, CanDeleteModel: false}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.role))
		})
	}

	// Every valid role has a row in the table.
	for _, r := range ValidRoles {
		_, ok := capabilities[r]
		assert.True(t, ok, "role %s missing from capability table", r)
	}
}

func TestResolve_RegisterIsSuperAdminOnly(t *testing.T) {
	for _, r := range ValidRoles {
		if r == RoleSuperAdmin {
			continue
		}
		assert.False(t, Resolve(r).CanAccessRegister, "role %s must not access register", r)
	}
}

func TestResolve_UnknownRole(t *testing.T) {
	assert.Equal(t, PermissionSet{}, Resolve(Role("AUDITOR")))
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("ADMIN")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	_, err = ParseRole("admin")
	assert.Error(t, err, "role values are case sensitive on the wire")

	_, err = ParseRole("")
	assert.Error(t, err)
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "Super Admin", RoleSuperAdmin.Label())
	assert.Equal(t, "Admin", RoleAdmin.Label())
	assert.Equal(t, "User", RoleUser.Label())
}

func TestRoleValid(t *testing.T) {
	for _, r := range ValidRoles {
		assert.True(t, r.Valid())
	}
	assert.False(t, Role("OWNER").Valid())
}
