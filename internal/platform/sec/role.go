// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package sec

// # User Roles

// Role represents the authorization level granted to an identity.
type Role string

const (
	// Default role for standard registered users
	RoleUser Role = "User"

	// Can change the role of other identities
	RoleAdmin Role = "Admin"

	// Unrestricted system access
	RoleSuperAdmin Role = "SuperAdmin"
)

// Roles lists every valid role in ascending order of privilege.
var Roles = []Role{RoleUser, RoleAdmin, RoleSuperAdmin}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r.level() > 0
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r Role) AtLeast(target Role) bool {
	return r.IsValid() && r.level() >= target.level()
}

// CanManageRoles reports whether the role may change another identity's role.
func (r Role) CanManageRoles() bool {
	return r.AtLeast(RoleAdmin)
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r Role) level() int {
	switch r {
	case RoleSuperAdmin:
		return 30
	case RoleAdmin:
		return 20
	case RoleUser:
		return 10
	default:
		return 0
	}
}

// RoleNames returns the string form of [Roles] for validation messages.
func RoleNames() []string {
	names := make([]string, len(Roles))
	for i, role := range Roles {
		names[i] = string(role)
	}
	return names
}
