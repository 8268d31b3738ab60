// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleOwner indicates the store owner role.
	RoleOwner Role = "OWNER"
	// RoleAdmin indicates a store administrator role.
	RoleAdmin Role = "ADMIN"
	// RoleCustomer indicates a regular customer role.
	RoleCustomer Role = "CUSTOMER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleCustomer:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// StaffRoles are the roles allowed into the admin invoicing area.
func StaffRoles() Roles {
	return Roles{RoleOwner, RoleAdmin}
}
