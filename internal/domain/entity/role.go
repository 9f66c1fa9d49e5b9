// Package entity contains the core business objects of the project.
package entity

// Role is the kind of principal a session belongs to.
type Role string

const (
	// RoleBusiness is a business owner using the self-service dashboard.
	RoleBusiness Role = "business"
	// RoleAdmin is a back-office operator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBusiness, RoleAdmin:
		return true
	default:
		return false
	}
}
