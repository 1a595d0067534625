package user

import "time"

type Role string

const (
	RoleOwner    Role = "owner"    // Organization owner - full access
	RoleManager  Role = "manager"  // Can see org-wide dashboards and workloads
	RoleEmployee Role = "employee" // Regular employee, own records only
)

type User struct {
	ID             string
	OrganizationID string
	Name           string
	Email          string
	Role           Role
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsOwner checks if user is the organization owner
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// IsManager checks if user is manager or owner
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleOwner
}
