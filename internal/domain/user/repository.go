package user

import "context"

// UserRepository defines read access to users. The reporting layer only ever
// consumes a point-in-time slice loaded through this interface.
type UserRepository interface {
	// ListByOrganization returns every user in the organization, ordered by name then id
	ListByOrganization(ctx context.Context, organizationID string) ([]User, error)

	// GetByID returns a single user
	GetByID(ctx context.Context, id string) (*User, error)
}
