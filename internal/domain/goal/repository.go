package goal

import "context"

// GoalRepository defines read access to goals. Reports always consume the
// whole organization snapshot, so there is no single-goal lookup.
type GoalRepository interface {
	// ListByOrganization returns every goal in the organization, ordered by created_at then id
	ListByOrganization(ctx context.Context, organizationID string) ([]Goal, error)
}
