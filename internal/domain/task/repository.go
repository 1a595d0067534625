package task

import "context"

// TaskRepository defines read access to tasks
type TaskRepository interface {
	// ListByOrganization returns every task in the organization, ordered by created_at desc then id
	ListByOrganization(ctx context.Context, organizationID string) ([]Task, error)

	// ListByAssignee returns tasks assigned to a single user
	ListByAssignee(ctx context.Context, organizationID, userID string) ([]Task, error)
}
