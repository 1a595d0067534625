package plan

import "context"

// PlanRepository defines read access to leave and training plans
type PlanRepository interface {
	// ListLeaveByOrganization returns every leave plan in the organization
	ListLeaveByOrganization(ctx context.Context, organizationID string) ([]LeavePlan, error)

	// ListTrainingByOrganization returns every training plan in the organization
	ListTrainingByOrganization(ctx context.Context, organizationID string) ([]TrainingPlan, error)
}
