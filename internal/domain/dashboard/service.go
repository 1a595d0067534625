package dashboard

import "context"

// DashboardService defines the role-scoped dashboard surface
type DashboardService interface {
	// GetSummary returns the dashboard for the caller's scope: managers see the
	// whole organization, employees only their own tasks and plans.
	GetSummary(ctx context.Context) (*Summary, error)
}
