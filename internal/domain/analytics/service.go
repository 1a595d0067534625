package analytics

import "context"

// AnalyticsService defines the read-only risk/workload reporting surface.
// Every method loads a point-in-time snapshot of the caller's organization and
// computes the report in memory; nothing is written back.
type AnalyticsService interface {
	// GoalRisks returns one GoalRiskAnalysis per goal visible to the caller,
	// sorted by risk score descending (ties broken by goal id). An optional
	// ownerID narrows the report to a single owner; empty means no filter.
	GoalRisks(ctx context.Context, ownerID string) ([]GoalRiskAnalysis, error)

	// Dashboard returns the combined analytics dashboard for the caller's scope
	Dashboard(ctx context.Context) (*AnalyticsDashboard, error)

	// Workloads returns a workload analysis per user in the organization.
	// Manager-only; the role check lives in the HTTP layer.
	Workloads(ctx context.Context) ([]UserWorkloadAnalysis, error)
}
