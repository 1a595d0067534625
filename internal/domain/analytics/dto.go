package analytics

import (
	"time"

	"github.com/moath17/taskdashbord-sub001/internal/domain/goal"
	"github.com/moath17/taskdashbord-sub001/internal/domain/user"
)

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"    // score < 34
	RiskLevelMedium RiskLevel = "MEDIUM" // 34 <= score < 67
	RiskLevelHigh   RiskLevel = "HIGH"   // score >= 67
)

// RiskFactors are the normalized inputs to the risk score. Each ratio is
// conventionally in [0,1] but the workload ratio may exceed 1 for overloaded
// owners.
type RiskFactors struct {
	ProgressRatio     float64 `json:"progress_ratio"`
	OverdueTasksRatio float64 `json:"overdue_tasks_ratio"`
	TimePressureRatio float64 `json:"time_pressure_ratio"`
	WorkloadRatio     float64 `json:"workload_ratio"`
}

// GoalRiskAnalysis is the per-goal report produced by the risk engine. It is
// derived on every request and never stored.
type GoalRiskAnalysis struct {
	GoalID      string    `json:"goal_id"`
	GoalTitle   string    `json:"goal_title"`
	GoalType    goal.Type `json:"goal_type"`
	OwnerUserID string    `json:"owner_user_id"`

	RiskScore             float64   `json:"risk_score"` // 0-100
	RiskLevel             RiskLevel `json:"risk_level"`
	CompletionProbability float64   `json:"completion_probability"` // 0-100
	IsOnTrack             bool      `json:"is_on_track"`

	ExpectedCompletionDate *time.Time `json:"expected_completion_date,omitempty"`

	Factors RiskFactors `json:"factors"`

	TotalTasks      int `json:"total_tasks"`
	CompletedTasks  int `json:"completed_tasks"`
	InProgressTasks int `json:"in_progress_tasks"`
	DelayedTasks    int `json:"delayed_tasks"`
	OverdueTasks    int `json:"overdue_tasks"`

	Reasons         []string `json:"reasons"`
	Recommendations []string `json:"recommendations"`
}

// RiskDistribution counts goals per risk band.
type RiskDistribution struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// UpcomingDeadline is a goal due within the lookahead window.
type UpcomingDeadline struct {
	GoalID        string    `json:"goal_id"`
	GoalTitle     string    `json:"goal_title"`
	EndDate       time.Time `json:"end_date"`
	DaysRemaining int       `json:"days_remaining"`
	RiskLevel     RiskLevel `json:"risk_level"`
}

// VelocityMetrics summarizes task throughput over trailing windows.
type VelocityMetrics struct {
	CompletedLast7Days   int     `json:"completed_last_7_days"`
	CompletedLast30Days  int     `json:"completed_last_30_days"`
	TasksPerDay          float64 `json:"tasks_per_day"` // trailing 30-day average
	AvgCompletionDays    float64 `json:"avg_completion_days"`
	MedianCompletionDays float64 `json:"median_completion_days"`
}

// AnalyticsSummary holds the headline numbers for the analytics dashboard.
type AnalyticsSummary struct {
	TotalGoals       int     `json:"total_goals"`
	TotalTasks       int     `json:"total_tasks"`
	AverageRiskScore float64 `json:"average_risk_score"`
	GoalsAtRisk      int     `json:"goals_at_risk"` // HIGH band only
}

// AnalyticsDashboard is the combined response for GET /analytics/dashboard.
type AnalyticsDashboard struct {
	Summary           AnalyticsSummary   `json:"summary"`
	RiskDistribution  RiskDistribution   `json:"risk_distribution"`
	TopRisks          []GoalRiskAnalysis `json:"top_risks"` // top 5 by score
	UpcomingDeadlines []UpcomingDeadline `json:"upcoming_deadlines"`
	VelocityMetrics   VelocityMetrics    `json:"velocity_metrics"`
}

type WorkloadStatus string

const (
	WorkloadUnderloaded WorkloadStatus = "underloaded"
	WorkloadOptimal     WorkloadStatus = "optimal"
	WorkloadOverloaded  WorkloadStatus = "overloaded"
)

// UserWorkloadAnalysis is the per-user workload report.
type UserWorkloadAnalysis struct {
	UserID   string    `json:"user_id"`
	UserName string    `json:"user_name"`
	Role     user.Role `json:"role"`

	TotalAssignedTasks int `json:"total_assigned_tasks"`
	CompletedTasks     int `json:"completed_tasks"`
	OverdueTasks       int `json:"overdue_tasks"`

	// WorkloadScore is reported clamped to [0,100]; the status is derived from
	// the unclamped ratio so overloaded stays distinguishable from optimal at
	// exactly max capacity.
	WorkloadScore  float64        `json:"workload_score"`
	WorkloadStatus WorkloadStatus `json:"workload_status"`

	GoalsAtRisk int `json:"goals_at_risk"`
}
