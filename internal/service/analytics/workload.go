package analytics

import (
	"time"

	"github.com/moath17/taskdashbord-sub001/internal/domain/analytics"
	"github.com/moath17/taskdashbord-sub001/internal/domain/task"
	"github.com/moath17/taskdashbord-sub001/internal/domain/user"
)

// AnalyzeWorkload computes the workload report for one user from the full
// task snapshot and the already-computed goal risk reports. The reported
// score is clamped to [0,100]; the status comes from the unclamped ratio so
// a user above capacity is never reported as merely optimal.
func (e *RiskEngine) AnalyzeWorkload(u user.User, allTasks []task.Task, risks []analytics.GoalRiskAnalysis, now time.Time) analytics.UserWorkloadAnalysis {
	var assigned, completed, overdue int
	for i := range allTasks {
		t := &allTasks[i]
		if t.AssignedToUserID != u.ID {
			continue
		}
		assigned++
		if t.IsCompleted() {
			completed++
		}
		if t.IsOverdue(now) {
			overdue++
		}
	}

	rawScore := 100 * float64(assigned) / float64(e.maxRecommendedTasks)

	status := analytics.WorkloadOptimal
	switch {
	case rawScore < 50:
		status = analytics.WorkloadUnderloaded
	case rawScore > 100:
		status = analytics.WorkloadOverloaded
	}

	atRisk := 0
	for i := range risks {
		if risks[i].OwnerUserID == u.ID && risks[i].RiskLevel == analytics.RiskLevelHigh {
			atRisk++
		}
	}

	return analytics.UserWorkloadAnalysis{
		UserID:             u.ID,
		UserName:           u.Name,
		Role:               u.Role,
		TotalAssignedTasks: assigned,
		CompletedTasks:     completed,
		OverdueTasks:       overdue,
		WorkloadScore:      clamp(rawScore, 0, 100),
		WorkloadStatus:     status,
		GoalsAtRisk:        atRisk,
	}
}
