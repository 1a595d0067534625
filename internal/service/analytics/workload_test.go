package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moath17/taskdashbord-sub001/internal/domain/analytics"
	"github.com/moath17/taskdashbord-sub001/internal/domain/task"
	"github.com/moath17/taskdashbord-sub001/internal/domain/user"
)

func assignedTasks(userID string, n int) []task.Task {
	var tasks []task.Task
	for i := 0; i < n; i++ {
		tasks = append(tasks, makeTask(fmt.Sprintf("t%d", i), "", userID, task.StatusNew, nil))
	}
	return tasks
}

func TestAnalyzeWorkload_StatusBands(t *testing.T) {
	t.Parallel()
	engine := NewRiskEngine(10)
	u := user.User{ID: "u1", Name: "Alex", Role: user.RoleEmployee}

	tests := []struct {
		name       string
		taskCount  int
		wantScore  float64
		wantStatus analytics.WorkloadStatus
	}{
		{"no tasks", 0, 0, analytics.WorkloadUnderloaded},
		{"well under capacity", 4, 40, analytics.WorkloadUnderloaded},
		{"at lower optimal bound", 5, 50, analytics.WorkloadOptimal},
		{"exactly at capacity", 10, 100, analytics.WorkloadOptimal},
		{"one over capacity", 11, 100, analytics.WorkloadOverloaded},
		{"far over capacity", 20, 100, analytics.WorkloadOverloaded},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := engine.AnalyzeWorkload(u, assignedTasks(u.ID, tc.taskCount), nil, testNow)
			assert.Equal(t, tc.wantScore, result.WorkloadScore)
			assert.Equal(t, tc.wantStatus, result.WorkloadStatus)
			assert.Equal(t, tc.taskCount, result.TotalAssignedTasks)
		})
	}
}

func TestAnalyzeWorkload_CountsAndGoalsAtRisk(t *testing.T) {
	t.Parallel()
	engine := NewRiskEngine(10)
	u := user.User{ID: "u1", Name: "Alex", Role: user.RoleEmployee}

	tasks := []task.Task{
		makeTask("t1", "", "u1", task.StatusCompleted, nil),
		makeTask("t2", "", "u1", task.StatusInProgress, timePtr(testNow.AddDate(0, 0, -2))),
		makeTask("t3", "", "u1", task.StatusNew, timePtr(testNow.AddDate(0, 0, 5))),
		makeTask("t4", "", "other", task.StatusNew, timePtr(testNow.AddDate(0, 0, -2))),
	}

	risks := []analytics.GoalRiskAnalysis{
		{GoalID: "g1", OwnerUserID: "u1", RiskLevel: analytics.RiskLevelHigh},
		{GoalID: "g2", OwnerUserID: "u1", RiskLevel: analytics.RiskLevelMedium},
		{GoalID: "g3", OwnerUserID: "other", RiskLevel: analytics.RiskLevelHigh},
	}

	result := engine.AnalyzeWorkload(u, tasks, risks, testNow)

	assert.Equal(t, 3, result.TotalAssignedTasks)
	assert.Equal(t, 1, result.CompletedTasks)
	assert.Equal(t, 1, result.OverdueTasks)
	assert.Equal(t, 1, result.GoalsAtRisk)
}
