package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/moath17/taskdashbord-sub001/internal/domain/analytics"
	"github.com/moath17/taskdashbord-sub001/internal/domain/goal"
	"github.com/moath17/taskdashbord-sub001/internal/domain/task"
)

// DefaultMaxRecommendedTasks is the per-person capacity used for the workload
// ratio when no value is configured.
const DefaultMaxRecommendedTasks = 10

// Score weights. Overdue work dominates, progress only dampens.
const (
	weightOverdue        = 0.4
	weightTimePressure   = 0.3
	weightWorkloadExcess = 0.2
	weightProgressGap    = 0.1
)

// onTrackEpsilon is the slack allowed between elapsed time and progress before
// a goal is considered behind schedule.
const onTrackEpsilon = 0.05

// RiskEngine computes per-goal risk reports from an in-memory snapshot of
// goals and tasks. It holds no mutable state and is safe for concurrent use.
type RiskEngine struct {
	maxRecommendedTasks int
}

func NewRiskEngine(maxRecommendedTasks int) *RiskEngine {
	if maxRecommendedTasks <= 0 {
		maxRecommendedTasks = DefaultMaxRecommendedTasks
	}
	return &RiskEngine{maxRecommendedTasks: maxRecommendedTasks}
}

// MaxRecommendedTasks returns the configured per-person capacity.
func (e *RiskEngine) MaxRecommendedTasks() int {
	return e.maxRecommendedTasks
}

// AnalyzeGoal produces the risk report for one goal. allGoals supplies the
// parent/child relationships (annual goals inherit the tasks of their MBO
// descendants), allTasks is the full organization snapshot. The function is
// total: zero linked tasks yields a defined low-risk result, and every
// division is guarded.
func (e *RiskEngine) AnalyzeGoal(g goal.Goal, allGoals []goal.Goal, allTasks []task.Task, now time.Time) analytics.GoalRiskAnalysis {
	linked := linkedTasks(g, allGoals, allTasks)

	var completed, inProgress, delayed, overdue int
	for i := range linked {
		t := &linked[i]
		switch t.Status {
		case task.StatusCompleted:
			completed++
		case task.StatusInProgress:
			inProgress++
		case task.StatusDelayed:
			delayed++
		}
		// Date-driven, independent of the status tally above.
		if t.IsOverdue(now) {
			overdue++
		}
	}
	total := len(linked)

	factors := analytics.RiskFactors{
		TimePressureRatio: timePressure(&g, linked, now),
		WorkloadRatio:     float64(countAssigned(allTasks, g.OwnerUserID)) / float64(e.maxRecommendedTasks),
	}
	if total > 0 {
		factors.ProgressRatio = float64(completed) / float64(total)
		factors.OverdueTasksRatio = float64(overdue) / float64(total)
	}

	result := analytics.GoalRiskAnalysis{
		GoalID:          g.ID,
		GoalTitle:       g.Title,
		GoalType:        g.Type,
		OwnerUserID:     g.OwnerUserID,
		Factors:         factors,
		TotalTasks:      total,
		CompletedTasks:  completed,
		InProgressTasks: inProgress,
		DelayedTasks:    delayed,
		OverdueTasks:    overdue,
	}

	if total == 0 {
		// No tasks means nothing is at risk yet. Policy choice, not a bug:
		// the goal simply has not been broken down.
		result.RiskScore = 0
		result.RiskLevel = analytics.RiskLevelLow
		result.CompletionProbability = 100
		result.IsOnTrack = true
		result.Reasons = []string{"No tasks assigned to this goal yet"}
		result.Recommendations = []string{"Break the goal down into actionable tasks"}
		return result
	}

	workloadExcess := math.Max(0, factors.WorkloadRatio-1)
	score := 100 * (weightOverdue*factors.OverdueTasksRatio +
		weightTimePressure*factors.TimePressureRatio +
		weightWorkloadExcess*workloadExcess +
		weightProgressGap*(1-factors.ProgressRatio))
	result.RiskScore = clamp(score, 0, 100)
	result.RiskLevel = riskLevel(result.RiskScore)
	result.CompletionProbability = clamp(100-result.RiskScore, 0, 100)
	result.IsOnTrack = factors.TimePressureRatio <= factors.ProgressRatio+onTrackEpsilon && overdue == 0
	result.ExpectedCompletionDate = extrapolateCompletion(&g, linked, factors.ProgressRatio, now)
	result.Reasons, result.Recommendations = e.explain(&result)

	return result
}

// riskLevel is the step function over the score: inclusive-low, exclusive-high
// except the top band.
func riskLevel(score float64) analytics.RiskLevel {
	switch {
	case score < 34:
		return analytics.RiskLevelLow
	case score < 67:
		return analytics.RiskLevelMedium
	default:
		return analytics.RiskLevelHigh
	}
}

// linkedTasks collects tasks referencing the goal directly, plus tasks of its
// descendant goals when the goal is an annual parent of MBO children.
func linkedTasks(g goal.Goal, allGoals []goal.Goal, allTasks []task.Task) []task.Task {
	ids := map[string]bool{g.ID: true}
	if g.Type == goal.TypeAnnual {
		collectDescendants(g.ID, allGoals, ids)
	}

	var linked []task.Task
	for _, t := range allTasks {
		if t.GoalID != nil && ids[*t.GoalID] {
			linked = append(linked, t)
		}
	}
	return linked
}

func collectDescendants(parentID string, allGoals []goal.Goal, ids map[string]bool) {
	for i := range allGoals {
		child := &allGoals[i]
		if child.IsChildOf(parentID) && !ids[child.ID] {
			ids[child.ID] = true
			collectDescendants(child.ID, allGoals, ids)
		}
	}
}

// timePressure is the elapsed fraction of the goal's timeline, clamped to
// [0,1]. Falls back to the min start / max due of linked tasks when the goal
// has no explicit dates; 0 when no timeline can be derived at all.
func timePressure(g *goal.Goal, linked []task.Task, now time.Time) float64 {
	start, end := goalTimeline(g, linked)
	if start == nil || end == nil || !end.After(*start) {
		return 0
	}
	elapsed := now.Sub(*start).Seconds()
	window := end.Sub(*start).Seconds()
	return clamp(elapsed/window, 0, 1)
}

// goalTimeline returns the goal's explicit dates, deriving only the missing
// endpoints from the linked tasks (min start date, max due date). An endpoint
// the goal sets explicitly is never widened by task dates.
func goalTimeline(g *goal.Goal, linked []task.Task) (*time.Time, *time.Time) {
	start, end := g.StartDate, g.EndDate
	if start == nil {
		for i := range linked {
			if t := linked[i].StartDate; t != nil && (start == nil || t.Before(*start)) {
				start = t
			}
		}
	}
	if end == nil {
		for i := range linked {
			if d := linked[i].DueDate; d != nil && (end == nil || d.After(*end)) {
				end = d
			}
		}
	}
	return start, end
}

// extrapolateCompletion projects the finish date linearly from progress so
// far: start + elapsed/progress. Nil when there is not enough signal.
func extrapolateCompletion(g *goal.Goal, linked []task.Task, progress float64, now time.Time) *time.Time {
	if progress <= 0 {
		return nil
	}
	start, _ := goalTimeline(g, linked)
	if start == nil {
		return nil
	}
	elapsed := now.Sub(*start)
	if elapsed <= 0 {
		return nil
	}
	expected := start.Add(time.Duration(float64(elapsed) / progress))
	return &expected
}

func countAssigned(allTasks []task.Task, userID string) int {
	n := 0
	for i := range allTasks {
		if allTasks[i].AssignedToUserID == userID {
			n++
		}
	}
	return n
}

// explain maps the computed factors onto the human-readable catalogue.
func (e *RiskEngine) explain(r *analytics.GoalRiskAnalysis) (reasons, recommendations []string) {
	if r.OverdueTasks > 0 {
		reasons = append(reasons, fmt.Sprintf("%d task(s) overdue", r.OverdueTasks))
		recommendations = append(recommendations, "Reschedule or reprioritize overdue tasks")
	}

	if r.Factors.TimePressureRatio > 0.5 && r.Factors.ProgressRatio < r.Factors.TimePressureRatio-onTrackEpsilon {
		reasons = append(reasons, fmt.Sprintf(
			"Goal is %.0f%% through its timeline with only %.0f%% of tasks completed",
			r.Factors.TimePressureRatio*100, r.Factors.ProgressRatio*100))
		recommendations = append(recommendations, "Review remaining scope against the goal deadline")
	}

	if r.Factors.WorkloadRatio > 1 {
		reasons = append(reasons, fmt.Sprintf(
			"Owner workload exceeds recommended capacity of %d tasks", e.maxRecommendedTasks))
		recommendations = append(recommendations, "Rebalance tasks across the team")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Goal is progressing as planned")
	}
	return reasons, recommendations
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
