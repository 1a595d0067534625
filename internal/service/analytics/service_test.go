package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moath17/taskdashbord-sub001/internal/domain/analytics"
	"github.com/moath17/taskdashbord-sub001/internal/domain/goal"
	"github.com/moath17/taskdashbord-sub001/internal/domain/task"
	"github.com/moath17/taskdashbord-sub001/internal/domain/user"
)

type stubGoalRepo struct{ goals []goal.Goal }

func (r *stubGoalRepo) ListByOrganization(_ context.Context, _ string) ([]goal.Goal, error) {
	return r.goals, nil
}

type stubTaskRepo struct{ tasks []task.Task }

func (r *stubTaskRepo) ListByOrganization(_ context.Context, _ string) ([]task.Task, error) {
	return r.tasks, nil
}

func (r *stubTaskRepo) ListByAssignee(_ context.Context, _, userID string) ([]task.Task, error) {
	var out []task.Task
	for _, t := range r.tasks {
		if t.AssignedToUserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

type stubUserRepo struct{ users []user.User }

func (r *stubUserRepo) ListByOrganization(_ context.Context, _ string) ([]user.User, error) {
	return r.users, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			return &r.users[i], nil
		}
	}
	return nil, user.ErrUserNotFound
}

func newTestService(goals []goal.Goal, tasks []task.Task, users []user.User) *AnalyticsServiceImpl {
	return &AnalyticsServiceImpl{
		goalRepo: &stubGoalRepo{goals: goals},
		taskRepo: &stubTaskRepo{tasks: tasks},
		userRepo: &stubUserRepo{users: users},
		engine:   NewRiskEngine(0),
	}
}

// authedContext builds a request context carrying verified-token claims, the
// same shape the Verifier middleware leaves behind.
func authedContext(t *testing.T, userID string, role user.Role) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	tok, _, err := ja.Encode(map[string]interface{}{
		"user_id":         userID,
		"organization_id": "org-1",
		"role":            string(role),
		"type":            "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func TestDashboard_TopRisksTruncatedAndOrdered(t *testing.T) {
	t.Parallel()
	now := time.Now()

	// Seven goals, each with ten tasks of which i are overdue. Scores rise
	// with i, so the top-5 cut must keep g6..g2 in descending order.
	var goals []goal.Goal
	var tasks []task.Task
	for i := 0; i < 7; i++ {
		id := fmt.Sprintf("g%d", i)
		ownerID := fmt.Sprintf("owner-%d", i)
		goals = append(goals, makeGoal(id, goal.TypeMBO, ownerID,
			timePtr(now.AddDate(0, 0, -5)), timePtr(now.AddDate(0, 0, 5))))
		for j := 0; j < 10; j++ {
			due := timePtr(now.AddDate(0, 0, 5))
			status := task.StatusNew
			if j < i {
				due = timePtr(now.AddDate(0, 0, -1))
				status = task.StatusInProgress
			}
			tasks = append(tasks, makeTask(fmt.Sprintf("%s-t%d", id, j), id, ownerID, status, due))
		}
	}

	svc := newTestService(goals, tasks, nil)
	ctx := authedContext(t, "mgr", user.RoleManager)

	dash, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 7, dash.Summary.TotalGoals)
	require.Len(t, dash.TopRisks, 5)
	for i, wantID := range []string{"g6", "g5", "g4", "g3", "g2"} {
		assert.Equal(t, wantID, dash.TopRisks[i].GoalID)
	}
	for i := 1; i < len(dash.TopRisks); i++ {
		assert.GreaterOrEqual(t, dash.TopRisks[i-1].RiskScore, dash.TopRisks[i].RiskScore)
	}

	// Scores land at ~25+4i: g0..g2 below the MEDIUM band, g3..g6 inside it.
	assert.Equal(t, analytics.RiskDistribution{Low: 3, Medium: 4, High: 0}, dash.RiskDistribution)
	assert.Zero(t, dash.Summary.GoalsAtRisk)
	assert.InDelta(t, 37, dash.Summary.AverageRiskScore, 0.5)
}

func TestDashboard_UpcomingDeadlinesWindow(t *testing.T) {
	t.Parallel()
	now := time.Now()
	start := timePtr(now.AddDate(0, 0, -10))

	goals := []goal.Goal{
		makeGoal("g-far", goal.TypeMBO, "u1", start, timePtr(now.AddDate(0, 0, 15))),
		makeGoal("g-due-b", goal.TypeMBO, "u1", start, timePtr(now.AddDate(0, 0, 3))),
		makeGoal("g-past", goal.TypeMBO, "u1", start, timePtr(now.AddDate(0, 0, -1))),
		makeGoal("g-edge", goal.TypeMBO, "u1", start, timePtr(now.AddDate(0, 0, 14))),
		makeGoal("g-due-a", goal.TypeMBO, "u1", start, timePtr(now.AddDate(0, 0, 3))),
	}

	svc := newTestService(goals, nil, nil)
	ctx := authedContext(t, "mgr", user.RoleManager)

	dash, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	// Past-due and beyond-window goals drop out; equal deadlines order by id.
	require.Len(t, dash.UpcomingDeadlines, 3)
	assert.Equal(t, "g-due-a", dash.UpcomingDeadlines[0].GoalID)
	assert.Equal(t, "g-due-b", dash.UpcomingDeadlines[1].GoalID)
	assert.Equal(t, "g-edge", dash.UpcomingDeadlines[2].GoalID)
	assert.Equal(t, 3, dash.UpcomingDeadlines[0].DaysRemaining)
	assert.Equal(t, 3, dash.UpcomingDeadlines[1].DaysRemaining)
	assert.Equal(t, 14, dash.UpcomingDeadlines[2].DaysRemaining)
}

func TestGoalRisks_OwnerFilterRequiresKnownUser(t *testing.T) {
	t.Parallel()
	now := time.Now()
	start, end := timePtr(now.AddDate(0, 0, -5)), timePtr(now.AddDate(0, 0, 5))

	users := []user.User{
		{ID: "alice", Name: "Alice", Role: user.RoleEmployee},
		{ID: "bob", Name: "Bob", Role: user.RoleEmployee},
	}
	goals := []goal.Goal{
		makeGoal("g-alice", goal.TypeMBO, "alice", start, end),
		makeGoal("g-bob", goal.TypeMBO, "bob", start, end),
	}

	svc := newTestService(goals, nil, users)
	ctx := authedContext(t, "mgr", user.RoleManager)

	results, err := svc.GoalRisks(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "g-alice", results[0].GoalID)

	_, err = svc.GoalRisks(ctx, "ghost")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	// Employees are forced to their own scope, so their filter is never
	// looked up.
	empCtx := authedContext(t, "bob", user.RoleEmployee)
	results, err = svc.GoalRisks(empCtx, "ghost")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "g-bob", results[0].GoalID)
}
