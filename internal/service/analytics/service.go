package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"

	"github.com/moath17/taskdashbord-sub001/internal/domain/analytics"
	"github.com/moath17/taskdashbord-sub001/internal/domain/goal"
	"github.com/moath17/taskdashbord-sub001/internal/domain/task"
	"github.com/moath17/taskdashbord-sub001/internal/domain/user"
)

// deadlineLookaheadDays is the window for the upcoming-deadlines list.
const deadlineLookaheadDays = 14

// topRiskCount caps the top-risks list on the analytics dashboard.
const topRiskCount = 5

type AnalyticsServiceImpl struct {
	goalRepo goal.GoalRepository
	taskRepo task.TaskRepository
	userRepo user.UserRepository
	engine   *RiskEngine
}

func NewAnalyticsService(goalRepo goal.GoalRepository, taskRepo task.TaskRepository, userRepo user.UserRepository, engine *RiskEngine) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		goalRepo: goalRepo,
		taskRepo: taskRepo,
		userRepo: userRepo,
		engine:   engine,
	}
}

type callerIdentity struct {
	OrganizationID string
	UserID         string
	Role           user.Role
}

// getIdentity extracts the caller's organization, user id and role from JWT claims
func getIdentity(ctx context.Context) (callerIdentity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return callerIdentity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	orgID, ok := claims["organization_id"].(string)
	if !ok || orgID == "" {
		return callerIdentity{}, fmt.Errorf("organization_id not found in claims")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return callerIdentity{}, fmt.Errorf("user_id not found in claims")
	}
	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return callerIdentity{}, fmt.Errorf("role not found in claims")
	}

	return callerIdentity{OrganizationID: orgID, UserID: userID, Role: user.Role(roleStr)}, nil
}

type snapshot struct {
	Goals []goal.Goal
	Tasks []task.Task
	Users []user.User
}

// loadSnapshot performs the single point-in-time read of the entity store.
// Three queries fanned out in parallel; the computation below never re-reads.
func (s *AnalyticsServiceImpl) loadSnapshot(ctx context.Context, organizationID string) (*snapshot, error) {
	var snap snapshot
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		goals, err := s.goalRepo.ListByOrganization(gCtx, organizationID)
		if err != nil {
			return err
		}
		snap.Goals = goals
		return nil
	})
	g.Go(func() error {
		tasks, err := s.taskRepo.ListByOrganization(gCtx, organizationID)
		if err != nil {
			return err
		}
		snap.Tasks = tasks
		return nil
	})
	g.Go(func() error {
		users, err := s.userRepo.ListByOrganization(gCtx, organizationID)
		if err != nil {
			return err
		}
		snap.Users = users
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// analyzeGoals runs the risk engine over every goal in scope and returns the
// reports sorted by score descending, ties broken by goal id so repeated calls
// against unchanged input always yield the same order.
func (s *AnalyticsServiceImpl) analyzeGoals(snap *snapshot, caller callerIdentity, ownerID string, now time.Time) []analytics.GoalRiskAnalysis {
	// Employees only ever see their own goals, whatever filter was asked for.
	if caller.Role == user.RoleEmployee {
		ownerID = caller.UserID
	}

	results := make([]analytics.GoalRiskAnalysis, 0, len(snap.Goals))
	for _, g := range snap.Goals {
		if ownerID != "" && g.OwnerUserID != ownerID {
			continue
		}
		results = append(results, s.engine.AnalyzeGoal(g, snap.Goals, snap.Tasks, now))
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].RiskScore != results[j].RiskScore {
			return results[i].RiskScore > results[j].RiskScore
		}
		return results[i].GoalID < results[j].GoalID
	})
	return results
}

// GoalRisks returns the per-goal risk reports for the caller's scope
func (s *AnalyticsServiceImpl) GoalRisks(ctx context.Context, ownerID string) ([]analytics.GoalRiskAnalysis, error) {
	caller, err := getIdentity(ctx)
	if err != nil {
		return nil, err
	}

	// An explicit owner filter must name a real user. Employees skip the
	// lookup because their scope is forced to their own id anyway.
	if ownerID != "" && caller.Role != user.RoleEmployee {
		if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
			return nil, err
		}
	}

	snap, err := s.loadSnapshot(ctx, caller.OrganizationID)
	if err != nil {
		return nil, err
	}

	return s.analyzeGoals(snap, caller, ownerID, time.Now()), nil
}

// Dashboard returns the combined analytics dashboard for the caller's scope
func (s *AnalyticsServiceImpl) Dashboard(ctx context.Context) (*analytics.AnalyticsDashboard, error) {
	caller, err := getIdentity(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := s.loadSnapshot(ctx, caller.OrganizationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	risks := s.analyzeGoals(snap, caller, "", now)

	scopedTasks := snap.Tasks
	if caller.Role == user.RoleEmployee {
		scopedTasks = filterTasksByAssignee(snap.Tasks, caller.UserID)
	}

	dash := &analytics.AnalyticsDashboard{
		Summary: analytics.AnalyticsSummary{
			TotalGoals: len(risks),
			TotalTasks: len(scopedTasks),
		},
		TopRisks:          topRisks(risks, topRiskCount),
		UpcomingDeadlines: upcomingDeadlines(snap.Goals, risks, caller, now),
		VelocityMetrics:   ComputeVelocity(scopedTasks, now),
	}

	var scoreSum float64
	for i := range risks {
		scoreSum += risks[i].RiskScore
		switch risks[i].RiskLevel {
		case analytics.RiskLevelLow:
			dash.RiskDistribution.Low++
		case analytics.RiskLevelMedium:
			dash.RiskDistribution.Medium++
		case analytics.RiskLevelHigh:
			dash.RiskDistribution.High++
			dash.Summary.GoalsAtRisk++
		}
	}
	if len(risks) > 0 {
		dash.Summary.AverageRiskScore = math.Round(scoreSum/float64(len(risks))*100) / 100
	}

	return dash, nil
}

// Workloads returns the per-user workload reports for the organization
func (s *AnalyticsServiceImpl) Workloads(ctx context.Context) ([]analytics.UserWorkloadAnalysis, error) {
	caller, err := getIdentity(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := s.loadSnapshot(ctx, caller.OrganizationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	risks := s.analyzeGoals(snap, caller, "", now)

	results := make([]analytics.UserWorkloadAnalysis, 0, len(snap.Users))
	for _, u := range snap.Users {
		results = append(results, s.engine.AnalyzeWorkload(u, snap.Tasks, risks, now))
	}
	return results, nil
}

func topRisks(risks []analytics.GoalRiskAnalysis, n int) []analytics.GoalRiskAnalysis {
	if len(risks) > n {
		risks = risks[:n]
	}
	// Copy so the dashboard payload does not alias the full report slice.
	top := make([]analytics.GoalRiskAnalysis, len(risks))
	copy(top, risks)
	return top
}

func upcomingDeadlines(goals []goal.Goal, risks []analytics.GoalRiskAnalysis, caller callerIdentity, now time.Time) []analytics.UpcomingDeadline {
	levelByGoal := make(map[string]analytics.RiskLevel, len(risks))
	for i := range risks {
		levelByGoal[risks[i].GoalID] = risks[i].RiskLevel
	}

	var upcoming []analytics.UpcomingDeadline
	for i := range goals {
		g := &goals[i]
		if g.EndDate == nil {
			continue
		}
		// Risk reports already carry the caller's scope; goals outside it have
		// no entry and are skipped.
		level, ok := levelByGoal[g.ID]
		if !ok {
			continue
		}
		until := g.EndDate.Sub(now)
		if until < 0 {
			continue
		}
		days := int(math.Ceil(until.Hours() / 24))
		if days > deadlineLookaheadDays {
			continue
		}
		upcoming = append(upcoming, analytics.UpcomingDeadline{
			GoalID:        g.ID,
			GoalTitle:     g.Title,
			EndDate:       *g.EndDate,
			DaysRemaining: days,
			RiskLevel:     level,
		})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].DaysRemaining != upcoming[j].DaysRemaining {
			return upcoming[i].DaysRemaining < upcoming[j].DaysRemaining
		}
		return upcoming[i].GoalID < upcoming[j].GoalID
	})
	return upcoming
}

func filterTasksByAssignee(tasks []task.Task, userID string) []task.Task {
	var scoped []task.Task
	for i := range tasks {
		if tasks[i].AssignedToUserID == userID {
			scoped = append(scoped, tasks[i])
		}
	}
	return scoped
}
