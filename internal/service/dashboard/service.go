package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"

	"github.com/moath17/taskdashbord-sub001/internal/domain/dashboard"
	"github.com/moath17/taskdashbord-sub001/internal/domain/plan"
	"github.com/moath17/taskdashbord-sub001/internal/domain/task"
	"github.com/moath17/taskdashbord-sub001/internal/domain/user"
)

type DashboardServiceImpl struct {
	taskRepo task.TaskRepository
	userRepo user.UserRepository
	planRepo plan.PlanRepository
}

func NewDashboardService(taskRepo task.TaskRepository, userRepo user.UserRepository, planRepo plan.PlanRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		taskRepo: taskRepo,
		userRepo: userRepo,
		planRepo: planRepo,
	}
}

// getCaller extracts organization, user id and role from JWT claims
func getCaller(ctx context.Context) (orgID, userID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	orgID, ok := claims["organization_id"].(string)
	if !ok || orgID == "" {
		return "", "", "", fmt.Errorf("organization_id not found in claims")
	}
	userID, ok = claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", "", fmt.Errorf("user_id not found in claims")
	}
	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return "", "", "", fmt.Errorf("role not found in claims")
	}
	return orgID, userID, user.Role(roleStr), nil
}

// GetSummary loads a point-in-time snapshot with 4 parallel queries and
// aggregates it for the caller's scope.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context) (*dashboard.Summary, error) {
	orgID, userID, role, err := getCaller(ctx)
	if err != nil {
		return nil, err
	}

	var (
		tasks     []task.Task
		users     []user.User
		leaves    []plan.LeavePlan
		trainings []plan.TrainingPlan
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var tErr error
		// Employees only ever see their own tasks, so fetch just those.
		if role == user.RoleEmployee {
			tasks, tErr = s.taskRepo.ListByAssignee(gCtx, orgID, userID)
		} else {
			tasks, tErr = s.taskRepo.ListByOrganization(gCtx, orgID)
		}
		return tErr
	})
	g.Go(func() error {
		var uErr error
		users, uErr = s.userRepo.ListByOrganization(gCtx, orgID)
		return uErr
	})
	g.Go(func() error {
		var lErr error
		leaves, lErr = s.planRepo.ListLeaveByOrganization(gCtx, orgID)
		return lErr
	})
	g.Go(func() error {
		var tErr error
		trainings, tErr = s.planRepo.ListTrainingByOrganization(gCtx, orgID)
		return tErr
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := BuildSummary(tasks, users, leaves, trainings, userID, role, time.Now())
	return &summary, nil
}
