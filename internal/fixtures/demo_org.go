// Package fixtures provides in-memory demo data for one organization, used by
// the reporting test suites and local tooling.
package fixtures

import (
	"time"

	"github.com/google/uuid"

	"github.com/moath17/taskdashbord-sub001/internal/domain/goal"
	"github.com/moath17/taskdashbord-sub001/internal/domain/plan"
	"github.com/moath17/taskdashbord-sub001/internal/domain/task"
	"github.com/moath17/taskdashbord-sub001/internal/domain/user"
)

// DemoOrg is a small but fully-linked organization snapshot.
type DemoOrg struct {
	OrganizationID string
	Manager        user.User
	Employees      []user.User
	Goals          []goal.Goal
	Tasks          []task.Task
	LeavePlans     []plan.LeavePlan
	TrainingPlans  []plan.TrainingPlan
}

// NewDemoOrg builds a deterministic demo organization anchored at `now`: one
// manager, two employees, an annual goal with one MBO child, a spread of task
// statuses, and an approved leave/training pair that overlaps.
func NewDemoOrg(now time.Time) DemoOrg {
	orgID := uuid.NewString()

	manager := NewUser(orgID, "Dana Reeve", user.RoleManager)
	emp1 := NewUser(orgID, "Alex Toma", user.RoleEmployee)
	emp2 := NewUser(orgID, "Sam Idris", user.RoleEmployee)

	annual := NewGoal(orgID, "Grow enterprise revenue", goal.TypeAnnual, emp1.ID,
		now.AddDate(0, -2, 0), now.AddDate(0, 10, 0))
	mbo := NewChildGoal(orgID, "Close 5 enterprise deals in Q3", emp1.ID, annual.ID,
		now.AddDate(0, -1, 0), now.AddDate(0, 2, 0))

	tasks := []task.Task{
		NewTask(orgID, "Draft enterprise pricing", emp1.ID, &mbo.ID, task.StatusCompleted, task.PriorityHigh, now.AddDate(0, 0, -20), now.AddDate(0, 0, -5)),
		NewTask(orgID, "Run pilot with first customer", emp1.ID, &mbo.ID, task.StatusInProgress, task.PriorityHigh, now.AddDate(0, 0, -10), now.AddDate(0, 0, 10)),
		NewTask(orgID, "Prepare renewal playbook", emp2.ID, &mbo.ID, task.StatusNew, task.PriorityMedium, now.AddDate(0, 0, -3), now.AddDate(0, 0, 20)),
	}

	leave := NewLeavePlan(orgID, emp1.ID, plan.StatusApproved,
		date(now, 10), date(now, 19))
	training := NewTrainingPlan(orgID, emp1.ID, plan.StatusApproved,
		date(now, 14), date(now, 17))

	return DemoOrg{
		OrganizationID: orgID,
		Manager:        manager,
		Employees:      []user.User{emp1, emp2},
		Goals:          []goal.Goal{annual, mbo},
		Tasks:          tasks,
		LeavePlans:     []plan.LeavePlan{leave},
		TrainingPlans:  []plan.TrainingPlan{training},
	}
}

func NewUser(orgID, name string, role user.Role) user.User {
	now := time.Now()
	return user.User{
		ID:             uuid.NewString(),
		OrganizationID: orgID,
		Name:           name,
		Email:          uuid.NewString()[:8] + "@example.com",
		Role:           role,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func NewGoal(orgID, title string, goalType goal.Type, ownerID string, start, end time.Time) goal.Goal {
	now := time.Now()
	return goal.Goal{
		ID:             uuid.NewString(),
		OrganizationID: orgID,
		Title:          title,
		Type:           goalType,
		OwnerUserID:    ownerID,
		StartDate:      &start,
		EndDate:        &end,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func NewChildGoal(orgID, title, ownerID, parentID string, start, end time.Time) goal.Goal {
	g := NewGoal(orgID, title, goal.TypeMBO, ownerID, start, end)
	g.ParentGoalID = &parentID
	return g
}

func NewTask(orgID, title, assigneeID string, goalID *string, status task.Status, priority task.Priority, start, due time.Time) task.Task {
	now := time.Now()
	t := task.Task{
		ID:               uuid.NewString(),
		OrganizationID:   orgID,
		Title:            title,
		Status:           status,
		Priority:         priority,
		AssignedToUserID: assigneeID,
		GoalID:           goalID,
		StartDate:        &start,
		DueDate:          &due,
		CreatedAt:        start,
		UpdatedAt:        now,
	}
	if status == task.StatusCompleted {
		completed := due.AddDate(0, 0, -1)
		t.CompletedAt = &completed
	}
	return t
}

func NewLeavePlan(orgID, userID string, status plan.Status, start, end time.Time) plan.LeavePlan {
	now := time.Now()
	return plan.LeavePlan{
		ID:             uuid.NewString(),
		OrganizationID: orgID,
		UserID:         userID,
		Type:           "annual",
		StartDate:      &start,
		EndDate:        &end,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func NewTrainingPlan(orgID, userID string, status plan.Status, start, end time.Time) plan.TrainingPlan {
	now := time.Now()
	return plan.TrainingPlan{
		ID:             uuid.NewString(),
		OrganizationID: orgID,
		UserID:         userID,
		Title:          "Security awareness",
		Type:           "online",
		StartDate:      &start,
		EndDate:        &end,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// date returns midnight `days` days after now, keeping fixtures on whole-day
// boundaries so overlap day counts stay exact.
func date(now time.Time, days int) time.Time {
	y, m, d := now.AddDate(0, 0, days).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
