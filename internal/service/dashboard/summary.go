package dashboard

import (
	"math"
	"sort"
	"time"

	"github.com/moath17/taskdashbord-sub001/internal/domain/dashboard"
	"github.com/moath17/taskdashbord-sub001/internal/domain/plan"
	"github.com/moath17/taskdashbord-sub001/internal/domain/task"
	"github.com/moath17/taskdashbord-sub001/internal/domain/user"
)

// recentActivityDays is the window for the recent-tasks timeline.
const recentActivityDays = 30

// recentActivityLimit caps the recent-tasks list.
const recentActivityLimit = 10

// BuildSummary computes the role-scoped dashboard from an in-memory snapshot.
// Managers and owners see the whole organization with per-employee rows;
// employees see only their own tasks and plans. Pure: no storage access, no
// shared state, safe to call concurrently.
func BuildSummary(tasks []task.Task, users []user.User, leaves []plan.LeavePlan, trainings []plan.TrainingPlan,
	callerUserID string, callerRole user.Role, now time.Time) dashboard.Summary {

	manager := callerRole == user.RoleManager || callerRole == user.RoleOwner
	if !manager {
		tasks = scopeTasks(tasks, callerUserID)
		leaves = scopeLeaves(leaves, callerUserID)
		trainings = scopeTrainings(trainings, callerUserID)
		users = scopeUsers(users, callerUserID)
	}

	summary := dashboard.Summary{
		Tasks:             summarizeTasks(tasks, now),
		PriorityBreakdown: breakdownPriorities(tasks),
		RecentTasks:       recentTasks(tasks, users, now),
		ScheduleConflicts: DetectScheduleConflicts(users, leaves, trainings),
	}

	if manager {
		summary.EmployeeRows = employeeRows(tasks, users, now)
	}
	return summary
}

// summarizeTasks computes the headline counts. Delayed is date-driven: a task
// that was started, is not done and is past due counts as delayed even when
// its status field still says InProgress.
func summarizeTasks(tasks []task.Task, now time.Time) dashboard.TaskSummary {
	var s dashboard.TaskSummary
	for i := range tasks {
		t := &tasks[i]
		s.Total++
		switch t.Status {
		case task.StatusCompleted:
			s.Completed++
		case task.StatusInProgress:
			s.InProgress++
		case task.StatusNew:
			s.New++
		}
		if t.IsDelayedByDate(now) {
			s.Delayed++
		}
	}
	if s.Total > 0 {
		s.CompletionRate = math.Round(float64(s.Completed)/float64(s.Total)*100*100) / 100
	}
	return s
}

func breakdownPriorities(tasks []task.Task) dashboard.PriorityBreakdown {
	var b dashboard.PriorityBreakdown
	for i := range tasks {
		switch tasks[i].Priority {
		case task.PriorityHigh:
			b.High++
		case task.PriorityMedium:
			b.Medium++
		case task.PriorityLow:
			b.Low++
		}
	}
	return b
}

// employeeRows recomputes the task summary per user, same math as the
// employee-scoped view would produce for each one.
func employeeRows(tasks []task.Task, users []user.User, now time.Time) []dashboard.EmployeeTaskRow {
	rows := make([]dashboard.EmployeeTaskRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, dashboard.EmployeeTaskRow{
			UserID:   u.ID,
			UserName: u.Name,
			Summary:  summarizeTasks(scopeTasks(tasks, u.ID), now),
		})
	}
	return rows
}

// recentTasks returns tasks created within the activity window, newest first,
// ties broken by id, truncated to the limit.
func recentTasks(tasks []task.Task, users []user.User, now time.Time) []dashboard.RecentTaskItem {
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	since := now.AddDate(0, 0, -recentActivityDays)
	var recent []dashboard.RecentTaskItem
	for i := range tasks {
		t := &tasks[i]
		if t.CreatedAt.Before(since) {
			continue
		}
		recent = append(recent, dashboard.RecentTaskItem{
			TaskID:       t.ID,
			Title:        t.Title,
			Status:       t.Status,
			Priority:     t.Priority,
			AssigneeName: names[t.AssignedToUserID],
			CreatedAt:    t.CreatedAt,
		})
	}

	sort.SliceStable(recent, func(i, j int) bool {
		if !recent[i].CreatedAt.Equal(recent[j].CreatedAt) {
			return recent[i].CreatedAt.After(recent[j].CreatedAt)
		}
		return recent[i].TaskID < recent[j].TaskID
	})

	if len(recent) > recentActivityLimit {
		recent = recent[:recentActivityLimit]
	}
	return recent
}

func scopeTasks(tasks []task.Task, userID string) []task.Task {
	var scoped []task.Task
	for i := range tasks {
		if tasks[i].AssignedToUserID == userID {
			scoped = append(scoped, tasks[i])
		}
	}
	return scoped
}

func scopeLeaves(leaves []plan.LeavePlan, userID string) []plan.LeavePlan {
	var scoped []plan.LeavePlan
	for i := range leaves {
		if leaves[i].UserID == userID {
			scoped = append(scoped, leaves[i])
		}
	}
	return scoped
}

func scopeTrainings(trainings []plan.TrainingPlan, userID string) []plan.TrainingPlan {
	var scoped []plan.TrainingPlan
	for i := range trainings {
		if trainings[i].UserID == userID {
			scoped = append(scoped, trainings[i])
		}
	}
	return scoped
}

func scopeUsers(users []user.User, userID string) []user.User {
	for i := range users {
		if users[i].ID == userID {
			return users[i : i+1]
		}
	}
	return nil
}
