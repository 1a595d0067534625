package dashboard

import (
	"time"

	"github.com/moath17/taskdashbord-sub001/internal/domain/task"
)

// TaskSummary carries the headline task counts for a scope (whole org for
// managers, one user otherwise). Delayed is date-driven: started, not done,
// past due - regardless of the explicit status enum.
type TaskSummary struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	InProgress     int     `json:"in_progress"`
	New            int     `json:"new"`
	Delayed        int     `json:"delayed"`
	CompletionRate float64 `json:"completion_rate"` // percent, 2 decimals, 0 when empty
}

// PriorityBreakdown counts tasks per priority across the scope.
type PriorityBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// EmployeeTaskRow is the per-employee breakdown on the manager view.
type EmployeeTaskRow struct {
	UserID   string      `json:"user_id"`
	UserName string      `json:"user_name"`
	Summary  TaskSummary `json:"summary"`
}

// RecentTaskItem is a task created within the activity window, annotated with
// the assignee's display name.
type RecentTaskItem struct {
	TaskID       string        `json:"task_id"`
	Title        string        `json:"title"`
	Status       task.Status   `json:"status"`
	Priority     task.Priority `json:"priority"`
	AssigneeName string        `json:"assignee_name"`
	CreatedAt    time.Time     `json:"created_at"`
}

// OverlapRecord is a date-range intersection between one user's approved leave
// and approved training. Derived per (leave, training) pair, never stored.
type OverlapRecord struct {
	UserID         string    `json:"user_id"`
	UserName       string    `json:"user_name"`
	LeavePlanID    string    `json:"leave_plan_id"`
	TrainingPlanID string    `json:"training_plan_id"`
	OverlapStart   time.Time `json:"overlap_start"`
	OverlapEnd     time.Time `json:"overlap_end"`
	OverlapDays    int       `json:"overlap_days"` // inclusive of both boundary days
}

// Summary is the combined response for GET /dashboard.
type Summary struct {
	Tasks             TaskSummary       `json:"tasks"`
	PriorityBreakdown PriorityBreakdown `json:"priority_breakdown"`
	EmployeeRows      []EmployeeTaskRow `json:"employee_rows,omitempty"` // manager view only
	RecentTasks       []RecentTaskItem  `json:"recent_tasks"`
	ScheduleConflicts []OverlapRecord   `json:"schedule_conflicts"`
}
