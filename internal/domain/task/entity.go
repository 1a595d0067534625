package task

import "time"

type Status string

const (
	StatusNew        Status = "New"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
	StatusDelayed    Status = "Delayed" // Explicitly flagged by a manager
)

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted, StatusDelayed:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

type Task struct {
	ID               string
	OrganizationID   string
	Title            string
	Status           Status
	Priority         Priority
	AssignedToUserID string
	GoalID           *string
	StartDate        *time.Time
	DueDate          *time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Join fields (for responses)
	AssigneeName *string
}

// IsCompleted checks if the task reached its terminal status
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// IsOverdue is the date-driven check: any non-completed task whose due date has
// passed. Independent of the explicit Delayed status, so a task can count as
// both delayed and overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Status != StatusCompleted && t.DueDate != nil && t.DueDate.Before(now)
}

// IsDelayedByDate is the dashboard definition of "delayed": the task was
// started (not New), is not done, and its due date has passed. The status
// field is deliberately not consulted beyond that.
func (t *Task) IsDelayedByDate(now time.Time) bool {
	if t.Status == StatusCompleted || t.Status == StatusNew {
		return false
	}
	return t.DueDate != nil && t.DueDate.Before(now)
}
