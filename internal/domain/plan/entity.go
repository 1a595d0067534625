package plan

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeavePlan is a vacation / leave request. Only approved plans with both dates
// set participate in schedule-conflict detection.
type LeavePlan struct {
	ID             string
	OrganizationID string
	UserID         string
	Type           string // 'annual', 'sick', 'unpaid', ...
	StartDate      *time.Time
	EndDate        *time.Time
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TrainingPlan is a scheduled training for a single user.
type TrainingPlan struct {
	ID             string
	OrganizationID string
	UserID         string
	Title          string
	Type           string // 'internal', 'external', 'online', ...
	StartDate      *time.Time
	EndDate        *time.Time
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasDates reports whether both boundary dates are present.
func (p *LeavePlan) HasDates() bool {
	return p.StartDate != nil && p.EndDate != nil
}

// HasDates reports whether both boundary dates are present.
func (p *TrainingPlan) HasDates() bool {
	return p.StartDate != nil && p.EndDate != nil
}
