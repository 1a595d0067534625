package goal

import "time"

type Type string

const (
	TypeAnnual Type = "annual" // Year-level objective, may parent MBO goals
	TypeMBO    Type = "mbo"    // Quarterly / management-by-objectives goal
)

type Goal struct {
	ID             string
	OrganizationID string
	Title          string
	Type           Type
	OwnerUserID    string
	ParentGoalID   *string
	StartDate      *time.Time
	EndDate        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Join fields (for responses)
	OwnerName *string
}

// HasTimeline checks that the goal carries an explicit, non-degenerate date range
func (g *Goal) HasTimeline() bool {
	return g.StartDate != nil && g.EndDate != nil && g.EndDate.After(*g.StartDate)
}

// IsChildOf checks the parent-goal relationship
func (g *Goal) IsChildOf(parentID string) bool {
	return g.ParentGoalID != nil && *g.ParentGoalID == parentID
}
