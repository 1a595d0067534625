package postgresql

import (
	"context"
	"fmt"

	"github.com/moath17/taskdashbord-sub001/internal/domain/goal"
	"github.com/moath17/taskdashbord-sub001/internal/pkg/database"
)

type goalRepositoryImpl struct {
	db database.Querier
}

func NewGoalRepository(db database.Querier) goal.GoalRepository {
	return &goalRepositoryImpl{db: db}
}

func (r *goalRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]goal.Goal, error) {
	query := `
		SELECT g.id, g.organization_id, g.title, g.type, g.owner_user_id, g.parent_goal_id,
		       g.start_date, g.end_date, g.created_at, g.updated_at, u.name AS owner_name
		FROM goals g
		LEFT JOIN users u ON g.owner_user_id = u.id
		WHERE g.organization_id = $1
		ORDER BY g.created_at ASC, g.id ASC
	`

	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	var goals []goal.Goal
	for rows.Next() {
		var g goal.Goal
		if err := rows.Scan(&g.ID, &g.OrganizationID, &g.Title, &g.Type, &g.OwnerUserID, &g.ParentGoalID,
			&g.StartDate, &g.EndDate, &g.CreatedAt, &g.UpdatedAt, &g.OwnerName); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}
