package postgresql

import (
	"context"
	"fmt"

	"github.com/moath17/taskdashbord-sub001/internal/domain/plan"
	"github.com/moath17/taskdashbord-sub001/internal/pkg/database"
)

type planRepositoryImpl struct {
	db database.Querier
}

func NewPlanRepository(db database.Querier) plan.PlanRepository {
	return &planRepositoryImpl{db: db}
}

func (r *planRepositoryImpl) ListLeaveByOrganization(ctx context.Context, organizationID string) ([]plan.LeavePlan, error) {
	query := `
		SELECT id, organization_id, user_id, type, start_date, end_date, status, created_at, updated_at
		FROM leave_plans
		WHERE organization_id = $1
		ORDER BY start_date ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave plans: %w", err)
	}
	defer rows.Close()

	var plans []plan.LeavePlan
	for rows.Next() {
		var p plan.LeavePlan
		if err := rows.Scan(&p.ID, &p.OrganizationID, &p.UserID, &p.Type, &p.StartDate, &p.EndDate,
			&p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave plan: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *planRepositoryImpl) ListTrainingByOrganization(ctx context.Context, organizationID string) ([]plan.TrainingPlan, error) {
	query := `
		SELECT id, organization_id, user_id, title, type, start_date, end_date, status, created_at, updated_at
		FROM training_plans
		WHERE organization_id = $1
		ORDER BY start_date ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query training plans: %w", err)
	}
	defer rows.Close()

	var plans []plan.TrainingPlan
	for rows.Next() {
		var p plan.TrainingPlan
		if err := rows.Scan(&p.ID, &p.OrganizationID, &p.UserID, &p.Title, &p.Type, &p.StartDate, &p.EndDate,
			&p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan training plan: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}
