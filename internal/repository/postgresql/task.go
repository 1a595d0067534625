package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/moath17/taskdashbord-sub001/internal/domain/task"
	"github.com/moath17/taskdashbord-sub001/internal/pkg/database"
)

type taskRepositoryImpl struct {
	db database.Querier
}

// NewTaskRepository accepts any Querier so callers can hand it the pool or a
// transaction.
func NewTaskRepository(db database.Querier) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

const taskColumns = `
	t.id, t.organization_id, t.title, t.status, t.priority, t.assigned_to_user_id,
	t.goal_id, t.start_date, t.due_date, t.completed_at, t.created_at, t.updated_at,
	u.name AS assignee_name
`

func (r *taskRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]task.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		LEFT JOIN users u ON t.assigned_to_user_id = u.id
		WHERE t.organization_id = $1
		ORDER BY t.created_at DESC, t.id ASC
	`

	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *taskRepositoryImpl) ListByAssignee(ctx context.Context, organizationID, userID string) ([]task.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		LEFT JOIN users u ON t.assigned_to_user_id = u.id
		WHERE t.organization_id = $1 AND t.assigned_to_user_id = $2
		ORDER BY t.created_at DESC, t.id ASC
	`

	rows, err := r.db.Query(ctx, query, organizationID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks by assignee: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func scanTasks(rows pgx.Rows) ([]task.Task, error) {
	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(&t.ID, &t.OrganizationID, &t.Title, &t.Status, &t.Priority, &t.AssignedToUserID,
			&t.GoalID, &t.StartDate, &t.DueDate, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt, &t.AssigneeName); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
