package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/moath17/taskdashbord-sub001/internal/domain/user"
	"github.com/moath17/taskdashbord-sub001/internal/pkg/database"
)

type userRepositoryImpl struct {
	db database.Querier
}

func NewUserRepository(db database.Querier) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]user.User, error) {
	query := `
		SELECT id, organization_id, name, email, role, created_at, updated_at
		FROM users
		WHERE organization_id = $1
		ORDER BY name ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.OrganizationID, &u.Name, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (*user.User, error) {
	query := `
		SELECT id, organization_id, name, email, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var u user.User
	err := r.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.OrganizationID, &u.Name, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}
