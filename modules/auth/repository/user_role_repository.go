package repository

import (
	"context"

	"community-api/core/database"
	"community-api/core/logger"
	"community-api/modules/auth/entity"

	"github.com/google/uuid"
)

type UserRoleRepositoryInterface interface {
	RolesForUser(ctx context.Context, userID uuid.UUID) ([]string, error)
	Assign(ctx context.Context, userID uuid.UUID, role entity.Role) error
}

type UserRoleRepository struct {
	db database.IDatabase
}

func NewUserRoleRepository(db database.IDatabase) *UserRoleRepository {
	return &UserRoleRepository{db: db}
}

func (r *UserRoleRepository) RolesForUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query := `SELECT role FROM user_roles WHERE user_id = $1 ORDER BY created_at`
	var roles []string
	err := r.db.SelectContext(ctx, &roles, query, userID)
	if err != nil {
		logger.Error("UserRoleRepository:RolesForUser:Error:", err)
		return nil, err
	}
	return roles, nil
}

// Assign records a role for a user. Assignments are append-only; repeating
// an existing assignment is a no-op.
func (r *UserRoleRepository) Assign(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	query := `
		INSERT INTO user_roles (user_id, role, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, role) DO NOTHING
	`
	if err := r.db.ExecContext(ctx, query, userID, role); err != nil {
		logger.Error("UserRoleRepository:Assign:Error:", err)
		return err
	}
	return nil
}
