package service

import (
	"context"

	"community-api/core/errors"
	"community-api/core/logger"
	"community-api/core/middleware"
	"community-api/core/utils"
	"community-api/modules/auth/dto"
	"community-api/modules/auth/entity"
	"community-api/modules/auth/repository"

	"github.com/google/uuid"
)

type AuthService struct {
	users repository.UserRepositoryInterface
	roles repository.UserRoleRepositoryInterface
}

func NewAuthService(users repository.UserRepositoryInterface, roles repository.UserRoleRepositoryInterface) *AuthService {
	return &AuthService{users: users, roles: roles}
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("AuthService:Login:GetByEmail:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up user", err)
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		logger.Error("AuthService:Login:GenerateToken:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to issue token", err)
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

// Me resolves the session into the profile plus derived capabilities.
func (s *AuthService) Me(ctx context.Context, session *middleware.Session) (*dto.MeResponse, error) {
	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		logger.Error("AuthService:Me:GetByID:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}

	caps := EvaluateCapabilities(session.Roles)
	return &dto.MeResponse{
		User: dto.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			CreatedAt: user.CreatedAt,
		},
		Roles: session.Roles,
		Capabilities: dto.CapabilitiesResponse{
			CanAccessAdminPanel: caps.CanAccessAdminPanel,
			CanAuthorEvents:     caps.CanAuthorEvents,
		},
	}, nil
}

// AssignRole appends a role to a user. Roles are never revoked here.
func (s *AuthService) AssignRole(ctx context.Context, userID string, req *dto.AssignRoleRequest) error {
	role := entity.Role(req.Role)
	if !role.Valid() {
		return errors.NewAppError(errors.ErrInvalidInput, "unknown role: "+req.Role, nil)
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "invalid user id", err)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to load user", err)
	}
	if user == nil {
		return errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}

	if err := s.roles.Assign(ctx, user.ID, role); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to assign role", err)
	}
	return nil
}
