package dto

import (
	"time"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// MeResponse is the session snapshot: identity, held roles, and the
// capabilities derived from them.
type MeResponse struct {
	User         UserResponse         `json:"user"`
	Roles        []string             `json:"roles"`
	Capabilities CapabilitiesResponse `json:"capabilities"`
}

type CapabilitiesResponse struct {
	CanAccessAdminPanel bool `json:"can_access_admin_panel"`
	CanAuthorEvents     bool `json:"can_author_events"`
}

type AssignRoleRequest struct {
	Role string `json:"role" validate:"required"`
}
