package middleware

import (
	"context"
	"strings"

	"community-api/core/cache"
	"community-api/core/constants"
	"community-api/core/errors"
	"community-api/core/logger"
	"community-api/core/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RoleLoader fetches the role strings held by a user.
type RoleLoader interface {
	RolesForUser(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// Session is the explicit per-request authentication context: populated by
// AuthMiddleware from the bearer token, discarded when the request ends.
// Handlers never consult ambient global state for the acting user.
type Session struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Roles  []string  `json:"roles"`
}

type Middleware struct {
	roles RoleLoader
	cache *cache.Cache
}

func New(roles RoleLoader, c *cache.Cache) *Middleware {
	return &Middleware{roles: roles, cache: c}
}

const sessionContextKey = "session"

// CurrentSession returns the authenticated session, if any.
func CurrentSession(c echo.Context) (*Session, bool) {
	s, ok := c.Get(sessionContextKey).(*Session)
	return s, ok && s != nil
}

// AuthMiddleware requires a valid bearer token and attaches a Session to
// the request context. Role lookup failures degrade to an empty role set:
// the request proceeds authenticated but without capabilities.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return errors.NewAppError(errors.ErrMissingAuthorizationHeader, "missing authorization header", nil)
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			tokenData, err := utils.ValidateAndParseToken(tokenString)
			if err != nil {
				return err
			}

			c.Set(sessionContextKey, &Session{
				UserID: tokenData.UserID,
				Email:  tokenData.Email,
				Roles:  m.loadRoles(c.Request().Context(), tokenData.UserID),
			})
			return next(c)
		}
	}
}

// Require gates a route on a capability predicate over the session's role
// set. Missing session evaluates against the empty role set.
func (m *Middleware) Require(check func(roles []string) bool, message string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var roles []string
			if s, ok := CurrentSession(c); ok {
				roles = s.Roles
			}
			if !check(roles) {
				return errors.NewAppError(errors.ErrForbidden, message, nil)
			}
			return next(c)
		}
	}
}

func (m *Middleware) loadRoles(ctx context.Context, userID uuid.UUID) []string {
	key := constants.RedisKeyUserRoles + userID.String()

	var cached []string
	if m.cache != nil && m.cache.GetJSON(ctx, key, &cached) {
		return cached
	}

	roles, err := m.roles.RolesForUser(ctx, userID)
	if err != nil {
		// Fail closed: no roles, no capabilities. The page shell still
		// renders for the user.
		logger.Error("Middleware:loadRoles:Error:", err, "user_id", userID)
		return nil
	}

	if m.cache != nil {
		if err := m.cache.SetJSON(ctx, key, roles, constants.UserRolesCacheTTL); err != nil {
			logger.Warn("Middleware:loadRoles:CacheSet:Error:", "error", err)
		}
	}
	return roles
}
