package service

import "community-api/modules/auth/entity"

// Capabilities are the boolean gates derived from a user's role set. They
// are computed, never stored.
type Capabilities struct {
	CanAccessAdminPanel bool `json:"can_access_admin_panel"`
	CanAuthorEvents     bool `json:"can_author_events"`
}

// EvaluateCapabilities maps a role set to capabilities. An empty or nil
// role set (including unauthenticated requests and failed role lookups)
// yields no capabilities.
func EvaluateCapabilities(roles []string) Capabilities {
	var caps Capabilities
	for _, r := range roles {
		switch entity.Role(r) {
		case entity.RoleAdmin, entity.RoleEditor:
			caps.CanAccessAdminPanel = true
			caps.CanAuthorEvents = true
		case entity.RoleAuthor:
			caps.CanAuthorEvents = true
		}
	}
	return caps
}

// CanAccessAdminPanel is a route-gate predicate over a role set.
func CanAccessAdminPanel(roles []string) bool {
	return EvaluateCapabilities(roles).CanAccessAdminPanel
}

// CanAuthorEvents is a route-gate predicate over a role set.
func CanAuthorEvents(roles []string) bool {
	return EvaluateCapabilities(roles).CanAuthorEvents
}
