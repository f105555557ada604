package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateCapabilities(t *testing.T) {
	tests := []struct {
		name       string
		roles      []string
		adminPanel bool
		author     bool
	}{
		{"nil roles", nil, false, false},
		{"empty roles", []string{}, false, false},
		{"admin", []string{"admin"}, true, true},
		{"editor", []string{"editor"}, true, true},
		{"author", []string{"author"}, false, true},
		{"author and editor", []string{"author", "editor"}, true, true},
		{"unknown role", []string{"superuser"}, false, false},
		{"unknown alongside author", []string{"superuser", "author"}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := EvaluateCapabilities(tt.roles)
			assert.Equal(t, tt.adminPanel, caps.CanAccessAdminPanel)
			assert.Equal(t, tt.author, caps.CanAuthorEvents)
		})
	}
}

func TestRoutePredicates(t *testing.T) {
	assert.True(t, CanAccessAdminPanel([]string{"admin"}))
	assert.False(t, CanAccessAdminPanel([]string{"author"}))
	assert.True(t, CanAuthorEvents([]string{"author"}))
	assert.False(t, CanAuthorEvents(nil))
}
