package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRSVPFormValidate(t *testing.T) {
	t.Run("empty form", func(t *testing.T) {
		form := RSVPForm{}
		assert.Equal(t, []string{
			"Name is required",
			"Email is required",
			"Guest count must be at least 1",
		}, form.Validate())
	})

	t.Run("bad email", func(t *testing.T) {
		form := RSVPForm{Name: "Sam", Email: "sam at example", GuestCount: 1}
		assert.Equal(t, []string{"Please enter a valid email address"}, form.Validate())
	})

	t.Run("valid", func(t *testing.T) {
		form := RSVPForm{Name: "Sam", Email: "sam@example.org", GuestCount: 3}
		assert.Empty(t, form.Validate())
	})
}

func TestWantsReminderEmailDefaultsTrue(t *testing.T) {
	form := RSVPForm{}
	assert.True(t, form.WantsReminderEmail())

	off := false
	form.ReminderEmail = &off
	assert.False(t, form.WantsReminderEmail())
}
