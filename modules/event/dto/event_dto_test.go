package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validEventForm() EventForm {
	return EventForm{
		Title:     "Community Gathering",
		Location:  "Community Center",
		StartDate: "2025-07-31T18:30",
		HostName:  "Jordan Lee",
		HostEmail: "jordan@example.org",
	}
}

func TestEventFormValidateEmptyForm(t *testing.T) {
	form := EventForm{}

	assert.Equal(t, []string{
		"Title is required",
		"Location is required",
		"Start date is required",
		"Host name is required",
		"Host email is required",
	}, form.Validate())
}

func TestEventFormValidateOK(t *testing.T) {
	form := validEventForm()
	assert.Empty(t, form.Validate())
}

func TestEventFormValidateEmailFormat(t *testing.T) {
	form := validEventForm()
	form.HostEmail = "not-an-email"

	assert.Equal(t, []string{"Please enter a valid email address"}, form.Validate())
}

func TestEventFormValidateAggregatesInOrder(t *testing.T) {
	form := validEventForm()
	form.Title = ""
	form.HostEmail = "bad"
	form.Status = "archived"

	assert.Equal(t, []string{
		"Title is required",
		"Please enter a valid email address",
		"Invalid status",
	}, form.Validate())
}

func TestEventFormValidateRecurrence(t *testing.T) {
	t.Run("recurring requires type and interval", func(t *testing.T) {
		form := validEventForm()
		form.IsRecurring = true

		assert.Equal(t, []string{
			"Recurrence type is required for recurring events",
			"Recurrence interval must be a positive integer",
		}, form.Validate())
	})

	t.Run("type none counts as missing", func(t *testing.T) {
		form := validEventForm()
		form.IsRecurring = true
		form.RecurrenceType = "none"
		form.RecurrenceInterval = "1"

		assert.Equal(t, []string{"Recurrence type is required for recurring events"}, form.Validate())
	})

	t.Run("unknown type", func(t *testing.T) {
		form := validEventForm()
		form.IsRecurring = true
		form.RecurrenceType = "fortnightly"
		form.RecurrenceInterval = "1"

		assert.Equal(t, []string{"Invalid recurrence type"}, form.Validate())
	})

	t.Run("zero interval", func(t *testing.T) {
		form := validEventForm()
		form.IsRecurring = true
		form.RecurrenceType = "weekly"
		form.RecurrenceInterval = "0"

		assert.Equal(t, []string{"Recurrence interval must be a positive integer"}, form.Validate())
	})

	t.Run("recurrence fields ignored when not recurring", func(t *testing.T) {
		form := validEventForm()
		form.RecurrenceType = "fortnightly"
		form.RecurrenceInterval = "-3"

		assert.Empty(t, form.Validate())
	})
}

func TestEventFormValidateCalendarType(t *testing.T) {
	form := validEventForm()
	form.CalendarType = "picnic"

	assert.Equal(t, []string{"Invalid calendar type"}, form.Validate())
}
