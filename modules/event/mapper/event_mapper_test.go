package mapper

import (
	"testing"
	"time"

	"community-api/modules/event/dto"
	"community-api/modules/event/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDateTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"local datetime gets seconds and zone", "2025-07-31T01:42", "2025-07-31T01:42:00.000Z"},
		{"midnight local datetime", "2025-01-01T00:00", "2025-01-01T00:00:00.000Z"},
		{"date only passes through", "2025-07-31", "2025-07-31"},
		{"already zoned passes through", "2025-07-31T01:42:00.000Z", "2025-07-31T01:42:00.000Z"},
		{"with seconds passes through", "2025-07-31T01:42:15", "2025-07-31T01:42:15"},
		{"empty passes through", "", ""},
		{"garbage passes through", "not a date", "not a date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDateTime(tt.input))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Community Gathering & Prayer", "community-gathering-prayer"},
		{"Youth Study Circle!!!", "youth-study-circle"},
		{"  Devotional  ", "devotional"},
		{"already-a-slug", "already-a-slug"},
		{"2025 Holy Day", "2025-holy-day"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	slug := Slugify("Community Gathering & Prayer")
	assert.Equal(t, slug, Slugify(slug))
}

func validForm() *dto.EventForm {
	return &dto.EventForm{
		Title:     "Community Gathering",
		Location:  "Community Center",
		StartDate: "2025-07-31T18:30",
		HostName:  "Jordan Lee",
		HostEmail: "jordan@example.org",
	}
}

func TestFromFormStampsOwnershipAndSlug(t *testing.T) {
	creator := uuid.New()

	ev, err := FromForm(validForm(), creator)
	require.NoError(t, err)

	assert.Equal(t, creator, ev.CreatedBy)
	assert.Equal(t, "community-gathering", ev.Slug)
	assert.Equal(t, time.Date(2025, 7, 31, 18, 30, 0, 0, time.UTC), ev.StartDate)
	assert.Equal(t, entity.CalendarCommunityGathering, ev.CalendarType)
	assert.Equal(t, entity.StatusPublished, ev.Status)
}

func TestFromFormCoalescesEmptyOptionals(t *testing.T) {
	form := validForm()
	form.Description = "   "
	form.EndDate = ""
	form.FeaturedImageURL = "  "

	ev, err := FromForm(form, uuid.New())
	require.NoError(t, err)

	assert.Nil(t, ev.Description)
	assert.Nil(t, ev.EndDate)
	assert.Nil(t, ev.FeaturedImageURL)
}

func TestFromFormKeepsNonEmptyOptionals(t *testing.T) {
	form := validForm()
	form.Description = "  An evening of prayer.  "
	form.EndDate = "2025-07-31T20:00"

	ev, err := FromForm(form, uuid.New())
	require.NoError(t, err)

	require.NotNil(t, ev.Description)
	assert.Equal(t, "An evening of prayer.", *ev.Description)
	require.NotNil(t, ev.EndDate)
	assert.Equal(t, time.Date(2025, 7, 31, 20, 0, 0, 0, time.UTC), *ev.EndDate)
}

func TestFromFormGatesRecurrenceWhenNotRecurring(t *testing.T) {
	form := validForm()
	form.IsRecurring = false
	// Stale recurrence state left in the form must not survive.
	form.RecurrenceType = "weekly"
	form.RecurrenceInterval = "2"
	form.RecurrenceEndDate = "2025-12-31"

	ev, err := FromForm(form, uuid.New())
	require.NoError(t, err)

	assert.False(t, ev.IsRecurring)
	assert.Equal(t, entity.RecurrenceNone, ev.RecurrenceType)
	assert.Nil(t, ev.RecurrenceInterval)
	assert.Nil(t, ev.RecurrenceEndDate)
}

func TestFromFormKeepsRecurrenceWhenRecurring(t *testing.T) {
	form := validForm()
	form.IsRecurring = true
	form.RecurrenceType = "weekly"
	form.RecurrenceInterval = "2"
	form.RecurrenceEndDate = "2025-12-31"

	ev, err := FromForm(form, uuid.New())
	require.NoError(t, err)

	assert.True(t, ev.IsRecurring)
	assert.Equal(t, entity.RecurrenceWeekly, ev.RecurrenceType)
	require.NotNil(t, ev.RecurrenceInterval)
	assert.Equal(t, 2, *ev.RecurrenceInterval)
	require.NotNil(t, ev.RecurrenceEndDate)
}

func TestFromFormRejectsBadStartDate(t *testing.T) {
	form := validForm()
	form.StartDate = "next tuesday"

	_, err := FromForm(form, uuid.New())
	assert.Error(t, err)
}

func TestApplyFormPreservesSlugAndOwnership(t *testing.T) {
	creator := uuid.New()
	ev, err := FromForm(validForm(), creator)
	require.NoError(t, err)
	originalSlug := ev.Slug

	form := validForm()
	form.Title = "Renamed Gathering"
	require.NoError(t, ApplyForm(ev, form))

	assert.Equal(t, "Renamed Gathering", ev.Title)
	assert.Equal(t, originalSlug, ev.Slug)
	assert.Equal(t, creator, ev.CreatedBy)
}

func TestApplyFormClearsDroppedOptionals(t *testing.T) {
	form := validForm()
	form.Description = "Keep me"
	form.EndDate = "2025-07-31T20:00"
	ev, err := FromForm(form, uuid.New())
	require.NoError(t, err)

	cleared := validForm()
	require.NoError(t, ApplyForm(ev, cleared))

	assert.Nil(t, ev.Description)
	assert.Nil(t, ev.EndDate)
}
