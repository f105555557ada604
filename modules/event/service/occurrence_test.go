package service

import (
	"testing"
	"time"

	"community-api/modules/event/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseEvent(start time.Time) *entity.Event {
	ev := &entity.Event{
		StartDate:      start,
		RecurrenceType: entity.RecurrenceNone,
	}
	ev.ID = uuid.New()
	return ev
}

func TestExpandOccurrencesSingleEvent(t *testing.T) {
	start := time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC)
	ev := baseEvent(start)

	occ, err := ExpandOccurrences(ev, start.AddDate(0, 0, -1), start.AddDate(0, 0, 30))
	require.NoError(t, err)

	require.Len(t, occ, 1)
	assert.Equal(t, start, occ[0].StartDate)
	assert.Nil(t, occ[0].EndDate)
}

func TestExpandOccurrencesSingleEventOutsideWindow(t *testing.T) {
	start := time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC)
	ev := baseEvent(start)

	occ, err := ExpandOccurrences(ev, start.AddDate(0, 1, 0), start.AddDate(0, 2, 0))
	require.NoError(t, err)
	assert.Empty(t, occ)
}

func TestExpandOccurrencesWeekly(t *testing.T) {
	start := time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC)
	ev := baseEvent(start)
	ev.IsRecurring = true
	ev.RecurrenceType = entity.RecurrenceWeekly
	interval := 1
	ev.RecurrenceInterval = &interval

	occ, err := ExpandOccurrences(ev, start, start.AddDate(0, 0, 28))
	require.NoError(t, err)

	require.Len(t, occ, 5)
	assert.Equal(t, start, occ[0].StartDate)
	assert.Equal(t, start.AddDate(0, 0, 7), occ[1].StartDate)
	assert.Equal(t, start.AddDate(0, 0, 28), occ[4].StartDate)
}

func TestExpandOccurrencesRespectsInterval(t *testing.T) {
	start := time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC)
	ev := baseEvent(start)
	ev.IsRecurring = true
	ev.RecurrenceType = entity.RecurrenceWeekly
	interval := 2
	ev.RecurrenceInterval = &interval

	occ, err := ExpandOccurrences(ev, start, start.AddDate(0, 0, 28))
	require.NoError(t, err)

	require.Len(t, occ, 3)
	assert.Equal(t, start.AddDate(0, 0, 14), occ[1].StartDate)
}

func TestExpandOccurrencesStopsAtRecurrenceEnd(t *testing.T) {
	start := time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC)
	until := start.AddDate(0, 0, 10)
	ev := baseEvent(start)
	ev.IsRecurring = true
	ev.RecurrenceType = entity.RecurrenceDaily
	interval := 1
	ev.RecurrenceInterval = &interval
	ev.RecurrenceEndDate = &until

	occ, err := ExpandOccurrences(ev, start, start.AddDate(0, 2, 0))
	require.NoError(t, err)

	assert.Len(t, occ, 11)
}

func TestExpandOccurrencesCarriesDuration(t *testing.T) {
	start := time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	ev := baseEvent(start)
	ev.EndDate = &end
	ev.IsRecurring = true
	ev.RecurrenceType = entity.RecurrenceWeekly
	interval := 1
	ev.RecurrenceInterval = &interval

	occ, err := ExpandOccurrences(ev, start, start.AddDate(0, 0, 7))
	require.NoError(t, err)

	require.Len(t, occ, 2)
	require.NotNil(t, occ[1].EndDate)
	assert.Equal(t, occ[1].StartDate.Add(2*time.Hour), *occ[1].EndDate)
}

func TestExpandOccurrencesCapsUnboundedRules(t *testing.T) {
	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	ev := baseEvent(start)
	ev.IsRecurring = true
	ev.RecurrenceType = entity.RecurrenceDaily
	interval := 1
	ev.RecurrenceInterval = &interval

	occ, err := ExpandOccurrences(ev, start, start.AddDate(2, 0, 0))
	require.NoError(t, err)

	assert.LessOrEqual(t, len(occ), maxOccurrences)
}
