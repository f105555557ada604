package mapper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"community-api/modules/event/dto"
	"community-api/modules/event/entity"

	"github.com/google/uuid"
)

var localDateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}$`)

// NormalizeDateTime rewrites a local datetime field value
// (YYYY-MM-DDTHH:MM, as posted by datetime-local inputs) into
// YYYY-MM-DDTHH:MM:00.000Z. Anything else (date-only values, values that
// already carry seconds or a zone) passes through unchanged.
//
// This is a literal string rewrite, not a timezone conversion: the naive
// local value is stamped as if it were already UTC. The frontend has
// depended on these stored values since launch, so the rewrite is kept
// bug-for-bug compatible. Do not "fix" this without deciding the intended
// timezone semantics for existing rows.
func NormalizeDateTime(s string) string {
	if localDateTimePattern.MatchString(s) {
		return s + ":00.000Z"
	}
	return s
}

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a title: lowercase, every run of
// characters outside [a-z0-9] collapses to a single hyphen, edge hyphens
// stripped. Non-ASCII letters vanish with the runs rather than being
// transliterated. Deterministic, with no uniqueness guarantee; identical
// titles collide and the last write wins at the storage layer.
func Slugify(title string) string {
	s := nonSlugRun.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

// FromForm builds a persistence-ready Event from a validated form. It does
// not re-validate; run EventForm.Validate first. createdBy is stamped here,
// at creation, and never touched again.
func FromForm(form *dto.EventForm, createdBy uuid.UUID) (*entity.Event, error) {
	ev := &entity.Event{
		CreatedBy: createdBy,
		Slug:      Slugify(form.Title),
	}
	if err := applyForm(ev, form); err != nil {
		return nil, err
	}
	return ev, nil
}

// ApplyForm rewrites an existing event's mutable fields from a validated
// form. CreatedBy and Slug are preserved: ownership is immutable and slugs
// stay stable so published URLs keep working.
func ApplyForm(ev *entity.Event, form *dto.EventForm) error {
	return applyForm(ev, form)
}

func applyForm(ev *entity.Event, form *dto.EventForm) error {
	start, err := parseInstant(NormalizeDateTime(form.StartDate))
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", form.StartDate, err)
	}

	ev.Title = form.Title
	ev.Description = coalesceEmpty(form.Description, true)
	ev.Location = form.Location
	ev.StartDate = start
	ev.HostName = form.HostName
	ev.HostEmail = form.HostEmail
	ev.FeaturedImageURL = coalesceEmpty(form.FeaturedImageURL, false)

	ev.CalendarType = entity.CalendarType(form.CalendarType)
	if ev.CalendarType == "" {
		ev.CalendarType = entity.CalendarCommunityGathering
	}
	ev.Status = entity.EventStatus(form.Status)
	if ev.Status == "" {
		ev.Status = entity.StatusPublished
	}

	ev.EndDate = nil
	if strings.TrimSpace(form.EndDate) != "" {
		end, err := parseInstant(NormalizeDateTime(form.EndDate))
		if err != nil {
			return fmt.Errorf("invalid end date %q: %w", form.EndDate, err)
		}
		ev.EndDate = &end
	}

	if err := applyRecurrence(ev, form); err != nil {
		return err
	}
	return nil
}

// applyRecurrence gates the recurrence triple on IsRecurring: whatever the
// form held, a non-recurring event stores none/null/null.
func applyRecurrence(ev *entity.Event, form *dto.EventForm) error {
	ev.IsRecurring = form.IsRecurring
	if !form.IsRecurring {
		ev.RecurrenceType = entity.RecurrenceNone
		ev.RecurrenceInterval = nil
		ev.RecurrenceEndDate = nil
		return nil
	}

	ev.RecurrenceType = entity.RecurrenceType(form.RecurrenceType)

	interval, err := strconv.Atoi(strings.TrimSpace(form.RecurrenceInterval))
	if err != nil {
		return fmt.Errorf("invalid recurrence interval %q: %w", form.RecurrenceInterval, err)
	}
	ev.RecurrenceInterval = &interval

	ev.RecurrenceEndDate = nil
	if strings.TrimSpace(form.RecurrenceEndDate) != "" {
		until, err := parseInstant(NormalizeDateTime(form.RecurrenceEndDate))
		if err != nil {
			return fmt.Errorf("invalid recurrence end date %q: %w", form.RecurrenceEndDate, err)
		}
		ev.RecurrenceEndDate = &until
	}
	return nil
}

// coalesceEmpty turns empty or whitespace-only input into nil. Free-text
// fields are stored trimmed; URLs keep their exact value.
func coalesceEmpty(s string, trim bool) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	if trim {
		return &trimmed
	}
	return &s
}

func parseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
