package entity

import (
	"time"

	"community-api/core/entity"

	"github.com/google/uuid"
)

// CalendarType categorizes an event on the community calendar.
type CalendarType string

const (
	CalendarDevotional         CalendarType = "devotional"
	CalendarYouthClass         CalendarType = "youth_class"
	CalendarChildrensClass     CalendarType = "childrens_class"
	CalendarStudyCircle        CalendarType = "study_circle"
	CalendarHolyDay            CalendarType = "holy_day"
	CalendarCommunityGathering CalendarType = "community_gathering"
	CalendarOther              CalendarType = "other"
)

func (t CalendarType) Valid() bool {
	switch t {
	case CalendarDevotional, CalendarYouthClass, CalendarChildrensClass,
		CalendarStudyCircle, CalendarHolyDay, CalendarCommunityGathering, CalendarOther:
		return true
	}
	return false
}

type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
	StatusCancelled EventStatus = "cancelled"
)

func (s EventStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusCancelled:
		return true
	}
	return false
}

type RecurrenceType string

const (
	RecurrenceNone    RecurrenceType = "none"
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
	RecurrenceYearly  RecurrenceType = "yearly"
)

func (t RecurrenceType) Valid() bool {
	switch t {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	}
	return false
}

// Event is a scheduled community activity.
//
// Invariant: IsRecurring=false forces RecurrenceType=none and nil
// RecurrenceInterval/RecurrenceEndDate; IsRecurring=true requires
// RecurrenceType != none. The mapper enforces this at construction; rows
// never hold a mixed state.
type Event struct {
	Slug               string         `db:"slug" json:"slug"`
	Title              string         `db:"title" json:"title"`
	Description        *string        `db:"description" json:"description"`
	Location           string         `db:"location" json:"location"`
	CalendarType       CalendarType   `db:"calendar_type" json:"calendar_type"`
	Status             EventStatus    `db:"status" json:"status"`
	StartDate          time.Time      `db:"start_date" json:"start_date"`
	EndDate            *time.Time     `db:"end_date" json:"end_date"`
	HostName           string         `db:"host_name" json:"host_name"`
	HostEmail          string         `db:"host_email" json:"host_email"`
	FeaturedImageURL   *string        `db:"featured_image_url" json:"featured_image_url"`
	IsRecurring        bool           `db:"is_recurring" json:"is_recurring"`
	RecurrenceType     RecurrenceType `db:"recurrence_type" json:"recurrence_type"`
	RecurrenceInterval *int           `db:"recurrence_interval" json:"recurrence_interval"`
	RecurrenceEndDate  *time.Time     `db:"recurrence_end_date" json:"recurrence_end_date"`
	CreatedBy          uuid.UUID      `db:"created_by" json:"created_by"`

	// RSVPCount is populated by list/detail queries, not a table column.
	RSVPCount int `db:"rsvp_count" json:"rsvp_count"`

	entity.BaseEntity
}

// Occurrence is one concrete date a (possibly recurring) event happens.
type Occurrence struct {
	EventID   uuid.UUID  `json:"event_id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}
