package entity

import (
	"community-api/core/entity"

	"github.com/google/uuid"
)

// RSVP is one attendee registration for an event. The table holds at most
// one row per (event_id, email); repeat submissions update the existing row.
type RSVP struct {
	EventID             uuid.UUID `db:"event_id" json:"event_id"`
	Name                string    `db:"name" json:"name"`
	Email               string    `db:"email" json:"email"`
	Phone               *string   `db:"phone" json:"phone"`
	GuestCount          int       `db:"guest_count" json:"guest_count"`
	DietaryRestrictions *string   `db:"dietary_restrictions" json:"dietary_restrictions"`
	Notes               *string   `db:"notes" json:"notes"`
	ReminderEmail       bool      `db:"reminder_email" json:"reminder_email"`
	ReminderSMS         bool      `db:"reminder_sms" json:"reminder_sms"`

	entity.BaseEntity
}
