package dto

import (
	"strings"
	"time"

	"community-api/core/validator"
	"community-api/modules/rsvp/entity"

	"github.com/google/uuid"
)

// RSVPForm is the public registration form. ReminderEmail is a *bool so an
// absent field is distinguishable from an explicit false; WantsReminderEmail
// applies the default.
type RSVPForm struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	GuestCount          int    `json:"guest_count"`
	DietaryRestrictions string `json:"dietary_restrictions"`
	Notes               string `json:"notes"`
	ReminderEmail       *bool  `json:"reminder_email"`
	ReminderSMS         bool   `json:"reminder_sms"`
}

// WantsReminderEmail reports the reminder preference, defaulting to true
// when the form omitted the field.
func (f *RSVPForm) WantsReminderEmail() bool {
	if f.ReminderEmail == nil {
		return true
	}
	return *f.ReminderEmail
}

// Validate reports every violated rule in field order. An empty slice means
// the form is valid.
func (f *RSVPForm) Validate() []string {
	var errs []string

	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, "Name is required")
	}
	if strings.TrimSpace(f.Email) == "" {
		errs = append(errs, "Email is required")
	} else if !validator.IsValidEmail(f.Email) {
		errs = append(errs, "Please enter a valid email address")
	}
	if f.GuestCount < 1 {
		errs = append(errs, "Guest count must be at least 1")
	}

	return errs
}

type RSVPResponse struct {
	ID                  uuid.UUID `json:"id"`
	EventID             uuid.UUID `json:"event_id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone,omitempty"`
	GuestCount          int       `json:"guest_count"`
	DietaryRestrictions string    `json:"dietary_restrictions,omitempty"`
	Notes               string    `json:"notes,omitempty"`
	ReminderEmail       bool      `json:"reminder_email"`
	ReminderSMS         bool      `json:"reminder_sms"`
	CreatedAt           time.Time `json:"created_at"`
}

// SubmitRSVPResponse wraps the stored registration with the message shown
// to the attendee. Confirmation email delivery is asynchronous, so the
// message never promises an email has been sent.
type SubmitRSVPResponse struct {
	RSVP    RSVPResponse `json:"rsvp"`
	Message string       `json:"message"`
}

// RSVPListResponse is the admin view of an event's registrations, with the
// headcount summed across guest counts.
type RSVPListResponse struct {
	Items       []RSVPResponse `json:"items"`
	TotalGuests int            `json:"total_guests"`
}

func ToRSVPResponse(r *entity.RSVP) RSVPResponse {
	resp := RSVPResponse{
		ID:            r.ID,
		EventID:       r.EventID,
		Name:          r.Name,
		Email:         r.Email,
		GuestCount:    r.GuestCount,
		ReminderEmail: r.ReminderEmail,
		ReminderSMS:   r.ReminderSMS,
		CreatedAt:     r.CreatedAt,
	}
	if r.Phone != nil {
		resp.Phone = *r.Phone
	}
	if r.DietaryRestrictions != nil {
		resp.DietaryRestrictions = *r.DietaryRestrictions
	}
	if r.Notes != nil {
		resp.Notes = *r.Notes
	}
	return resp
}

func ToRSVPResponses(rsvps []entity.RSVP) []RSVPResponse {
	out := make([]RSVPResponse, 0, len(rsvps))
	for i := range rsvps {
		out = append(out, ToRSVPResponse(&rsvps[i]))
	}
	return out
}
