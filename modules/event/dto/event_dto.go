package dto

import (
	"strconv"
	"strings"
	"time"

	"community-api/core/validator"
	"community-api/modules/event/entity"

	"github.com/google/uuid"
)

// EventForm is the raw admin form state. All temporal and numeric fields
// arrive as strings, exactly as the form posts them; the mapper converts
// them after validation.
type EventForm struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	Location           string `json:"location"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	CalendarType       string `json:"calendar_type"`
	Status             string `json:"status"`
	HostName           string `json:"host_name"`
	HostEmail          string `json:"host_email"`
	FeaturedImageURL   string `json:"featured_image_url"`
	IsRecurring        bool   `json:"is_recurring"`
	RecurrenceType     string `json:"recurrence_type"`
	RecurrenceInterval string `json:"recurrence_interval"`
	RecurrenceEndDate  string `json:"recurrence_end_date"`
}

// Validate reports every violated rule as a human-readable message, in
// field order. An empty slice means the form is valid. No rule
// short-circuits another; the caller shows the whole list at once.
func (f *EventForm) Validate() []string {
	var errs []string

	if strings.TrimSpace(f.Title) == "" {
		errs = append(errs, "Title is required")
	}
	if strings.TrimSpace(f.Location) == "" {
		errs = append(errs, "Location is required")
	}
	if strings.TrimSpace(f.StartDate) == "" {
		errs = append(errs, "Start date is required")
	}
	if strings.TrimSpace(f.HostName) == "" {
		errs = append(errs, "Host name is required")
	}
	if strings.TrimSpace(f.HostEmail) == "" {
		errs = append(errs, "Host email is required")
	}
	if f.HostEmail != "" && !validator.IsValidEmail(f.HostEmail) {
		errs = append(errs, "Please enter a valid email address")
	}

	if f.IsRecurring {
		if f.RecurrenceType == "" || f.RecurrenceType == string(entity.RecurrenceNone) {
			errs = append(errs, "Recurrence type is required for recurring events")
		} else if !entity.RecurrenceType(f.RecurrenceType).Valid() {
			errs = append(errs, "Invalid recurrence type")
		}
		if n, err := strconv.Atoi(strings.TrimSpace(f.RecurrenceInterval)); err != nil || n < 1 {
			errs = append(errs, "Recurrence interval must be a positive integer")
		}
	}

	if f.CalendarType != "" && !entity.CalendarType(f.CalendarType).Valid() {
		errs = append(errs, "Invalid calendar type")
	}
	if f.Status != "" && !entity.EventStatus(f.Status).Valid() {
		errs = append(errs, "Invalid status")
	}

	return errs
}

// ===================== Response DTOs =====================

type EventResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Slug               string     `json:"slug"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Location           string     `json:"location"`
	CalendarType       string     `json:"calendar_type"`
	Status             string     `json:"status"`
	StartDate          time.Time  `json:"start_date"`
	EndDate            *time.Time `json:"end_date,omitempty"`
	HostName           string     `json:"host_name"`
	HostEmail          string     `json:"host_email"`
	FeaturedImageURL   string     `json:"featured_image_url,omitempty"`
	IsRecurring        bool       `json:"is_recurring"`
	RecurrenceType     string     `json:"recurrence_type"`
	RecurrenceInterval *int       `json:"recurrence_interval,omitempty"`
	RecurrenceEndDate  *time.Time `json:"recurrence_end_date,omitempty"`
	RSVPCount          int        `json:"rsvp_count"`
	CreatedAt          time.Time  `json:"created_at"`
}

type OccurrenceResponse struct {
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// CalendarLinksResponse carries prefilled add-to-calendar URLs.
type CalendarLinksResponse struct {
	Google  string `json:"google"`
	Outlook string `json:"outlook"`
}

func ToEventResponse(e *entity.Event) *EventResponse {
	resp := &EventResponse{
		ID:                 e.ID,
		Slug:               e.Slug,
		Title:              e.Title,
		Location:           e.Location,
		CalendarType:       string(e.CalendarType),
		Status:             string(e.Status),
		StartDate:          e.StartDate,
		EndDate:            e.EndDate,
		HostName:           e.HostName,
		HostEmail:          e.HostEmail,
		IsRecurring:        e.IsRecurring,
		RecurrenceType:     string(e.RecurrenceType),
		RecurrenceInterval: e.RecurrenceInterval,
		RecurrenceEndDate:  e.RecurrenceEndDate,
		RSVPCount:          e.RSVPCount,
		CreatedAt:          e.CreatedAt,
	}
	if e.Description != nil {
		resp.Description = *e.Description
	}
	if e.FeaturedImageURL != nil {
		resp.FeaturedImageURL = *e.FeaturedImageURL
	}
	return resp
}

func ToEventResponses(events []entity.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for i := range events {
		out = append(out, *ToEventResponse(&events[i]))
	}
	return out
}
