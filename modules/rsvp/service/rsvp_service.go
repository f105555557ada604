package service

import (
	"context"
	"strings"

	"community-api/core/errors"
	"community-api/core/logger"
	eventEntity "community-api/modules/event/entity"
	eventRepository "community-api/modules/event/repository"
	"community-api/modules/rsvp/dto"
	"community-api/modules/rsvp/entity"
	"community-api/modules/rsvp/repository"

	"github.com/google/uuid"
)

// ConfirmationDispatcher hands a confirmation email off to the notification
// queue. Implementations must be safe to fail: delivery is best-effort and
// never blocks a registration.
type ConfirmationDispatcher interface {
	DispatchEventConfirmation(ctx context.Context, eventID uuid.UUID, attendeeEmail, attendeeName string) error
}

type RSVPService struct {
	rsvps      repository.RSVPRepositoryInterface
	events     eventRepository.EventRepositoryInterface
	dispatcher ConfirmationDispatcher
}

func NewRSVPService(rsvps repository.RSVPRepositoryInterface, events eventRepository.EventRepositoryInterface, dispatcher ConfirmationDispatcher) *RSVPService {
	return &RSVPService{rsvps: rsvps, events: events, dispatcher: dispatcher}
}

// Submit registers an attendee for an event, or updates their existing
// registration when the same email submits again. One row per
// (event_id, email): the read-then-write here is backed by a unique
// constraint on the table, so a racing duplicate insert fails instead of
// creating a second row.
func (s *RSVPService) Submit(ctx context.Context, eventID uuid.UUID, form *dto.RSVPForm) (*dto.SubmitRSVPResponse, error) {
	ev, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load event", err)
	}
	if ev == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}
	if ev.Status != eventEntity.StatusPublished {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}

	email := strings.ToLower(strings.TrimSpace(form.Email))

	existing, err := s.rsvps.GetByEventAndEmail(ctx, eventID, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up registration", err)
	}

	var rsvp *entity.RSVP
	var message string
	if existing == nil {
		rsvp = &entity.RSVP{EventID: eventID, Email: email}
		applyForm(rsvp, form)
		if err := s.rsvps.Create(ctx, rsvp); err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to save registration", err)
		}
		message = "Thanks for your RSVP! A confirmation email will be sent shortly."
	} else {
		rsvp = existing
		applyForm(rsvp, form)
		if err := s.rsvps.Update(ctx, rsvp); err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update registration", err)
		}
		message = "Your RSVP has been updated. A confirmation email will be sent shortly."
	}

	// Best-effort: the registration is already committed, so a dispatch
	// failure is logged and the attendee still gets a success response.
	if err := s.dispatcher.DispatchEventConfirmation(ctx, eventID, rsvp.Email, rsvp.Name); err != nil {
		logger.Error("RSVPService:Submit:Dispatch:Error:", err)
	}

	resp := dto.ToRSVPResponse(rsvp)
	return &dto.SubmitRSVPResponse{RSVP: resp, Message: message}, nil
}

// ListByEvent returns every registration for an event plus the total
// headcount, for the admin panel.
func (s *RSVPService) ListByEvent(ctx context.Context, eventID uuid.UUID) (*dto.RSVPListResponse, error) {
	ev, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load event", err)
	}
	if ev == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}

	rsvps, err := s.rsvps.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list registrations", err)
	}

	totalGuests := 0
	for i := range rsvps {
		totalGuests += rsvps[i].GuestCount
	}
	return &dto.RSVPListResponse{
		Items:       dto.ToRSVPResponses(rsvps),
		TotalGuests: totalGuests,
	}, nil
}

// applyForm copies the form onto the row. Email is deliberately absent: it
// is identity, set once at creation.
func applyForm(rsvp *entity.RSVP, form *dto.RSVPForm) {
	rsvp.Name = strings.TrimSpace(form.Name)
	rsvp.Phone = optional(form.Phone)
	rsvp.GuestCount = form.GuestCount
	rsvp.DietaryRestrictions = optional(form.DietaryRestrictions)
	rsvp.Notes = optional(form.Notes)
	rsvp.ReminderEmail = form.WantsReminderEmail()
	rsvp.ReminderSMS = form.ReminderSMS
}

func optional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
