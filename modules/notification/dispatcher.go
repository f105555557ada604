package notification

import (
	"context"
	"encoding/json"

	"community-api/core/constants"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// EventConfirmationPayload is the task body for an RSVP confirmation email.
type EventConfirmationPayload struct {
	EventID       uuid.UUID `json:"event_id"`
	AttendeeEmail string    `json:"attendee_email"`
	AttendeeName  string    `json:"attendee_name"`
}

// ContactEmailsPayload is the task body for the pair of contact-form emails
// (acknowledgement to the sender, notification to the office).
type ContactEmailsPayload struct {
	InquiryID uuid.UUID `json:"inquiry_id"`
}

// Dispatcher enqueues notification tasks. Enqueue errors are returned to
// the caller, which logs and moves on; nothing user-facing depends on a
// successful enqueue.
type Dispatcher struct {
	client *asynq.Client
}

func NewDispatcher(client *asynq.Client) *Dispatcher {
	return &Dispatcher{client: client}
}

func (d *Dispatcher) DispatchEventConfirmation(ctx context.Context, eventID uuid.UUID, attendeeEmail, attendeeName string) error {
	payload, err := json.Marshal(EventConfirmationPayload{
		EventID:       eventID,
		AttendeeEmail: attendeeEmail,
		AttendeeName:  attendeeName,
	})
	if err != nil {
		return err
	}
	return d.enqueue(ctx, asynq.NewTask(constants.TaskTypeEventConfirmation, payload))
}

func (d *Dispatcher) DispatchContactEmails(ctx context.Context, inquiryID uuid.UUID) error {
	payload, err := json.Marshal(ContactEmailsPayload{InquiryID: inquiryID})
	if err != nil {
		return err
	}
	return d.enqueue(ctx, asynq.NewTask(constants.TaskTypeContactEmails, payload))
}

func (d *Dispatcher) enqueue(ctx context.Context, task *asynq.Task) error {
	_, err := d.client.EnqueueContext(ctx, task,
		asynq.Queue(constants.NotificationQueue),
		asynq.MaxRetry(constants.NotificationMaxRetry),
	)
	return err
}
