package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"html"

	"community-api/core/constants"
	"community-api/core/logger"
	contactRepository "community-api/modules/contact/repository"
	eventRepository "community-api/modules/event/repository"

	"github.com/hibiken/asynq"
)

// Worker consumes notification tasks and sends the emails. Tasks whose
// subject row has since been deleted are dropped, not retried.
type Worker struct {
	events      eventRepository.EventRepositoryInterface
	inquiries   contactRepository.ContactRepositoryInterface
	mailer      Mailer
	officeEmail string
}

func NewWorker(events eventRepository.EventRepositoryInterface, inquiries contactRepository.ContactRepositoryInterface, mailer Mailer, officeEmail string) *Worker {
	return &Worker{
		events:      events,
		inquiries:   inquiries,
		mailer:      mailer,
		officeEmail: officeEmail,
	}
}

func (w *Worker) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(constants.TaskTypeEventConfirmation, w.HandleEventConfirmation)
	mux.HandleFunc(constants.TaskTypeContactEmails, w.HandleContactEmails)
}

// HandleEventConfirmation emails the attendee a confirmation with an
// iCalendar invite attached, then notifies the host.
func (w *Worker) HandleEventConfirmation(ctx context.Context, task *asynq.Task) error {
	var payload EventConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	ev, err := w.events.GetByID(ctx, payload.EventID)
	if err != nil {
		return err
	}
	if ev == nil {
		logger.Warn("NotificationWorker:EventConfirmation:EventGone", "event_id", payload.EventID)
		return nil
	}

	when := ev.StartDate.Format("Monday, January 2, 2006 at 3:04 PM")
	body := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Your RSVP for <strong>%s</strong> is confirmed.</p>
<p>%s<br>%s</p>
<p>We look forward to seeing you!</p>`,
		html.EscapeString(payload.AttendeeName),
		html.EscapeString(ev.Title),
		when,
		html.EscapeString(ev.Location),
	)

	err = w.mailer.Send(ctx, Email{
		To:      []string{payload.AttendeeEmail},
		Subject: "RSVP confirmed: " + ev.Title,
		HTML:    body,
		Attachments: []Attachment{
			{Filename: "invite.ics", Content: []byte(buildICS(ev))},
		},
	})
	if err != nil {
		return err
	}

	hostBody := fmt.Sprintf(
		`<p>%s (%s) has RSVP'd to <strong>%s</strong>.</p>`,
		html.EscapeString(payload.AttendeeName),
		html.EscapeString(payload.AttendeeEmail),
		html.EscapeString(ev.Title),
	)
	if err := w.mailer.Send(ctx, Email{
		To:      []string{ev.HostEmail},
		Subject: "New RSVP: " + ev.Title,
		HTML:    hostBody,
	}); err != nil {
		// The attendee already got their confirmation; don't re-run the
		// whole task just to retry the host notice.
		logger.Error("NotificationWorker:EventConfirmation:HostEmail:Error:", err)
	}
	return nil
}

// HandleContactEmails acknowledges the sender and forwards the inquiry to
// the office inbox.
func (w *Worker) HandleContactEmails(ctx context.Context, task *asynq.Task) error {
	var payload ContactEmailsPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	inquiry, err := w.inquiries.GetByID(ctx, payload.InquiryID)
	if err != nil {
		return err
	}
	if inquiry == nil {
		logger.Warn("NotificationWorker:ContactEmails:InquiryGone", "inquiry_id", payload.InquiryID)
		return nil
	}

	ackBody := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Thanks for getting in touch. We've received your message and will reply soon.</p>
<p>Your reference: <strong>%s</strong></p>`,
		html.EscapeString(inquiry.Name),
		inquiry.Reference,
	)
	if err := w.mailer.Send(ctx, Email{
		To:      []string{inquiry.Email},
		Subject: "We received your message (" + inquiry.Reference + ")",
		HTML:    ackBody,
	}); err != nil {
		return err
	}

	if w.officeEmail == "" {
		return nil
	}

	interest := "-"
	if inquiry.Interest != nil {
		interest = *inquiry.Interest
	}
	officeBody := fmt.Sprintf(
		`<p>New contact inquiry <strong>%s</strong></p>
<p>From: %s &lt;%s&gt;<br>Interest: %s</p>
<p>%s</p>`,
		inquiry.Reference,
		html.EscapeString(inquiry.Name),
		html.EscapeString(inquiry.Email),
		html.EscapeString(interest),
		html.EscapeString(inquiry.Message),
	)
	if err := w.mailer.Send(ctx, Email{
		To:      []string{w.officeEmail},
		Subject: "New inquiry " + inquiry.Reference + " from " + inquiry.Name,
		HTML:    officeBody,
	}); err != nil {
		logger.Error("NotificationWorker:ContactEmails:OfficeEmail:Error:", err)
	}
	return nil
}
