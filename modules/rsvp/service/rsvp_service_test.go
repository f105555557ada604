package service

import (
	"context"
	"errors"
	"testing"

	coreEntity "community-api/core/entity"
	"community-api/core/params"
	eventEntity "community-api/modules/event/entity"
	"community-api/modules/rsvp/dto"
	"community-api/modules/rsvp/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	events map[uuid.UUID]*eventEntity.Event
}

func (f *fakeEventRepo) GetByID(_ context.Context, id uuid.UUID) (*eventEntity.Event, error) {
	return f.events[id], nil
}

func (f *fakeEventRepo) Create(context.Context, *eventEntity.Event) error { return nil }
func (f *fakeEventRepo) Update(context.Context, *eventEntity.Event) error { return nil }
func (f *fakeEventRepo) Delete(context.Context, uuid.UUID) error          { return nil }
func (f *fakeEventRepo) GetBySlug(context.Context, string) (*eventEntity.Event, error) {
	return nil, nil
}
func (f *fakeEventRepo) ListPublished(context.Context, params.QueryParams, string) (*coreEntity.Pagination[eventEntity.Event], error) {
	return nil, nil
}
func (f *fakeEventRepo) ListAll(context.Context, params.QueryParams) (*coreEntity.Pagination[eventEntity.Event], error) {
	return nil, nil
}

type fakeRSVPRepo struct {
	rows    []*entity.RSVP
	creates int
	updates int
}

func (f *fakeRSVPRepo) GetByEventAndEmail(_ context.Context, eventID uuid.UUID, email string) (*entity.RSVP, error) {
	for _, r := range f.rows {
		if r.EventID == eventID && r.Email == email {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRSVPRepo) Create(_ context.Context, rsvp *entity.RSVP) error {
	f.creates++
	f.rows = append(f.rows, rsvp)
	return nil
}

func (f *fakeRSVPRepo) Update(_ context.Context, rsvp *entity.RSVP) error {
	f.updates++
	return nil
}

func (f *fakeRSVPRepo) ListByEvent(_ context.Context, eventID uuid.UUID) ([]entity.RSVP, error) {
	var out []entity.RSVP
	for _, r := range f.rows {
		if r.EventID == eventID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRSVPRepo) CountByEvent(_ context.Context, eventID uuid.UUID) (int, error) {
	rows, _ := f.ListByEvent(context.Background(), eventID)
	return len(rows), nil
}

type fakeDispatcher struct {
	calls int
	err   error
}

func (f *fakeDispatcher) DispatchEventConfirmation(context.Context, uuid.UUID, string, string) error {
	f.calls++
	return f.err
}

func publishedEvent() *eventEntity.Event {
	ev := &eventEntity.Event{Status: eventEntity.StatusPublished}
	ev.ID = uuid.New()
	return ev
}

func rsvpForm() *dto.RSVPForm {
	return &dto.RSVPForm{
		Name:       "Sam Rivera",
		Email:      "Sam@Example.org",
		GuestCount: 2,
	}
}

func TestSubmitCreatesFirstRegistration(t *testing.T) {
	ev := publishedEvent()
	eventRepo := &fakeEventRepo{events: map[uuid.UUID]*eventEntity.Event{ev.ID: ev}}
	rsvpRepo := &fakeRSVPRepo{}
	dispatcher := &fakeDispatcher{}
	svc := NewRSVPService(rsvpRepo, eventRepo, dispatcher)

	resp, err := svc.Submit(context.Background(), ev.ID, rsvpForm())
	require.NoError(t, err)

	assert.Equal(t, 1, rsvpRepo.creates)
	assert.Equal(t, 0, rsvpRepo.updates)
	assert.Equal(t, 1, dispatcher.calls)
	assert.Equal(t, "sam@example.org", resp.RSVP.Email)
	assert.True(t, resp.RSVP.ReminderEmail)
}

func TestSubmitUpdatesExistingRegistration(t *testing.T) {
	ev := publishedEvent()
	eventRepo := &fakeEventRepo{events: map[uuid.UUID]*eventEntity.Event{ev.ID: ev}}
	rsvpRepo := &fakeRSVPRepo{}
	svc := NewRSVPService(rsvpRepo, eventRepo, &fakeDispatcher{})

	_, err := svc.Submit(context.Background(), ev.ID, rsvpForm())
	require.NoError(t, err)

	again := rsvpForm()
	again.GuestCount = 4
	again.Notes = "Arriving late"
	resp, err := svc.Submit(context.Background(), ev.ID, again)
	require.NoError(t, err)

	// One row per (event, email): the second submission reconciles into an
	// update rather than a new registration.
	assert.Equal(t, 1, rsvpRepo.creates)
	assert.Equal(t, 1, rsvpRepo.updates)
	require.Len(t, rsvpRepo.rows, 1)
	assert.Equal(t, 4, rsvpRepo.rows[0].GuestCount)
	assert.Equal(t, 4, resp.RSVP.GuestCount)
	assert.Equal(t, "Arriving late", resp.RSVP.Notes)
}

func TestSubmitNormalizesEmailForMatching(t *testing.T) {
	ev := publishedEvent()
	eventRepo := &fakeEventRepo{events: map[uuid.UUID]*eventEntity.Event{ev.ID: ev}}
	rsvpRepo := &fakeRSVPRepo{}
	svc := NewRSVPService(rsvpRepo, eventRepo, &fakeDispatcher{})

	_, err := svc.Submit(context.Background(), ev.ID, rsvpForm())
	require.NoError(t, err)

	again := rsvpForm()
	again.Email = "  SAM@example.org "
	_, err = svc.Submit(context.Background(), ev.ID, again)
	require.NoError(t, err)

	assert.Len(t, rsvpRepo.rows, 1)
}

func TestSubmitDispatchFailureStillSucceeds(t *testing.T) {
	ev := publishedEvent()
	eventRepo := &fakeEventRepo{events: map[uuid.UUID]*eventEntity.Event{ev.ID: ev}}
	rsvpRepo := &fakeRSVPRepo{}
	dispatcher := &fakeDispatcher{err: errors.New("queue unavailable")}
	svc := NewRSVPService(rsvpRepo, eventRepo, dispatcher)

	resp, err := svc.Submit(context.Background(), ev.ID, rsvpForm())

	// Registration is committed before dispatch; a queue failure must not
	// turn into a user-facing error.
	require.NoError(t, err)
	assert.Equal(t, 1, rsvpRepo.creates)
	assert.NotEmpty(t, resp.Message)
}

func TestSubmitRejectsUnknownEvent(t *testing.T) {
	eventRepo := &fakeEventRepo{events: map[uuid.UUID]*eventEntity.Event{}}
	svc := NewRSVPService(&fakeRSVPRepo{}, eventRepo, &fakeDispatcher{})

	_, err := svc.Submit(context.Background(), uuid.New(), rsvpForm())
	assert.Error(t, err)
}

func TestSubmitRejectsUnpublishedEvent(t *testing.T) {
	ev := publishedEvent()
	ev.Status = eventEntity.StatusDraft
	eventRepo := &fakeEventRepo{events: map[uuid.UUID]*eventEntity.Event{ev.ID: ev}}
	dispatcher := &fakeDispatcher{}
	svc := NewRSVPService(&fakeRSVPRepo{}, eventRepo, dispatcher)

	_, err := svc.Submit(context.Background(), ev.ID, rsvpForm())
	assert.Error(t, err)
	assert.Equal(t, 0, dispatcher.calls)
}

func TestListByEventSumsGuests(t *testing.T) {
	ev := publishedEvent()
	eventRepo := &fakeEventRepo{events: map[uuid.UUID]*eventEntity.Event{ev.ID: ev}}
	rsvpRepo := &fakeRSVPRepo{}
	svc := NewRSVPService(rsvpRepo, eventRepo, &fakeDispatcher{})

	first := rsvpForm()
	_, err := svc.Submit(context.Background(), ev.ID, first)
	require.NoError(t, err)

	second := rsvpForm()
	second.Email = "other@example.org"
	second.GuestCount = 3
	_, err = svc.Submit(context.Background(), ev.ID, second)
	require.NoError(t, err)

	list, err := svc.ListByEvent(context.Background(), ev.ID)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, 5, list.TotalGuests)
}

func TestSubmitReminderEmailDefault(t *testing.T) {
	ev := publishedEvent()
	eventRepo := &fakeEventRepo{events: map[uuid.UUID]*eventEntity.Event{ev.ID: ev}}
	rsvpRepo := &fakeRSVPRepo{}
	svc := NewRSVPService(rsvpRepo, eventRepo, &fakeDispatcher{})

	off := false
	form := rsvpForm()
	form.ReminderEmail = &off
	resp, err := svc.Submit(context.Background(), ev.ID, form)
	require.NoError(t, err)
	assert.False(t, resp.RSVP.ReminderEmail)
}
