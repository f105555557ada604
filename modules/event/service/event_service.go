package service

import (
	"context"
	"net/url"
	"time"

	"community-api/core/cache"
	"community-api/core/constants"
	coreEntity "community-api/core/entity"
	"community-api/core/errors"
	"community-api/core/logger"
	"community-api/core/middleware"
	"community-api/core/params"
	authService "community-api/modules/auth/service"
	"community-api/modules/event/dto"
	"community-api/modules/event/entity"
	"community-api/modules/event/mapper"
	"community-api/modules/event/repository"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

type EventService struct {
	events repository.EventRepositoryInterface
	cache  *cache.Cache
}

func NewEventService(events repository.EventRepositoryInterface, c *cache.Cache) *EventService {
	return &EventService{events: events, cache: c}
}

// Create persists a new event owned by the session user. The form must
// already be validated; the mapper only converts it.
func (s *EventService) Create(ctx context.Context, session *middleware.Session, form *dto.EventForm) (*dto.EventResponse, error) {
	ev, err := mapper.FromForm(form, session.UserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
	}

	if err := s.events.Create(ctx, ev); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create event", err)
	}

	s.invalidateListCache(ctx)
	return dto.ToEventResponse(ev), nil
}

// Update rewrites an event's mutable fields. Only the creator or an admin
// panel user may update; slug and ownership survive every update.
func (s *EventService) Update(ctx context.Context, session *middleware.Session, id uuid.UUID, form *dto.EventForm) (*dto.EventResponse, error) {
	ev, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load event", err)
	}
	if ev == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}

	if ev.CreatedBy != session.UserID && !authService.CanAccessAdminPanel(session.Roles) {
		return nil, errors.NewAppError(errors.ErrForbidden, "you can only edit your own events", nil)
	}

	if err := mapper.ApplyForm(ev, form); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
	}

	if err := s.events.Update(ctx, ev); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update event", err)
	}

	s.invalidateListCache(ctx)
	return dto.ToEventResponse(ev), nil
}

func (s *EventService) Delete(ctx context.Context, id uuid.UUID) error {
	ev, err := s.events.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to load event", err)
	}
	if ev == nil {
		return errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}

	if err := s.events.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete event", err)
	}

	s.invalidateListCache(ctx)
	return nil
}

// Get resolves a published event by UUID or, failing that, by slug. Drafts
// and cancelled events are invisible here; the admin surface lists them.
func (s *EventService) Get(ctx context.Context, idOrSlug string) (*dto.EventResponse, error) {
	ev, err := s.resolvePublished(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	return dto.ToEventResponse(ev), nil
}

// ListPublished serves the public calendar. Results are cached briefly and
// the read retries on transient failures before giving up.
func (s *EventService) ListPublished(ctx context.Context, p params.QueryParams, calendarType string) (*coreEntity.Pagination[dto.EventResponse], error) {
	cacheKey := constants.RedisKeyEventList + p.CacheSuffix() + ":" + calendarType

	var cached coreEntity.Pagination[dto.EventResponse]
	if s.cache != nil && s.cache.GetJSON(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	var page *coreEntity.Pagination[entity.Event]
	op := func() error {
		var err error
		page, err = s.events.ListPublished(ctx, p, calendarType)
		return err
	}
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = constants.EventListRetryBackoff
	policy := backoff.WithContext(backoff.WithMaxRetries(expo, constants.EventListMaxRetries), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list events", err)
	}

	resp := &coreEntity.Pagination[dto.EventResponse]{
		Items:      dto.ToEventResponses(page.Items),
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKey, resp, constants.EventListCacheTTL); err != nil {
			logger.Warn("EventService:ListPublished:CacheSet:Error:", err)
		}
	}
	return resp, nil
}

// ListAll serves the admin panel event table, drafts and cancellations
// included. Not cached.
func (s *EventService) ListAll(ctx context.Context, p params.QueryParams) (*coreEntity.Pagination[dto.EventResponse], error) {
	page, err := s.events.ListAll(ctx, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list events", err)
	}
	return &coreEntity.Pagination[dto.EventResponse]{
		Items:      dto.ToEventResponses(page.Items),
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}

// Occurrences expands a published event into concrete dates inside
// [from, until].
func (s *EventService) Occurrences(ctx context.Context, idOrSlug string, from, until time.Time) ([]dto.OccurrenceResponse, error) {
	ev, err := s.resolvePublished(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	occurrences, err := ExpandOccurrences(ev, from, until)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to expand occurrences", err)
	}

	out := make([]dto.OccurrenceResponse, 0, len(occurrences))
	for _, o := range occurrences {
		out = append(out, dto.OccurrenceResponse{StartDate: o.StartDate, EndDate: o.EndDate})
	}
	return out, nil
}

// CalendarLinks builds prefilled add-to-calendar URLs for a published
// event.
func (s *EventService) CalendarLinks(ctx context.Context, idOrSlug string) (*dto.CalendarLinksResponse, error) {
	ev, err := s.resolvePublished(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	end := ev.StartDate.Add(2 * time.Hour)
	if ev.EndDate != nil {
		end = *ev.EndDate
	}
	description := ""
	if ev.Description != nil {
		description = *ev.Description
	}

	const stampLayout = "20060102T150405Z"
	google := url.Values{}
	google.Set("action", "TEMPLATE")
	google.Set("text", ev.Title)
	google.Set("dates", ev.StartDate.UTC().Format(stampLayout)+"/"+end.UTC().Format(stampLayout))
	google.Set("details", description)
	google.Set("location", ev.Location)

	outlook := url.Values{}
	outlook.Set("path", "/calendar/action/compose")
	outlook.Set("rru", "addevent")
	outlook.Set("subject", ev.Title)
	outlook.Set("startdt", ev.StartDate.UTC().Format(time.RFC3339))
	outlook.Set("enddt", end.UTC().Format(time.RFC3339))
	outlook.Set("body", description)
	outlook.Set("location", ev.Location)

	return &dto.CalendarLinksResponse{
		Google:  "https://calendar.google.com/calendar/render?" + google.Encode(),
		Outlook: "https://outlook.live.com/calendar/0/deeplink/compose?" + outlook.Encode(),
	}, nil
}

func (s *EventService) resolve(ctx context.Context, idOrSlug string) (*entity.Event, error) {
	var ev *entity.Event
	var err error
	if id, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		ev, err = s.events.GetByID(ctx, id)
	} else {
		ev, err = s.events.GetBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load event", err)
	}
	if ev == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}
	return ev, nil
}

// resolvePublished is resolve for the public surface. Unpublished events
// answer not-found, indistinguishable from events that don't exist.
func (s *EventService) resolvePublished(ctx context.Context, idOrSlug string) (*entity.Event, error) {
	ev, err := s.resolve(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	if ev.Status != entity.StatusPublished {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}
	return ev, nil
}

func (s *EventService) invalidateListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPrefix(ctx, constants.RedisKeyEventList); err != nil {
		logger.Warn("EventService:InvalidateListCache:Error:", err)
	}
}
