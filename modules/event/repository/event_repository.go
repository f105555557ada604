package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"community-api/core/database"
	"community-api/core/entity"
	"community-api/core/logger"
	"community-api/core/params"
	eventEntity "community-api/modules/event/entity"

	"github.com/google/uuid"
)

type EventRepositoryInterface interface {
	Create(ctx context.Context, ev *eventEntity.Event) error
	Update(ctx context.Context, ev *eventEntity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error)
	GetBySlug(ctx context.Context, slug string) (*eventEntity.Event, error)
	ListPublished(ctx context.Context, p params.QueryParams, calendarType string) (*entity.Pagination[eventEntity.Event], error)
	ListAll(ctx context.Context, p params.QueryParams) (*entity.Pagination[eventEntity.Event], error)
}

type EventRepository struct {
	db database.IDatabase
}

func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `
	e.id, e.slug, e.title, e.description, e.location, e.calendar_type, e.status,
	e.start_date, e.end_date, e.host_name, e.host_email, e.featured_image_url,
	e.is_recurring, e.recurrence_type, e.recurrence_interval, e.recurrence_end_date,
	e.created_by, e.created_at, e.updated_at,
	COALESCE(r.rsvp_count, 0) AS rsvp_count
`

const rsvpCountJoin = `
	LEFT JOIN (
		SELECT event_id, COUNT(*) AS rsvp_count
		FROM event_rsvps
		GROUP BY event_id
	) r ON r.event_id = e.id
`

func (r *EventRepository) Create(ctx context.Context, ev *eventEntity.Event) error {
	query := `
		INSERT INTO events (
			id, slug, title, description, location, calendar_type, status,
			start_date, end_date, host_name, host_email, featured_image_url,
			is_recurring, recurrence_type, recurrence_interval, recurrence_end_date,
			created_by
		) VALUES (
			:id, :slug, :title, :description, :location, :calendar_type, :status,
			:start_date, :end_date, :host_name, :host_email, :featured_image_url,
			:is_recurring, :recurrence_type, :recurrence_interval, :recurrence_end_date,
			:created_by
		)
	`
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if _, err := r.db.NamedExecContext(ctx, query, ev); err != nil {
		logger.Error("EventRepository:Create:Error:", err)
		return err
	}
	return nil
}

// Update rewrites every mutable column. Slug and created_by are absent on
// purpose: both are fixed at creation.
func (r *EventRepository) Update(ctx context.Context, ev *eventEntity.Event) error {
	query := `
		UPDATE events SET
			title = :title,
			description = :description,
			location = :location,
			calendar_type = :calendar_type,
			status = :status,
			start_date = :start_date,
			end_date = :end_date,
			host_name = :host_name,
			host_email = :host_email,
			featured_image_url = :featured_image_url,
			is_recurring = :is_recurring,
			recurrence_type = :recurrence_type,
			recurrence_interval = :recurrence_interval,
			recurrence_end_date = :recurrence_end_date,
			updated_at = NOW()
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, ev)
	if err != nil {
		logger.Error("EventRepository:Update:Error:", err)
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		logger.Error("EventRepository:Delete:Error:", err)
		return err
	}
	return nil
}

// GetByID returns nil, nil when no event exists for the id.
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events e %s WHERE e.id = $1`, eventColumns, rsvpCountJoin)

	var ev eventEntity.Event
	err := r.db.GetContext(ctx, &ev, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("EventRepository:GetByID:Error:", err)
		return nil, err
	}
	return &ev, nil
}

func (r *EventRepository) GetBySlug(ctx context.Context, slug string) (*eventEntity.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events e %s WHERE e.slug = $1 ORDER BY e.created_at DESC LIMIT 1`, eventColumns, rsvpCountJoin)

	var ev eventEntity.Event
	err := r.db.GetContext(ctx, &ev, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("EventRepository:GetBySlug:Error:", err)
		return nil, err
	}
	return &ev, nil
}

// ListPublished pages published events, soonest start first, optionally
// filtered by calendar type and a title/description/location search.
func (r *EventRepository) ListPublished(ctx context.Context, p params.QueryParams, calendarType string) (*entity.Pagination[eventEntity.Event], error) {
	where := `WHERE e.status = 'published'`
	args := []any{}
	argn := 1

	if calendarType != "" {
		where += fmt.Sprintf(` AND e.calendar_type = $%d`, argn)
		args = append(args, calendarType)
		argn++
	}
	if p.Search != "" {
		where += fmt.Sprintf(` AND (e.title ILIKE $%d OR e.description ILIKE $%d OR e.location ILIKE $%d)`, argn, argn, argn)
		args = append(args, "%"+p.Search+"%")
		argn++
	}

	return r.list(ctx, p, where, args, argn)
}

// ListAll pages every event regardless of status, for the admin panel.
func (r *EventRepository) ListAll(ctx context.Context, p params.QueryParams) (*entity.Pagination[eventEntity.Event], error) {
	where := ``
	args := []any{}
	argn := 1

	if p.Search != "" {
		where = fmt.Sprintf(`WHERE (e.title ILIKE $%d OR e.description ILIKE $%d OR e.location ILIKE $%d)`, argn, argn, argn)
		args = append(args, "%"+p.Search+"%")
		argn++
	}

	return r.list(ctx, p, where, args, argn)
}

func (r *EventRepository) list(ctx context.Context, p params.QueryParams, where string, args []any, argn int) (*entity.Pagination[eventEntity.Event], error) {
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM events e %s`, where)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		logger.Error("EventRepository:List:Count:Error:", err)
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM events e %s
		%s
		ORDER BY e.start_date ASC
		LIMIT $%d OFFSET $%d
	`, eventColumns, rsvpCountJoin, where, argn, argn+1)
	args = append(args, p.PageSize, p.Offset())

	events := []eventEntity.Event{}
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		logger.Error("EventRepository:List:Select:Error:", err)
		return nil, err
	}

	return &entity.Pagination[eventEntity.Event]{
		Items:      events,
		TotalItems: total,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}
