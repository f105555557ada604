package repository

import (
	"context"
	"database/sql"
	"errors"

	"community-api/core/database"
	"community-api/core/logger"
	"community-api/modules/rsvp/entity"

	"github.com/google/uuid"
)

type RSVPRepositoryInterface interface {
	GetByEventAndEmail(ctx context.Context, eventID uuid.UUID, email string) (*entity.RSVP, error)
	Create(ctx context.Context, rsvp *entity.RSVP) error
	Update(ctx context.Context, rsvp *entity.RSVP) error
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]entity.RSVP, error)
	CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error)
}

type RSVPRepository struct {
	db database.IDatabase
}

func NewRSVPRepository(db database.IDatabase) *RSVPRepository {
	return &RSVPRepository{db: db}
}

const rsvpColumns = `
	id, event_id, name, email, phone, guest_count, dietary_restrictions,
	notes, reminder_email, reminder_sms, created_at, updated_at
`

// GetByEventAndEmail returns nil, nil when the attendee has not registered
// for the event.
func (r *RSVPRepository) GetByEventAndEmail(ctx context.Context, eventID uuid.UUID, email string) (*entity.RSVP, error) {
	query := `SELECT` + rsvpColumns + `FROM event_rsvps WHERE event_id = $1 AND email = $2`

	var rsvp entity.RSVP
	err := r.db.GetContext(ctx, &rsvp, query, eventID, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("RSVPRepository:GetByEventAndEmail:Error:", err)
		return nil, err
	}
	return &rsvp, nil
}

func (r *RSVPRepository) Create(ctx context.Context, rsvp *entity.RSVP) error {
	query := `
		INSERT INTO event_rsvps (
			id, event_id, name, email, phone, guest_count, dietary_restrictions,
			notes, reminder_email, reminder_sms
		) VALUES (
			:id, :event_id, :name, :email, :phone, :guest_count, :dietary_restrictions,
			:notes, :reminder_email, :reminder_sms
		)
	`
	if rsvp.ID == uuid.Nil {
		rsvp.ID = uuid.New()
	}
	if _, err := r.db.NamedExecContext(ctx, query, rsvp); err != nil {
		logger.Error("RSVPRepository:Create:Error:", err)
		return err
	}
	return nil
}

// Update rewrites the mutable attributes of an existing registration. The
// identity pair (event_id, email) never changes.
func (r *RSVPRepository) Update(ctx context.Context, rsvp *entity.RSVP) error {
	query := `
		UPDATE event_rsvps SET
			name = :name,
			phone = :phone,
			guest_count = :guest_count,
			dietary_restrictions = :dietary_restrictions,
			notes = :notes,
			reminder_email = :reminder_email,
			reminder_sms = :reminder_sms,
			updated_at = NOW()
		WHERE id = :id
	`
	if _, err := r.db.NamedExecContext(ctx, query, rsvp); err != nil {
		logger.Error("RSVPRepository:Update:Error:", err)
		return err
	}
	return nil
}

func (r *RSVPRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]entity.RSVP, error) {
	query := `SELECT` + rsvpColumns + `FROM event_rsvps WHERE event_id = $1 ORDER BY created_at ASC`

	rsvps := []entity.RSVP{}
	if err := r.db.SelectContext(ctx, &rsvps, query, eventID); err != nil {
		logger.Error("RSVPRepository:ListByEvent:Error:", err)
		return nil, err
	}
	return rsvps, nil
}

func (r *RSVPRepository) CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM event_rsvps WHERE event_id = $1`, eventID)
	if err != nil {
		logger.Error("RSVPRepository:CountByEvent:Error:", err)
		return 0, err
	}
	return count, nil
}
