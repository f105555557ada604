package repository

import (
	"context"
	"database/sql"
	"errors"

	"community-api/core/database"
	"community-api/core/entity"
	"community-api/core/logger"
	"community-api/core/params"
	contactEntity "community-api/modules/contact/entity"

	"github.com/google/uuid"
)

type ContactRepositoryInterface interface {
	Create(ctx context.Context, inquiry *contactEntity.Inquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*contactEntity.Inquiry, error)
	List(ctx context.Context, p params.QueryParams) (*entity.Pagination[contactEntity.Inquiry], error)
}

type ContactRepository struct {
	db database.IDatabase
}

func NewContactRepository(db database.IDatabase) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create is insert-only. Inquiries are an append-only log; nothing ever
// updates or deletes them through the API.
func (r *ContactRepository) Create(ctx context.Context, inquiry *contactEntity.Inquiry) error {
	query := `
		INSERT INTO contact_inquiries (
			id, reference, name, email, phone, address, interest, message
		) VALUES (
			:id, :reference, :name, :email, :phone, :address, :interest, :message
		)
	`
	if inquiry.ID == uuid.Nil {
		inquiry.ID = uuid.New()
	}
	if _, err := r.db.NamedExecContext(ctx, query, inquiry); err != nil {
		logger.Error("ContactRepository:Create:Error:", err)
		return err
	}
	return nil
}

// GetByID returns nil, nil when no inquiry exists for the id.
func (r *ContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*contactEntity.Inquiry, error) {
	query := `
		SELECT id, reference, name, email, phone, address, interest, message,
			created_at, updated_at
		FROM contact_inquiries
		WHERE id = $1
	`
	var inquiry contactEntity.Inquiry
	err := r.db.GetContext(ctx, &inquiry, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("ContactRepository:GetByID:Error:", err)
		return nil, err
	}
	return &inquiry, nil
}

func (r *ContactRepository) List(ctx context.Context, p params.QueryParams) (*entity.Pagination[contactEntity.Inquiry], error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM contact_inquiries`); err != nil {
		logger.Error("ContactRepository:List:Count:Error:", err)
		return nil, err
	}

	query := `
		SELECT id, reference, name, email, phone, address, interest, message,
			created_at, updated_at
		FROM contact_inquiries
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	inquiries := []contactEntity.Inquiry{}
	if err := r.db.SelectContext(ctx, &inquiries, query, p.PageSize, p.Offset()); err != nil {
		logger.Error("ContactRepository:List:Select:Error:", err)
		return nil, err
	}

	return &entity.Pagination[contactEntity.Inquiry]{
		Items:      inquiries,
		TotalItems: total,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}
