package service

import (
	"context"

	coreEntity "community-api/core/entity"
	"community-api/core/errors"
	"community-api/core/logger"
	"community-api/core/params"
	"community-api/modules/contact/dto"
	"community-api/modules/contact/mapper"
	"community-api/modules/contact/repository"

	"github.com/google/uuid"
)

// InquiryDispatcher queues the acknowledgement email to the sender and the
// notification to the office inbox. Best-effort; failures never surface to
// the sender.
type InquiryDispatcher interface {
	DispatchContactEmails(ctx context.Context, inquiryID uuid.UUID) error
}

type ContactService struct {
	inquiries  repository.ContactRepositoryInterface
	dispatcher InquiryDispatcher
}

func NewContactService(inquiries repository.ContactRepositoryInterface, dispatcher InquiryDispatcher) *ContactService {
	return &ContactService{inquiries: inquiries, dispatcher: dispatcher}
}

// Submit stores a contact inquiry and queues the follow-up emails. The form
// must already be validated.
func (s *ContactService) Submit(ctx context.Context, form *dto.ContactForm) (*dto.SubmitContactResponse, error) {
	inquiry := mapper.FromForm(form)

	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to save inquiry", err)
	}

	// Best-effort: the inquiry is already committed, so a dispatch failure
	// is logged and the sender still gets a success response.
	if err := s.dispatcher.DispatchContactEmails(ctx, inquiry.ID); err != nil {
		logger.Error("ContactService:Submit:Dispatch:Error:", err)
	}

	return &dto.SubmitContactResponse{
		Reference: inquiry.Reference,
		Message:   "Thank you for reaching out! We'll get back to you soon. A confirmation email may take a few minutes to arrive.",
	}, nil
}

// List pages inquiries for the admin panel, newest first.
func (s *ContactService) List(ctx context.Context, p params.QueryParams) (*coreEntity.Pagination[dto.InquiryResponse], error) {
	page, err := s.inquiries.List(ctx, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list inquiries", err)
	}
	return &coreEntity.Pagination[dto.InquiryResponse]{
		Items:      dto.ToInquiryResponses(page.Items),
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}
