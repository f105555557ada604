package dto

import (
	"strings"
	"time"

	"community-api/core/validator"
	"community-api/modules/contact/entity"

	"github.com/google/uuid"
)

type ContactForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Interest string `json:"interest"`
	Message  string `json:"message"`
}

// Validate reports every violated rule. Required checks come first in
// field order; the email format check runs last, and only when an email
// was given. An empty slice means the form is valid.
func (f *ContactForm) Validate() []string {
	var errs []string

	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, "Name is required")
	}
	if strings.TrimSpace(f.Email) == "" {
		errs = append(errs, "Email is required")
	}
	if strings.TrimSpace(f.Message) == "" {
		errs = append(errs, "Message is required")
	}
	if f.Email != "" && !validator.IsValidEmail(f.Email) {
		errs = append(errs, "Please enter a valid email address")
	}
	if f.Interest != "" && !entity.ValidInterest(f.Interest) {
		errs = append(errs, "Invalid interest")
	}

	return errs
}

type InquiryResponse struct {
	ID        uuid.UUID `json:"id"`
	Reference string    `json:"reference"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Interest  string    `json:"interest,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitContactResponse wraps the stored inquiry with the message shown to
// the sender. Acknowledgement email delivery is asynchronous, so the
// message never promises an email has been sent.
type SubmitContactResponse struct {
	Reference string `json:"reference"`
	Message   string `json:"message"`
}

func ToInquiryResponse(i *entity.Inquiry) InquiryResponse {
	resp := InquiryResponse{
		ID:        i.ID,
		Reference: i.Reference,
		Name:      i.Name,
		Email:     i.Email,
		Message:   i.Message,
		CreatedAt: i.CreatedAt,
	}
	if i.Phone != nil {
		resp.Phone = *i.Phone
	}
	if i.Address != nil {
		resp.Address = *i.Address
	}
	if i.Interest != nil {
		resp.Interest = *i.Interest
	}
	return resp
}

func ToInquiryResponses(inquiries []entity.Inquiry) []InquiryResponse {
	out := make([]InquiryResponse, 0, len(inquiries))
	for i := range inquiries {
		out = append(out, ToInquiryResponse(&inquiries[i]))
	}
	return out
}
