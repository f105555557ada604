package mapper

import (
	"strings"

	"community-api/core/utils"
	"community-api/modules/contact/dto"
	"community-api/modules/contact/entity"
)

// FromForm cleans a validated contact form into a persistence-ready
// inquiry: name and message trimmed, email lowercased and trimmed, the
// optional fields coalesced to null when empty. A fresh reference is minted
// here.
func FromForm(form *dto.ContactForm) *entity.Inquiry {
	return &entity.Inquiry{
		Reference: utils.GenerateReference("INQ"),
		Name:      strings.TrimSpace(form.Name),
		Email:     strings.ToLower(strings.TrimSpace(form.Email)),
		Phone:     optional(form.Phone),
		Address:   optional(form.Address),
		Interest:  optional(form.Interest),
		Message:   strings.TrimSpace(form.Message),
	}
}

func optional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
