package entity

import (
	"community-api/core/entity"
)

// Inquiry is one submitted contact form message. Reference is a short
// human-quotable id ("INQ-x7Hq2Ba") handed back to the sender.
type Inquiry struct {
	Reference string  `db:"reference" json:"reference"`
	Name      string  `db:"name" json:"name"`
	Email     string  `db:"email" json:"email"`
	Phone     *string `db:"phone" json:"phone"`
	Address   *string `db:"address" json:"address"`
	Interest  *string `db:"interest" json:"interest"`
	Message   string  `db:"message" json:"message"`

	entity.BaseEntity
}

// InterestOptions are the values the contact form offers. Free text is
// still accepted; the list only feeds the form select.
var InterestOptions = []string{
	"Devotional gatherings",
	"Study circles",
	"Children's classes",
	"Junior youth groups",
	"Community service",
	"Learning more",
	"Other",
}

func ValidInterest(interest string) bool {
	for _, opt := range InterestOptions {
		if opt == interest {
			return true
		}
	}
	return false
}
