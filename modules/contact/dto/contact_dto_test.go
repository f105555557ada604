package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactFormValidateEmptyForm(t *testing.T) {
	form := ContactForm{}

	assert.Equal(t, []string{
		"Name is required",
		"Email is required",
		"Message is required",
	}, form.Validate())
}

func TestContactFormValidateEmailFormat(t *testing.T) {
	form := ContactForm{Name: "Sam", Email: "sam@", Message: "Hello"}

	assert.Equal(t, []string{"Please enter a valid email address"}, form.Validate())
}

func TestContactFormValidateOK(t *testing.T) {
	form := ContactForm{Name: "Sam", Email: "sam@example.org", Message: "Hello"}
	assert.Empty(t, form.Validate())
}

func TestContactFormValidateEmailFormatAfterRequired(t *testing.T) {
	form := ContactForm{Name: "Sam", Email: "sam@"}

	assert.Equal(t, []string{
		"Message is required",
		"Please enter a valid email address",
	}, form.Validate())
}

func TestContactFormValidateInterest(t *testing.T) {
	form := ContactForm{Name: "Sam", Email: "sam@example.org", Message: "Hello"}

	form.Interest = "Study circles"
	assert.Empty(t, form.Validate())

	form.Interest = "Skydiving"
	assert.Equal(t, []string{"Invalid interest"}, form.Validate())
}

func TestContactFormValidateWhitespaceOnly(t *testing.T) {
	form := ContactForm{Name: "   ", Email: "sam@example.org", Message: "\t\n"}

	assert.Equal(t, []string{
		"Name is required",
		"Message is required",
	}, form.Validate())
}
