package mapper

import (
	"strings"
	"testing"

	"community-api/modules/contact/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFormCleansFields(t *testing.T) {
	form := &dto.ContactForm{
		Name:    "  Sam Rivera  ",
		Email:   " Sam.Rivera@Example.ORG ",
		Message: "  Hello there.  ",
	}

	inquiry := FromForm(form)

	assert.Equal(t, "Sam Rivera", inquiry.Name)
	assert.Equal(t, "sam.rivera@example.org", inquiry.Email)
	assert.Equal(t, "Hello there.", inquiry.Message)
}

func TestFromFormCoalescesEmptyOptionals(t *testing.T) {
	form := &dto.ContactForm{
		Name:    "Sam",
		Email:   "sam@example.org",
		Phone:   "   ",
		Address: "",
		Message: "Hello",
	}

	inquiry := FromForm(form)

	assert.Nil(t, inquiry.Phone)
	assert.Nil(t, inquiry.Address)
	assert.Nil(t, inquiry.Interest)
}

func TestFromFormKeepsOptionals(t *testing.T) {
	form := &dto.ContactForm{
		Name:     "Sam",
		Email:    "sam@example.org",
		Phone:    " 555-0100 ",
		Interest: "Study circles",
		Message:  "Hello",
	}

	inquiry := FromForm(form)

	require.NotNil(t, inquiry.Phone)
	assert.Equal(t, "555-0100", *inquiry.Phone)
	require.NotNil(t, inquiry.Interest)
	assert.Equal(t, "Study circles", *inquiry.Interest)
}

func TestFromFormMintsReference(t *testing.T) {
	form := &dto.ContactForm{Name: "Sam", Email: "sam@example.org", Message: "Hello"}

	a := FromForm(form)
	b := FromForm(form)

	assert.True(t, strings.HasPrefix(a.Reference, "INQ-"))
	assert.NotEqual(t, a.Reference, b.Reference)
}
