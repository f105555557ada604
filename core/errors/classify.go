package errors

import "strings"

// User-facing messages for persistence failures. The categories are part of
// the product's visible behavior and must stay stable.
const (
	MsgDuplicateSubmission = "It looks like you've already submitted this message recently. Please wait a moment before submitting again."
	MsgPermissionError     = "There was a permission error. Please refresh the page and try again."
	MsgNetworkError        = "Network error. Please check your connection and try again."
	MsgUnexpectedError     = "An unexpected error occurred. Please try again later."
)

// UserMessage classifies a persistence-layer error into one of four
// user-facing categories by matching substrings of its message.
//
// TODO: switch to pq.Error SQLSTATE codes (23505 for unique violations)
// once the legacy message-matching behavior is no longer load-bearing for
// the frontend; the four visible categories must survive that change.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "duplicate key value"):
		return MsgDuplicateSubmission
	case strings.Contains(msg, "violates row-level security"):
		return MsgPermissionError
	case strings.Contains(msg, "Network"):
		return MsgNetworkError
	default:
		return MsgUnexpectedError
	}
}
