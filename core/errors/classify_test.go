package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"unique violation",
			errors.New(`pq: duplicate key value violates unique constraint "event_rsvps_event_id_email_key"`),
			MsgDuplicateSubmission,
		},
		{
			"row level security",
			errors.New(`pq: new row violates row-level security policy for table "events"`),
			MsgPermissionError,
		},
		{
			"network failure",
			errors.New("Network is unreachable"),
			MsgNetworkError,
		},
		{
			"anything else",
			errors.New("pq: relation \"evnts\" does not exist"),
			MsgUnexpectedError,
		},
		{
			"wrapped unique violation",
			fmt.Errorf("failed to save registration: %w", errors.New("duplicate key value violates unique constraint")),
			MsgDuplicateSubmission,
		},
		{
			"nil",
			nil,
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
