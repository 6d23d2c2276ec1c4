package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCallback_Date(t *testing.T) {
	cb, err := ParseCallback("date:2024-01-10")

	require.NoError(t, err)
	assert.Equal(t, CallbackDate, cb.Kind)
	assert.Equal(t, "2024-01-10", cb.Date)
}

func TestParseCallback_Approve(t *testing.T) {
	cb, err := ParseCallback("approve:42")

	require.NoError(t, err)
	assert.Equal(t, CallbackApprove, cb.Kind)
	assert.Equal(t, int64(42), cb.BookingID)
}

func TestParseCallback_Reject(t *testing.T) {
	cb, err := ParseCallback("reject:7")

	require.NoError(t, err)
	assert.Equal(t, CallbackReject, cb.Kind)
	assert.Equal(t, int64(7), cb.BookingID)
}

func TestParseCallback_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"no separator", "date"},
		{"empty value", "date:"},
		{"unknown tag", "delete:42"},
		{"bad date", "date:10-01-2024"},
		{"not a number", "approve:forty-two"},
		{"zero id", "approve:0"},
		{"negative id", "reject:-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCallback(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestDateCallback_RoundTrip(t *testing.T) {
	d := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	cb, err := ParseCallback(DateCallback(d))

	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", cb.Date)
}
