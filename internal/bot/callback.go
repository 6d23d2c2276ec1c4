package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Mohatm/Telegram-bot/internal/domain"
)

// CallbackKind tags the decoded variants of inline-button payloads.
type CallbackKind int

const (
	CallbackDate CallbackKind = iota
	CallbackApprove
	CallbackReject
)

// Callback is a decoded inline-button payload: either a date selection
// ("date:2024-01-10") or an admin decision ("approve:42" / "reject:42").
type Callback struct {
	Kind      CallbackKind
	Date      string
	BookingID int64
}

// ParseCallback decodes a callback token, rejecting anything malformed
// instead of acting on a partial split.
func ParseCallback(data string) (Callback, error) {
	tag, value, ok := strings.Cut(data, ":")
	if !ok || value == "" {
		return Callback{}, fmt.Errorf("malformed callback %q", data)
	}

	switch tag {
	case "date":
		if _, err := time.Parse(domain.DateLayout, value); err != nil {
			return Callback{}, fmt.Errorf("malformed date callback %q: %w", data, err)
		}
		return Callback{Kind: CallbackDate, Date: value}, nil

	case "approve", "reject":
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil || id <= 0 {
			return Callback{}, fmt.Errorf("malformed booking id in callback %q", data)
		}
		kind := CallbackApprove
		if tag == "reject" {
			kind = CallbackReject
		}
		return Callback{Kind: kind, BookingID: id}, nil

	default:
		return Callback{}, fmt.Errorf("unknown callback tag %q", tag)
	}
}

// DateCallback formats the payload for a date-selection button.
func DateCallback(d time.Time) string {
	return "date:" + d.Format(domain.DateLayout)
}
