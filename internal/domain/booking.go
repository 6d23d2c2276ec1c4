package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "PENDING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
)

// DateLayout is the storage and callback format for booking dates.
const DateLayout = "2006-01-02"

type Booking struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"user_id"`
	Username    string        `json:"username"`
	Date        string        `json:"date"`
	Status      BookingStatus `json:"status"`
	DocFileID   string        `json:"doc_file_id"`
	DocFileName string        `json:"doc_file_name"`
	CreatedAt   time.Time     `json:"created_at"`
	// NotifiedAt is set once the booking has been delivered to the admin.
	NotifiedAt *time.Time `json:"notified_at,omitempty"`
}

func (b *Booking) Decided() bool {
	return b.Status != BookingStatusPending
}

type SubmitBookingInput struct {
	UserID   int64
	Username string
	Date     string
	FileID   string
	FileName string
}
