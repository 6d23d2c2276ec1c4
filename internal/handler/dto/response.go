package dto

import (
	"time"

	"github.com/Mohatm/Telegram-bot/internal/domain"
)

type BookingResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Username    string `json:"username,omitempty"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	DocFileName string `json:"doc_file_name,omitempty"`
	CreatedAt   string `json:"created_at"`
	NotifiedAt  string `json:"notified_at,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Username:    b.Username,
		Date:        b.Date,
		Status:      string(b.Status),
		DocFileName: b.DocFileName,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
	if b.NotifiedAt != nil {
		resp.NotifiedAt = b.NotifiedAt.Format(time.RFC3339)
	}
	return resp
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}
