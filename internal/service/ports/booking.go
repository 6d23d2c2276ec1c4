package ports

import (
	"context"

	"github.com/Mohatm/Telegram-bot/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	CountApproved(ctx context.Context, date string) (int, error)
	HasBooking(ctx context.Context, userID int64, date string) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	SetStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error)
	ListPending(ctx context.Context) ([]*domain.Booking, error)
	MarkNotified(ctx context.Context, id int64) error
	ListUnnotified(ctx context.Context) ([]*domain.Booking, error)
}
