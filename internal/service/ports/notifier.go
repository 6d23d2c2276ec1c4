package ports

import (
	"context"

	"github.com/Mohatm/Telegram-bot/internal/domain"
)

// AdminNotifier forwards a freshly submitted booking to the administrator
// for decision. An error means nothing reached the admin.
type AdminNotifier interface {
	NotifyNewBooking(ctx context.Context, b *domain.Booking) error
}
