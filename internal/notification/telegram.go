package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/Mohatm/Telegram-bot/internal/domain"
)

// Sender is the slice of the Telegram client the notifier needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier delivers new bookings to the single admin chat: a text
// summary followed by the uploaded document with approve/reject controls.
type TelegramNotifier struct {
	bot         Sender
	adminChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(bot Sender, adminChatID int64, logger logger.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		bot:         bot,
		adminChatID: adminChatID,
		logger:      logger,
	}
}

// NotifyNewBooking sends the summary and then the document. If either send
// fails the whole dispatch is reported as failed; the caller decides what
// to do with the already persisted booking.
func (n *TelegramNotifier) NotifyNewBooking(ctx context.Context, b *domain.Booking) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("dispatch cancelled: %w", err)
	}

	summary := fmt.Sprintf(
		"New booking #%d\nUser: %s (id %d)\nDate: %s",
		b.ID, displayName(b), b.UserID, b.Date,
	)
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.adminChatID, summary)); err != nil {
		return fmt.Errorf("send summary: %w", err)
	}

	doc := tgbotapi.NewDocument(n.adminChatID, tgbotapi.FileID(b.DocFileID))
	doc.ReplyMarkup = DecisionKeyboard(b.ID)
	if _, err := n.bot.Send(doc); err != nil {
		return fmt.Errorf("send document: %w", err)
	}

	n.logger.Info("booking dispatched to admin",
		logger.Int64("booking_id", b.ID),
		logger.Int64("admin_chat_id", n.adminChatID),
	)

	return nil
}

// DecisionKeyboard builds the approve/reject controls tagged with the
// booking id.
func DecisionKeyboard(bookingID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Approve", fmt.Sprintf("approve:%d", bookingID)),
			tgbotapi.NewInlineKeyboardButtonData("Reject", fmt.Sprintf("reject:%d", bookingID)),
		),
	)
}

func displayName(b *domain.Booking) string {
	if b.Username == "" {
		return "unknown"
	}
	return "@" + b.Username
}
