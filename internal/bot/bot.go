// Package bot is the Telegram conversation layer: it walks a user from
// date selection through document upload and routes the admin's
// approve/reject decisions.
package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/Mohatm/Telegram-bot/internal/domain"
)

// Sender is the slice of the Telegram client the bot uses, narrowed so
// tests can substitute an in-memory fake.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type BookingSvc interface {
	OfferableDates(now time.Time) []time.Time
	ValidateDate(ctx context.Context, userID int64, date string) error
	Submit(ctx context.Context, in domain.SubmitBookingInput) (*domain.Booking, error)
	Decide(ctx context.Context, id int64, approve bool) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error)
	ListPending(ctx context.Context) ([]*domain.Booking, error)
}

const (
	msgWelcome = "Welcome! Use /schedule to make a booking (Sun-Thu).\n" +
		"Commands:\n/schedule - start booking\n/mybookings - view your bookings\n" +
		"/pending - view pending bookings (admin)\n/cancel - cancel current action"
	msgSelectDate    = "Please select a booking date (only Sun-Thu, at least 2 days in advance):"
	msgAskDocument   = "Selected date: %s\nNow, please upload your document."
	msgAlreadyBooked = "You already have a booking on %s."
	msgFullyBooked   = "%s is fully booked. Choose another date."
	msgStaleDate     = "That date is no longer available. Use /schedule to pick again."
	msgNotADocument  = "Please send a file or photo as the document."
	msgDateMissing   = "Date missing. Please start with /schedule."
	msgSubmitted     = "Booking submitted. You will be notified after admin approval."
	msgDispatchFail  = "Failed to send booking to admin. Please contact support."
	msgGenericFail   = "Something went wrong. Please try again later."
	msgCancelled     = "Booking canceled."
	msgUnknown       = "Sorry, I did not understand that command."
	msgAdminOnly     = "This command is available to the admin only."
)

type Bot struct {
	api      Sender
	svc      BookingSvc
	sessions *SessionStore
	adminID  int64
	log      logger.Logger
}

func New(api Sender, svc BookingSvc, adminID int64, log logger.Logger) *Bot {
	return &Bot{
		api:      api,
		svc:      svc,
		sessions: NewSessionStore(),
		adminID:  adminID,
		log:      log,
	}
}

// Run consumes updates until the context is cancelled. Each update is
// handled on its own goroutine so one user's storage latency does not
// stall other conversations; per-user ordering is Telegram's per-chat
// delivery guarantee.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	b.registerCommands()

	for {
		select {
		case <-ctx.Done():
			b.log.Info("bot update loop stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) registerCommands() {
	cmds := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Start the bot"},
		tgbotapi.BotCommand{Command: "schedule", Description: "Make a booking"},
		tgbotapi.BotCommand{Command: "mybookings", Description: "View your bookings"},
		tgbotapi.BotCommand{Command: "pending", Description: "View pending bookings (admin only)"},
		tgbotapi.BotCommand{Command: "cancel", Description: "Cancel current action"},
	)
	if _, err := b.api.Request(cmds); err != nil {
		b.log.Warn("failed to register bot commands", logger.String("error", err.Error()))
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	userID := msg.From.ID

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	sess := b.sessions.Get(userID)
	if sess.State == StateAwaitingDocument {
		b.handleDocument(ctx, msg, sess)
		return
	}

	b.reply(msg.Chat.ID, msgUnknown)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		b.reply(chatID, msgWelcome)

	case "schedule":
		// Re-entrant: always restarts the conversation from date selection.
		b.startScheduling(userID, chatID)

	case "mybookings":
		b.listOwnBookings(ctx, userID, chatID)

	case "pending":
		if userID != b.adminID {
			b.reply(chatID, msgAdminOnly)
			return
		}
		b.listPendingBookings(ctx, chatID)

	case "cancel":
		b.sessions.Reset(userID)
		b.reply(chatID, msgCancelled)

	default:
		b.reply(chatID, msgUnknown)
	}
}

func (b *Bot) startScheduling(userID, chatID int64) {
	dates := b.svc.OfferableDates(time.Now().UTC())
	if len(dates) == 0 {
		b.reply(chatID, "No dates are currently open for booking.")
		return
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(dates))
	for _, d := range dates {
		label := d.Format(domain.DateLayout)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, DateCallback(d)),
		))
	}

	out := tgbotapi.NewMessage(chatID, msgSelectDate)
	out.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.send(out)

	b.sessions.Put(userID, Session{State: StateAwaitingDate})
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		b.log.Warn("failed to answer callback", logger.String("error", err.Error()))
	}

	cb, err := ParseCallback(cq.Data)
	if err != nil {
		b.log.Warn("rejected callback", logger.String("error", err.Error()))
		return
	}

	switch cb.Kind {
	case CallbackDate:
		b.handleDateSelection(ctx, cq, cb.Date)
	case CallbackApprove, CallbackReject:
		b.handleDecision(ctx, cq, cb)
	}
}

func (b *Bot) handleDateSelection(ctx context.Context, cq *tgbotapi.CallbackQuery, date string) {
	userID := cq.From.ID

	sess := b.sessions.Get(userID)
	if sess.State != StateAwaitingDate {
		// Stale button from a finished or cancelled conversation.
		b.reply(userID, msgDateMissing)
		return
	}

	if err := b.svc.ValidateDate(ctx, userID, date); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyBooked):
			b.editOrReply(cq, fmt.Sprintf(msgAlreadyBooked, date))
		case errors.Is(err, domain.ErrDateFullyBooked):
			b.editOrReply(cq, fmt.Sprintf(msgFullyBooked, date))
		case errors.Is(err, domain.ErrDateNotBookable), errors.Is(err, domain.ErrValidation):
			b.editOrReply(cq, msgStaleDate)
		default:
			b.log.Error("date validation failed",
				logger.Int64("user_id", userID),
				logger.String("error", err.Error()),
			)
			b.editOrReply(cq, msgGenericFail)
			b.sessions.Reset(userID)
		}
		return
	}

	b.sessions.Put(userID, Session{State: StateAwaitingDocument, ChosenDate: date})
	b.editOrReply(cq, fmt.Sprintf(msgAskDocument, date))
}

func (b *Bot) handleDocument(ctx context.Context, msg *tgbotapi.Message, sess Session) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	if sess.ChosenDate == "" {
		b.sessions.Reset(userID)
		b.reply(chatID, msgDateMissing)
		return
	}

	fileID, fileName, ok := attachedFile(msg)
	if !ok {
		b.reply(chatID, msgNotADocument)
		return
	}

	booking, err := b.svc.Submit(ctx, domain.SubmitBookingInput{
		UserID:   userID,
		Username: msg.From.UserName,
		Date:     sess.ChosenDate,
		FileID:   fileID,
		FileName: fileName,
	})
	if err != nil {
		b.sessions.Reset(userID)
		switch {
		case errors.Is(err, domain.ErrDispatchFailed):
			// The booking row exists; delivery will be retried in the background.
			b.reply(chatID, msgDispatchFail)
		case errors.Is(err, domain.ErrAlreadyBooked):
			b.reply(chatID, fmt.Sprintf(msgAlreadyBooked, sess.ChosenDate))
		case errors.Is(err, domain.ErrDateFullyBooked):
			b.reply(chatID, fmt.Sprintf(msgFullyBooked, sess.ChosenDate))
		default:
			b.log.Error("booking submission failed",
				logger.Int64("user_id", userID),
				logger.String("error", err.Error()),
			)
			b.reply(chatID, msgGenericFail)
		}
		return
	}

	b.sessions.Reset(userID)
	b.reply(chatID, msgSubmitted)
	b.log.Info("booking submitted",
		logger.Int64("booking_id", booking.ID),
		logger.Int64("user_id", userID),
		logger.String("date", booking.Date),
	)
}

func (b *Bot) handleDecision(ctx context.Context, cq *tgbotapi.CallbackQuery, cb Callback) {
	if cq.From.ID != b.adminID {
		b.log.Warn("decision callback from non-admin",
			logger.Int64("user_id", cq.From.ID),
			logger.Int64("booking_id", cb.BookingID),
		)
		return
	}

	approve := cb.Kind == CallbackApprove

	booking, err := b.svc.Decide(ctx, cb.BookingID, approve)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookingNotFound):
			b.reply(b.adminID, fmt.Sprintf("Booking #%d not found.", cb.BookingID))
		case errors.Is(err, domain.ErrBookingNotPending):
			b.reply(b.adminID, fmt.Sprintf("Booking #%d is already decided.", cb.BookingID))
		default:
			b.log.Error("decision failed",
				logger.Int64("booking_id", cb.BookingID),
				logger.String("error", err.Error()),
			)
			b.reply(b.adminID, msgGenericFail)
		}
		return
	}

	verdict := "rejected"
	if approve {
		verdict = "approved"
	}
	b.reply(b.adminID, fmt.Sprintf("Booking #%d %s.", booking.ID, verdict))
	b.reply(booking.UserID, fmt.Sprintf("Your booking for %s was %s.", booking.Date, verdict))
}

func (b *Bot) listOwnBookings(ctx context.Context, userID, chatID int64) {
	bookings, err := b.svc.ListByUser(ctx, userID)
	if err != nil {
		b.log.Error("failed to list bookings",
			logger.Int64("user_id", userID),
			logger.String("error", err.Error()),
		)
		b.reply(chatID, msgGenericFail)
		return
	}
	if len(bookings) == 0 {
		b.reply(chatID, "You have no bookings.")
		return
	}

	text := "Your bookings:\n"
	for _, bk := range bookings {
		text += fmt.Sprintf("#%d  %s  %s\n", bk.ID, bk.Date, bk.Status)
	}
	b.reply(chatID, text)
}

func (b *Bot) listPendingBookings(ctx context.Context, chatID int64) {
	bookings, err := b.svc.ListPending(ctx)
	if err != nil {
		b.log.Error("failed to list pending bookings", logger.String("error", err.Error()))
		b.reply(chatID, msgGenericFail)
		return
	}
	if len(bookings) == 0 {
		b.reply(chatID, "No pending bookings.")
		return
	}

	text := "Pending bookings:\n"
	for _, bk := range bookings {
		text += fmt.Sprintf("#%d  %s  %s (id %d)\n", bk.ID, bk.Date, displayUser(bk), bk.UserID)
	}
	b.reply(chatID, text)
}

// attachedFile extracts the transport file reference from a message:
// documents keep their original name, photos take the largest size with a
// synthesized name.
func attachedFile(msg *tgbotapi.Message) (fileID, fileName string, ok bool) {
	if msg.Document != nil {
		return msg.Document.FileID, msg.Document.FileName, true
	}
	if len(msg.Photo) > 0 {
		largest := msg.Photo[len(msg.Photo)-1]
		name := fmt.Sprintf("photo_%d_%d.jpg", msg.From.ID, time.Now().Unix())
		return largest.FileID, name, true
	}
	return "", "", false
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

// editOrReply rewrites the message the pressed button belongs to, falling
// back to a plain message when the original is inaccessible.
func (b *Bot) editOrReply(cq *tgbotapi.CallbackQuery, text string) {
	if cq.Message != nil {
		b.send(tgbotapi.NewEditMessageText(cq.Message.Chat.ID, cq.Message.MessageID, text))
		return
	}
	b.reply(cq.From.ID, text)
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.log.Error("failed to send telegram message", logger.String("error", err.Error()))
	}
}

func displayUser(b *domain.Booking) string {
	if b.Username == "" {
		return "-"
	}
	return "@" + b.Username
}
