package bot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/Mohatm/Telegram-bot/internal/bot/mocks"
	"github.com/Mohatm/Telegram-bot/internal/domain"
)

const (
	testAdminID = int64(100)
	testUserID  = int64(7)
)

type fakeSender struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// texts flattens everything sent, message or edit, into plain strings.
func (f *fakeSender) texts() []string {
	var out []string
	for _, c := range f.sent {
		switch m := c.(type) {
		case tgbotapi.MessageConfig:
			out = append(out, m.Text)
		case tgbotapi.EditMessageTextConfig:
			out = append(out, m.Text)
		}
	}
	return out
}

func (f *fakeSender) lastText(t *testing.T) string {
	t.Helper()
	texts := f.texts()
	require.NotEmpty(t, texts)
	return texts[len(texts)-1]
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestBot(t *testing.T) (*fakeSender, *mocks.MockBookingSvc, *Bot) {
	t.Helper()
	sender := &fakeSender{}
	svc := mocks.NewMockBookingSvc(t)
	return sender, svc, New(sender, svc, testAdminID, newTestLogger(t))
}

func commandUpdate(userID int64, cmd string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		From: &tgbotapi.User{ID: userID, UserName: "alice"},
		Chat: &tgbotapi.Chat{ID: userID},
		Text: cmd,
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: len(cmd)},
		},
	}}
}

func textUpdate(userID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		From: &tgbotapi.User{ID: userID, UserName: "alice"},
		Chat: &tgbotapi.Chat{ID: userID},
		Text: text,
	}}
}

func documentUpdate(userID int64) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		From:     &tgbotapi.User{ID: userID, UserName: "alice"},
		Chat:     &tgbotapi.Chat{ID: userID},
		Document: &tgbotapi.Document{FileID: "file-1", FileName: "passport.pdf"},
	}}
}

func photoUpdate(userID int64) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		From: &tgbotapi.User{ID: userID, UserName: "alice"},
		Chat: &tgbotapi.Chat{ID: userID},
		Photo: []tgbotapi.PhotoSize{
			{FileID: "thumb"},
			{FileID: "full"},
		},
	}}
}

func callbackUpdate(userID int64, data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:   "cb1",
		From: &tgbotapi.User{ID: userID, UserName: "alice"},
		Data: data,
		Message: &tgbotapi.Message{
			MessageID: 5,
			Chat:      &tgbotapi.Chat{ID: userID},
		},
	}}
}

func offerable(n int) []time.Time {
	base := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = base.AddDate(0, 0, i)
	}
	return dates
}

func TestBot_Start(t *testing.T) {
	sender, _, b := newTestBot(t)

	b.handleUpdate(context.Background(), commandUpdate(testUserID, "/start"))

	assert.Contains(t, sender.lastText(t), "/schedule")
	assert.Equal(t, StateIdle, b.sessions.Get(testUserID).State)
}

func TestBot_Schedule_PresentsDates(t *testing.T) {
	sender, svc, b := newTestBot(t)

	svc.EXPECT().OfferableDates(mock.Anything).Return(offerable(3))

	b.handleUpdate(context.Background(), commandUpdate(testUserID, "/schedule"))

	assert.Equal(t, StateAwaitingDate, b.sessions.Get(testUserID).State)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0].(tgbotapi.MessageConfig)
	keyboard := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.Len(t, keyboard.InlineKeyboard, 3)
	assert.Equal(t, "date:2024-01-03", *keyboard.InlineKeyboard[0][0].CallbackData)
}

func TestBot_DateSelection_MovesToDocument(t *testing.T) {
	sender, svc, b := newTestBot(t)
	b.sessions.Put(testUserID, Session{State: StateAwaitingDate})

	svc.EXPECT().ValidateDate(mock.Anything, testUserID, "2024-01-10").Return(nil)

	b.handleUpdate(context.Background(), callbackUpdate(testUserID, "date:2024-01-10"))

	sess := b.sessions.Get(testUserID)
	assert.Equal(t, StateAwaitingDocument, sess.State)
	assert.Equal(t, "2024-01-10", sess.ChosenDate)
	assert.Contains(t, sender.lastText(t), "upload your document")
	assert.Len(t, sender.requests, 1) // callback answered
}

func TestBot_DateSelection_AlreadyBooked(t *testing.T) {
	sender, svc, b := newTestBot(t)
	b.sessions.Put(testUserID, Session{State: StateAwaitingDate})

	svc.EXPECT().ValidateDate(mock.Anything, testUserID, "2024-01-10").
		Return(domain.ErrAlreadyBooked)

	b.handleUpdate(context.Background(), callbackUpdate(testUserID, "date:2024-01-10"))

	assert.Equal(t, StateAwaitingDate, b.sessions.Get(testUserID).State)
	assert.Contains(t, sender.lastText(t), "already have a booking")
}

func TestBot_DateSelection_FullyBooked(t *testing.T) {
	sender, svc, b := newTestBot(t)
	b.sessions.Put(testUserID, Session{State: StateAwaitingDate})

	svc.EXPECT().ValidateDate(mock.Anything, testUserID, "2024-01-10").
		Return(domain.ErrDateFullyBooked)

	b.handleUpdate(context.Background(), callbackUpdate(testUserID, "date:2024-01-10"))

	// Rejection keeps the user choosing.
	assert.Equal(t, StateAwaitingDate, b.sessions.Get(testUserID).State)
	assert.Contains(t, sender.lastText(t), "fully booked")
}

func TestBot_DateSelection_WithoutConversation(t *testing.T) {
	sender, _, b := newTestBot(t)

	b.handleUpdate(context.Background(), callbackUpdate(testUserID, "date:2024-01-10"))

	assert.Contains(t, sender.lastText(t), "/schedule")
}

func TestBot_MalformedCallback_Ignored(t *testing.T) {
	sender, _, b := newTestBot(t)

	b.handleUpdate(context.Background(), callbackUpdate(testUserID, "date:garbage"))

	assert.Empty(t, sender.sent)
	assert.Len(t, sender.requests, 1)
}

func TestBot_DocumentUpload_Submits(t *testing.T) {
	sender, svc, b := newTestBot(t)
	b.sessions.Put(testUserID, Session{State: StateAwaitingDocument, ChosenDate: "2024-01-10"})

	svc.EXPECT().Submit(mock.Anything, domain.SubmitBookingInput{
		UserID:   testUserID,
		Username: "alice",
		Date:     "2024-01-10",
		FileID:   "file-1",
		FileName: "passport.pdf",
	}).Return(&domain.Booking{ID: 42, Date: "2024-01-10", Status: domain.BookingStatusPending}, nil)

	b.handleUpdate(context.Background(), documentUpdate(testUserID))

	assert.Equal(t, StateIdle, b.sessions.Get(testUserID).State)
	assert.Contains(t, sender.lastText(t), "submitted")
}

func TestBot_PhotoUpload_TakesLargestSize(t *testing.T) {
	_, svc, b := newTestBot(t)
	b.sessions.Put(testUserID, Session{State: StateAwaitingDocument, ChosenDate: "2024-01-10"})

	svc.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(in domain.SubmitBookingInput) bool {
		return in.FileID == "full" && strings.HasPrefix(in.FileName, "photo_7_")
	})).Return(&domain.Booking{ID: 42}, nil)

	b.handleUpdate(context.Background(), photoUpdate(testUserID))

	assert.Equal(t, StateIdle, b.sessions.Get(testUserID).State)
}

func TestBot_DocumentStep_RejectsPlainText(t *testing.T) {
	sender, _, b := newTestBot(t)
	b.sessions.Put(testUserID, Session{State: StateAwaitingDocument, ChosenDate: "2024-01-10"})

	b.handleUpdate(context.Background(), textUpdate(testUserID, "here you go"))

	assert.Equal(t, StateAwaitingDocument, b.sessions.Get(testUserID).State)
	assert.Contains(t, sender.lastText(t), "file or photo")
}

func TestBot_DocumentStep_MissingDateAborts(t *testing.T) {
	sender, _, b := newTestBot(t)
	b.sessions.Put(testUserID, Session{State: StateAwaitingDocument})

	b.handleUpdate(context.Background(), documentUpdate(testUserID))

	assert.Equal(t, StateIdle, b.sessions.Get(testUserID).State)
	assert.Contains(t, sender.lastText(t), "/schedule")
}

func TestBot_DocumentUpload_DispatchFailure(t *testing.T) {
	sender, svc, b := newTestBot(t)
	b.sessions.Put(testUserID, Session{State: StateAwaitingDocument, ChosenDate: "2024-01-10"})

	svc.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(&domain.Booking{ID: 42}, domain.ErrDispatchFailed)

	b.handleUpdate(context.Background(), documentUpdate(testUserID))

	assert.Equal(t, StateIdle, b.sessions.Get(testUserID).State)
	assert.Contains(t, sender.lastText(t), "contact support")
}

func TestBot_CancelDuringDocumentStep(t *testing.T) {
	sender, _, b := newTestBot(t)
	b.sessions.Put(testUserID, Session{State: StateAwaitingDocument, ChosenDate: "2024-01-10"})

	b.handleUpdate(context.Background(), commandUpdate(testUserID, "/cancel"))

	assert.Equal(t, StateIdle, b.sessions.Get(testUserID).State)
	assert.Contains(t, sender.lastText(t), "canceled")

	// A document after cancellation belongs to no conversation.
	b.handleUpdate(context.Background(), documentUpdate(testUserID))
	assert.Contains(t, sender.lastText(t), "did not understand")
}

func TestBot_ScheduleRestartsConversation(t *testing.T) {
	_, svc, b := newTestBot(t)
	b.sessions.Put(testUserID, Session{State: StateAwaitingDocument, ChosenDate: "2024-01-10"})

	svc.EXPECT().OfferableDates(mock.Anything).Return(offerable(1))

	b.handleUpdate(context.Background(), commandUpdate(testUserID, "/schedule"))

	sess := b.sessions.Get(testUserID)
	assert.Equal(t, StateAwaitingDate, sess.State)
	assert.Empty(t, sess.ChosenDate)
}

func TestBot_Approve_NotifiesAdminAndUser(t *testing.T) {
	sender, svc, b := newTestBot(t)

	decided := &domain.Booking{ID: 42, UserID: testUserID, Date: "2024-01-10", Status: domain.BookingStatusApproved}
	svc.EXPECT().Decide(mock.Anything, int64(42), true).Return(decided, nil)

	b.handleUpdate(context.Background(), callbackUpdate(testAdminID, "approve:42"))

	texts := sender.texts()
	require.Len(t, texts, 2)
	assert.Contains(t, texts[0], "approved")
	assert.Contains(t, texts[1], "approved")

	userMsg := sender.sent[1].(tgbotapi.MessageConfig)
	assert.Equal(t, testUserID, userMsg.ChatID)
}

func TestBot_Reject_NotifiesUser(t *testing.T) {
	sender, svc, b := newTestBot(t)

	decided := &domain.Booking{ID: 42, UserID: testUserID, Date: "2024-01-10", Status: domain.BookingStatusRejected}
	svc.EXPECT().Decide(mock.Anything, int64(42), false).Return(decided, nil)

	b.handleUpdate(context.Background(), callbackUpdate(testAdminID, "reject:42"))

	assert.Contains(t, sender.lastText(t), "rejected")
}

func TestBot_Decision_FromNonAdminIgnored(t *testing.T) {
	sender, _, b := newTestBot(t)

	b.handleUpdate(context.Background(), callbackUpdate(testUserID, "approve:42"))

	assert.Empty(t, sender.sent)
}

func TestBot_Decision_AlreadyDecided(t *testing.T) {
	sender, svc, b := newTestBot(t)

	svc.EXPECT().Decide(mock.Anything, int64(42), true).
		Return(nil, domain.ErrBookingNotPending)

	b.handleUpdate(context.Background(), callbackUpdate(testAdminID, "approve:42"))

	assert.Contains(t, sender.lastText(t), "already decided")
}

func TestBot_MyBookings(t *testing.T) {
	sender, svc, b := newTestBot(t)

	svc.EXPECT().ListByUser(mock.Anything, testUserID).Return([]*domain.Booking{
		{ID: 1, Date: "2024-01-10", Status: domain.BookingStatusPending},
		{ID: 2, Date: "2024-01-11", Status: domain.BookingStatusApproved},
	}, nil)

	b.handleUpdate(context.Background(), commandUpdate(testUserID, "/mybookings"))

	text := sender.lastText(t)
	assert.Contains(t, text, "2024-01-10")
	assert.Contains(t, text, "APPROVED")
}

func TestBot_Pending_AdminOnly(t *testing.T) {
	sender, _, b := newTestBot(t)

	b.handleUpdate(context.Background(), commandUpdate(testUserID, "/pending"))

	assert.Contains(t, sender.lastText(t), "admin only")
}

func TestBot_Pending_ListsForAdmin(t *testing.T) {
	sender, svc, b := newTestBot(t)

	svc.EXPECT().ListPending(mock.Anything).Return([]*domain.Booking{
		{ID: 1, UserID: testUserID, Username: "alice", Date: "2024-01-10", Status: domain.BookingStatusPending},
	}, nil)

	b.handleUpdate(context.Background(), commandUpdate(testAdminID, "/pending"))

	text := sender.lastText(t)
	assert.Contains(t, text, "@alice")
	assert.Contains(t, text, "2024-01-10")
}

func TestBot_UnknownTextOutsideConversation(t *testing.T) {
	sender, _, b := newTestBot(t)

	b.handleUpdate(context.Background(), textUpdate(testUserID, "hello"))

	assert.Contains(t, sender.lastText(t), "did not understand")
}

func TestBot_StorageErrorAbortsConversation(t *testing.T) {
	sender, svc, b := newTestBot(t)
	b.sessions.Put(testUserID, Session{State: StateAwaitingDate})

	svc.EXPECT().ValidateDate(mock.Anything, testUserID, "2024-01-10").
		Return(errors.New("db down"))

	b.handleUpdate(context.Background(), callbackUpdate(testUserID, "date:2024-01-10"))

	assert.Equal(t, StateIdle, b.sessions.Get(testUserID).State)
	assert.Contains(t, sender.lastText(t), "went wrong")
}
