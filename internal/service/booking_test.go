package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/Mohatm/Telegram-bot/internal/domain"
	"github.com/Mohatm/Telegram-bot/internal/schedule"
	"github.com/Mohatm/Telegram-bot/internal/service/ports/mocks"
)

const testCapacity = 10

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestService(t *testing.T) (*mocks.MockBookingRepo, *mocks.MockAdminNotifier, *BookingService) {
	t.Helper()
	repo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockAdminNotifier(t)
	svc := NewBookingService(repo, notifier, testCapacity,
		schedule.DefaultHorizonDays, schedule.DefaultLeadDays, newTestLogger(t))
	return repo, notifier, svc
}

// offerableDate returns a date the policy currently accepts, so validation
// tests exercise the store checks rather than the calendar filter.
func offerableDate(t *testing.T) string {
	t.Helper()
	dates := schedule.OfferableDates(time.Now().UTC(), schedule.DefaultHorizonDays, schedule.DefaultLeadDays)
	require.NotEmpty(t, dates)
	return dates[0].Format(domain.DateLayout)
}

func TestBookingService_ValidateDate_OK(t *testing.T) {
	repo, _, svc := newTestService(t)
	date := offerableDate(t)

	repo.EXPECT().HasBooking(mock.Anything, int64(7), date).Return(false, nil)
	repo.EXPECT().CountApproved(mock.Anything, date).Return(3, nil)

	err := svc.ValidateDate(context.Background(), 7, date)

	require.NoError(t, err)
}

func TestBookingService_ValidateDate_Malformed(t *testing.T) {
	_, _, svc := newTestService(t)

	err := svc.ValidateDate(context.Background(), 7, "not-a-date")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_ValidateDate_OutsideWindow(t *testing.T) {
	_, _, svc := newTestService(t)

	// Tomorrow is always within lead time.
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format(domain.DateLayout)

	err := svc.ValidateDate(context.Background(), 7, tomorrow)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDateNotBookable)
}

func TestBookingService_ValidateDate_AlreadyBooked(t *testing.T) {
	repo, _, svc := newTestService(t)
	date := offerableDate(t)

	repo.EXPECT().HasBooking(mock.Anything, int64(7), date).Return(true, nil)

	err := svc.ValidateDate(context.Background(), 7, date)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestBookingService_ValidateDate_FullyBooked(t *testing.T) {
	repo, _, svc := newTestService(t)
	date := offerableDate(t)

	repo.EXPECT().HasBooking(mock.Anything, int64(7), date).Return(false, nil)
	repo.EXPECT().CountApproved(mock.Anything, date).Return(testCapacity, nil)

	err := svc.ValidateDate(context.Background(), 7, date)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDateFullyBooked)
}

func TestBookingService_ValidateDate_StoreError(t *testing.T) {
	repo, _, svc := newTestService(t)
	date := offerableDate(t)

	repo.EXPECT().HasBooking(mock.Anything, int64(7), date).Return(false, errors.New("db down"))

	err := svc.ValidateDate(context.Background(), 7, date)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestBookingService_Submit_Success(t *testing.T) {
	repo, notifier, svc := newTestService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, b *domain.Booking) error {
			b.ID = 42
			return nil
		})
	notifier.EXPECT().NotifyNewBooking(mock.Anything, mock.Anything).Return(nil)
	repo.EXPECT().MarkNotified(mock.Anything, int64(42)).Return(nil)

	booking, err := svc.Submit(context.Background(), domain.SubmitBookingInput{
		UserID:   7,
		Username: "alice",
		Date:     "2024-01-10",
		FileID:   "file-1",
		FileName: "passport.pdf",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "2024-01-10", booking.Date)
	assert.Equal(t, "passport.pdf", booking.DocFileName)
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestBookingService_Submit_CreateError(t *testing.T) {
	repo, _, svc := newTestService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDateFullyBooked)

	_, err := svc.Submit(context.Background(), domain.SubmitBookingInput{UserID: 7, Date: "2024-01-10"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDateFullyBooked)
}

func TestBookingService_Submit_DispatchFailure(t *testing.T) {
	repo, notifier, svc := newTestService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, b *domain.Booking) error {
			b.ID = 42
			return nil
		})
	notifier.EXPECT().NotifyNewBooking(mock.Anything, mock.Anything).Return(errors.New("telegram timeout"))

	booking, err := svc.Submit(context.Background(), domain.SubmitBookingInput{UserID: 7, Date: "2024-01-10"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDispatchFailed)
	// The row was persisted before dispatch was attempted.
	require.NotNil(t, booking)
	assert.Equal(t, int64(42), booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
}

func TestBookingService_Decide_Approve(t *testing.T) {
	repo, _, svc := newTestService(t)

	decided := &domain.Booking{ID: 42, UserID: 7, Date: "2024-01-10", Status: domain.BookingStatusApproved}

	repo.EXPECT().SetStatus(mock.Anything, int64(42), domain.BookingStatusApproved).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, int64(42)).Return(decided, nil)

	booking, err := svc.Decide(context.Background(), 42, true)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, booking.Status)
}

func TestBookingService_Decide_Reject(t *testing.T) {
	repo, _, svc := newTestService(t)

	decided := &domain.Booking{ID: 42, Status: domain.BookingStatusRejected}

	repo.EXPECT().SetStatus(mock.Anything, int64(42), domain.BookingStatusRejected).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, int64(42)).Return(decided, nil)

	booking, err := svc.Decide(context.Background(), 42, false)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusRejected, booking.Status)
}

func TestBookingService_Decide_NotPending(t *testing.T) {
	repo, _, svc := newTestService(t)

	repo.EXPECT().SetStatus(mock.Anything, int64(42), domain.BookingStatusApproved).
		Return(domain.ErrBookingNotPending)

	_, err := svc.Decide(context.Background(), 42, true)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
}

func TestBookingService_Decide_NotFound(t *testing.T) {
	repo, _, svc := newTestService(t)

	repo.EXPECT().SetStatus(mock.Anything, int64(99), domain.BookingStatusRejected).
		Return(domain.ErrBookingNotFound)

	_, err := svc.Decide(context.Background(), 99, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_RetryUnnotified_DeliversAndMarks(t *testing.T) {
	repo, notifier, svc := newTestService(t)

	pending := []*domain.Booking{
		{ID: 1, UserID: 7, Date: "2024-01-10"},
		{ID: 2, UserID: 8, Date: "2024-01-11"},
	}

	repo.EXPECT().ListUnnotified(mock.Anything).Return(pending, nil)
	notifier.EXPECT().NotifyNewBooking(mock.Anything, pending[0]).Return(nil)
	notifier.EXPECT().NotifyNewBooking(mock.Anything, pending[1]).Return(errors.New("still down"))
	repo.EXPECT().MarkNotified(mock.Anything, int64(1)).Return(nil)

	delivered, err := svc.RetryUnnotified(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, delivered)
}

func TestBookingService_RetryUnnotified_ListError(t *testing.T) {
	repo, _, svc := newTestService(t)

	repo.EXPECT().ListUnnotified(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.RetryUnnotified(context.Background())

	require.Error(t, err)
}

func TestBookingService_OfferableDates_UsesConfiguredWindow(t *testing.T) {
	_, _, svc := newTestService(t)

	now := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	dates := svc.OfferableDates(now)

	require.NotEmpty(t, dates)
	assert.Equal(t, time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC), dates[0])
}
