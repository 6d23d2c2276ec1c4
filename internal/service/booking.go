package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/Mohatm/Telegram-bot/internal/domain"
	"github.com/Mohatm/Telegram-bot/internal/schedule"
	"github.com/Mohatm/Telegram-bot/internal/service/ports"
)

type BookingService struct {
	repo        ports.BookingRepo
	notifier    ports.AdminNotifier
	capacity    int
	horizonDays int
	leadDays    int
	logger      logger.Logger
}

func NewBookingService(
	repo ports.BookingRepo,
	notifier ports.AdminNotifier,
	capacity int,
	horizonDays int,
	leadDays int,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		repo:        repo,
		notifier:    notifier,
		capacity:    capacity,
		horizonDays: horizonDays,
		leadDays:    leadDays,
		logger:      logger,
	}
}

// OfferableDates lists the dates a user may currently select.
func (s *BookingService) OfferableDates(now time.Time) []time.Time {
	return schedule.OfferableDates(now, s.horizonDays, s.leadDays)
}

// ValidateDate checks a selected date against the availability policy, the
// user's own bookings and the date's approved capacity.
func (s *BookingService) ValidateDate(ctx context.Context, userID int64, date string) error {
	parsed, err := time.ParseInLocation(domain.DateLayout, date, time.UTC)
	if err != nil {
		return fmt.Errorf("%w: bad date %q", domain.ErrValidation, date)
	}

	if !s.isOfferable(parsed) {
		return domain.ErrDateNotBookable
	}

	booked, err := s.repo.HasBooking(ctx, userID, date)
	if err != nil {
		return fmt.Errorf("check existing booking: %w", err)
	}
	if booked {
		return domain.ErrAlreadyBooked
	}

	count, err := s.repo.CountApproved(ctx, date)
	if err != nil {
		return fmt.Errorf("check capacity: %w", err)
	}
	if count >= s.capacity {
		return domain.ErrDateFullyBooked
	}

	return nil
}

// Submit persists the booking and dispatches it to the admin. The booking
// is created first; if dispatch then fails, the row stays PENDING and the
// returned error wraps ErrDispatchFailed so the conversation can report a
// failure while the scheduler retries delivery later.
func (s *BookingService) Submit(ctx context.Context, in domain.SubmitBookingInput) (*domain.Booking, error) {
	booking := &domain.Booking{
		UserID:      in.UserID,
		Username:    in.Username,
		Date:        in.Date,
		Status:      domain.BookingStatusPending,
		DocFileID:   in.FileID,
		DocFileName: in.FileName,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.Int64("booking_id", booking.ID),
		logger.Int64("user_id", in.UserID),
		logger.String("date", in.Date),
	)

	if err := s.notifier.NotifyNewBooking(ctx, booking); err != nil {
		s.logger.Error("failed to dispatch booking to admin",
			logger.Int64("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
		return booking, fmt.Errorf("%w: %w", domain.ErrDispatchFailed, err)
	}

	if err := s.repo.MarkNotified(ctx, booking.ID); err != nil {
		// The admin got the message; worst case the scheduler re-sends it.
		s.logger.Error("failed to mark booking notified",
			logger.Int64("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
	}

	return booking, nil
}

// Decide applies the admin's verdict and returns the booking so the caller
// can notify the requester.
func (s *BookingService) Decide(ctx context.Context, id int64, approve bool) (*domain.Booking, error) {
	status := domain.BookingStatusRejected
	if approve {
		status = domain.BookingStatusApproved
	}

	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("decide booking: %w", err)
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load decided booking: %w", err)
	}

	s.logger.Info("booking decided",
		logger.Int64("booking_id", id),
		logger.String("status", string(status)),
	)

	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BookingService) ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *BookingService) ListPending(ctx context.Context) ([]*domain.Booking, error) {
	return s.repo.ListPending(ctx)
}

// RetryUnnotified re-dispatches pending bookings that never reached the
// admin. Returns how many were delivered this round.
func (s *BookingService) RetryUnnotified(ctx context.Context) (int, error) {
	bookings, err := s.repo.ListUnnotified(ctx)
	if err != nil {
		return 0, fmt.Errorf("list unnotified: %w", err)
	}

	delivered := 0
	for _, b := range bookings {
		if err := s.notifier.NotifyNewBooking(ctx, b); err != nil {
			s.logger.Warn("dispatch retry failed",
				logger.Int64("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if err := s.repo.MarkNotified(ctx, b.ID); err != nil {
			s.logger.Error("failed to mark booking notified",
				logger.Int64("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		delivered++
	}

	return delivered, nil
}

func (s *BookingService) isOfferable(d time.Time) bool {
	for _, offered := range s.OfferableDates(time.Now().UTC()) {
		if offered.Equal(d) {
			return true
		}
	}
	return false
}
