package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type dispatchRetrier interface {
	RetryUnnotified(ctx context.Context) (int, error)
}

// Scheduler periodically re-dispatches bookings that were persisted but
// never delivered to the admin.
type Scheduler struct {
	bookingService dispatchRetrier
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService dispatchRetrier,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("dispatch retry scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("dispatch retry scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	delivered, err := s.bookingService.RetryUnnotified(ctx)
	if err != nil {
		s.logger.Error("dispatch retry round failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if delivered > 0 {
		s.logger.Info("re-dispatched bookings to admin",
			logger.Int("count", delivered),
		)
	}
}
