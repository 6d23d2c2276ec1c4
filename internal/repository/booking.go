package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Mohatm/Telegram-bot/internal/domain"
)

type BookingRepository struct {
	db       *dbpg.DB
	capacity int
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB, capacity int) *BookingRepository {
	return &BookingRepository{
		db:       db,
		capacity: capacity,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts a PENDING booking. The insert is conditional on the date
// still having approved capacity, so the capacity check and the write are a
// single atomic statement; the unique index on (user_id, date) guards
// against a duplicate booking by the same user.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (user_id, username, date, status, doc_file_id, doc_file_name, created_at)
			  SELECT $1, $2, $3, $4, $5, $6, $7
			  WHERE (SELECT COUNT(*) FROM bookings WHERE date = $3 AND status = $8) < $9
			  RETURNING id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		b.UserID, b.Username, b.Date, domain.BookingStatusPending,
		b.DocFileID, b.DocFileName, b.CreatedAt,
		domain.BookingStatusApproved, r.capacity,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	if err = row.Scan(&b.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrDateFullyBooked
		}
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	b.Status = domain.BookingStatusPending
	return nil
}

func (r *BookingRepository) CountApproved(ctx context.Context, date string) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE date = $1 AND status = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, date, domain.BookingStatusApproved)
	if err != nil {
		return 0, fmt.Errorf("count approved: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan approved count: %w", err)
	}

	return count, nil
}

func (r *BookingRepository) HasBooking(ctx context.Context, userID int64, date string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bookings WHERE user_id = $1 AND date = $2)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, date)
	if err != nil {
		return false, fmt.Errorf("check booking: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan booking existence: %w", err)
	}

	return exists, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT id, user_id, username, date, status, doc_file_id, doc_file_name, created_at, notified_at
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// SetStatus moves a booking out of PENDING. The guard in the UPDATE makes
// the transition single-shot: a decided booking can not be decided again.
func (r *BookingRepository) SetStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	query := `UPDATE bookings
			  SET status = $2
			  WHERE id = $1 AND status = $3`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, domain.BookingStatusPending)
	if err != nil {
		return fmt.Errorf("set booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		// Not updated: either the id is unknown or the booking is already decided.
		if _, err = r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrBookingNotPending
	}

	return nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	query := `SELECT id, user_id, username, date, status, doc_file_id, doc_file_name, created_at, notified_at
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListPending(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT id, user_id, username, date, status, doc_file_id, doc_file_name, created_at, notified_at
			  FROM bookings
			  WHERE status = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.BookingStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) MarkNotified(ctx context.Context, id int64) error {
	query := `UPDATE bookings SET notified_at = now() WHERE id = $1`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id); err != nil {
		return fmt.Errorf("mark booking notified: %w", err)
	}

	return nil
}

// ListUnnotified returns pending bookings that were persisted but never
// delivered to the admin, oldest first.
func (r *BookingRepository) ListUnnotified(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT id, user_id, username, date, status, doc_file_id, doc_file_name, created_at, notified_at
			  FROM bookings
			  WHERE status = $1 AND notified_at IS NULL
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.BookingStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list unnotified bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var b domain.Booking
	var notifiedAt sql.NullTime
	if err := scan(
		&b.ID, &b.UserID, &b.Username, &b.Date, &b.Status,
		&b.DocFileID, &b.DocFileName, &b.CreatedAt, &notifiedAt,
	); err != nil {
		return nil, err
	}
	if notifiedAt.Valid {
		b.NotifiedAt = &notifiedAt.Time
	}
	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
