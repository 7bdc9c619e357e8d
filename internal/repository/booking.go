package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, kind, user_id, room_id, experience_id, check_in, check_out,
                        experience_time, guests, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// CreateRoomBooking re-checks availability and inserts under a lock on the
// room row, so concurrent requests for one room are serialized. The
// exclusion constraint on bookings backs the same rule.
func (r *BookingRepository) CreateRoomBooking(ctx context.Context, b *domain.Booking) error {
	if b.RoomID == nil || b.CheckIn == nil || b.CheckOut == nil {
		return fmt.Errorf("%w: room booking needs a room and both dates", domain.ErrValidation)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем комнату
	var roomID string
	if err = tx.QueryRowContext(ctx, `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`, *b.RoomID).Scan(&roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("lock room: %w", err)
	}

	// Проверяем пересечение с уже существующими бронями
	var overlap bool
	if err = tx.QueryRowContext(ctx, overlapQuery, roomID, *b.CheckIn, *b.CheckOut).Scan(&overlap); err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}
	if overlap {
		return domain.ErrRoomAlreadyBooked
	}

	query := `INSERT INTO bookings (id, kind, user_id, room_id, check_in, check_out, guests, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.ExecContext(ctx, query,
		b.ID, domain.BookingKindRoom, b.UserID, roomID,
		*b.CheckIn, *b.CheckOut, b.Guests, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return bookingWriteError(err)
	}

	return tx.Commit()
}

func (r *BookingRepository) CreateExperienceBooking(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, kind, user_id, experience_id, experience_time, guests, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		b.ID, domain.BookingKindExperience, b.UserID, b.ExperienceID,
		b.ExperienceTime, b.Guests, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return bookingWriteError(err)
	}
	return nil
}

func bookingWriteError(err error) error {
	if mapped := integrityError(err); mapped != nil {
		return mapped
	}
	if pgCode(err) == codeForeignKeyViolation {
		return fmt.Errorf("%w: %v", domain.ErrUserNotFound, err)
	}
	return fmt.Errorf("insert booking: %w", err)
}

// Границы включительно: выезд в день чужого заезда тоже пересечение.
const overlapQuery = `SELECT EXISTS (
                          SELECT 1 FROM bookings
                          WHERE kind = 'room'
                            AND room_id = $1
                            AND check_in <= $3
                            AND check_out >= $2
                      )`

func (r *BookingRepository) HasRoomOverlap(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, overlapQuery, roomID, checkIn, checkOut)
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}

	var overlap bool
	if err = row.Scan(&overlap); err != nil {
		return false, fmt.Errorf("scan overlap: %w", err)
	}
	return overlap, nil
}

func (r *BookingRepository) ListUpcomingByRoom(ctx context.Context, roomID string, after time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE kind = 'room' AND room_id = $1 AND check_in > $2
              ORDER BY check_in`
	return r.list(ctx, "list bookings by room", query, roomID, after)
}

func (r *BookingRepository) ListUpcomingByExperience(ctx context.Context, experienceID string, after time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE kind = 'experience' AND experience_id = $1 AND experience_time > $2
              ORDER BY experience_time`
	return r.list(ctx, "list bookings by experience", query, experienceID, after)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE user_id = $1
              ORDER BY created_at DESC`
	return r.list(ctx, "list bookings by user", query, userID)
}

// MarkReminded flags not yet reminded room bookings starting on checkIn
// and returns them. Each booking is returned once.
func (r *BookingRepository) MarkReminded(ctx context.Context, checkIn time.Time) ([]*domain.Booking, error) {
	query := `UPDATE bookings
              SET reminded_at = NOW(), updated_at = NOW()
              WHERE kind = 'room' AND check_in = $1 AND reminded_at IS NULL
              RETURNING ` + bookingColumns
	return r.list(ctx, "mark reminded", query, checkIn)
}

func (r *BookingRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	res := []*domain.Booking{}
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.Kind, &b.UserID, &b.RoomID, &b.ExperienceID, &b.CheckIn, &b.CheckOut,
			&b.ExperienceTime, &b.Guests, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
