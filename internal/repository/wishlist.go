package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type WishlistRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWishlistRepo(db *dbpg.DB) *WishlistRepository {
	return &WishlistRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *WishlistRepository) Create(ctx context.Context, w *domain.Wishlist) error {
	query := `INSERT INTO wishlists (id, name, user_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, w.ID, w.Name, w.UserID, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert wishlist: %w", err)
	}
	return nil
}

// GetForUser hides wishlists of other users behind ErrWishlistNotFound.
func (r *WishlistRepository) GetForUser(ctx context.Context, id, userID string) (*domain.Wishlist, error) {
	query := `SELECT id, name, user_id, created_at, updated_at
              FROM wishlists
              WHERE id = $1 AND user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get wishlist: %w", err)
	}

	var w domain.Wishlist
	if err = row.Scan(&w.ID, &w.Name, &w.UserID, &w.CreatedAt, &w.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWishlistNotFound
		}
		return nil, fmt.Errorf("scan wishlist: %w", err)
	}

	if err = r.fill(ctx, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WishlistRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Wishlist, error) {
	query := `SELECT id, name, user_id, created_at, updated_at
              FROM wishlists
              WHERE user_id = $1
              ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list wishlists: %w", err)
	}
	defer rows.Close()

	res := []*domain.Wishlist{}
	for rows.Next() {
		var w domain.Wishlist
		if err = rows.Scan(&w.ID, &w.Name, &w.UserID, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan wishlist: %w", err)
		}
		res = append(res, &w)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list wishlists: %w", err)
	}
	rows.Close()

	for _, w := range res {
		if err = r.fill(ctx, w); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (r *WishlistRepository) fill(ctx context.Context, w *domain.Wishlist) error {
	roomsQuery := `SELECT r.id, r.title, r.country, r.city, r.price, r.owner_id,
                          COALESCE((SELECT AVG(rv.rating) FROM reviews rv WHERE rv.room_id = r.id), 0)::float8
                   FROM rooms r
                   JOIN wishlist_rooms wr ON wr.room_id = r.id
                   WHERE wr.wishlist_id = $1
                   ORDER BY r.title`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, roomsQuery, w.ID)
	if err != nil {
		return fmt.Errorf("list wishlist rooms: %w", err)
	}
	defer rows.Close()

	w.Rooms = []domain.RoomListItem{}
	for rows.Next() {
		item, err := scanRoomListItem(rows)
		if err != nil {
			return err
		}
		w.Rooms = append(w.Rooms, *item)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("list wishlist rooms: %w", err)
	}

	experiencesQuery := `SELECT e.id, e.name, e.country, e.city, e.price
                         FROM experiences e
                         JOIN wishlist_experiences we ON we.experience_id = e.id
                         WHERE we.wishlist_id = $1
                         ORDER BY e.name`

	erows, err := r.db.QueryWithRetry(ctx, r.strategy, experiencesQuery, w.ID)
	if err != nil {
		return fmt.Errorf("list wishlist experiences: %w", err)
	}
	defer erows.Close()

	w.Experiences = []domain.ExperienceSummary{}
	for erows.Next() {
		var e domain.ExperienceSummary
		if err = erows.Scan(&e.ID, &e.Name, &e.Country, &e.City, &e.Price); err != nil {
			return fmt.Errorf("scan experience: %w", err)
		}
		w.Experiences = append(w.Experiences, e)
	}

	return erows.Err()
}

func (r *WishlistRepository) Rename(ctx context.Context, w *domain.Wishlist) error {
	query := `UPDATE wishlists SET name = $2, updated_at = $3 WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, w.ID, w.Name, w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("rename wishlist: %w", err)
	}
	return checkAffected(res, domain.ErrWishlistNotFound)
}

func (r *WishlistRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM wishlists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete wishlist: %w", err)
	}
	return checkAffected(res, domain.ErrWishlistNotFound)
}

// ToggleRoom removes the room if it is in the wishlist and adds it otherwise.
// It reports whether the room is in the wishlist afterwards.
func (r *WishlistRepository) ToggleRoom(ctx context.Context, wishlistID, roomID string) (bool, error) {
	return r.toggle(ctx, "wishlist_rooms", "room_id", wishlistID, roomID, domain.ErrRoomNotFound)
}

func (r *WishlistRepository) ToggleExperience(ctx context.Context, wishlistID, experienceID string) (bool, error) {
	return r.toggle(ctx, "wishlist_experiences", "experience_id", wishlistID, experienceID, domain.ErrExperienceNotFound)
}

func (r *WishlistRepository) toggle(ctx context.Context, table, column, wishlistID, itemID string, notFound error) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем вишлист, чтобы параллельные переключения не гонялись
	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM wishlists WHERE id = $1 FOR UPDATE`, wishlistID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrWishlistNotFound
		}
		return false, fmt.Errorf("lock wishlist: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM `+table+` WHERE wishlist_id = $1 AND `+column+` = $2`, wishlistID, itemID)
	if err != nil {
		return false, fmt.Errorf("remove from wishlist: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	added := removed == 0
	if added {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO `+table+` (wishlist_id, `+column+`) VALUES ($1, $2)`, wishlistID, itemID)
		if err != nil {
			if pgCode(err) == codeForeignKeyViolation {
				return false, notFound
			}
			return false, fmt.Errorf("add to wishlist: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return added, nil
}

func (r *WishlistRepository) HasRoom(ctx context.Context, userID, roomID string) (bool, error) {
	query := `SELECT EXISTS (
                  SELECT 1 FROM wishlist_rooms wr
                  JOIN wishlists w ON w.id = wr.wishlist_id
                  WHERE w.user_id = $1 AND wr.room_id = $2
              )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, roomID)
	if err != nil {
		return false, fmt.Errorf("check wishlist room: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan exists: %w", err)
	}
	return exists, nil
}
