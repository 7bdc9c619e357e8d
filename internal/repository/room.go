package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RoomRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoomRepo(db *dbpg.DB) *RoomRepository {
	return &RoomRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create inserts the room and links its amenities in one transaction.
// If any amenity id does not resolve nothing is written.
func (r *RoomRepository) Create(ctx context.Context, room *domain.Room, amenityIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	ids, err := resolveIDs(ctx, tx, "amenities", amenityIDs, domain.ErrInvalidAmenity)
	if err != nil {
		return err
	}

	query := `INSERT INTO rooms (id, title, country, city, price, rooms, toilets, description,
                                 address, pet_friendly, kind, owner_id, category_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = tx.ExecContext(ctx, query,
		room.ID, room.Title, room.Country, room.City, room.Price, room.Rooms, room.Toilets,
		room.Description, room.Address, room.PetFriendly, room.Kind, room.Owner.ID,
		categoryID(room.Category), room.CreatedAt, room.UpdatedAt,
	)
	if err != nil {
		return roomWriteError("insert room", err)
	}

	if err = linkAmenities(ctx, tx, room.ID, ids); err != nil {
		return err
	}

	return tx.Commit()
}

// Update rewrites the room's own columns and adds the listed amenities to
// the ones already attached. The room row is locked for the duration.
// Update locks the row, lets apply patch the locked copy and writes it back
// together with the new amenity links. Any error from apply rolls back.
func (r *RoomRepository) Update(ctx context.Context, id string, amenityIDs []string, apply func(*domain.Room) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	room, err := scanRoom(tx.QueryRowContext(ctx, roomSelect+` FOR UPDATE OF r`, id))
	if err != nil {
		return err
	}

	if err = apply(room); err != nil {
		return err
	}

	ids, err := resolveIDs(ctx, tx, "amenities", amenityIDs, domain.ErrInvalidAmenity)
	if err != nil {
		return err
	}

	query := `UPDATE rooms
              SET title = $2, country = $3, city = $4, price = $5, rooms = $6, toilets = $7,
                  description = $8, address = $9, pet_friendly = $10, kind = $11,
                  category_id = $12, updated_at = $13
              WHERE id = $1`
	_, err = tx.ExecContext(ctx, query,
		room.ID, room.Title, room.Country, room.City, room.Price, room.Rooms, room.Toilets,
		room.Description, room.Address, room.PetFriendly, room.Kind,
		categoryID(room.Category), room.UpdatedAt,
	)
	if err != nil {
		return roomWriteError("update room", err)
	}

	if err = linkAmenities(ctx, tx, room.ID, ids); err != nil {
		return err
	}

	return tx.Commit()
}

func linkAmenities(ctx context.Context, tx *sql.Tx, roomID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := `INSERT INTO room_amenities (room_id, amenity_id)
              SELECT $1, unnest($2::uuid[])
              ON CONFLICT DO NOTHING`
	if _, err := tx.ExecContext(ctx, query, roomID, pq.Array(ids)); err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return fmt.Errorf("%w: %v", domain.ErrInvalidAmenity, err)
		}
		return fmt.Errorf("link amenities: %w", err)
	}
	return nil
}

func roomWriteError(op string, err error) error {
	if mapped := integrityError(err); mapped != nil {
		return mapped
	}
	if pgCode(err) == codeForeignKeyViolation {
		return fmt.Errorf("%w: %v", domain.ErrInvalidCategory, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

const roomSelect = `SELECT r.id, r.title, r.country, r.city, r.price, r.rooms, r.toilets, r.description,
                     r.address, r.pet_friendly, r.kind, r.created_at, r.updated_at,
                     u.id, u.username, u.avatar, u.email,
                     c.id, c.name, c.kind, c.created_at, c.updated_at
              FROM rooms r
              JOIN users u ON u.id = r.owner_id
              LEFT JOIN categories c ON c.id = r.category_id
              WHERE r.id = $1`

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, roomSelect, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	room, err := scanRoom(row)
	if err != nil {
		return nil, err
	}

	room.Amenities, err = r.amenities(ctx, id)
	if err != nil {
		return nil, err
	}

	return room, nil
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var (
		room domain.Room
		cat  nullCategory
	)
	dest := []any{
		&room.ID, &room.Title, &room.Country, &room.City, &room.Price, &room.Rooms, &room.Toilets,
		&room.Description, &room.Address, &room.PetFriendly, &room.Kind, &room.CreatedAt, &room.UpdatedAt,
		&room.Owner.ID, &room.Owner.Username, &room.Owner.Avatar, &room.Owner.Email,
	}
	if err := row.Scan(append(dest, cat.dest()...)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("scan room: %w", err)
	}
	room.Category = cat.value()
	return &room, nil
}

func (r *RoomRepository) amenities(ctx context.Context, roomID string) ([]domain.Amenity, error) {
	query := `SELECT a.id, a.name, a.description, a.created_at, a.updated_at
              FROM amenities a
              JOIN room_amenities ra ON ra.amenity_id = a.id
              WHERE ra.room_id = $1
              ORDER BY a.name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("list room amenities: %w", err)
	}
	defer rows.Close()

	res := []domain.Amenity{}
	for rows.Next() {
		var a domain.Amenity
		if err = rows.Scan(&a.ID, &a.Name, &a.Description, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan amenity: %w", err)
		}
		res = append(res, a)
	}

	return res, rows.Err()
}

func (r *RoomRepository) List(ctx context.Context) ([]*domain.RoomListItem, error) {
	query := `SELECT r.id, r.title, r.country, r.city, r.price, r.owner_id,
                     COALESCE(AVG(rv.rating), 0)::float8
              FROM rooms r
              LEFT JOIN reviews rv ON rv.room_id = r.id
              GROUP BY r.id
              ORDER BY r.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	res := []*domain.RoomListItem{}
	for rows.Next() {
		item, err := scanRoomListItem(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}

	return res, rows.Err()
}

func scanRoomListItem(row rowScanner) (*domain.RoomListItem, error) {
	var item domain.RoomListItem
	if err := row.Scan(
		&item.ID, &item.Title, &item.Country, &item.City,
		&item.Price, &item.OwnerID, &item.Rating,
	); err != nil {
		return nil, fmt.Errorf("scan room: %w", err)
	}
	return &item, nil
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return checkAffected(res, domain.ErrRoomNotFound)
}

func (r *RoomRepository) Rating(ctx context.Context, id string) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0)::float8 FROM reviews WHERE room_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return 0, fmt.Errorf("room rating: %w", err)
	}

	var rating float64
	if err = row.Scan(&rating); err != nil {
		return 0, fmt.Errorf("scan rating: %w", err)
	}
	return rating, nil
}
