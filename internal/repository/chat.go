package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ChatRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewChatRepo(db *dbpg.DB) *ChatRepository {
	return &ChatRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *ChatRepository) CreateRoom(ctx context.Context, room *domain.ChattingRoom, memberIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO chatting_rooms (id, created_at, updated_at) VALUES ($1, $2, $3)`,
		room.ID, room.CreatedAt, room.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert chatting room: %w", err)
	}

	members, malformed := splitIDs(memberIDs)
	if len(malformed) > 0 {
		return domain.ErrUserNotFound
	}

	query := `INSERT INTO chatting_room_users (chatting_room_id, user_id)
              SELECT $1, unnest($2::uuid[])`
	if _, err = tx.ExecContext(ctx, query, room.ID, pq.Array(members)); err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert chatting room users: %w", err)
	}

	return tx.Commit()
}

func (r *ChatRepository) ListRoomsByUser(ctx context.Context, userID string) ([]*domain.ChattingRoom, error) {
	query := `SELECT cr.id, cr.created_at, cr.updated_at,
                     u.id, u.username, u.avatar, u.email
              FROM chatting_rooms cr
              JOIN chatting_room_users cu ON cu.chatting_room_id = cr.id
              JOIN users u ON u.id = cu.user_id
              WHERE cr.id IN (SELECT chatting_room_id FROM chatting_room_users WHERE user_id = $1)
              ORDER BY cr.updated_at DESC, cr.id, u.username`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list chatting rooms: %w", err)
	}
	defer rows.Close()

	res := []*domain.ChattingRoom{}
	var current *domain.ChattingRoom
	for rows.Next() {
		var (
			room   domain.ChattingRoom
			member domain.UserSummary
		)
		if err = rows.Scan(
			&room.ID, &room.CreatedAt, &room.UpdatedAt,
			&member.ID, &member.Username, &member.Avatar, &member.Email,
		); err != nil {
			return nil, fmt.Errorf("scan chatting room: %w", err)
		}

		// Строки отсортированы по комнате, участники идут подряд
		if current == nil || current.ID != room.ID {
			current = &room
			res = append(res, current)
		}
		current.Users = append(current.Users, member)
	}

	return res, rows.Err()
}

// IsMember returns ErrChatNotFound when the room itself does not exist.
func (r *ChatRepository) IsMember(ctx context.Context, roomID, userID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM chatting_rooms WHERE id = $1),
                     EXISTS (SELECT 1 FROM chatting_room_users WHERE chatting_room_id = $1 AND user_id = $2)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, roomID, userID)
	if err != nil {
		return false, fmt.Errorf("check membership: %w", err)
	}

	var roomExists, member bool
	if err = row.Scan(&roomExists, &member); err != nil {
		return false, fmt.Errorf("scan membership: %w", err)
	}
	if !roomExists {
		return false, domain.ErrChatNotFound
	}
	return member, nil
}

func (r *ChatRepository) CreateMessage(ctx context.Context, m *domain.Message) error {
	query := `INSERT INTO messages (id, text, user_id, chatting_room_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $5)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, m.ID, m.Text, m.User.ID, m.ChattingRoomID, m.CreatedAt)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrChatNotFound
		}
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (r *ChatRepository) ListMessages(ctx context.Context, roomID string) ([]*domain.Message, error) {
	query := `SELECT m.id, m.text, m.chatting_room_id, m.created_at,
                     u.id, u.username, u.avatar, u.email
              FROM messages m
              JOIN users u ON u.id = m.user_id
              WHERE m.chatting_room_id = $1
              ORDER BY m.created_at, m.id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	res := []*domain.Message{}
	for rows.Next() {
		var m domain.Message
		if err = rows.Scan(
			&m.ID, &m.Text, &m.ChattingRoomID, &m.CreatedAt,
			&m.User.ID, &m.User.Username, &m.User.Avatar, &m.User.Email,
		); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		res = append(res, &m)
	}
	return res, rows.Err()
}
