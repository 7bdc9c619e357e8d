package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/access"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
)

type ChatService struct {
	chatRepo ports.ChatRepo
	userRepo ports.UserRepo
}

func NewChatService(chatRepo ports.ChatRepo, userRepo ports.UserRepo) *ChatService {
	return &ChatService{chatRepo: chatRepo, userRepo: userRepo}
}

func (s *ChatService) ListRooms(ctx context.Context, actorID string) ([]*domain.ChattingRoom, error) {
	if err := access.RequireIdentity(actorID); err != nil {
		return nil, err
	}
	return s.chatRepo.ListRoomsByUser(ctx, actorID)
}

// CreateRoom opens a conversation between the caller and userIDs.
func (s *ChatService) CreateRoom(ctx context.Context, actorID string, userIDs []string) (*domain.ChattingRoom, error) {
	if err := access.RequireIdentity(actorID); err != nil {
		return nil, err
	}

	members := []string{actorID}
	seen := map[string]struct{}{actorID: {}}
	for _, id := range userIDs {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		members = append(members, id)
	}
	if len(members) < 2 {
		return nil, fmt.Errorf("%w: at least one other user is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	room := &domain.ChattingRoom{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.chatRepo.CreateRoom(ctx, room, members); err != nil {
		return nil, fmt.Errorf("create chatting room: %w", err)
	}
	for _, id := range members {
		room.Users = append(room.Users, domain.UserSummary{ID: id})
	}
	return room, nil
}

func (s *ChatService) ListMessages(ctx context.Context, actorID, roomID string) ([]*domain.Message, error) {
	if err := s.requireMember(ctx, actorID, roomID); err != nil {
		return nil, err
	}
	return s.chatRepo.ListMessages(ctx, roomID)
}

func (s *ChatService) SendMessage(ctx context.Context, actorID, roomID, text string) (*domain.Message, error) {
	if err := s.requireMember(ctx, actorID, roomID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", domain.ErrValidation)
	}

	author, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	message := &domain.Message{
		ID:             uuid.New().String(),
		Text:           text,
		User:           author.Summary(),
		ChattingRoomID: roomID,
		CreatedAt:      time.Now().UTC(),
	}
	if err = s.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

func (s *ChatService) requireMember(ctx context.Context, actorID, roomID string) error {
	if err := access.RequireIdentity(actorID); err != nil {
		return err
	}

	member, err := s.chatRepo.IsMember(ctx, roomID, actorID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if !member {
		return domain.ErrForbidden
	}
	return nil
}
