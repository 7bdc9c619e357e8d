package domain

import "time"

type ChattingRoom struct {
	ID        string        `json:"id"`
	Users     []UserSummary `json:"users"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type Message struct {
	ID             string      `json:"id"`
	Text           string      `json:"text"`
	User           UserSummary `json:"user"`
	ChattingRoomID string      `json:"chatting_room_id"`
	CreatedAt      time.Time   `json:"created_at"`
}
