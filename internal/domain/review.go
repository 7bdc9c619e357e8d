package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID           string      `json:"id"`
	User         UserSummary `json:"user"`
	RoomID       *string     `json:"room_id"`
	ExperienceID *string     `json:"experience_id"`
	Payload      string      `json:"payload"`
	Rating       int         `json:"rating"`
	CreatedAt    time.Time   `json:"created_at"`
}

func (r *Review) OwnerIdentity() string {
	return r.User.ID
}

type ReviewInput struct {
	Payload string
	Rating  int
}
