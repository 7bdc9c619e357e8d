package domain

import "time"

type Photo struct {
	ID           string    `json:"id"`
	File         string    `json:"file"`
	Description  string    `json:"description"`
	RoomID       *string   `json:"room_id"`
	ExperienceID *string   `json:"experience_id"`
	OwnerID      string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// OwnerIdentity is the owner of the room or the host of the experience
// the photo belongs to.
func (p *Photo) OwnerIdentity() string {
	return p.OwnerID
}

type PhotoInput struct {
	File        string
	Description string
}
