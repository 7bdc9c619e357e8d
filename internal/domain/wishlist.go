package domain

import "time"

type Wishlist struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	UserID      string              `json:"user_id"`
	Rooms       []RoomListItem      `json:"rooms"`
	Experiences []ExperienceSummary `json:"experiences"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func (w *Wishlist) OwnerIdentity() string {
	return w.UserID
}

type ExperienceSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	City    string `json:"city"`
	Price   int    `json:"price"`
}
