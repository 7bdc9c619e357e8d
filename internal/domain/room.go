package domain

import "time"

type RoomKind string

const (
	RoomKindEntirePlace RoomKind = "entire_place"
	RoomKindPrivateRoom RoomKind = "private_room"
	RoomKindSharedRoom  RoomKind = "shared_room"
)

func (k RoomKind) Valid() bool {
	switch k {
	case RoomKindEntirePlace, RoomKindPrivateRoom, RoomKindSharedRoom:
		return true
	}
	return false
}

type Room struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Country     string      `json:"country"`
	City        string      `json:"city"`
	Price       int         `json:"price"`
	Rooms       int         `json:"rooms"`
	Toilets     int         `json:"toilets"`
	Description string      `json:"description"`
	Address     string      `json:"address"`
	PetFriendly bool        `json:"pet_friendly"`
	Kind        RoomKind    `json:"kind"`
	Owner       UserSummary `json:"owner"`
	Category    *Category   `json:"category"`
	Amenities   []Amenity   `json:"amenities"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (r *Room) OwnerIdentity() string {
	return r.Owner.ID
}

// RoomDetails is a room with the values computed for a particular viewer.
type RoomDetails struct {
	Room           Room    `json:"room"`
	Rating         float64 `json:"rating"`
	TotalAmenities int     `json:"total_amenities"`
	IsOwner        bool    `json:"is_owner"`
	IsLiked        bool    `json:"is_liked"`
	Photos         []Photo `json:"photos"`
}

type RoomListItem struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Country string  `json:"country"`
	City    string  `json:"city"`
	Price   int     `json:"price"`
	OwnerID string  `json:"-"`
	Rating  float64 `json:"rating"`
	IsOwner bool    `json:"is_owner"`
}

type CreateRoomInput struct {
	Title       string
	Country     string
	City        string
	Price       int
	Rooms       int
	Toilets     int
	Description string
	Address     string
	PetFriendly bool
	Kind        RoomKind
	CategoryID  string
	AmenityIDs  []string
}

// UpdateRoomInput is a partial update; nil fields are left untouched.
type UpdateRoomInput struct {
	Title       *string
	Country     *string
	City        *string
	Price       *int
	Rooms       *int
	Toilets     *int
	Description *string
	Address     *string
	PetFriendly *bool
	Kind        *RoomKind
	CategoryID  *string
	AmenityIDs  []string
}

type Amenity struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AmenityInput struct {
	Name        string
	Description *string
}

type AmenityPatch struct {
	Name        *string
	Description *string
}
