package domain

import "time"

type CategoryKind string

const (
	CategoryKindRooms       CategoryKind = "rooms"
	CategoryKindExperiences CategoryKind = "experiences"
)

func (k CategoryKind) Valid() bool {
	return k == CategoryKindRooms || k == CategoryKindExperiences
}

type Category struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Kind      CategoryKind `json:"kind"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type CategoryInput struct {
	Name string
	Kind CategoryKind
}

type CategoryPatch struct {
	Name *string
	Kind *CategoryKind
}
