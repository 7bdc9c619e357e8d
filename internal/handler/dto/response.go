package dto

import (
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	Avatar         string `json:"avatar"`
	IsHost         bool   `json:"is_host"`
	Gender         string `json:"gender"`
	Language       string `json:"language"`
	Currency       string `json:"currency"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type BookingResponse struct {
	ID             string  `json:"id"`
	Kind           string  `json:"kind"`
	UserID         string  `json:"user_id"`
	RoomID         *string `json:"room_id,omitempty"`
	ExperienceID   *string `json:"experience_id,omitempty"`
	CheckIn        string  `json:"check_in,omitempty"`
	CheckOut       string  `json:"check_out,omitempty"`
	ExperienceTime string  `json:"experience_time,omitempty"`
	Guests         int     `json:"guests"`
	CreatedAt      string  `json:"created_at"`
}

// RoomDetailsResponse flattens the room with the values computed for the viewer.
type RoomDetailsResponse struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Country        string             `json:"country"`
	City           string             `json:"city"`
	Price          int                `json:"price"`
	Rooms          int                `json:"rooms"`
	Toilets        int                `json:"toilets"`
	Description    string             `json:"description"`
	Address        string             `json:"address"`
	PetFriendly    bool               `json:"pet_friendly"`
	Kind           string             `json:"kind"`
	Owner          domain.UserSummary `json:"owner"`
	Category       *domain.Category   `json:"category"`
	Amenities      []domain.Amenity   `json:"amenities"`
	Rating         float64            `json:"rating"`
	TotalAmenities int                `json:"total_amenities"`
	IsOwner        bool               `json:"is_owner"`
	IsLiked        bool               `json:"is_liked"`
	Photos         []domain.Photo     `json:"photos"`
	CreatedAt      string             `json:"created_at"`
	UpdatedAt      string             `json:"updated_at"`
}

type AvailabilityResponse struct {
	OK bool `json:"ok"`
}

type ToggleResponse struct {
	Added bool `json:"added"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Username:       u.Username,
		Avatar:         u.Avatar,
		IsHost:         u.IsHost,
		Gender:         string(u.Gender),
		Language:       string(u.Language),
		Currency:       string(u.Currency),
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:           b.ID,
		Kind:         string(b.Kind),
		UserID:       b.UserID,
		RoomID:       b.RoomID,
		ExperienceID: b.ExperienceID,
		Guests:       b.Guests,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
	if b.CheckIn != nil {
		resp.CheckIn = b.CheckIn.Format(domain.DateLayout)
	}
	if b.CheckOut != nil {
		resp.CheckOut = b.CheckOut.Format(domain.DateLayout)
	}
	if b.ExperienceTime != nil {
		resp.ExperienceTime = b.ExperienceTime.Format(time.RFC3339)
	}
	return resp
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

func ToRoomDetailsResponse(d *domain.RoomDetails) RoomDetailsResponse {
	r := d.Room

	amenities := r.Amenities
	if amenities == nil {
		amenities = []domain.Amenity{}
	}
	photos := d.Photos
	if photos == nil {
		photos = []domain.Photo{}
	}

	return RoomDetailsResponse{
		ID:             r.ID,
		Title:          r.Title,
		Country:        r.Country,
		City:           r.City,
		Price:          r.Price,
		Rooms:          r.Rooms,
		Toilets:        r.Toilets,
		Description:    r.Description,
		Address:        r.Address,
		PetFriendly:    r.PetFriendly,
		Kind:           string(r.Kind),
		Owner:          r.Owner,
		Category:       r.Category,
		Amenities:      amenities,
		Rating:         d.Rating,
		TotalAmenities: d.TotalAmenities,
		IsOwner:        d.IsOwner,
		IsLiked:        d.IsLiked,
		Photos:         photos,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      r.UpdatedAt.Format(time.RFC3339),
	}
}
