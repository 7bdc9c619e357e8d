package dto

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Username string `json:"username"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type UpdateProfileRequest struct {
	Username       *string `json:"username"`
	Avatar         *string `json:"avatar"`
	IsHost         *bool   `json:"is_host"`
	Gender         *string `json:"gender"`
	Language       *string `json:"language"`
	Currency       *string `json:"currency"`
	TelegramChatID *int64  `json:"telegram_chat_id"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Kind string `json:"kind" binding:"required"`
}

type CategoryPatchRequest struct {
	Name *string `json:"name"`
	Kind *string `json:"kind"`
}

type AmenityRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type AmenityPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type PerkRequest struct {
	Name        string `json:"name" binding:"required"`
	Details     string `json:"details"`
	Explanation string `json:"explanation"`
}

type PerkPatchRequest struct {
	Name        *string `json:"name"`
	Details     *string `json:"details"`
	Explanation *string `json:"explanation"`
}

type CreateRoomRequest struct {
	Title       string   `json:"title" binding:"required"`
	Country     string   `json:"country"`
	City        string   `json:"city"`
	Price       int      `json:"price"`
	Rooms       int      `json:"rooms"`
	Toilets     int      `json:"toilets"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	PetFriendly bool     `json:"pet_friendly"`
	Kind        string   `json:"kind" binding:"required"`
	Category    string   `json:"category"`
	Amenities   []string `json:"amenities"`
}

type UpdateRoomRequest struct {
	Title       *string  `json:"title"`
	Country     *string  `json:"country"`
	City        *string  `json:"city"`
	Price       *int     `json:"price"`
	Rooms       *int     `json:"rooms"`
	Toilets     *int     `json:"toilets"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
	PetFriendly *bool    `json:"pet_friendly"`
	Kind        *string  `json:"kind"`
	Category    *string  `json:"category"`
	Amenities   []string `json:"amenities"`
}

type CreateExperienceRequest struct {
	Country     string   `json:"country"`
	City        string   `json:"city"`
	Name        string   `json:"name" binding:"required"`
	Price       int      `json:"price"`
	Address     string   `json:"address"`
	Start       string   `json:"start" binding:"required"`
	End         string   `json:"end" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Perks       []string `json:"perks"`
}

type UpdateExperienceRequest struct {
	Country     *string  `json:"country"`
	City        *string  `json:"city"`
	Name        *string  `json:"name"`
	Price       *int     `json:"price"`
	Address     *string  `json:"address"`
	Start       *string  `json:"start"`
	End         *string  `json:"end"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Perks       []string `json:"perks"`
}

// RoomBookingRequest dates use the 2006-01-02 layout.
type RoomBookingRequest struct {
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	Guests   int    `json:"guests"`
}

type ExperienceBookingRequest struct {
	ExperienceTime string `json:"experience_time" binding:"required"`
	Guests         int    `json:"guests"`
}

type ReviewRequest struct {
	Payload string `json:"payload" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
}

type WishlistRequest struct {
	Name string `json:"name" binding:"required"`
}

type PhotoRequest struct {
	File        string `json:"file" binding:"required"`
	Description string `json:"description"`
}

type ChatRequest struct {
	UserIDs []string `json:"user_ids" binding:"required,min=1"`
}

type MessageRequest struct {
	Text string `json:"text" binding:"required"`
}
