package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrAmenityNotFound    = errors.New("amenity not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrExperienceNotFound = errors.New("experience not found")
	ErrPerkNotFound       = errors.New("perk not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrWishlistNotFound   = errors.New("wishlist not found")
	ErrPhotoNotFound      = errors.New("photo not found")
	ErrChatNotFound       = errors.New("chatting room not found")
)

var (
	ErrPastDate          = errors.New("dates must not be in the past")
	ErrInvalidStay       = errors.New("checkout must be after checkin")
	ErrRoomAlreadyBooked = errors.New("room already booked")
)

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidAmenity  = errors.New("invalid amenity")
	ErrInvalidPerk     = errors.New("invalid perk")
)

var (
	ErrUnauthenticated    = errors.New("authentication credentials were not provided")
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("you do not have permission to perform this action")
)

var (
	ErrEmailTaken = errors.New("email is already taken")
)

var (
	ErrValidation = errors.New("validation error")
	ErrConstraint = errors.New("constraint violation")
)
