package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/access"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/stpnv0/StayBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type UserSvc interface {
	SignUp(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	Logout(ctx context.Context, claims *domain.TokenClaims) error
	Me(ctx context.Context, actorID string) (*domain.User, error)
	UpdateMe(ctx context.Context, actorID string, input domain.UpdateProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, actorID string, input domain.ChangePasswordInput) error
}

type CategorySvc interface {
	List(ctx context.Context) ([]*domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, actorID string, input domain.CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, actorID, id string, patch domain.CategoryPatch) (*domain.Category, error)
	Delete(ctx context.Context, actorID, id string) error
}

type AmenitySvc interface {
	List(ctx context.Context) ([]*domain.Amenity, error)
	Get(ctx context.Context, id string) (*domain.Amenity, error)
	Create(ctx context.Context, actorID string, input domain.AmenityInput) (*domain.Amenity, error)
	Update(ctx context.Context, actorID, id string, patch domain.AmenityPatch) (*domain.Amenity, error)
	Delete(ctx context.Context, actorID, id string) error
}

type PerkSvc interface {
	List(ctx context.Context) ([]*domain.Perk, error)
	Get(ctx context.Context, id string) (*domain.Perk, error)
	Create(ctx context.Context, actorID string, input domain.PerkInput) (*domain.Perk, error)
	Update(ctx context.Context, actorID, id string, patch domain.PerkPatch) (*domain.Perk, error)
	Delete(ctx context.Context, actorID, id string) error
}

type RoomSvc interface {
	List(ctx context.Context, actorID string) ([]*domain.RoomListItem, error)
	Get(ctx context.Context, actorID, id string) (*domain.RoomDetails, error)
	Create(ctx context.Context, actorID string, input domain.CreateRoomInput) (*domain.RoomDetails, error)
	Update(ctx context.Context, actorID, id string, input domain.UpdateRoomInput) (*domain.RoomDetails, error)
	Delete(ctx context.Context, actorID, id string) error
}

type ExperienceSvc interface {
	List(ctx context.Context) ([]*domain.Experience, error)
	Get(ctx context.Context, id string) (*domain.Experience, error)
	Create(ctx context.Context, actorID string, input domain.CreateExperienceInput) (*domain.Experience, error)
	Update(ctx context.Context, actorID, id string, input domain.UpdateExperienceInput) (*domain.Experience, error)
	Delete(ctx context.Context, actorID, id string) error
}

type BookingSvc interface {
	BookRoom(ctx context.Context, actorID, roomID string, input domain.CreateRoomBookingInput) (*domain.Booking, error)
	CheckRoomAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
	ListRoomBookings(ctx context.Context, roomID string) ([]*domain.Booking, error)
	BookExperience(ctx context.Context, actorID, experienceID string, input domain.CreateExperienceBookingInput) (*domain.Booking, error)
	ListExperienceBookings(ctx context.Context, experienceID string) ([]*domain.Booking, error)
	ListMine(ctx context.Context, actorID string) ([]*domain.Booking, error)
}

type ReviewSvc interface {
	ListForRoom(ctx context.Context, roomID string, page int) ([]*domain.Review, error)
	ListForExperience(ctx context.Context, experienceID string, page int) ([]*domain.Review, error)
	CreateForRoom(ctx context.Context, actorID, roomID string, input domain.ReviewInput) (*domain.Review, error)
	CreateForExperience(ctx context.Context, actorID, experienceID string, input domain.ReviewInput) (*domain.Review, error)
}

type WishlistSvc interface {
	List(ctx context.Context, actorID string) ([]*domain.Wishlist, error)
	Create(ctx context.Context, actorID, name string) (*domain.Wishlist, error)
	Get(ctx context.Context, actorID, id string) (*domain.Wishlist, error)
	Rename(ctx context.Context, actorID, id, name string) (*domain.Wishlist, error)
	Delete(ctx context.Context, actorID, id string) error
	ToggleRoom(ctx context.Context, actorID, id, roomID string) (bool, error)
	ToggleExperience(ctx context.Context, actorID, id, experienceID string) (bool, error)
}

type PhotoSvc interface {
	AddToRoom(ctx context.Context, actorID, roomID string, input domain.PhotoInput) (*domain.Photo, error)
	AddToExperience(ctx context.Context, actorID, experienceID string, input domain.PhotoInput) (*domain.Photo, error)
	Delete(ctx context.Context, actorID, id string) error
}

type ChatSvc interface {
	ListRooms(ctx context.Context, actorID string) ([]*domain.ChattingRoom, error)
	CreateRoom(ctx context.Context, actorID string, userIDs []string) (*domain.ChattingRoom, error)
	ListMessages(ctx context.Context, actorID, roomID string) ([]*domain.Message, error)
	SendMessage(ctx context.Context, actorID, roomID, text string) (*domain.Message, error)
}

type Services struct {
	Users       UserSvc
	Categories  CategorySvc
	Amenities   AmenitySvc
	Perks       PerkSvc
	Rooms       RoomSvc
	Experiences ExperienceSvc
	Bookings    BookingSvc
	Reviews     ReviewSvc
	Wishlists   WishlistSvc
	Photos      PhotoSvc
	Chats       ChatSvc
}

type Handler struct {
	userService       UserSvc
	categoryService   CategorySvc
	amenityService    AmenitySvc
	perkService       PerkSvc
	roomService       RoomSvc
	experienceService ExperienceSvc
	bookingService    BookingSvc
	reviewService     ReviewSvc
	wishlistService   WishlistSvc
	photoService      PhotoSvc
	chatService       ChatSvc
}

func NewHandler(s Services) *Handler {
	return &Handler{
		userService:       s.Users,
		categoryService:   s.Categories,
		amenityService:    s.Amenities,
		perkService:       s.Perks,
		roomService:       s.Rooms,
		experienceService: s.Experiences,
		bookingService:    s.Bookings,
		reviewService:     s.Reviews,
		wishlistService:   s.Wishlists,
		photoService:      s.Photos,
		chatService:       s.Chats,
	}
}

// pathID reads a uuid path parameter and answers 400 when it is malformed.
func pathID(c *ginext.Context, param, label string) (string, bool) {
	id := c.Param(param)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + label + " id"})
		return "", false
	}
	return id, true
}

func bindJSON(c *ginext.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// pageParam falls back to the first page on anything that is not a positive number.
func pageParam(c *ginext.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, errors.New("invalid " + field + " format, expected YYYY-MM-DD")
	}
	return t, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrAmenityNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrExperienceNotFound),
		errors.Is(err, domain.ErrPerkNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrWishlistNotFound),
		errors.Is(err, domain.ErrPhotoNotFound),
		errors.Is(err, domain.ErrChatNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidAmenity),
		errors.Is(err, domain.ErrInvalidPerk),
		errors.Is(err, domain.ErrPastDate),
		errors.Is(err, domain.ErrInvalidStay),
		errors.Is(err, domain.ErrRoomAlreadyBooked),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrConstraint):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func actor(c *ginext.Context) string {
	return middleware.ActorID(c)
}

// requireActor answers 401 for anonymous callers before the path or the
// body is looked at.
func (h *Handler) requireActor(c *ginext.Context) (string, bool) {
	actorID := actor(c)
	if err := access.RequireIdentity(actorID); err != nil {
		h.handleError(c, err)
		return "", false
	}
	return actorID, true
}
