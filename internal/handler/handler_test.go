package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/auth"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/StayBooker/internal/handler/mocks"
	"github.com/stpnv0/StayBooker/internal/middleware"
	"github.com/stpnv0/StayBooker/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type testEnv struct {
	users     *hmocks.MockUserSvc
	rooms     *hmocks.MockRoomSvc
	bookings  *hmocks.MockBookingSvc
	reviews   *hmocks.MockReviewSvc
	wishlists *hmocks.MockWishlistSvc
	chats     *hmocks.MockChatSvc
	tokens    *auth.TokenManager
	router    http.Handler
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		users:     hmocks.NewMockUserSvc(t),
		rooms:     hmocks.NewMockRoomSvc(t),
		bookings:  hmocks.NewMockBookingSvc(t),
		reviews:   hmocks.NewMockReviewSvc(t),
		wishlists: hmocks.NewMockWishlistSvc(t),
		chats:     hmocks.NewMockChatSvc(t),
		tokens:    auth.NewTokenManager("test-secret", time.Hour, 24*time.Hour),
	}

	h := NewHandler(Services{
		Users:     env.users,
		Rooms:     env.rooms,
		Bookings:  env.bookings,
		Reviews:   env.reviews,
		Wishlists: env.wishlists,
		Chats:     env.chats,
	})

	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	r := ginext.New("test")
	api := r.Group("/api/v1")
	api.Use(middleware.Authenticate(env.tokens, session.New(nil), log))
	{
		api.POST("/users", h.SignUp)
		api.POST("/users/token", h.Login)
		api.POST("/users/logout", h.Logout)
		api.GET("/users/me/bookings", h.MyBookings)

		api.POST("/rooms", h.CreateRoom)
		api.GET("/rooms/:id", h.GetRoom)
		api.PUT("/rooms/:id", h.UpdateRoom)
		api.DELETE("/rooms/:id", h.DeleteRoom)
		api.GET("/rooms/:id/reviews", h.ListRoomReviews)
		api.POST("/rooms/:id/bookings", h.BookRoom)
		api.GET("/rooms/:id/bookings/check", h.CheckRoomAvailability)

		api.PUT("/wishlists/:id/rooms/:room_id", h.ToggleWishlistRoom)
		api.POST("/chats/:id/messages", h.SendMessage)
	}
	env.router = r

	return env
}

func (e *testEnv) do(t *testing.T, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		pair, err := e.tokens.Issue(userID)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+pair.Access)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func newRoomDetails(id, ownerID string, amenityIDs ...string) *domain.RoomDetails {
	room := domain.Room{
		ID:        id,
		Title:     "Hanok near Bukchon",
		Country:   "Korea",
		City:      "Seoul",
		Price:     120,
		Kind:      domain.RoomKindEntirePlace,
		Owner:     domain.UserSummary{ID: ownerID, Username: "owner"},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	for _, a := range amenityIDs {
		room.Amenities = append(room.Amenities, domain.Amenity{ID: a, Name: "amenity"})
	}
	return &domain.RoomDetails{
		Room:           room,
		Rating:         4.33,
		TotalAmenities: len(room.Amenities),
	}
}

// --- Rooms ---

func TestHandler_GetRoom_Anonymous(t *testing.T) {
	env := setupRouter(t)

	roomID := uuid.New().String()
	env.rooms.EXPECT().Get(mock.Anything, "", roomID).
		Return(newRoomDetails(roomID, "owner-1", "a1", "a2"), nil)

	w := env.do(t, http.MethodGet, "/api/v1/rooms/"+roomID, "", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.RoomDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, roomID, resp.ID)
	assert.Equal(t, 4.33, resp.Rating)
	assert.Equal(t, 2, resp.TotalAmenities)
	assert.False(t, resp.IsOwner)
}

func TestHandler_GetRoom_InvalidID(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodGet, "/api/v1/rooms/123", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetRoom_NotFound(t *testing.T) {
	env := setupRouter(t)

	roomID := uuid.New().String()
	env.rooms.EXPECT().Get(mock.Anything, "", roomID).Return(nil, domain.ErrRoomNotFound)

	w := env.do(t, http.MethodGet, "/api/v1/rooms/"+roomID, "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateRoom_WithAmenities(t *testing.T) {
	env := setupRouter(t)

	ownerID := uuid.New().String()
	categoryID := uuid.New().String()
	a1, a2 := uuid.New().String(), uuid.New().String()

	env.rooms.EXPECT().
		Create(mock.Anything, ownerID, mock.MatchedBy(func(in domain.CreateRoomInput) bool {
			return in.CategoryID == categoryID && len(in.AmenityIDs) == 2 && in.Kind == domain.RoomKindEntirePlace
		})).
		Return(newRoomDetails(uuid.New().String(), ownerID, a1, a2), nil)

	w := env.do(t, http.MethodPost, "/api/v1/rooms", ownerID, dto.CreateRoomRequest{
		Title:     "Hanok near Bukchon",
		Price:     120,
		Kind:      "entire_place",
		Category:  categoryID,
		Amenities: []string{a1, a2},
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RoomDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Amenities, 2)
	assert.Equal(t, 2, resp.TotalAmenities)
}

func TestHandler_CreateRoom_Errors(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		svcErr   error
		wantCode int
	}{
		{
			name:     "unknown amenity",
			userID:   "owner-1",
			svcErr:   fmt.Errorf("create room: %w", fmt.Errorf("%w: [999] do not exist", domain.ErrInvalidAmenity)),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "category of the wrong kind",
			userID:   "owner-1",
			svcErr:   fmt.Errorf("%w: category kind should be rooms", domain.ErrInvalidCategory),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "negative price hits the check constraint",
			userID:   "owner-1",
			svcErr:   fmt.Errorf("create room: %w: rooms_price_check", domain.ErrConstraint),
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupRouter(t)
			env.rooms.EXPECT().Create(mock.Anything, tt.userID, mock.Anything).Return(nil, tt.svcErr)

			w := env.do(t, http.MethodPost, "/api/v1/rooms", tt.userID, dto.CreateRoomRequest{
				Title: "Room",
				Kind:  "private_room",
			})

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestHandler_CreateRoom_BadRequest(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodPost, "/api/v1/rooms", "owner-1", `{"title":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateRoom_NotOwner(t *testing.T) {
	env := setupRouter(t)

	roomID := uuid.New().String()
	env.rooms.EXPECT().
		Update(mock.Anything, "stranger", roomID, mock.MatchedBy(func(in domain.UpdateRoomInput) bool {
			return in.Title != nil && *in.Title == "x"
		})).
		Return(nil, domain.ErrForbidden)

	w := env.do(t, http.MethodPut, "/api/v1/rooms/"+roomID, "stranger", `{"title":"x"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_DeleteRoom(t *testing.T) {
	env := setupRouter(t)

	roomID := uuid.New().String()
	env.rooms.EXPECT().Delete(mock.Anything, "owner-1", roomID).Return(nil)

	w := env.do(t, http.MethodDelete, "/api/v1/rooms/"+roomID, "owner-1", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

// --- Reviews ---

func TestHandler_ListRoomReviews_Page(t *testing.T) {
	tests := []struct {
		query    string
		wantPage int
	}{
		{query: "", wantPage: 1},
		{query: "?page=2", wantPage: 2},
		{query: "?page=abc", wantPage: 1},
		{query: "?page=-4", wantPage: 1},
	}

	for _, tt := range tests {
		t.Run("page"+tt.query, func(t *testing.T) {
			env := setupRouter(t)

			roomID := uuid.New().String()
			env.reviews.EXPECT().ListForRoom(mock.Anything, roomID, tt.wantPage).Return([]*domain.Review{}, nil)

			w := env.do(t, http.MethodGet, "/api/v1/rooms/"+roomID+"/reviews"+tt.query, "", nil)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

// --- Bookings ---

func TestHandler_BookRoom_Success(t *testing.T) {
	env := setupRouter(t)

	roomID := uuid.New().String()
	in := time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC)
	out := time.Date(2026, 11, 12, 0, 0, 0, 0, time.UTC)

	env.bookings.EXPECT().
		BookRoom(mock.Anything, "guest-1", roomID, domain.CreateRoomBookingInput{CheckIn: in, CheckOut: out, Guests: 2}).
		Return(&domain.Booking{
			ID:        uuid.New().String(),
			Kind:      domain.BookingKindRoom,
			UserID:    "guest-1",
			RoomID:    &roomID,
			CheckIn:   &in,
			CheckOut:  &out,
			Guests:    2,
			CreatedAt: time.Now(),
		}, nil)

	w := env.do(t, http.MethodPost, "/api/v1/rooms/"+roomID+"/bookings", "guest-1", dto.RoomBookingRequest{
		CheckIn:  "2026-11-10",
		CheckOut: "2026-11-12",
		Guests:   2,
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-11-10", resp.CheckIn)
	assert.Equal(t, "2026-11-12", resp.CheckOut)
	assert.Equal(t, "room", resp.Kind)
}

func TestHandler_BookRoom_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		svcErr error
	}{
		{name: "overlap", svcErr: domain.ErrRoomAlreadyBooked},
		{name: "past date", svcErr: domain.ErrPastDate},
		{name: "checkout before checkin", svcErr: domain.ErrInvalidStay},
		{name: "negative guests", svcErr: fmt.Errorf("%w: bookings_guests_check", domain.ErrConstraint)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupRouter(t)

			roomID := uuid.New().String()
			env.bookings.EXPECT().BookRoom(mock.Anything, "guest-1", roomID, mock.Anything).Return(nil, tt.svcErr)

			w := env.do(t, http.MethodPost, "/api/v1/rooms/"+roomID+"/bookings", "guest-1", dto.RoomBookingRequest{
				CheckIn:  "2024-01-15",
				CheckOut: "2024-02-25",
				Guests:   5,
			})

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandler_BookRoom_InvalidDate(t *testing.T) {
	env := setupRouter(t)

	roomID := uuid.New().String()
	w := env.do(t, http.MethodPost, "/api/v1/rooms/"+roomID+"/bookings", "guest-1",
		`{"check_in":"15/01/2024","check_out":"2024-02-25"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckRoomAvailability(t *testing.T) {
	env := setupRouter(t)

	roomID := uuid.New().String()
	in := time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC)
	out := time.Date(2026, 11, 12, 0, 0, 0, 0, time.UTC)
	env.bookings.EXPECT().CheckRoomAvailability(mock.Anything, roomID, in, out).Return(true, nil)

	w := env.do(t, http.MethodGet,
		"/api/v1/rooms/"+roomID+"/bookings/check?check_in=2026-11-10&check_out=2026-11-12", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestHandler_MyBookings_Anonymous(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodGet, "/api/v1/users/me/bookings", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_AnonymousMutation_Unauthorized(t *testing.T) {
	roomID := uuid.New().String()

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{
			name:   "create room with empty body",
			method: http.MethodPost,
			path:   "/api/v1/rooms",
			body:   "{}",
		},
		{
			name:   "book room with bad date",
			method: http.MethodPost,
			path:   "/api/v1/rooms/" + roomID + "/bookings",
			body:   `{"check_in":"15-01-2030","check_out":"2030-01-20","guests":2}`,
		},
		{
			name:   "update room with malformed id",
			method: http.MethodPut,
			path:   "/api/v1/rooms/123",
			body:   "not json",
		},
		{
			name:   "delete room",
			method: http.MethodDelete,
			path:   "/api/v1/rooms/" + roomID,
		},
		{
			name:   "toggle wishlist room with malformed ids",
			method: http.MethodPut,
			path:   "/api/v1/wishlists/1/rooms/2",
		},
		{
			name:   "send message without text",
			method: http.MethodPost,
			path:   "/api/v1/chats/" + uuid.New().String() + "/messages",
			body:   "{}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupRouter(t)

			w := env.do(t, tt.method, tt.path, "", tt.body)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), domain.ErrUnauthenticated.Error())
		})
	}
}

// --- Wishlists ---

func TestHandler_ToggleWishlistRoom(t *testing.T) {
	env := setupRouter(t)

	wishlistID := uuid.New().String()
	roomID := uuid.New().String()
	env.wishlists.EXPECT().ToggleRoom(mock.Anything, "user-1", wishlistID, roomID).Return(true, nil).Once()
	env.wishlists.EXPECT().ToggleRoom(mock.Anything, "user-1", wishlistID, roomID).Return(false, nil).Once()

	path := "/api/v1/wishlists/" + wishlistID + "/rooms/" + roomID

	w := env.do(t, http.MethodPut, path, "user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"added":true}`, w.Body.String())

	w = env.do(t, http.MethodPut, path, "user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"added":false}`, w.Body.String())
}

func TestHandler_ToggleWishlistRoom_ForeignWishlist(t *testing.T) {
	env := setupRouter(t)

	wishlistID := uuid.New().String()
	roomID := uuid.New().String()
	env.wishlists.EXPECT().ToggleRoom(mock.Anything, "user-1", wishlistID, roomID).Return(false, domain.ErrWishlistNotFound)

	w := env.do(t, http.MethodPut, "/api/v1/wishlists/"+wishlistID+"/rooms/"+roomID, "user-1", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Chats ---

func TestHandler_SendMessage_NotMember(t *testing.T) {
	env := setupRouter(t)

	chatID := uuid.New().String()
	env.chats.EXPECT().SendMessage(mock.Anything, "user-1", chatID, "hi").Return(nil, domain.ErrForbidden)

	w := env.do(t, http.MethodPost, "/api/v1/chats/"+chatID+"/messages", "user-1", dto.MessageRequest{Text: "hi"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Users ---

func TestHandler_SignUp(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().
		SignUp(mock.Anything, domain.CreateUserInput{Email: "guest@example.com", Password: "password1"}).
		Return(&domain.User{ID: "user-1", Email: "guest@example.com", Username: "guest", PasswordHash: "$2a$secret"}, nil)

	w := env.do(t, http.MethodPost, "/api/v1/users", "", dto.SignUpRequest{
		Email:    "guest@example.com",
		Password: "password1",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestHandler_SignUp_EmailTaken(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().SignUp(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := env.do(t, http.MethodPost, "/api/v1/users", "", dto.SignUpRequest{
		Email:    "guest@example.com",
		Password: "password1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().Login(mock.Anything, "guest@example.com", "wrong").Return(nil, domain.ErrInvalidCredentials)

	w := env.do(t, http.MethodPost, "/api/v1/users/token", "", dto.LoginRequest{
		Email:    "guest@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Logout(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().
		Logout(mock.Anything, mock.MatchedBy(func(c *domain.TokenClaims) bool {
			return c != nil && c.UserID == "user-1" && c.TokenID != ""
		})).
		Return(nil)

	w := env.do(t, http.MethodPost, "/api/v1/users/logout", "user-1", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	env := setupRouter(t)

	roomID := uuid.New().String()
	env.rooms.EXPECT().Get(mock.Anything, "", roomID).Return(nil, errors.New("db is down"))

	w := env.do(t, http.MethodGet, "/api/v1/rooms/"+roomID, "", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
