package handler

import (
	"net/http"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListRooms(c *ginext.Context) {
	rooms, err := h.roomService.List(c.Request.Context(), actor(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, rooms)
}

func (h *Handler) GetRoom(c *ginext.Context) {
	id, ok := pathID(c, "id", "room")
	if !ok {
		return
	}

	details, err := h.roomService.Get(c.Request.Context(), actor(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomDetailsResponse(details))
}

func (h *Handler) CreateRoom(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	var req dto.CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	input := domain.CreateRoomInput{
		Title:       req.Title,
		Country:     req.Country,
		City:        req.City,
		Price:       req.Price,
		Rooms:       req.Rooms,
		Toilets:     req.Toilets,
		Description: req.Description,
		Address:     req.Address,
		PetFriendly: req.PetFriendly,
		Kind:        domain.RoomKind(req.Kind),
		CategoryID:  req.Category,
		AmenityIDs:  req.Amenities,
	}

	details, err := h.roomService.Create(c.Request.Context(), actorID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomDetailsResponse(details))
}

func (h *Handler) UpdateRoom(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "room")
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	input := domain.UpdateRoomInput{
		Title:       req.Title,
		Country:     req.Country,
		City:        req.City,
		Price:       req.Price,
		Rooms:       req.Rooms,
		Toilets:     req.Toilets,
		Description: req.Description,
		Address:     req.Address,
		PetFriendly: req.PetFriendly,
		CategoryID:  req.Category,
		AmenityIDs:  req.Amenities,
	}
	if req.Kind != nil {
		kind := domain.RoomKind(*req.Kind)
		input.Kind = &kind
	}

	details, err := h.roomService.Update(c.Request.Context(), actorID, id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomDetailsResponse(details))
}

func (h *Handler) DeleteRoom(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "room")
	if !ok {
		return
	}

	if err := h.roomService.Delete(c.Request.Context(), actorID, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListRoomReviews(c *ginext.Context) {
	id, ok := pathID(c, "id", "room")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListForRoom(c.Request.Context(), id, pageParam(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) CreateRoomReview(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "room")
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateForRoom(c.Request.Context(), actorID, id, domain.ReviewInput{
		Payload: req.Payload,
		Rating:  req.Rating,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *Handler) ListRoomBookings(c *ginext.Context) {
	id, ok := pathID(c, "id", "room")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListRoomBookings(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) BookRoom(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "room")
	if !ok {
		return
	}

	var req dto.RoomBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	checkIn, err := parseDate("check_in", req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	checkOut, err := parseDate("check_out", req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.BookRoom(c.Request.Context(), actorID, id, domain.CreateRoomBookingInput{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   req.Guests,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CheckRoomAvailability(c *ginext.Context) {
	id, ok := pathID(c, "id", "room")
	if !ok {
		return
	}

	checkIn, err := parseDate("check_in", c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	checkOut, err := parseDate("check_out", c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	available, err := h.bookingService.CheckRoomAvailability(c.Request.Context(), id, checkIn, checkOut)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{OK: available})
}

func (h *Handler) AddRoomPhoto(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "room")
	if !ok {
		return
	}

	var req dto.PhotoRequest
	if !bindJSON(c, &req) {
		return
	}

	photo, err := h.photoService.AddToRoom(c.Request.Context(), actorID, id, domain.PhotoInput{
		File:        req.File,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, photo)
}

func (h *Handler) DeletePhoto(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "photo")
	if !ok {
		return
	}

	if err := h.photoService.Delete(c.Request.Context(), actorID, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
