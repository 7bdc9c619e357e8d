package handler

import (
	"net/http"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/stpnv0/StayBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) SignUp(c *ginext.Context) {
	var req dto.SignUpRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.SignUp(c.Request.Context(), domain.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	pair, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}

func (h *Handler) RefreshToken(c *ginext.Context) {
	var req dto.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	pair, err := h.userService.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}

func (h *Handler) Logout(c *ginext.Context) {
	if _, ok := h.requireActor(c); !ok {
		return
	}

	if err := h.userService.Logout(c.Request.Context(), middleware.Claims(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Me(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	user, err := h.userService.Me(c.Request.Context(), actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) UpdateMe(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	input := domain.UpdateProfileInput{
		Username:       req.Username,
		Avatar:         req.Avatar,
		IsHost:         req.IsHost,
		TelegramChatID: req.TelegramChatID,
	}
	if req.Gender != nil {
		g := domain.Gender(*req.Gender)
		input.Gender = &g
	}
	if req.Language != nil {
		l := domain.Language(*req.Language)
		input.Language = &l
	}
	if req.Currency != nil {
		cur := domain.Currency(*req.Currency)
		input.Currency = &cur
	}

	user, err := h.userService.UpdateMe(c.Request.Context(), actorID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ChangePassword(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.userService.ChangePassword(c.Request.Context(), actorID, domain.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "password changed"})
}

func (h *Handler) MyBookings(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListMine(c.Request.Context(), actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}
