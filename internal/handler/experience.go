package handler

import (
	"net/http"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListExperiences(c *ginext.Context) {
	experiences, err := h.experienceService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, experiences)
}

func (h *Handler) GetExperience(c *ginext.Context) {
	id, ok := pathID(c, "id", "experience")
	if !ok {
		return
	}

	experience, err := h.experienceService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, experience)
}

func (h *Handler) CreateExperience(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	var req dto.CreateExperienceRequest
	if !bindJSON(c, &req) {
		return
	}

	experience, err := h.experienceService.Create(c.Request.Context(), actorID, domain.CreateExperienceInput{
		Country:     req.Country,
		City:        req.City,
		Name:        req.Name,
		Price:       req.Price,
		Address:     req.Address,
		Start:       req.Start,
		End:         req.End,
		Description: req.Description,
		CategoryID:  req.Category,
		PerkIDs:     req.Perks,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, experience)
}

func (h *Handler) UpdateExperience(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "experience")
	if !ok {
		return
	}

	var req dto.UpdateExperienceRequest
	if !bindJSON(c, &req) {
		return
	}

	experience, err := h.experienceService.Update(c.Request.Context(), actorID, id, domain.UpdateExperienceInput{
		Country:     req.Country,
		City:        req.City,
		Name:        req.Name,
		Price:       req.Price,
		Address:     req.Address,
		Start:       req.Start,
		End:         req.End,
		Description: req.Description,
		CategoryID:  req.Category,
		PerkIDs:     req.Perks,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, experience)
}

func (h *Handler) DeleteExperience(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "experience")
	if !ok {
		return
	}

	if err := h.experienceService.Delete(c.Request.Context(), actorID, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListExperienceReviews(c *ginext.Context) {
	id, ok := pathID(c, "id", "experience")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListForExperience(c.Request.Context(), id, pageParam(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) CreateExperienceReview(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "experience")
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateForExperience(c.Request.Context(), actorID, id, domain.ReviewInput{
		Payload: req.Payload,
		Rating:  req.Rating,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *Handler) ListExperienceBookings(c *ginext.Context) {
	id, ok := pathID(c, "id", "experience")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListExperienceBookings(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) BookExperience(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "experience")
	if !ok {
		return
	}

	var req dto.ExperienceBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	at, err := time.Parse(time.RFC3339, req.ExperienceTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid experience_time format, expected RFC3339",
		})
		return
	}

	booking, err := h.bookingService.BookExperience(c.Request.Context(), actorID, id, domain.CreateExperienceBookingInput{
		ExperienceTime: at,
		Guests:         req.Guests,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) AddExperiencePhoto(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "experience")
	if !ok {
		return
	}

	var req dto.PhotoRequest
	if !bindJSON(c, &req) {
		return
	}

	photo, err := h.photoService.AddToExperience(c.Request.Context(), actorID, id, domain.PhotoInput{
		File:        req.File,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, photo)
}
