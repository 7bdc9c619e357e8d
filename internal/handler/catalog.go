package handler

import (
	"net/http"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// Categories

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) GetCategory(c *ginext.Context) {
	id, ok := pathID(c, "id", "category")
	if !ok {
		return
	}

	category, err := h.categoryService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *Handler) CreateCategory(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), actorID, domain.CategoryInput{
		Name: req.Name,
		Kind: domain.CategoryKind(req.Kind),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *Handler) UpdateCategory(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "category")
	if !ok {
		return
	}

	var req dto.CategoryPatchRequest
	if !bindJSON(c, &req) {
		return
	}

	patch := domain.CategoryPatch{Name: req.Name}
	if req.Kind != nil {
		kind := domain.CategoryKind(*req.Kind)
		patch.Kind = &kind
	}

	category, err := h.categoryService.Update(c.Request.Context(), actorID, id, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *Handler) DeleteCategory(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "category")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), actorID, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Amenities

func (h *Handler) ListAmenities(c *ginext.Context) {
	amenities, err := h.amenityService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, amenities)
}

func (h *Handler) GetAmenity(c *ginext.Context) {
	id, ok := pathID(c, "id", "amenity")
	if !ok {
		return
	}

	amenity, err := h.amenityService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, amenity)
}

func (h *Handler) CreateAmenity(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	var req dto.AmenityRequest
	if !bindJSON(c, &req) {
		return
	}

	amenity, err := h.amenityService.Create(c.Request.Context(), actorID, domain.AmenityInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, amenity)
}

func (h *Handler) UpdateAmenity(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "amenity")
	if !ok {
		return
	}

	var req dto.AmenityPatchRequest
	if !bindJSON(c, &req) {
		return
	}

	amenity, err := h.amenityService.Update(c.Request.Context(), actorID, id, domain.AmenityPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, amenity)
}

func (h *Handler) DeleteAmenity(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "amenity")
	if !ok {
		return
	}

	if err := h.amenityService.Delete(c.Request.Context(), actorID, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Perks

func (h *Handler) ListPerks(c *ginext.Context) {
	perks, err := h.perkService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, perks)
}

func (h *Handler) GetPerk(c *ginext.Context) {
	id, ok := pathID(c, "id", "perk")
	if !ok {
		return
	}

	perk, err := h.perkService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, perk)
}

func (h *Handler) CreatePerk(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	var req dto.PerkRequest
	if !bindJSON(c, &req) {
		return
	}

	perk, err := h.perkService.Create(c.Request.Context(), actorID, domain.PerkInput{
		Name:        req.Name,
		Details:     req.Details,
		Explanation: req.Explanation,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, perk)
}

func (h *Handler) UpdatePerk(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "perk")
	if !ok {
		return
	}

	var req dto.PerkPatchRequest
	if !bindJSON(c, &req) {
		return
	}

	perk, err := h.perkService.Update(c.Request.Context(), actorID, id, domain.PerkPatch{
		Name:        req.Name,
		Details:     req.Details,
		Explanation: req.Explanation,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, perk)
}

func (h *Handler) DeletePerk(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "perk")
	if !ok {
		return
	}

	if err := h.perkService.Delete(c.Request.Context(), actorID, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
