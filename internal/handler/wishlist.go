package handler

import (
	"net/http"

	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListWishlists(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	wishlists, err := h.wishlistService.List(c.Request.Context(), actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, wishlists)
}

func (h *Handler) CreateWishlist(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	var req dto.WishlistRequest
	if !bindJSON(c, &req) {
		return
	}

	wishlist, err := h.wishlistService.Create(c.Request.Context(), actorID, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, wishlist)
}

func (h *Handler) GetWishlist(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "wishlist")
	if !ok {
		return
	}

	wishlist, err := h.wishlistService.Get(c.Request.Context(), actorID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, wishlist)
}

func (h *Handler) RenameWishlist(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "wishlist")
	if !ok {
		return
	}

	var req dto.WishlistRequest
	if !bindJSON(c, &req) {
		return
	}

	wishlist, err := h.wishlistService.Rename(c.Request.Context(), actorID, id, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, wishlist)
}

func (h *Handler) DeleteWishlist(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "wishlist")
	if !ok {
		return
	}

	if err := h.wishlistService.Delete(c.Request.Context(), actorID, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ToggleWishlistRoom(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "wishlist")
	if !ok {
		return
	}
	roomID, ok := pathID(c, "room_id", "room")
	if !ok {
		return
	}

	added, err := h.wishlistService.ToggleRoom(c.Request.Context(), actorID, id, roomID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToggleResponse{Added: added})
}

func (h *Handler) ToggleWishlistExperience(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "wishlist")
	if !ok {
		return
	}
	experienceID, ok := pathID(c, "experience_id", "experience")
	if !ok {
		return
	}

	added, err := h.wishlistService.ToggleExperience(c.Request.Context(), actorID, id, experienceID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToggleResponse{Added: added})
}
