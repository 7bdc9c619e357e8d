package handler

import (
	"net/http"

	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListChats(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	rooms, err := h.chatService.ListRooms(c.Request.Context(), actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *Handler) CreateChat(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	var req dto.ChatRequest
	if !bindJSON(c, &req) {
		return
	}

	room, err := h.chatService.CreateRoom(c.Request.Context(), actorID, req.UserIDs)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (h *Handler) ListMessages(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "chatting room")
	if !ok {
		return
	}

	messages, err := h.chatService.ListMessages(c.Request.Context(), actorID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *Handler) SendMessage(c *ginext.Context) {
	actorID, ok := h.requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "chatting room")
	if !ok {
		return
	}

	var req dto.MessageRequest
	if !bindJSON(c, &req) {
		return
	}

	message, err := h.chatService.SendMessage(c.Request.Context(), actorID, id, req.Text)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}
