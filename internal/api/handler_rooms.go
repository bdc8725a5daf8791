package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zoo-backend/internal/zoo"
)

type roomRequest struct {
	Title string `json:"title" binding:"required"`
}

// CreateRoom handles POST /rooms.
func (h *Handler) CreateRoom(c *gin.Context) {
	var req roomRequest
	if !bindJSON(c, &req) {
		return
	}

	room, err := h.rooms.Create(c.Request.Context(), req.Title)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", "/rooms/"+room.ID)
	c.JSON(http.StatusCreated, room)
}

// GetRoom handles GET /rooms/:id.
func (h *Handler) GetRoom(c *gin.Context) {
	room, err := h.rooms.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// UpdateRoom handles PUT /rooms/:id.
func (h *Handler) UpdateRoom(c *gin.Context) {
	var req roomRequest
	if !bindJSON(c, &req) {
		return
	}

	room, err := h.rooms.Update(c.Request.Context(), c.Param("id"), req.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoom handles DELETE /rooms/:id.
func (h *Handler) DeleteRoom(c *gin.Context) {
	if err := h.rooms.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetFavouriteRoomStats handles GET /rooms/favourites/stats.
func (h *Handler) GetFavouriteRoomStats(c *gin.Context) {
	stats, err := h.animals.FavouriteRoomStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if stats == nil {
		stats = []zoo.RoomStat{}
	}
	c.JSON(http.StatusOK, stats)
}
