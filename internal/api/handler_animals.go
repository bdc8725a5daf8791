package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"zoo-backend/internal/model"
	"zoo-backend/internal/zoo"
)

type animalCreateRequest struct {
	Title            string     `json:"title" binding:"required"`
	Located          model.Date `json:"located"`
	CurrentRoomID    string     `json:"currentRoomId"`
	FavouriteRoomIDs []string   `json:"favouriteRoomIds"`
}

type animalUpdateRequest struct {
	Title            *string     `json:"title"`
	Located          *model.Date `json:"located"`
	CurrentRoomID    *string     `json:"currentRoomId"`
	FavouriteRoomIDs *[]string   `json:"favouriteRoomIds"`
}

type roomIDRequest struct {
	RoomID string `json:"roomId" binding:"required"`
}

// animalPageResponse is the pagination envelope for room listings.
type animalPageResponse struct {
	Items         []model.Animal `json:"items"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	TotalElements int64          `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
}

// CreateAnimal handles POST /animals.
func (h *Handler) CreateAnimal(c *gin.Context) {
	var req animalCreateRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Located.IsZero() {
		c.AbortWithStatusJSON(http.StatusBadRequest, map[string]string{"located": "is required"})
		return
	}

	var favourites model.StringSet
	for _, id := range req.FavouriteRoomIDs {
		favourites.Add(id)
	}

	animal := &model.Animal{
		Title:            req.Title,
		Located:          req.Located,
		CurrentRoomID:    req.CurrentRoomID,
		FavouriteRoomIDs: favourites,
	}
	created, err := h.animals.Create(c.Request.Context(), animal)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", "/animals/"+created.ID)
	c.JSON(http.StatusCreated, created)
}

// GetAnimal handles GET /animals/:id.
func (h *Handler) GetAnimal(c *gin.Context) {
	animal, err := h.animals.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

// UpdateAnimal handles PUT /animals/:id. Absent body fields leave the
// stored values untouched.
func (h *Handler) UpdateAnimal(c *gin.Context) {
	var req animalUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	changes := zoo.AnimalUpdate{
		Title:         req.Title,
		Located:       req.Located,
		CurrentRoomID: req.CurrentRoomID,
	}
	if req.FavouriteRoomIDs != nil {
		var favourites model.StringSet
		for _, id := range *req.FavouriteRoomIDs {
			favourites.Add(id)
		}
		changes.FavouriteRoomIDs = &favourites
	}

	updated, err := h.animals.Update(c.Request.Context(), c.Param("id"), changes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteAnimal handles DELETE /animals/:id.
func (h *Handler) DeleteAnimal(c *gin.Context) {
	if err := h.animals.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PlaceAnimal handles POST /animals/:id/place and PUT /animals/:id/move.
// Both set the current room with identical semantics.
func (h *Handler) PlaceAnimal(c *gin.Context) {
	var req roomIDRequest
	if !bindJSON(c, &req) {
		return
	}

	animal, err := h.animals.AssignRoom(c.Request.Context(), c.Param("id"), req.RoomID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

// RemoveAnimalFromRoom handles DELETE /animals/:id/room.
func (h *Handler) RemoveAnimalFromRoom(c *gin.Context) {
	animal, err := h.animals.RemoveFromRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

// AssignFavouriteRoom handles POST /animals/:id/favourites.
func (h *Handler) AssignFavouriteRoom(c *gin.Context) {
	var req roomIDRequest
	if !bindJSON(c, &req) {
		return
	}

	animal, err := h.animals.AssignFavourite(c.Request.Context(), c.Param("id"), req.RoomID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

// UnassignFavouriteRoom handles DELETE /animals/:id/favourites/:roomId.
func (h *Handler) UnassignFavouriteRoom(c *gin.Context) {
	animal, err := h.animals.UnassignFavourite(c.Request.Context(), c.Param("id"), c.Param("roomId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

// ListAnimalsInRoom handles GET /animals/room/:roomId.
func (h *Handler) ListAnimalsInRoom(c *gin.Context) {
	sortBy := c.DefaultQuery("sortBy", "title")
	order := c.DefaultQuery("order", "asc")

	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, newAPIError(http.StatusBadRequest, "Invalid page: must be an integer"))
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, newAPIError(http.StatusBadRequest, "Invalid size: must be an integer"))
		return
	}

	result, err := h.animals.ListInRoom(c.Request.Context(), c.Param("roomId"), sortBy, order, page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	items := result.Items
	if items == nil {
		items = []model.Animal{}
	}
	c.JSON(http.StatusOK, animalPageResponse{
		Items:         items,
		Page:          result.Page,
		Size:          result.Size,
		TotalElements: result.TotalElements,
		TotalPages:    result.TotalPages,
	})
}
