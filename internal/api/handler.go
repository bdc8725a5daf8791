package api

import (
	"zoo-backend/internal/zoo"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	animals *zoo.AnimalService
	rooms   *zoo.RoomService
}

// NewHandler creates a new API handler.
func NewHandler(animals *zoo.AnimalService, rooms *zoo.RoomService) *Handler {
	return &Handler{
		animals: animals,
		rooms:   rooms,
	}
}
