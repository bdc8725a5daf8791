package zoo

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"zoo-backend/internal/model"
	"zoo-backend/internal/store"
)

// RoomService owns Room records. It is also the reference authority the
// animal service consults before persisting room references.
type RoomService struct {
	store store.Store
}

// NewRoomService creates a new room service.
func NewRoomService(s store.Store) *RoomService {
	return &RoomService{store: s}
}

// Create stores a new room with fresh timestamps.
func (s *RoomService) Create(ctx context.Context, title string) (*model.Room, error) {
	if strings.TrimSpace(title) == "" {
		return nil, invalidf("title must not be blank")
	}

	now := time.Now().UTC()
	room := &model.Room{
		Title:   title,
		Created: now,
		Updated: now,
	}
	if err := s.store.CreateRoom(ctx, room); err != nil {
		return nil, err
	}
	log.Printf("room created id=%s title=%q", room.ID, room.Title)
	return room, nil
}

// Get returns the room or a NotFoundError.
func (s *RoomService) Get(ctx context.Context, id string) (*model.Room, error) {
	room, err := s.store.GetRoom(ctx, id)
	if err == store.ErrNotFound {
		return nil, notFoundf("Room not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return room, nil
}

// Update replaces the room title and refreshes the updated timestamp.
func (s *RoomService) Update(ctx context.Context, id, title string) (*model.Room, error) {
	if strings.TrimSpace(title) == "" {
		return nil, invalidf("title must not be blank")
	}

	room, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	room.Title = title
	room.Updated = time.Now().UTC()
	if err := s.store.SaveRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// Delete removes the room. Animal references to the deleted room are left
// in place; they become stale and are filtered out by the statistics view.
func (s *RoomService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.DeleteRoom(ctx, id); err != nil {
		if err == store.ErrNotFound {
			return notFoundf("Room not found: %s", id)
		}
		return err
	}
	log.Printf("room deleted id=%s", id)
	return nil
}

// Exists reports whether a room with the given id exists. Absence is not
// an error.
func (s *RoomService) Exists(ctx context.Context, id string) (bool, error) {
	exists, err := s.store.RoomExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("room existence check failed: %w", err)
	}
	return exists, nil
}
