package zoo

import (
	"context"
	"log"
	"math"
	"strings"
	"time"

	"zoo-backend/internal/model"
	"zoo-backend/internal/store"
)

// Sort fields accepted by ListInRoom.
const (
	SortByTitle   = "title"
	SortByLocated = "located"
)

// AnimalUpdate carries the fields of a partial animal update. Nil fields
// leave the stored values untouched.
type AnimalUpdate struct {
	Title            *string
	Located          *model.Date
	CurrentRoomID    *string
	FavouriteRoomIDs *model.StringSet
}

// AnimalPage is a zero-based page of animals.
type AnimalPage struct {
	Items         []model.Animal
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

// AnimalService owns Animal records and enforces referential integrity
// against the room service: every room reference is validated at write
// time, before anything is persisted. References are not enforced after
// the write; a room deleted later leaves a stale reference behind.
type AnimalService struct {
	store store.Store
	rooms *RoomService
}

// NewAnimalService creates a new animal service.
func NewAnimalService(s store.Store, rooms *RoomService) *AnimalService {
	return &AnimalService{store: s, rooms: rooms}
}

// Create validates room references and persists a new animal with
// created == updated.
func (s *AnimalService) Create(ctx context.Context, animal *model.Animal) (*model.Animal, error) {
	if strings.TrimSpace(animal.Title) == "" {
		return nil, invalidf("title must not be blank")
	}
	if animal.Located.IsZero() {
		return nil, invalidf("located is required")
	}
	if err := s.validateRoomReferences(ctx, animal.CurrentRoomID, animal.FavouriteRoomIDs); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	animal.Created = now
	animal.Updated = now
	if err := s.store.CreateAnimal(ctx, animal); err != nil {
		return nil, err
	}
	log.Printf("animal created id=%s title=%q", animal.ID, animal.Title)
	return animal, nil
}

// Get returns the animal or a NotFoundError.
func (s *AnimalService) Get(ctx context.Context, id string) (*model.Animal, error) {
	animal, err := s.store.GetAnimal(ctx, id)
	if err == store.ErrNotFound {
		return nil, notFoundf("Animal not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return animal, nil
}

// Update merges the given changes into the stored animal. Room references
// of the merged record are re-validated the same way Create validates
// them, so an update never persists a reference to a missing room.
func (s *AnimalService) Update(ctx context.Context, id string, changes AnimalUpdate) (*model.Animal, error) {
	animal, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if changes.Title != nil {
		if strings.TrimSpace(*changes.Title) == "" {
			return nil, invalidf("title must not be blank")
		}
		animal.Title = *changes.Title
	}
	if changes.Located != nil {
		if changes.Located.IsZero() {
			return nil, invalidf("located is required")
		}
		animal.Located = *changes.Located
	}
	if changes.CurrentRoomID != nil {
		animal.CurrentRoomID = *changes.CurrentRoomID
	}
	if changes.FavouriteRoomIDs != nil {
		animal.FavouriteRoomIDs = *changes.FavouriteRoomIDs
	}

	if err := s.validateRoomReferences(ctx, animal.CurrentRoomID, animal.FavouriteRoomIDs); err != nil {
		return nil, err
	}

	animal.Updated = time.Now().UTC()
	if err := s.store.SaveAnimal(ctx, animal); err != nil {
		return nil, err
	}
	return animal, nil
}

// Delete removes the animal.
func (s *AnimalService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.DeleteAnimal(ctx, id); err != nil {
		if err == store.ErrNotFound {
			return notFoundf("Animal not found: %s", id)
		}
		return err
	}
	log.Printf("animal deleted id=%s", id)
	return nil
}

// AssignRoom places the animal in a room. First placement and moves share
// the same semantics; assigning the current room again is a no-op beyond
// refreshing the updated timestamp.
func (s *AnimalService) AssignRoom(ctx context.Context, animalID, roomID string) (*model.Animal, error) {
	animal, err := s.Get(ctx, animalID)
	if err != nil {
		return nil, err
	}
	if _, err := s.rooms.Get(ctx, roomID); err != nil {
		return nil, err
	}

	animal.CurrentRoomID = roomID
	animal.Updated = time.Now().UTC()
	if err := s.store.SaveAnimal(ctx, animal); err != nil {
		return nil, err
	}
	log.Printf("animal %s placed in room %s", animalID, roomID)
	return animal, nil
}

// RemoveFromRoom clears the animal's current room. Clearing an already
// empty room reference is not an error.
func (s *AnimalService) RemoveFromRoom(ctx context.Context, id string) (*model.Animal, error) {
	animal, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	animal.CurrentRoomID = ""
	animal.Updated = time.Now().UTC()
	if err := s.store.SaveAnimal(ctx, animal); err != nil {
		return nil, err
	}
	return animal, nil
}

// AssignFavourite adds a room to the animal's favourites. Adding a room
// that is already a favourite is absorbed by the set.
func (s *AnimalService) AssignFavourite(ctx context.Context, id, roomID string) (*model.Animal, error) {
	animal, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.rooms.Get(ctx, roomID); err != nil {
		return nil, err
	}

	animal.FavouriteRoomIDs.Add(roomID)
	animal.Updated = time.Now().UTC()
	if err := s.store.SaveAnimal(ctx, animal); err != nil {
		return nil, err
	}
	return animal, nil
}

// UnassignFavourite removes a room from the animal's favourites. The room
// must exist and must currently be a favourite.
func (s *AnimalService) UnassignFavourite(ctx context.Context, id, roomID string) (*model.Animal, error) {
	animal, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.rooms.Get(ctx, roomID); err != nil {
		return nil, err
	}

	if !animal.FavouriteRoomIDs.Contains(roomID) {
		return nil, invalidf("Room %s is not in favourites for animal %s", roomID, id)
	}

	animal.FavouriteRoomIDs.Remove(roomID)
	animal.Updated = time.Now().UTC()
	if err := s.store.SaveAnimal(ctx, animal); err != nil {
		return nil, err
	}
	return animal, nil
}

// ListInRoom returns the animals currently in a room, sorted and paginated.
func (s *AnimalService) ListInRoom(ctx context.Context, roomID, sortBy, order string, page, size int) (*AnimalPage, error) {
	if _, err := s.rooms.Get(ctx, roomID); err != nil {
		return nil, err
	}

	if sortBy != SortByTitle && sortBy != SortByLocated {
		return nil, invalidf("Invalid sort field: %s. Allowed: title, located", sortBy)
	}

	var desc bool
	switch strings.ToLower(order) {
	case "asc":
		desc = false
	case "desc":
		desc = true
	default:
		return nil, invalidf("Invalid order: %s. Allowed: asc, desc", order)
	}

	if page < 0 {
		return nil, invalidf("Invalid page: %d. Must be >= 0", page)
	}
	if size < 1 {
		return nil, invalidf("Invalid size: %d. Must be >= 1", size)
	}

	result, err := s.store.ListAnimalsByRoom(ctx, roomID, store.PageQuery{
		SortBy: sortBy,
		Desc:   desc,
		Page:   page,
		Size:   size,
	})
	if err != nil {
		return nil, err
	}

	return &AnimalPage{
		Items:         result.Items,
		Page:          page,
		Size:          size,
		TotalElements: result.TotalElements,
		TotalPages:    int(math.Ceil(float64(result.TotalElements) / float64(size))),
	}, nil
}

// validateRoomReferences fails fast on the first reference that does not
// resolve to an existing room. Nothing is persisted when it fails.
func (s *AnimalService) validateRoomReferences(ctx context.Context, currentRoomID string, favouriteRoomIDs model.StringSet) error {
	if currentRoomID != "" {
		exists, err := s.rooms.Exists(ctx, currentRoomID)
		if err != nil {
			return err
		}
		if !exists {
			return notFoundf("Room not found: %s", currentRoomID)
		}
	}

	for _, roomID := range favouriteRoomIDs {
		exists, err := s.rooms.Exists(ctx, roomID)
		if err != nil {
			return err
		}
		if !exists {
			return notFoundf("Room not found: %s", roomID)
		}
	}
	return nil
}
