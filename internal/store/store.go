package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"zoo-backend/internal/model"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the document-store operations the services rely on:
// per-record CRUD, existence checks and field-filtered paginated queries.
type Store interface {
	CreateAnimal(ctx context.Context, a *model.Animal) error
	GetAnimal(ctx context.Context, id string) (*model.Animal, error)
	SaveAnimal(ctx context.Context, a *model.Animal) error
	DeleteAnimal(ctx context.Context, id string) error
	ListAnimalsByRoom(ctx context.Context, roomID string, q PageQuery) (*AnimalPage, error)
	AllAnimals(ctx context.Context) ([]model.Animal, error)

	CreateRoom(ctx context.Context, r *model.Room) error
	GetRoom(ctx context.Context, id string) (*model.Room, error)
	SaveRoom(ctx context.Context, r *model.Room) error
	DeleteRoom(ctx context.Context, id string) error
	RoomExists(ctx context.Context, id string) (bool, error)
	RoomsByIDs(ctx context.Context, ids []string) ([]model.Room, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) CreateAnimal(ctx context.Context, a *model.Animal) error {
	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create animal: %w", err)
	}
	return nil
}

func (s *gormStore) GetAnimal(ctx context.Context, id string) (*model.Animal, error) {
	var a model.Animal
	err := s.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get animal %s: %w", id, err)
	}
	return &a, nil
}

func (s *gormStore) SaveAnimal(ctx context.Context, a *model.Animal) error {
	if err := s.db.WithContext(ctx).Save(a).Error; err != nil {
		return fmt.Errorf("save animal %s: %w", a.ID, err)
	}
	return nil
}

func (s *gormStore) DeleteAnimal(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&model.Animal{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete animal %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) ListAnimalsByRoom(ctx context.Context, roomID string, q PageQuery) (*AnimalPage, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&model.Animal{}).
		Where("current_room_id = ?", roomID).
		Count(&total).Error
	if err != nil {
		return nil, fmt.Errorf("count animals in room %s: %w", roomID, err)
	}

	var items []model.Animal
	err = s.db.WithContext(ctx).
		Where("current_room_id = ?", roomID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: q.SortBy}, Desc: q.Desc}).
		Offset(q.Page * q.Size).
		Limit(q.Size).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list animals in room %s: %w", roomID, err)
	}

	return &AnimalPage{Items: items, TotalElements: total}, nil
}

func (s *gormStore) AllAnimals(ctx context.Context) ([]model.Animal, error) {
	var animals []model.Animal
	if err := s.db.WithContext(ctx).Find(&animals).Error; err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	return animals, nil
}

func (s *gormStore) CreateRoom(ctx context.Context, r *model.Room) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

func (s *gormStore) GetRoom(ctx context.Context, id string) (*model.Room, error) {
	var r model.Room
	err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get room %s: %w", id, err)
	}
	return &r, nil
}

func (s *gormStore) SaveRoom(ctx context.Context, r *model.Room) error {
	if err := s.db.WithContext(ctx).Save(r).Error; err != nil {
		return fmt.Errorf("save room %s: %w", r.ID, err)
	}
	return nil
}

func (s *gormStore) DeleteRoom(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&model.Room{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete room %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) RoomExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Room{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check room %s: %w", id, err)
	}
	return count > 0, nil
}

func (s *gormStore) RoomsByIDs(ctx context.Context, ids []string) ([]model.Room, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rooms []model.Room
	if err := s.db.WithContext(ctx).Find(&rooms, "id IN ?", ids).Error; err != nil {
		return nil, fmt.Errorf("get rooms by ids: %w", err)
	}
	return rooms, nil
}
