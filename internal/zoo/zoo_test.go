package zoo

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"zoo-backend/internal/model"
	"zoo-backend/internal/store"
)

// newTestServices builds the service pair on a fresh in-memory database.
func newTestServices(t *testing.T) (*AnimalService, *RoomService) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Room{}, &model.Animal{}))

	s := store.NewGormStore(db)
	rooms := NewRoomService(s)
	animals := NewAnimalService(s, rooms)
	return animals, rooms
}

func mustCreateRoom(t *testing.T, rooms *RoomService, title string) *model.Room {
	t.Helper()
	room, err := rooms.Create(context.Background(), title)
	require.NoError(t, err)
	return room
}

func mustCreateAnimal(t *testing.T, animals *AnimalService, a *model.Animal) *model.Animal {
	t.Helper()
	if a.Located.IsZero() {
		a.Located = model.NewDate(2024, 3, 15)
	}
	created, err := animals.Create(context.Background(), a)
	require.NoError(t, err)
	return created
}
