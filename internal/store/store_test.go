package store

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"zoo-backend/internal/model"
)

func newTestStore(t *testing.T) Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Room{}, &model.Animal{}))
	return NewGormStore(db)
}

func TestRoomCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	room := &model.Room{Title: "Aviary"}
	require.NoError(t, s.CreateRoom(ctx, room))
	assert.NotEmpty(t, room.ID, "id is assigned by the store")

	fetched, err := s.GetRoom(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aviary", fetched.Title)

	fetched.Title = "Reptile House"
	require.NoError(t, s.SaveRoom(ctx, fetched))

	exists, err := s.RoomExists(ctx, room.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.DeleteRoom(ctx, room.ID))

	_, err = s.GetRoom(ctx, room.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.DeleteRoom(ctx, room.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	exists, err = s.RoomExists(ctx, room.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAnimalPersistsEmbeddedSet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	animal := &model.Animal{
		Title:            "Otter",
		Located:          model.NewDate(2024, 2, 2),
		FavouriteRoomIDs: model.StringSet{"r2", "r1"},
	}
	require.NoError(t, s.CreateAnimal(ctx, animal))

	fetched, err := s.GetAnimal(ctx, animal.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StringSet{"r1", "r2"}, fetched.FavouriteRoomIDs)
	assert.Equal(t, "2024-02-02", fetched.Located.String())
}

func TestListAnimalsByRoom(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	room := &model.Room{Title: "Main"}
	require.NoError(t, s.CreateRoom(ctx, room))

	titles := []string{"Charlie", "Alpha", "Bravo"}
	dates := []model.Date{
		model.NewDate(2022, 3, 1),
		model.NewDate(2024, 1, 1),
		model.NewDate(2023, 7, 15),
	}
	for i, title := range titles {
		animal := &model.Animal{Title: title, Located: dates[i], CurrentRoomID: room.ID}
		require.NoError(t, s.CreateAnimal(ctx, animal))
	}
	// One animal elsewhere, never returned.
	require.NoError(t, s.CreateAnimal(ctx, &model.Animal{
		Title: "Outsider", Located: model.NewDate(2020, 1, 1), CurrentRoomID: "other",
	}))

	page, err := s.ListAnimalsByRoom(ctx, room.ID, PageQuery{SortBy: "title", Page: 0, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalElements)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Alpha", page.Items[0].Title)
	assert.Equal(t, "Bravo", page.Items[1].Title)

	page, err = s.ListAnimalsByRoom(ctx, room.ID, PageQuery{SortBy: "title", Page: 1, Size: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Charlie", page.Items[0].Title)

	// Date ordering relies on the YYYY-MM-DD storage format.
	page, err = s.ListAnimalsByRoom(ctx, room.ID, PageQuery{SortBy: "located", Desc: true, Page: 0, Size: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Alpha", page.Items[0].Title)
	assert.Equal(t, "Bravo", page.Items[1].Title)
	assert.Equal(t, "Charlie", page.Items[2].Title)
}

func TestRoomsByIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r1 := &model.Room{Title: "One"}
	r2 := &model.Room{Title: "Two"}
	require.NoError(t, s.CreateRoom(ctx, r1))
	require.NoError(t, s.CreateRoom(ctx, r2))

	rooms, err := s.RoomsByIDs(ctx, []string{r1.ID, "missing", r2.ID})
	require.NoError(t, err)
	assert.Len(t, rooms, 2, "missing ids are simply absent from the result")

	rooms, err = s.RoomsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, rooms)
}
