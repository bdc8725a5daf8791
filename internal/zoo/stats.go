package zoo

import (
	"context"
	"sort"
)

// RoomStat is the favourite count for one room. Two distinct rooms sharing
// a title produce separate entries: counting is keyed by room identity and
// titles are resolved afterwards.
type RoomStat struct {
	Title string `json:"title"`
	Count int64  `json:"count"`
}

// FavouriteRoomStats scans all animals and counts favourite references per
// room. Stale references to deleted rooms are silently dropped. Rooms with
// zero favourites never appear. The result is recomputed in full on every
// call and sorted by title, then count, for stable output.
func (s *AnimalService) FavouriteRoomStats(ctx context.Context) ([]RoomStat, error) {
	animals, err := s.store.AllAnimals(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, animal := range animals {
		for _, roomID := range animal.FavouriteRoomIDs {
			counts[roomID]++
		}
	}

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}

	rooms, err := s.store.RoomsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	stats := make([]RoomStat, 0, len(rooms))
	for _, room := range rooms {
		stats = append(stats, RoomStat{Title: room.Title, Count: counts[room.ID]})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Title != stats[j].Title {
			return stats[i].Title < stats[j].Title
		}
		return stats[i].Count < stats[j].Count
	})
	return stats, nil
}
