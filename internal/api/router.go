package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"zoo-backend/config"
	"zoo-backend/internal/mw"
	"zoo-backend/internal/zoo"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.ServerConfig, animalSvc *zoo.AnimalService, roomSvc *zoo.RoomService) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(animalSvc, roomSvc)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)
	r.Use(rateLimiter)

	// The stats view is a full scan over all animals on every call, so its
	// response is the one worth caching.
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	animals := r.Group("/animals")
	{
		animals.POST("", handler.CreateAnimal)
		animals.GET("/:id", handler.GetAnimal)
		animals.PUT("/:id", handler.UpdateAnimal)
		animals.DELETE("/:id", handler.DeleteAnimal)

		animals.POST("/:id/place", handler.PlaceAnimal)
		animals.PUT("/:id/move", handler.PlaceAnimal)
		animals.DELETE("/:id/room", handler.RemoveAnimalFromRoom)

		animals.POST("/:id/favourites", handler.AssignFavouriteRoom)
		animals.DELETE("/:id/favourites/:roomId", handler.UnassignFavouriteRoom)

		animals.GET("/room/:roomId", handler.ListAnimalsInRoom)
	}

	rooms := r.Group("/rooms")
	{
		rooms.POST("", handler.CreateRoom)
		rooms.GET("/:id", handler.GetRoom)
		rooms.PUT("/:id", handler.UpdateRoom)
		rooms.DELETE("/:id", handler.DeleteRoom)

		rooms.GET("/favourites/stats", caching, handler.GetFavouriteRoomStats)
	}

	return r
}
