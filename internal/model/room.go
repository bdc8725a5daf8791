package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room represents an enclosure animals can occupy or favourite.
type Room struct {
	ID      string    `gorm:"primaryKey;size:36" json:"id"`
	Title   string    `gorm:"size:256;not null" json:"title"`
	Created time.Time `gorm:"not null" json:"created"`
	Updated time.Time `gorm:"not null" json:"updated"`
}

// BeforeCreate assigns a store-generated identifier.
func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
