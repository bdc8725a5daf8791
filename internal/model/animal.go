package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Animal represents a zoo animal. Room references are weak: they are
// validated at write time by the service layer and may go stale if the
// referenced room is deleted later.
type Animal struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	Title            string    `gorm:"size:256;not null" json:"title"`
	Located          Date      `gorm:"type:date;not null" json:"located"`
	CurrentRoomID    string    `gorm:"index;size:36" json:"currentRoomId,omitempty"`
	FavouriteRoomIDs StringSet `gorm:"type:text" json:"favouriteRoomIds"`
	Created          time.Time `gorm:"not null" json:"created"`
	Updated          time.Time `gorm:"not null" json:"updated"`
}

// BeforeCreate assigns a store-generated identifier.
func (a *Animal) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
