package models

import (
	"time"

	"gorm.io/gorm"
)

type Hotel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// One-To-Many Relation: Hotel -> Rooms
	// Rooms []Room `gorm:"foreignKey:HotelID"`
}
