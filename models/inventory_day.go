package models

import (
	"time"
)

// InventoryDay is one ledger row: sellable units and nightly price for a
// single (room, date) pair. Exactly one row may exist per pair; a missing row
// means the date is not sellable at all.
type InventoryDay struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomID uint      `gorm:"column:room_id;uniqueIndex:idx_room_date;not null" json:"roomId"`
	Date   time.Time `gorm:"column:date;type:date;uniqueIndex:idx_room_date;not null" json:"date"`

	Available int     `gorm:"column:available;not null" json:"available"`
	Price     float64 `gorm:"column:price;not null" json:"price"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}
