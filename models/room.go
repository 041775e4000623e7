package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	HotelID uint `json:"hotelId" gorm:"column:hotel_id;index"`

	Type        string `json:"type" gorm:"type:varchar(100)"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description" gorm:"type:text"`

	// Amenities is a free-form JSON list pushed by the property manager
	// (e.g. ["wifi","minibar"]); the ledger never inspects it.
	Amenities datatypes.JSON `json:"amenities,omitempty" gorm:"column:amenities"`

	Hotel Hotel `gorm:"foreignKey:HotelID" json:"-"`
}
