package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"column:user_id;index" json:"user_id"`
	RoomID uint `gorm:"column:room_id;index" json:"room_id"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code,omitempty"`
	Status        string `gorm:"column:status;size:32" json:"status"`

	// CheckIn is inclusive, CheckOut exclusive: the guest holds the room for
	// the nights [CheckIn, CheckOut) and the checkout date itself is free.
	CheckIn  time.Time `gorm:"column:check_in;type:date" json:"check_in"`
	CheckOut time.Time `gorm:"column:check_out;type:date" json:"check_out"`
	Nights   int       `gorm:"column:nights" json:"nights"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
