// Package catalog exposes the read-only room catalog the availability and
// booking flows consume. The ledger never writes through it.
package catalog

import (
	"context"
	"fmt"

	"channel-backend/models"

	"gorm.io/gorm"
)

type Room struct {
	ID       uint   `json:"id"`
	HotelID  uint   `json:"hotelId"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
}

type RoomCatalog interface {
	RoomsByHotel(ctx context.Context, hotelID uint) ([]Room, error)
}

// DBCatalog serves the catalog straight from the local rooms table. This is
// the default when the service owns its own room records.
type DBCatalog struct {
	DB *gorm.DB
}

func NewDBCatalog(db *gorm.DB) *DBCatalog {
	return &DBCatalog{DB: db}
}

func (c *DBCatalog) RoomsByHotel(ctx context.Context, hotelID uint) ([]Room, error) {
	var rooms []models.Room
	err := c.DB.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("id ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms for hotel %d: %w", hotelID, err)
	}

	out := make([]Room, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, Room{
			ID:       r.ID,
			HotelID:  r.HotelID,
			Type:     r.Type,
			Capacity: r.Capacity,
		})
	}
	return out, nil
}
