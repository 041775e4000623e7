// services/availability_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"channel-backend/catalog"
	"channel-backend/models"
	"channel-backend/utils"

	"gorm.io/gorm"
)

// RoomAvailability is the aggregated answer for one room over a whole stay:
// the binding (minimum) availability across every night plus the first
// night's price as the representative rate.
type RoomAvailability struct {
	RoomID       uint    `json:"id"`
	Type         string  `json:"type"`
	Capacity     int     `json:"capacity"`
	MinAvailable int     `json:"minAvailable"`
	Price        float64 `json:"price"`
}

type AvailabilityService struct {
	DB      *gorm.DB
	Catalog catalog.RoomCatalog
}

func NewAvailabilityService(db *gorm.DB, cat catalog.RoomCatalog) *AvailabilityService {
	return &AvailabilityService{DB: db, Catalog: cat}
}

// stayQuote folds the ledger rows for one room over the nights of a stay.
// ok is false when any night is missing a row or has no sellable unit; the
// room then drops out of the result entirely (partial availability does not
// count).
func stayQuote(days []models.InventoryDay, dates []time.Time) (minAvailable int, price float64, ok bool) {
	byDate := make(map[string]models.InventoryDay, len(days))
	for _, d := range days {
		byDate[d.Date.Format(utils.DateLayout)] = d
	}

	for i, date := range dates {
		day, found := byDate[date.Format(utils.DateLayout)]
		if !found || day.Available < 1 {
			return 0, 0, false
		}
		if i == 0 {
			minAvailable = day.Available
			price = day.Price
			continue
		}
		if day.Available < minAvailable {
			minAvailable = day.Available
		}
	}

	return minAvailable, price, len(dates) > 0
}

// AvailableRooms reports every room of the hotel that is sellable for the
// whole of [checkIn, checkOut), ordered by room id. Range ordering is the
// caller's responsibility; an empty range yields an empty result.
func (s *AvailabilityService) AvailableRooms(ctx context.Context, hotelID uint, checkIn, checkOut time.Time) ([]RoomAvailability, error) {
	dates := utils.DatesInRange(checkIn, checkOut)
	if len(dates) == 0 {
		return []RoomAvailability{}, nil
	}

	rooms, err := s.Catalog.RoomsByHotel(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to load room catalog: %w", err)
	}
	if len(rooms) == 0 {
		return []RoomAvailability{}, nil
	}

	roomIDs := make([]uint, 0, len(rooms))
	for _, r := range rooms {
		roomIDs = append(roomIDs, r.ID)
	}

	var days []models.InventoryDay
	err = s.DB.WithContext(ctx).
		Where("room_id IN ? AND date >= ? AND date < ?",
			roomIDs,
			dates[0].Format(utils.DateLayout),
			utils.NormalizeDate(checkOut).Format(utils.DateLayout)).
		Order("room_id ASC, date ASC").
		Find(&days).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory for hotel %d: %w", hotelID, err)
	}

	byRoom := make(map[uint][]models.InventoryDay, len(rooms))
	for _, d := range days {
		byRoom[d.RoomID] = append(byRoom[d.RoomID], d)
	}

	// Catalog order is already stable by room id.
	results := []RoomAvailability{}
	for _, room := range rooms {
		minAvail, price, ok := stayQuote(byRoom[room.ID], dates)
		if !ok {
			continue
		}
		results = append(results, RoomAvailability{
			RoomID:       room.ID,
			Type:         room.Type,
			Capacity:     room.Capacity,
			MinAvailable: minAvail,
			Price:        price,
		})
	}

	return results, nil
}
