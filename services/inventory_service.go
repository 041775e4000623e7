// services/inventory_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"channel-backend/models"
	"channel-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InventoryService owns the per-room, per-night ledger. All administrative
// writes go through here; booking decrements live in BookingService.
type InventoryService struct {
	DB *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{DB: db}
}

func validateDayValues(price float64, available int) error {
	if price <= 0 {
		return fmt.Errorf("%w: price must be positive, got %v", ErrInvalidValues, price)
	}
	if available < 0 {
		return fmt.Errorf("%w: available must not be negative, got %d", ErrInvalidValues, available)
	}
	return nil
}

// UpsertDay creates or overwrites the ledger row for (roomID, date) and
// returns the stored row. The unique (room_id, date) index guarantees no
// duplicate rows even under concurrent upserts.
func (s *InventoryService) UpsertDay(roomID uint, date time.Time, price float64, available int) (models.InventoryDay, error) {
	var stored models.InventoryDay

	if err := validateDayValues(price, available); err != nil {
		return stored, err
	}

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return stored, ErrRoomNotFound
		}
		return stored, fmt.Errorf("db error checking room %d: %w", roomID, err)
	}

	day := models.InventoryDay{
		RoomID:    roomID,
		Date:      utils.NormalizeDate(date),
		Price:     price,
		Available: available,
	}

	if err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "room_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "available", "updated_at"}),
	}).Create(&day).Error; err != nil {
		return stored, fmt.Errorf("failed to upsert inventory day: %w", err)
	}

	if err := s.DB.
		Where("room_id = ? AND date = ?", roomID, day.Date).
		First(&stored).Error; err != nil {
		return stored, fmt.Errorf("failed to reload inventory day: %w", err)
	}

	return stored, nil
}

// BulkUpsert pushes the same price/availability across every date in
// [start, end). Used by the rate-manager bulk push; all-or-nothing.
func (s *InventoryService) BulkUpsert(roomID uint, start, end time.Time, price float64, available int) (int, error) {
	if err := validateDayValues(price, available); err != nil {
		return 0, err
	}

	dates := utils.DatesInRange(start, end)
	if len(dates) == 0 {
		return 0, ErrInvalidRange
	}

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrRoomNotFound
		}
		return 0, fmt.Errorf("db error checking room %d: %w", roomID, err)
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, d := range dates {
			day := models.InventoryDay{
				RoomID:    roomID,
				Date:      d,
				Price:     price,
				Available: available,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "room_id"}, {Name: "date"}},
				DoUpdates: clause.AssignmentColumns([]string{"price", "available", "updated_at"}),
			}).Create(&day).Error; err != nil {
				return fmt.Errorf("failed to upsert inventory for %s: %w", d.Format(utils.DateLayout), err)
			}
		}
		return nil
	})
	if txErr != nil {
		return 0, txErr
	}

	return len(dates), nil
}

// GetDay returns the ledger row for (roomID, date), or gorm.ErrRecordNotFound
// when absent. Absence means the date is not sellable; callers must not treat
// it as unlimited.
func (s *InventoryService) GetDay(roomID uint, date time.Time) (models.InventoryDay, error) {
	var day models.InventoryDay
	err := s.DB.
		Where("room_id = ? AND date = ?", roomID, utils.NormalizeDate(date).Format(utils.DateLayout)).
		First(&day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return day, gorm.ErrRecordNotFound
		}
		return day, fmt.Errorf("failed to load inventory day: %w", err)
	}
	return day, nil
}

// GetRange returns the ledger rows for [start, end) ordered by date. The
// result is sparse: dates without a row are missing from the slice, and it is
// the caller's job to treat those as zero availability.
func (s *InventoryService) GetRange(roomID uint, start, end time.Time) ([]models.InventoryDay, error) {
	var days []models.InventoryDay
	err := s.DB.
		Where("room_id = ? AND date >= ? AND date < ?",
			roomID,
			utils.NormalizeDate(start).Format(utils.DateLayout),
			utils.NormalizeDate(end).Format(utils.DateLayout)).
		Order("date ASC").
		Find(&days).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory range: %w", err)
	}
	return days, nil
}
