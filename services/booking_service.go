// services/booking_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"channel-backend/models"
	"channel-backend/utils"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	commitAttempts = 3
	commitBackoff  = 50 * time.Millisecond
)

// BookingService turns a booking request into a reserved stay: it decrements
// the ledger for every night of the range and records the booking in one
// transaction, so no two commits can oversell the same room-night.
type BookingService struct {
	DB       *gorm.DB
	Notifier utils.Notifier
}

func NewBookingService(db *gorm.DB, notifier utils.Notifier) *BookingService {
	return &BookingService{DB: db, Notifier: notifier}
}

// isDeadlockError reports MySQL deadlock / lock-wait-timeout aborts, which
// are safe to retry as a whole.
func isDeadlockError(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1213 || merr.Number == 1205
	}
	return false
}

// Commit reserves roomID for the nights [checkIn, checkOut) on behalf of
// userID. Either every night is decremented and exactly one pending booking
// exists, or nothing changed at all.
func (s *BookingService) Commit(ctx context.Context, userID, roomID uint, checkIn, checkOut time.Time, notifyEmail string) (*models.Booking, error) {
	checkIn = utils.NormalizeDate(checkIn)
	checkOut = utils.NormalizeDate(checkOut)

	if !checkOut.After(checkIn) {
		return nil, ErrInvalidRange
	}

	var room models.Room
	if err := s.DB.WithContext(ctx).First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("db error checking room %d: %w", roomID, err)
	}

	dates := utils.DatesInRange(checkIn, checkOut)

	var booking *models.Booking
	var txErr error

	for attempt := 1; attempt <= commitAttempts; attempt++ {
		booking, txErr = s.commitOnce(ctx, userID, roomID, checkIn, checkOut, dates)
		if txErr == nil {
			break
		}
		if !isDeadlockError(txErr) {
			return nil, txErr
		}
		if attempt < commitAttempts {
			log.Printf("booking commit deadlocked (attempt %d/%d), retrying", attempt, commitAttempts)
			time.Sleep(commitBackoff * time.Duration(attempt))
		}
	}
	if txErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrConcurrentConflict, txErr)
	}

	// Fire-and-forget confirmation request. Delivery problems are logged and
	// never affect the committed booking.
	if notifyEmail != "" && s.Notifier != nil {
		n := utils.Notification{
			Recipient: notifyEmail,
			Subject:   "Booking Confirmation",
			Body: fmt.Sprintf("Thank you for your booking!\nYour booking %s for room %d from %s to %s is registered and pending confirmation.",
				booking.ReferenceCode, roomID, checkIn.Format(utils.DateLayout), checkOut.Format(utils.DateLayout)),
		}
		go func() {
			if err := s.Notifier.Send(n); err != nil {
				log.Printf("warning: booking %d notification failed: %v", booking.ID, err)
			}
		}()
	}

	return booking, nil
}

// commitOnce runs one all-or-nothing attempt. Nights are decremented in
// ascending date order so concurrent commits on overlapping ranges acquire
// row locks in the same order.
func (s *BookingService) commitOnce(ctx context.Context, userID, roomID uint, checkIn, checkOut time.Time, dates []time.Time) (*models.Booking, error) {
	var booking models.Booking

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, d := range dates {
			// Dates bind as plain strings so the comparison against the DATE
			// column never depends on the session time zone.
			res := tx.Exec(
				"UPDATE inventory_days SET available = available - 1 WHERE room_id = ? AND date = ? AND available >= 1",
				roomID, d.Format(utils.DateLayout),
			)
			if res.Error != nil {
				return res.Error
			}
			// Zero rows means the night is either absent from the ledger or
			// sold out; both fail the whole range.
			if res.RowsAffected == 0 {
				return &InsufficientAvailabilityError{RoomID: roomID, Date: d}
			}
		}

		booking = models.Booking{
			UserID:        userID,
			RoomID:        roomID,
			ReferenceCode: uuid.NewString(),
			Status:        models.BookingStatusPending,
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			Nights:        len(dates),
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &booking, nil
}

// Confirm marks a pending booking as confirmed (payment collaborator hook).
func (s *BookingService) Confirm(ctx context.Context, bookingID uint) (*models.Booking, error) {
	var booking models.Booking

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if booking.Status == models.BookingStatusConfirmed {
			return nil
		}
		if booking.Status == models.BookingStatusCancelled {
			return fmt.Errorf("validation: cancelled booking %d cannot be confirmed", bookingID)
		}

		booking.Status = models.BookingStatusConfirmed
		return tx.Model(&booking).Update("status", models.BookingStatusConfirmed).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	return &booking, nil
}

// Cancel voids a booking and gives every night of its stay back to the
// ledger. Idempotent: cancelling twice restores inventory only once.
func (s *BookingService) Cancel(ctx context.Context, bookingID uint) (*models.Booking, error) {
	var booking models.Booking

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if booking.Status == models.BookingStatusCancelled {
			return nil
		}

		for _, d := range utils.DatesInRange(booking.CheckIn, booking.CheckOut) {
			// Restore only nights still present in the ledger; a pruned row
			// stays pruned rather than reappearing with count 1.
			res := tx.Exec(
				"UPDATE inventory_days SET available = available + 1 WHERE room_id = ? AND date = ?",
				booking.RoomID, d.Format(utils.DateLayout),
			)
			if res.Error != nil {
				return res.Error
			}
		}

		booking.Status = models.BookingStatusCancelled
		return tx.Model(&booking).Update("status", models.BookingStatusCancelled).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	return &booking, nil
}

// GetByID loads one booking with its room.
func (s *BookingService) GetByID(ctx context.Context, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.WithContext(ctx).Preload("Room").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &booking, nil
}

// GetAll lists bookings, optionally filtered to one user, newest first.
func (s *BookingService) GetAll(ctx context.Context, userID uint) ([]models.Booking, error) {
	var list []models.Booking

	q := s.DB.WithContext(ctx).Preload("Room").Order("created_at DESC")
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}
