package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"channel-backend/catalog"
	"channel-backend/models"
	"channel-backend/utils"
)

type staticCatalog struct {
	rooms []catalog.Room
}

func (s *staticCatalog) RoomsByHotel(ctx context.Context, hotelID uint) ([]catalog.Room, error) {
	return s.rooms, nil
}

func ledgerDay(roomID uint, d time.Time, available int, price float64) models.InventoryDay {
	return models.InventoryDay{RoomID: roomID, Date: d, Available: available, Price: price}
}

func TestStayQuoteMinimumAcrossRange(t *testing.T) {
	dates := utils.DatesInRange(day(2024, time.June, 1), day(2024, time.June, 4))
	days := []models.InventoryDay{
		ledgerDay(1, day(2024, time.June, 1), 5, 1000),
		ledgerDay(1, day(2024, time.June, 2), 3, 1200),
		ledgerDay(1, day(2024, time.June, 3), 8, 900),
	}

	minAvail, price, ok := stayQuote(days, dates)
	if !ok {
		t.Fatalf("expected room to qualify")
	}
	if minAvail != 3 {
		t.Fatalf("expected min availability 3, got %d", minAvail)
	}
	if price != 1000 {
		t.Fatalf("representative price must be the first night's, got %v", price)
	}
}

func TestStayQuoteFailsClosedOnMissingNight(t *testing.T) {
	dates := utils.DatesInRange(day(2024, time.June, 1), day(2024, time.June, 4))
	days := []models.InventoryDay{
		ledgerDay(1, day(2024, time.June, 1), 5, 1000),
		// June 2 missing entirely
		ledgerDay(1, day(2024, time.June, 3), 8, 900),
	}

	if _, _, ok := stayQuote(days, dates); ok {
		t.Fatalf("a missing ledger row must disqualify the whole range")
	}
}

func TestStayQuoteFailsOnSoldOutNight(t *testing.T) {
	dates := utils.DatesInRange(day(2024, time.June, 1), day(2024, time.June, 3))
	days := []models.InventoryDay{
		ledgerDay(1, day(2024, time.June, 1), 2, 1000),
		ledgerDay(1, day(2024, time.June, 2), 0, 1000),
	}

	if _, _, ok := stayQuote(days, dates); ok {
		t.Fatalf("a sold-out night must disqualify the whole range")
	}
}

func TestStayQuoteEmptyRange(t *testing.T) {
	if _, _, ok := stayQuote(nil, nil); ok {
		t.Fatalf("an empty range must not report availability")
	}
}

func TestAvailableRoomsFiltersAndAggregates(t *testing.T) {
	gdb, mock := newMockDB(t)

	cat := &staticCatalog{rooms: []catalog.Room{
		{ID: 1, HotelID: 1, Type: "Standard", Capacity: 2},
		{ID: 2, HotelID: 1, Type: "Deluxe", Capacity: 4},
	}}
	svc := NewAvailabilityService(gdb, cat)

	// Room 1 is covered for both nights, room 2 misses the second night.
	mock.ExpectQuery("SELECT (.+) FROM `inventory_days`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "date", "available", "price"}).
			AddRow(1, 1, day(2024, time.June, 1), 5, 1000.0).
			AddRow(2, 1, day(2024, time.June, 2), 2, 1100.0).
			AddRow(3, 2, day(2024, time.June, 1), 1, 2000.0))

	results, err := svc.AvailableRooms(context.Background(), 1, day(2024, time.June, 1), day(2024, time.June, 3))
	if err != nil {
		t.Fatalf("expected query to succeed, got %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected exactly one available room, got %d", len(results))
	}
	got := results[0]
	if got.RoomID != 1 || got.MinAvailable != 2 || got.Price != 1000 || got.Capacity != 2 {
		t.Fatalf("unexpected aggregation: %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAvailableRoomsEmptyRangeShortCircuits(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewAvailabilityService(gdb, &staticCatalog{})

	results, err := svc.AvailableRooms(context.Background(), 1, day(2024, time.June, 1), day(2024, time.June, 1))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("zero-night range must yield nothing, got %d", len(results))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ledger must not be queried for an empty range: %v", err)
	}
}
