package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"channel-backend/models"
	"channel-backend/utils"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// SeedDatabase seeds a demo hotel with rooms and a month of open inventory
// so a fresh install answers availability queries immediately.
func SeedDatabase() {
	var hotelCount int64
	DB.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount > 0 {
		log.Println("Hotels already seeded")
		return
	}

	hotel := models.Hotel{Name: utils.EnvOrDefault("SEED_HOTEL_NAME", "Sample Hotel")}
	if err := DB.Create(&hotel).Error; err != nil {
		log.Printf("warning: failed to seed hotel: %v", err)
		return
	}

	rooms := []models.Room{
		{HotelID: hotel.ID, Type: "Standard", Capacity: 2, Description: "Standard Room"},
		{HotelID: hotel.ID, Type: "Superior", Capacity: 3, Description: "Superior Room"},
		{HotelID: hotel.ID, Type: "Deluxe", Capacity: 4, Description: "Deluxe Room"},
	}
	if err := DB.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
		return
	}

	prices := map[string]float64{"Standard": 1200, "Superior": 1800, "Deluxe": 2600}
	today := utils.NormalizeDate(time.Now())

	days := make([]models.InventoryDay, 0, len(rooms)*30)
	for _, room := range rooms {
		for i := 0; i < 30; i++ {
			days = append(days, models.InventoryDay{
				RoomID:    room.ID,
				Date:      today.AddDate(0, 0, i),
				Available: 5,
				Price:     prices[room.Type],
			})
		}
	}
	if err := DB.Create(&days).Error; err != nil {
		log.Printf("warning: failed to seed inventory: %v", err)
		return
	}

	log.Println("Hotel, rooms and inventory seeded")
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	// Ledger dates are normalized to UTC midnight; the session must bind
	// time.Time values in UTC or DATE equality breaks on non-UTC hosts.
	q.Set("loc", "UTC")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "channel_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Hotel{},
		&models.Room{},
		&models.InventoryDay{},
		&models.Booking{},
	); err != nil {
		return err
	}

	if strings.EqualFold(utils.EnvOrDefault("SEED_DEMO_DATA", "true"), "true") {
		SeedDatabase()
	}
	return nil
}
