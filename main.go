package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"channel-backend/catalog"
	"channel-backend/config"
	"channel-backend/controllers"
	"channel-backend/routes"
	"channel-backend/services"
	"channel-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database (config.ConnectDatabase should set config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Room catalog: local table by default, remote property-management
	// service when CATALOG_URL is configured.
	var roomCatalog catalog.RoomCatalog = catalog.NewDBCatalog(db)
	if catalogURL := os.Getenv("CATALOG_URL"); catalogURL != "" {
		roomCatalog = catalog.NewHTTPCatalog(
			catalogURL,
			utils.EnvOrDefault("CATALOG_SERVICE_EMAIL", ""),
			utils.EnvOrDefault("CATALOG_SERVICE_PASSWORD", ""),
		)
		log.Printf("✅ Using remote room catalog at %s", catalogURL)
	}

	notifier := utils.NewSMTPNotifierFromEnv()

	// Initialize services
	inventoryService := services.NewInventoryService(db)
	availabilityService := services.NewAvailabilityService(db, roomCatalog)
	bookingService := services.NewBookingService(db, notifier)

	// Initialize controllers
	inventoryController := controllers.NewInventoryController(inventoryService)
	availabilityController := controllers.NewAvailabilityController(availabilityService)
	bookingController := controllers.NewBookingController(bookingService)

	// Build router
	router := routes.SetupRouter(bookingController, inventoryController, availabilityController)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
