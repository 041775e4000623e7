// controllers/availability_controller.go
package controllers

import (
	"log"
	"net/http"
	"strconv"

	"channel-backend/services"
	"channel-backend/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	AvailabilitySvc *services.AvailabilityService
}

func NewAvailabilityController(svc *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{AvailabilitySvc: svc}
}

// GET /api/rooms/availability?hotelId=1&checkIn=2024-07-22&checkOut=2024-07-25
//
// Range ordering is validated here, not in the service: a zero-night or
// inverted range never reaches the ledger.
func (ctrl *AvailabilityController) GetAvailableRooms(c *gin.Context) {
	hotelIDStr := c.Query("hotelId")
	checkInStr := c.Query("checkIn")
	checkOutStr := c.Query("checkOut")

	if hotelIDStr == "" || checkInStr == "" || checkOutStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.missingParams", "message": "hotelId, checkIn and checkOut are required"}})
		return
	}

	hotelID, err := strconv.ParseUint(hotelIDStr, 10, 64)
	if err != nil || hotelID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidHotelId", "message": "hotelId must be a positive number"}})
		return
	}

	checkIn, err := utils.ParseDate(checkInStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidDate", "message": "checkIn must be formatted as YYYY-MM-DD"}})
		return
	}
	checkOut, err := utils.ParseDate(checkOutStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidDate", "message": "checkOut must be formatted as YYYY-MM-DD"}})
		return
	}

	if !checkOut.After(checkIn) {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidRange", "message": "checkOut must be after checkIn"}})
		return
	}

	rooms, err := ctrl.AvailabilitySvc.AvailableRooms(c.Request.Context(), uint(hotelID), checkIn, checkOut)
	if err != nil {
		log.Printf("GetAvailableRooms error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "failed to compute availability"}})
		return
	}

	c.JSON(http.StatusOK, rooms)
}
