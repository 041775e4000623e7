// controllers/booking_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"channel-backend/services"
	"channel-backend/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	UserID   uint   `json:"user_id" binding:"required"`
	RoomID   uint   `json:"room_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	Email    string `json:"email"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

func parseBookingID(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	parsed, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || parsed == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "error.invalidBookingId",
				"message": "booking id must be a positive number",
			},
		})
		return 0, false
	}
	return uint(parsed), true
}

// POST /api/bookings
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "user_id, room_id, check_in and check_out are required", "details": err.Error()}})
		return
	}

	checkIn, err := utils.ParseDate(payload.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidDate", "message": "check_in must be formatted as YYYY-MM-DD"}})
		return
	}
	checkOut, err := utils.ParseDate(payload.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidDate", "message": "check_out must be formatted as YYYY-MM-DD"}})
		return
	}

	booking, err := ctrl.BookingSvc.Commit(c.Request.Context(), payload.UserID, payload.RoomID, checkIn, checkOut, payload.Email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidRange", "message": "check_out must be after check_in"}})

		case errors.Is(err, services.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.roomNotFound", "message": "the requested room does not exist"}})

		case services.IsInsufficientAvailability(err) != nil:
			availErr := services.IsInsufficientAvailability(err)
			c.JSON(http.StatusConflict, gin.H{"error": gin.H{
				"code":    "error.noAvailability",
				"message": "dates unavailable: no inventory on " + availErr.Date.Format(utils.DateLayout),
			}})

		case errors.Is(err, services.ErrConcurrentConflict):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": gin.H{"code": "error.transientConflict", "message": "the booking could not be completed right now, please retry"}})

		default:
			log.Printf("CreateBooking error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "failed to create booking"}})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Booking created successfully", "data": booking})
}

// GET /api/bookings?userId=
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	var userID uint
	if q := c.Query("userId"); q != "" {
		parsed, err := strconv.ParseUint(q, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidUserId", "message": "userId must be numeric"}})
			return
		}
		userID = uint(parsed)
	}

	bookings, err := ctrl.BookingSvc.GetAll(c.Request.Context(), userID)
	if err != nil {
		log.Printf("GetBookings error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.fetchBookings", "message": "failed to list bookings"}})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id
func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	bookingID, ok := parseBookingID(c)
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.bookingNotFound", "message": "booking not found"}})
			return
		}
		log.Printf("GetBookingDetails error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.fetchBookingFailed", "message": "failed to load booking"}})
		return
	}
	c.JSON(http.StatusOK, booking)
}

// POST /api/bookings/:id/confirm
func (ctrl *BookingController) ConfirmBooking(c *gin.Context) {
	bookingID, ok := parseBookingID(c)
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.Confirm(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.bookingNotFound", "message": "booking not found"}})
			return
		}
		log.Printf("ConfirmBooking error: %v", err)
		c.JSON(http.StatusConflict, gin.H{"error": gin.H{"code": "error.confirmFailed", "message": err.Error()}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": booking})
}

// POST /api/bookings/:id/cancel
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	bookingID, ok := parseBookingID(c)
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.Cancel(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.bookingNotFound", "message": "booking not found"}})
			return
		}
		log.Printf("CancelBooking error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.cancelFailed", "message": "failed to cancel booking"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": booking})
}
