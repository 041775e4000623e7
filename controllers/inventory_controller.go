// controllers/inventory_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"channel-backend/services"
	"channel-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SetInventoryPayload struct {
	RoomID    uint     `json:"room_id" binding:"required"`
	Date      string   `json:"date" binding:"required"`
	Price     *float64 `json:"price" binding:"required"`
	Available *int     `json:"available" binding:"required"`
}

type BulkInventoryPayload struct {
	RoomID    uint     `json:"room_id" binding:"required"`
	Start     string   `json:"start" binding:"required"`
	End       string   `json:"end" binding:"required"`
	Price     *float64 `json:"price" binding:"required"`
	Available *int     `json:"available" binding:"required"`
}

type InventoryController struct {
	InventorySvc *services.InventoryService
}

func NewInventoryController(svc *services.InventoryService) *InventoryController {
	return &InventoryController{InventorySvc: svc}
}

// POST /api/inventory
func (ctrl *InventoryController) SetInventory(c *gin.Context) {
	var payload SetInventoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "room_id, date, price and available are required", "details": err.Error()}})
		return
	}

	date, err := utils.ParseDate(payload.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidDate", "message": "date must be formatted as YYYY-MM-DD"}})
		return
	}

	day, err := ctrl.InventorySvc.UpsertDay(payload.RoomID, date, *payload.Price, *payload.Available)
	if err != nil {
		ctrl.respondUpsertError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// POST /api/inventory/bulk
func (ctrl *InventoryController) SetInventoryBulk(c *gin.Context) {
	var payload BulkInventoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "room_id, start, end, price and available are required", "details": err.Error()}})
		return
	}

	start, err := utils.ParseDate(payload.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidDate", "message": "start must be formatted as YYYY-MM-DD"}})
		return
	}
	end, err := utils.ParseDate(payload.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidDate", "message": "end must be formatted as YYYY-MM-DD"}})
		return
	}

	count, err := ctrl.InventorySvc.BulkUpsert(payload.RoomID, start, end, *payload.Price, *payload.Available)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidRange", "message": "end must be after start"}})
			return
		}
		ctrl.respondUpsertError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "days": count})
}

// GET /api/inventory/:roomId?start=&end=
func (ctrl *InventoryController) GetInventory(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("roomId"), 10, 64)
	if err != nil || roomID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidRoomId", "message": "roomId must be a positive number"}})
		return
	}

	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" || endStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.missingRange", "message": "start and end query params are required"}})
		return
	}

	start, err := utils.ParseDate(startStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidDate", "message": "start must be formatted as YYYY-MM-DD"}})
		return
	}
	end, err := utils.ParseDate(endStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidDate", "message": "end must be formatted as YYYY-MM-DD"}})
		return
	}

	days, err := ctrl.InventorySvc.GetRange(uint(roomID), start, end)
	if err != nil {
		log.Printf("GetInventory error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.fetchInventory", "message": "failed to load inventory"}})
		return
	}
	c.JSON(http.StatusOK, days)
}

func (ctrl *InventoryController) respondUpsertError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRoomNotFound) || errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.roomNotFound", "message": "the requested room does not exist"}})
	case errors.Is(err, services.ErrInvalidValues):
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidValues", "message": err.Error()}})
	default:
		log.Printf("inventory upsert error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "failed to store inventory"}})
	}
}
