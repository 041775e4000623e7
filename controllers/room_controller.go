package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"channel-backend/config"
	"channel-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type roomPayload struct {
	HotelID     uint     `json:"hotel_id"`
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
}

// POST /api/rooms
func CreateRoom(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if payload.HotelID == 0 || payload.Type == "" || payload.Capacity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hotel_id, type and capacity are required"})
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, payload.HotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hotel not found", "details": gin.H{"hotel_id": payload.HotelID}})
			return
		}
		log.Printf("CreateRoom: DB error checking hotel %d: %v", payload.HotelID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	amenitiesJSON, _ := json.Marshal(payload.Amenities) // best-effort

	room := models.Room{
		HotelID:     payload.HotelID,
		Type:        payload.Type,
		Capacity:    payload.Capacity,
		Description: payload.Description,
		Amenities:   datatypes.JSON(amenitiesJSON),
	}
	if err := config.DB.Create(&room).Error; err != nil {
		log.Printf("CreateRoom error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create room"})
		return
	}
	c.JSON(http.StatusCreated, room)
}

// GET /api/rooms/hotel/:hotelId
func GetRoomsByHotel(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("hotelId"), 10, 64)
	if err != nil || hotelID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hotelId must be a positive number"})
		return
	}

	var rooms []models.Room
	if err := config.DB.Where("hotel_id = ?", hotelID).Order("id ASC").Find(&rooms).Error; err != nil {
		log.Printf("GetRoomsByHotel error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rooms"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// PUT /api/rooms/:id
func UpdateRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room id must be a positive number"})
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found."})
			return
		}
		log.Printf("UpdateRoom load error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load room"})
		return
	}

	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if payload.Type != "" {
		updates["type"] = payload.Type
	}
	if payload.Capacity > 0 {
		updates["capacity"] = payload.Capacity
	}
	if payload.Description != "" {
		updates["description"] = payload.Description
	}
	if payload.Amenities != nil {
		amenitiesJSON, _ := json.Marshal(payload.Amenities)
		updates["amenities"] = datatypes.JSON(amenitiesJSON)
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, room)
		return
	}

	if err := config.DB.Model(&room).Updates(updates).Error; err != nil {
		log.Printf("UpdateRoom error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update room"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// DELETE /api/rooms/:id
func DeleteRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room id must be a positive number"})
		return
	}

	if err := config.DB.Delete(&models.Room{}, id).Error; err != nil {
		log.Printf("DeleteRoom error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
