package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"channel-backend/config"
	"channel-backend/models"
	"channel-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /api/hotels
func CreateHotel(c *gin.Context) {
	var payload struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Hotel name is required.")
		return
	}

	hotel := models.Hotel{Name: payload.Name}
	if err := config.DB.Create(&hotel).Error; err != nil {
		log.Printf("CreateHotel error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create hotel")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, hotel)
}

// GET /api/hotels
func GetHotels(c *gin.Context) {
	var hotels []models.Hotel
	if err := config.DB.Order("id ASC").Find(&hotels).Error; err != nil {
		log.Printf("GetHotels error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list hotels")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

// GET /api/hotels/:id
func GetHotelByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "hotel id must be a positive number")
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Hotel not found.")
			return
		}
		log.Printf("GetHotelByID error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load hotel")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}
