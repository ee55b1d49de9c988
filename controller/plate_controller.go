package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/ravi-64bit/streetwise/database"
	"github.com/ravi-64bit/streetwise/model"
	"github.com/ravi-64bit/streetwise/service"
	"github.com/ravi-64bit/streetwise/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Plates are dashboard session state, not persisted orders. Each browser
// session gets its own open-plate set, pruned after two hours idle.
var plateStore = service.NewPlateStore(2 * time.Hour)

// plateSessionKey scopes the open-plate set to one client session. Clients
// send a stable X-Session-ID per browser tab; without one the set degrades
// to vendor-wide.
func plateSessionKey(c *gin.Context, vendorID string) string {
	if sid := c.GetHeader("X-Session-ID"); sid != "" {
		return vendorID + ":" + sid
	}
	return vendorID
}

func plateResponse(p service.Plate) gin.H {
	return gin.H{
		"id":     p.ID,
		"number": p.Number,
		"items":  p.Items,
		"total":  p.Total(),
	}
}

func GetMyPlates(c *gin.Context) {
	vendorID, exists := c.Get("vendor_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Vendor ID not found in context",
		})
		return
	}

	plates := plateStore.List(plateSessionKey(c, vendorID.(string)))
	out := make([]gin.H, 0, len(plates))
	for i := range plates {
		out = append(out, plateResponse(plates[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    out,
	})
}

func OpenPlate(c *gin.Context) {
	vendorID, exists := c.Get("vendor_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Vendor ID not found in context",
		})
		return
	}

	plate := plateStore.Open(plateSessionKey(c, vendorID.(string)))
	utils.PlatesOpened.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Plate opened",
		"data":    plateResponse(plate),
	})
}

func AddItemToPlate(c *gin.Context) {
	vendorID, exists := c.Get("vendor_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Vendor ID not found in context",
		})
		return
	}

	var req struct {
		MenuItemID string `json:"menu_item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Menu item ID is required",
		})
		return
	}

	var item model.MenuItem
	if err := database.DB.Where("id = ? AND vendor_id = ?", req.MenuItemID, vendorID.(string)).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Menu item not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to fetch menu item",
			})
		}
		return
	}

	plate, err := plateStore.AddItem(
		plateSessionKey(c, vendorID.(string)),
		c.Param("id"),
		service.PlateItem{Name: item.Name, Price: item.Price},
	)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Plate not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    plateResponse(plate),
	})
}

// ClosePlate removes a plate from the session's open set. Closing a plate
// twice is not an error.
func ClosePlate(c *gin.Context) {
	vendorID, exists := c.Get("vendor_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Vendor ID not found in context",
		})
		return
	}

	plateStore.Close(plateSessionKey(c, vendorID.(string)), c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Plate closed",
	})
}
