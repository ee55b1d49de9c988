package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ravi-64bit/streetwise/config"
	"github.com/ravi-64bit/streetwise/database"
	"github.com/ravi-64bit/streetwise/model"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func GetMyVendor(c *gin.Context) {
	vendorID, exists := c.Get("vendor_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Unauthorized access",
		})
		return
	}

	var vendor model.Vendor
	if err := database.DB.First(&vendor, "id = ?", vendorID.(string)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Vendor not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to fetch vendor",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":       vendor.ID,
			"username": vendor.Username,
			"name":     vendor.Name,
			"address":  vendor.Address,
		},
	})
}

func UpdateMyVendor(c *gin.Context) {
	vendorID, exists := c.Get("vendor_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Unauthorized access",
		})
		return
	}

	var vendor model.Vendor
	if err := database.DB.First(&vendor, "id = ?", vendorID.(string)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Vendor not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to fetch vendor: " + err.Error(),
			})
		}
		return
	}

	var req struct {
		Name     string `json:"name"`
		Address  string `json:"address"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	if req.Name != "" {
		vendor.Name = req.Name
	}
	if req.Address != "" {
		vendor.Address = req.Address
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to hash password: " + err.Error(),
			})
			return
		}
		vendor.Password = string(hashedPassword)
	}

	if err := database.DB.Save(&vendor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to update vendor: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Vendor updated successfully",
	})
}

// GetOrderLink returns the customer-facing order URL for this vendor, the
// target the vendor prints as a QR code. QR image generation happens
// client-side.
func GetOrderLink(c *gin.Context) {
	vendorID, exists := c.Get("vendor_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Unauthorized access",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"order_link": fmt.Sprintf("%s/order/%s", config.C.BaseURL, vendorID.(string)),
		},
	})
}
