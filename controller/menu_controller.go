package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ravi-64bit/streetwise/database"
	"github.com/ravi-64bit/streetwise/model"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type menuItemRequest struct {
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

func AddMenuItem(c *gin.Context) {
	vendorID, exists := c.Get("vendor_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Vendor ID not found in context",
		})
		return
	}

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid or missing name/price",
		})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Item name is required",
		})
		return
	}
	if req.Price == nil || req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid or missing price",
		})
		return
	}

	item := model.MenuItem{
		VendorID: vendorID.(string),
		Name:     req.Name,
		Price:    *req.Price,
	}

	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to create menu item: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Menu item added successfully",
		"data":    item,
	})
}

func UpdateMenuItem(c *gin.Context) {
	vendorID, exists := c.Get("vendor_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Vendor ID not found in context",
		})
		return
	}

	itemID := c.Param("id")

	var item model.MenuItem
	if err := database.DB.Where("id = ? AND vendor_id = ?", itemID, vendorID.(string)).First(&item).Error; err != nil {
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

	var req struct {
		Name  string           `json:"name"`
		Price *decimal.Decimal `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Price must be a non-negative number",
			})
			return
		}
		item.Price = *req.Price
	}

	if err := database.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to update menu item: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Menu item updated successfully",
		"data":    item,
	})
}

func DeleteMenuItem(c *gin.Context) {
	vendorID, exists := c.Get("vendor_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Vendor ID not found in context",
		})
		return
	}

	itemID := c.Param("id")

	result := database.DB.Where("id = ? AND vendor_id = ?", itemID, vendorID.(string)).Delete(&model.MenuItem{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to delete menu item",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Menu item not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Menu item deleted successfully",
	})
}

func GetMyMenu(c *gin.Context) {
	vendorID, exists := c.Get("vendor_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Vendor ID not found in context",
		})
		return
	}

	var items []model.MenuItem
	if err := database.DB.Where("vendor_id = ?", vendorID.(string)).Order("created_at asc").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch menu items",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
	})
}

// GetVendorMenu is the customer-facing catalog behind the per-vendor order
// link, no authentication required.
func GetVendorMenu(c *gin.Context) {
	vendorID := c.Param("vendor_id")

	var vendor model.Vendor
	if err := database.DB.First(&vendor, "id = ?", vendorID).Error; err != nil {
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

	var items []model.MenuItem
	if err := database.DB.Where("vendor_id = ?", vendorID).Order("created_at asc").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch menu items",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"vendor": gin.H{"id": vendor.ID, "name": vendor.Name, "address": vendor.Address},
			"items":  items,
		},
	})
}

// BulkAddMenuItems imports menu rows from an Excel sheet: column A item
// name, column B price. Invalid rows are skipped, not fatal.
func BulkAddMenuItems(c *gin.Context) {
	vendorID, exists := c.Get("vendor_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Vendor ID not found in context"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Excel file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to open Excel file"})
		return
	}
	defer file.Close()

	xl, err := excelize.OpenReader(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to parse Excel file"})
		return
	}

	rows, err := xl.GetRows("Sheet1")
	if err != nil || len(rows) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Excel must have at least one row of data"})
		return
	}

	var items []model.MenuItem
	skipped := 0
	for _, row := range rows[1:] {
		if len(row) < 2 || row[0] == "" {
			skipped++
			continue
		}

		price, err := decimal.NewFromString(row[1])
		if err != nil || price.IsNegative() {
			skipped++
			continue
		}

		items = append(items, model.MenuItem{
			VendorID: vendorID.(string),
			Name:     row[0],
			Price:    price,
		})
	}

	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No valid rows found in Excel file"})
		return
	}

	if err := database.DB.Create(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to import menu items: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Imported %d menu items (%d rows skipped)", len(items), skipped),
		"data":    items,
	})
}
