package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/ravi-64bit/streetwise/database"
	"github.com/ravi-64bit/streetwise/model"
	"github.com/ravi-64bit/streetwise/service"
	"github.com/ravi-64bit/streetwise/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const orderCodeAttempts = 5

type createOrderRequest struct {
	VendorID   string         `json:"vendor_id"`
	Quantities map[string]any `json:"quantities"`
}

// CreateOrder turns a customer's quantity selection into a persisted order.
// Prices come from the vendor's current catalog, never from the request.
func CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	if err := service.ValidateSelection(req.VendorID, req.Quantities); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	var vendor model.Vendor
	if err := database.DB.First(&vendor, "id = ?", req.VendorID).Error; err != nil {
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

	ids := make([]string, 0, len(req.Quantities))
	for id := range req.Quantities {
		ids = append(ids, id)
	}

	var catalog []model.MenuItem
	if err := database.DB.Where("vendor_id = ? AND id IN ?", vendor.ID, ids).Order("created_at asc").Find(&catalog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch menu items",
		})
		return
	}

	lines, total, err := service.BuildOrderLines(catalog, req.Quantities)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	now := time.Now()
	order := model.Order{
		VendorID:  vendor.ID,
		Status:    model.OrderStatusPending,
		Total:     total,
		Items:     lines,
		ExpiresAt: now.Add(model.OrderExpiry),
	}

	// A unique index backs the code. Only a code collision is retried;
	// any other persistence failure surfaces immediately.
	created := false
	for attempt := 0; attempt < orderCodeAttempts; attempt++ {
		order.Code = service.NewOrderCode(vendor.ID)

		err := database.DB.Create(&order).Error
		if err == nil {
			created = true
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Printf("[order] code collision on %s, retrying", order.Code)
			continue
		}

		log.Printf("[order] create failed for code %s: %v", order.Code, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to create order, please resubmit",
		})
		return
	}

	if !created {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to create order, please resubmit",
		})
		return
	}

	utils.OrdersCreated.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"data": gin.H{
			"order_id": order.ID,
			"code":     order.Code,
		},
	})
}

// GetOrder renders the customer order confirmation. The response carries an
// explicit active flag instead of relying on any cleanup of expired rows.
func GetOrder(c *gin.Context) {
	orderID := c.Param("id")

	var order model.Order
	if err := database.DB.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Order not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to fetch order",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"order":  order,
			"active": order.Active(time.Now()),
		},
	})
}

// GetMyOrders lists the vendor's orders. With ?active=true, expired orders
// are filtered out at query time.
func GetMyOrders(c *gin.Context) {
	vendorID, exists := c.Get("vendor_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Vendor ID not found in context",
		})
		return
	}

	now := time.Now()
	query := database.DB.Preload("Items").Where("vendor_id = ?", vendorID.(string))
	if c.Query("active") == "true" {
		query = query.Where("expires_at > ?", now)
	}

	var orders []model.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch orders",
		})
		return
	}

	out := make([]gin.H, 0, len(orders))
	for i := range orders {
		out = append(out, gin.H{
			"order":  orders[i],
			"active": orders[i].Active(now),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    out,
	})
}

func DeleteOrder(c *gin.Context) {
	vendorID, exists := c.Get("vendor_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Vendor ID not found in context",
		})
		return
	}

	orderID := c.Param("id")

	var order model.Order
	if err := database.DB.Where("id = ? AND vendor_id = ?", orderID, vendorID.(string)).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Order not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to fetch order",
			})
		}
		return
	}

	tx := database.DB.Begin()
	if err := tx.Where("order_id = ?", order.ID).Delete(&model.OrderItem{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to delete order items: %v", err),
		})
		return
	}
	if err := tx.Delete(&order).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to delete order: %v", err),
		})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Transaction failed: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order deleted successfully",
	})
}
