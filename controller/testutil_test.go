package controller

import (
	"fmt"
	"testing"

	"github.com/ravi-64bit/streetwise/database"
	"github.com/ravi-64bit/streetwise/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the package gorm handle at an in-memory sqlite database
// so handlers run against real queries without a postgres server.
func setupTestDB(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Vendor{},
		&model.MenuItem{},
		&model.Order{},
		&model.OrderItem{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		_ = sqlDB.Close()
	})
}

// asVendor stands in for the auth middleware and puts the vendor id
// straight into the request context.
func asVendor(vendorID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("vendor_id", vendorID)
		c.Next()
	}
}

func createTestVendor(t *testing.T, name string) model.Vendor {
	t.Helper()
	vendor := model.Vendor{
		Username: name,
		Password: "$2a$10$notachecked",
		Name:     name,
	}
	require.NoError(t, database.DB.Create(&vendor).Error)
	return vendor
}
