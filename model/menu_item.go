package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	ID        string          `json:"id" gorm:"type:uuid;primaryKey"`
	VendorID  string          `json:"vendor_id" gorm:"type:uuid;index"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price" gorm:"type:numeric(12,2)"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
