package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending = "pending"

	// OrderExpiry is the window after which an order is no longer active.
	// Expiry is a query-time check, there is no background sweep.
	OrderExpiry = 6 * time.Hour
)

type Order struct {
	ID        string          `json:"id" gorm:"type:uuid;primaryKey"`
	VendorID  string          `json:"vendor_id" gorm:"type:uuid;index"`
	Code      string          `json:"code" gorm:"uniqueIndex"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total" gorm:"type:numeric(12,2)"`
	Items     []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// OrderItem is a snapshot of a catalog line at submission time. Later menu
// edits must not change historical orders, so name and price are copied.
type OrderItem struct {
	ID         string          `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID    string          `json:"order_id" gorm:"type:uuid;index"`
	MenuItemID string          `json:"menu_item_id" gorm:"type:uuid"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price" gorm:"type:numeric(12,2)"`
	Quantity   int             `json:"quantity"`
}

// Active reports whether the order is still inside its expiry window.
func (o *Order) Active(now time.Time) bool {
	return now.Before(o.ExpiresAt)
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
