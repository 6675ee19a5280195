package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryOption is a named fulfillment choice referenced by orders.
type DeliveryOption struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string          `gorm:"column:name;not null"`
	Description *string         `gorm:"column:description"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null;default:0"`
	IsActive    bool            `gorm:"column:is_active;not null;default:true"`
}
