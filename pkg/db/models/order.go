package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stitchline/stitchline-backend/pkg/enums"
)

// Order is a placed order. TotalAmount is captured from the cart at creation
// and is never recomputed automatically when line prices are edited afterward.
type Order struct {
	ID               uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID           *uuid.UUID        `gorm:"column:user_id;type:uuid;index"`
	FirstName        string            `gorm:"column:first_name;not null"`
	LastName         string            `gorm:"column:last_name;not null"`
	Email            string            `gorm:"column:email;not null"`
	Phone            string            `gorm:"column:phone;not null"`
	Address          string            `gorm:"column:address;not null"`
	DeliveryOptionID *uuid.UUID        `gorm:"column:delivery_option_id;type:uuid"`
	TotalAmount      decimal.Decimal   `gorm:"column:total_amount;type:numeric(10,2);not null"`
	Status           enums.OrderStatus `gorm:"column:status;not null;default:'pending'"`
	DeliveryOption   *DeliveryOption   `gorm:"foreignKey:DeliveryOptionID;constraint:OnDelete:SET NULL"`
	Items            []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
