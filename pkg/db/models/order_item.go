package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem snapshots one cart line at checkout. UnitPrice is the variant's
// price at purchase time so order totals stay stable when catalog prices move.
type OrderItem struct {
	ID               uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID          uuid.UUID       `gorm:"column:order_id;type:uuid;not null;index"`
	ProductVariantID uuid.UUID       `gorm:"column:product_variant_id;type:uuid;not null"`
	Quantity         int             `gorm:"column:quantity;not null;default:1"`
	UnitPrice        decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2);not null;default:0"`
	ProductVariant   *ProductVariant `gorm:"foreignKey:ProductVariantID"`
}
