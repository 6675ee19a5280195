package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductVariant is the purchasable SKU: a product in a specific size with its
// own price and active flag. Identity is immutable; the price may drift over
// time, which is why order lines snapshot it at purchase.
type ProductVariant struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID uuid.UUID       `gorm:"column:product_id;type:uuid;not null;uniqueIndex:idx_variant_product_size"`
	SizeID    uuid.UUID       `gorm:"column:size_id;type:uuid;not null;uniqueIndex:idx_variant_product_size"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	IsActive  bool            `gorm:"column:is_active;not null;default:true"`
	Product   *Product        `gorm:"foreignKey:ProductID"`
	Size      *Size           `gorm:"foreignKey:SizeID"`
}
