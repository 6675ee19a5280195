package models

import "github.com/google/uuid"

// CartItem links a cart to a product variant with a quantity. At most one row
// exists per (cart, variant); adding the same variant again increments the
// quantity instead of duplicating the row. Line totals are derived, not stored.
type CartItem struct {
	ID               uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CartID           uuid.UUID       `gorm:"column:cart_id;type:uuid;not null;uniqueIndex:idx_cart_item_variant"`
	ProductVariantID uuid.UUID       `gorm:"column:product_variant_id;type:uuid;not null;uniqueIndex:idx_cart_item_variant"`
	Quantity         int             `gorm:"column:quantity;not null;default:1"`
	ProductVariant   *ProductVariant `gorm:"foreignKey:ProductVariantID"`
}
