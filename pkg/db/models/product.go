package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is the canonical catalog listing. Purchasable units are its variants.
type Product struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string           `gorm:"column:name;not null"`
	Description   *string          `gorm:"column:description"`
	CategoryID    uuid.UUID        `gorm:"column:category_id;type:uuid;not null"`
	SubcategoryID *uuid.UUID       `gorm:"column:subcategory_id;type:uuid"`
	FabricID      *uuid.UUID       `gorm:"column:fabric_id;type:uuid"`
	ImageURL      *string          `gorm:"column:image_url"`
	IsActive      bool             `gorm:"column:is_active;not null;default:true"`
	IsPromotion   bool             `gorm:"column:is_promotion;not null;default:false"`
	IsNew         bool             `gorm:"column:is_new;not null;default:false"`
	Category      *Category        `gorm:"foreignKey:CategoryID"`
	Subcategory   *Subcategory     `gorm:"foreignKey:SubcategoryID"`
	Fabric        *Fabric          `gorm:"foreignKey:FabricID"`
	Variants      []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images        []ProductImage   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
