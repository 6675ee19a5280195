package models

import "github.com/google/uuid"

// Category is a top-level catalog grouping.
type Category struct {
	ID            uuid.UUID     `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string        `gorm:"column:name;not null;uniqueIndex"`
	Description   *string       `gorm:"column:description"`
	ImageURL      *string       `gorm:"column:image_url"`
	IsActive      bool          `gorm:"column:is_active;not null;default:true"`
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}
