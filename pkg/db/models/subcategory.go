package models

import "github.com/google/uuid"

// Subcategory refines a Category.
type Subcategory struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Description *string   `gorm:"column:description"`
	CategoryID  uuid.UUID `gorm:"column:category_id;type:uuid;not null"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true"`
}
