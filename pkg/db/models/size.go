package models

import "github.com/google/uuid"

// Size is a purchasable garment size referenced by product variants.
type Size struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name     string    `gorm:"column:name;not null;uniqueIndex"`
	IsActive bool      `gorm:"column:is_active;not null;default:true"`
}
