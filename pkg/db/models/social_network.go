package models

import "github.com/google/uuid"

// SocialNetwork is a footer link with its icon.
type SocialNetwork struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name     string    `gorm:"column:name;not null"`
	IconURL  string    `gorm:"column:icon_url;not null"`
	Link     string    `gorm:"column:link;not null"`
	IsActive bool      `gorm:"column:is_active;not null;default:true"`
}
