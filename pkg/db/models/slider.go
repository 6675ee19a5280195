package models

import "github.com/google/uuid"

// Slider is a homepage carousel entry.
type Slider struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ImageURL string    `gorm:"column:image_url;not null"`
	AltText  string    `gorm:"column:alt_text;not null"`
	Position int       `gorm:"column:position;not null;default:0"`
	IsActive bool      `gorm:"column:is_active;not null;default:true"`
}
