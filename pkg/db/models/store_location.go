package models

import "github.com/google/uuid"

// StoreLocation is a physical shop shown on the contacts page.
type StoreLocation struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	City         string    `gorm:"column:city;not null"`
	Address      string    `gorm:"column:address;not null"`
	WorkSchedule string    `gorm:"column:work_schedule;not null"`
}
