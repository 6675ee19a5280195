package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile extends a user account with presentation data and the archive flag.
// The archive flag is distinct from User.IsActive: an archived profile blocks
// logins while the account row survives for order history.
type UserProfile struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex"`
	AvatarURL  *string   `gorm:"column:avatar_url"`
	IsArchived bool      `gorm:"column:is_archived;not null;default:false"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
