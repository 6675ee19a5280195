package models

import "time"

// The site_content singletons are single-row tables keyed by a fixed id of 1.
// They are only ever touched through the content repository's load-or-create
// accessors, never created ad hoc.

const SingletonRowID = 1

// CompanyDetails holds the legal company record shown in the footer.
type CompanyDetails struct {
	ID          int       `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name;not null;default:''"`
	Description string    `gorm:"column:description;not null;default:''"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// SiteLogo stores the single site-wide logo asset.
type SiteLogo struct {
	ID        int       `gorm:"column:id;primaryKey"`
	LogoURL   *string   `gorm:"column:logo_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// DeliveryPaymentInfo is the single delivery-and-payment information page.
type DeliveryPaymentInfo struct {
	ID           int       `gorm:"column:id;primaryKey"`
	DeliveryInfo string    `gorm:"column:delivery_info;not null;default:''"`
	PaymentInfo  string    `gorm:"column:payment_info;not null;default:''"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// AboutUs is the single about-page record.
type AboutUs struct {
	ID        int       `gorm:"column:id;primaryKey"`
	Title     string    `gorm:"column:title;not null;default:''"`
	Content   string    `gorm:"column:content;not null;default:''"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (CompanyDetails) TableName() string { return "company_details" }

func (SiteLogo) TableName() string { return "site_logos" }

func (DeliveryPaymentInfo) TableName() string { return "delivery_payment_info" }

func (AboutUs) TableName() string { return "about_us" }
