package content

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stitchline/stitchline-backend/pkg/db/models"
	"github.com/stitchline/stitchline-backend/pkg/pagination"
)

// SliderDTO is a homepage carousel entry.
type SliderDTO struct {
	ID       uuid.UUID `json:"id"`
	ImageURL string    `json:"image_url"`
	AltText  string    `json:"alt_text"`
	Position int       `json:"position"`
	IsActive bool      `json:"is_active"`
}

// SliderRequest carries the slider create/update payload.
type SliderRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
	AltText  string `json:"alt_text,omitempty"`
	Position int    `json:"position,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// SocialNetworkDTO is a footer social link.
type SocialNetworkDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	IconURL  string    `json:"icon_url"`
	Link     string    `json:"link"`
	IsActive bool      `json:"is_active"`
}

// SocialNetworkRequest carries the social network create/update payload.
type SocialNetworkRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	IconURL  string `json:"icon_url" validate:"required,url"`
	Link     string `json:"link" validate:"required,url"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// FeedbackDTO is a stored contact-form submission.
type FeedbackDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedbackRequest is the public contact-form payload.
type FeedbackRequest struct {
	Name    string `json:"name" validate:"required,max=150"`
	Phone   string `json:"phone" validate:"required,max=32"`
	Message string `json:"message" validate:"required"`
}

// FeedbackList wraps a page of submissions, newest first.
type FeedbackList struct {
	Feedback []FeedbackDTO   `json:"feedback"`
	Page     pagination.Page `json:"page"`
}

// DeliveryOptionDTO is a fulfillment choice offered at checkout.
type DeliveryOptionDTO struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	IsActive    bool            `json:"is_active"`
}

// DeliveryOptionRequest carries the delivery option create/update payload.
type DeliveryOptionRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	IsActive    *bool           `json:"is_active,omitempty"`
}

// StoreLocationDTO is a physical shop entry.
type StoreLocationDTO struct {
	ID           uuid.UUID `json:"id"`
	City         string    `json:"city"`
	Address      string    `json:"address"`
	WorkSchedule string    `json:"work_schedule"`
}

// StoreLocationRequest carries the store location create/update payload.
type StoreLocationRequest struct {
	City         string `json:"city" validate:"required,max=100"`
	Address      string `json:"address" validate:"required"`
	WorkSchedule string `json:"work_schedule" validate:"required"`
}

// CompanyDetailsDTO is the footer company record.
type CompanyDetailsDTO struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CompanyDetailsRequest updates the company record.
type CompanyDetailsRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description,omitempty"`
}

// SiteLogoDTO is the site-wide logo.
type SiteLogoDTO struct {
	LogoURL   *string   `json:"logo_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteLogoRequest updates the logo. A nil URL clears it.
type SiteLogoRequest struct {
	LogoURL *string `json:"logo_url,omitempty" validate:"omitempty,url"`
}

// DeliveryPaymentInfoDTO is the delivery-and-payment information page.
type DeliveryPaymentInfoDTO struct {
	DeliveryInfo string    `json:"delivery_info"`
	PaymentInfo  string    `json:"payment_info"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DeliveryPaymentInfoRequest updates the delivery-and-payment page.
type DeliveryPaymentInfoRequest struct {
	DeliveryInfo string `json:"delivery_info,omitempty"`
	PaymentInfo  string `json:"payment_info,omitempty"`
}

// AboutUsDTO is the about page.
type AboutUsDTO struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AboutUsRequest updates the about page.
type AboutUsRequest struct {
	Title   string `json:"title,omitempty" validate:"omitempty,max=255"`
	Content string `json:"content,omitempty"`
}

func sliderFromModel(m *models.Slider) SliderDTO {
	return SliderDTO{ID: m.ID, ImageURL: m.ImageURL, AltText: m.AltText, Position: m.Position, IsActive: m.IsActive}
}

func socialNetworkFromModel(m *models.SocialNetwork) SocialNetworkDTO {
	return SocialNetworkDTO{ID: m.ID, Name: m.Name, IconURL: m.IconURL, Link: m.Link, IsActive: m.IsActive}
}

func feedbackFromModel(m *models.Feedback) FeedbackDTO {
	return FeedbackDTO{ID: m.ID, Name: m.Name, Phone: m.Phone, Message: m.Message, CreatedAt: m.CreatedAt}
}

func deliveryOptionFromModel(m *models.DeliveryOption) DeliveryOptionDTO {
	return DeliveryOptionDTO{ID: m.ID, Name: m.Name, Description: m.Description, Price: m.Price, IsActive: m.IsActive}
}

func storeLocationFromModel(m *models.StoreLocation) StoreLocationDTO {
	return StoreLocationDTO{ID: m.ID, City: m.City, Address: m.Address, WorkSchedule: m.WorkSchedule}
}
