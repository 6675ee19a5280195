package content

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stitchline/stitchline-backend/pkg/db/models"
	"github.com/stitchline/stitchline-backend/pkg/pagination"
)

// Repository persists site content: carousels, footer links, contact-form
// submissions, delivery options, store locations, and the single-row pages.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a content repository.
func NewRepository(conn *gorm.DB) *Repository {
	return &Repository{db: conn}
}

// ListSliders returns carousel entries ordered by position.
func (r *Repository) ListSliders(ctx context.Context, includeInactive bool) ([]models.Slider, error) {
	query := r.db.WithContext(ctx).Order("position ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	var rows []models.Slider
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) FindSlider(ctx context.Context, id uuid.UUID) (*models.Slider, error) {
	var row models.Slider
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) CreateSlider(ctx context.Context, row *models.Slider) error {
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *Repository) UpdateSlider(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&models.Slider{}).Where("id = ?", id).Updates(fields).Error
}

func (r *Repository) DeleteSlider(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Slider{}).Error
}

// ListSocialNetworks returns footer links.
func (r *Repository) ListSocialNetworks(ctx context.Context, includeInactive bool) ([]models.SocialNetwork, error) {
	query := r.db.WithContext(ctx).Order("name ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	var rows []models.SocialNetwork
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) FindSocialNetwork(ctx context.Context, id uuid.UUID) (*models.SocialNetwork, error) {
	var row models.SocialNetwork
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) CreateSocialNetwork(ctx context.Context, row *models.SocialNetwork) error {
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *Repository) UpdateSocialNetwork(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&models.SocialNetwork{}).Where("id = ?", id).Updates(fields).Error
}

func (r *Repository) DeleteSocialNetwork(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.SocialNetwork{}).Error
}

// CreateFeedback stores a contact-form submission.
func (r *Repository) CreateFeedback(ctx context.Context, row *models.Feedback) error {
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(row).Error
}

// ListFeedback pages submissions newest first.
func (r *Repository) ListFeedback(ctx context.Context, params pagination.Params) ([]models.Feedback, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Feedback{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Feedback
	err := query.
		Order("created_at DESC").
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListDeliveryOptions returns fulfillment choices.
func (r *Repository) ListDeliveryOptions(ctx context.Context, includeInactive bool) ([]models.DeliveryOption, error) {
	query := r.db.WithContext(ctx).Order("price ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	var rows []models.DeliveryOption
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) FindDeliveryOption(ctx context.Context, id uuid.UUID) (*models.DeliveryOption, error) {
	var row models.DeliveryOption
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindActiveDeliveryOption resolves an option only while it is active. Checkout
// depends on this to refuse retired options.
func (r *Repository) FindActiveDeliveryOption(ctx context.Context, id uuid.UUID) (*models.DeliveryOption, error) {
	var row models.DeliveryOption
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) CreateDeliveryOption(ctx context.Context, row *models.DeliveryOption) error {
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *Repository) UpdateDeliveryOption(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&models.DeliveryOption{}).Where("id = ?", id).Updates(fields).Error
}

func (r *Repository) DeleteDeliveryOption(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.DeliveryOption{}).Error
}

// ListStoreLocations returns shops ordered by city.
func (r *Repository) ListStoreLocations(ctx context.Context) ([]models.StoreLocation, error) {
	var rows []models.StoreLocation
	if err := r.db.WithContext(ctx).Order("city ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) FindStoreLocation(ctx context.Context, id uuid.UUID) (*models.StoreLocation, error) {
	var row models.StoreLocation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) CreateStoreLocation(ctx context.Context, row *models.StoreLocation) error {
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *Repository) UpdateStoreLocation(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&models.StoreLocation{}).Where("id = ?", id).Updates(fields).Error
}

func (r *Repository) DeleteStoreLocation(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.StoreLocation{}).Error
}

// LoadCompanyDetails returns the single company record, creating the fixed row
// on first access.
func (r *Repository) LoadCompanyDetails(ctx context.Context) (*models.CompanyDetails, error) {
	var row models.CompanyDetails
	err := r.db.WithContext(ctx).Where("id = ?", models.SingletonRowID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.CompanyDetails{ID: models.SingletonRowID}
		err = r.db.WithContext(ctx).Create(&row).Error
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) SaveCompanyDetails(ctx context.Context, row *models.CompanyDetails) error {
	row.ID = models.SingletonRowID
	return r.db.WithContext(ctx).Save(row).Error
}

// LoadSiteLogo returns the single logo record, creating it on first access.
func (r *Repository) LoadSiteLogo(ctx context.Context) (*models.SiteLogo, error) {
	var row models.SiteLogo
	err := r.db.WithContext(ctx).Where("id = ?", models.SingletonRowID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.SiteLogo{ID: models.SingletonRowID}
		err = r.db.WithContext(ctx).Create(&row).Error
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) SaveSiteLogo(ctx context.Context, row *models.SiteLogo) error {
	row.ID = models.SingletonRowID
	return r.db.WithContext(ctx).Save(row).Error
}

// LoadDeliveryPaymentInfo returns the single info page, creating it on first
// access.
func (r *Repository) LoadDeliveryPaymentInfo(ctx context.Context) (*models.DeliveryPaymentInfo, error) {
	var row models.DeliveryPaymentInfo
	err := r.db.WithContext(ctx).Where("id = ?", models.SingletonRowID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.DeliveryPaymentInfo{ID: models.SingletonRowID}
		err = r.db.WithContext(ctx).Create(&row).Error
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) SaveDeliveryPaymentInfo(ctx context.Context, row *models.DeliveryPaymentInfo) error {
	row.ID = models.SingletonRowID
	return r.db.WithContext(ctx).Save(row).Error
}

// LoadAboutUs returns the single about page, creating it on first access.
func (r *Repository) LoadAboutUs(ctx context.Context) (*models.AboutUs, error) {
	var row models.AboutUs
	err := r.db.WithContext(ctx).Where("id = ?", models.SingletonRowID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.AboutUs{ID: models.SingletonRowID}
		err = r.db.WithContext(ctx).Create(&row).Error
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) SaveAboutUs(ctx context.Context, row *models.AboutUs) error {
	row.ID = models.SingletonRowID
	return r.db.WithContext(ctx).Save(row).Error
}
