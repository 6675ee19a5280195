package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stitchline/stitchline-backend/pkg/db/models"
	"github.com/stitchline/stitchline-backend/pkg/enums"
	"github.com/stitchline/stitchline-backend/pkg/pagination"
)

// Repository reads and mutates placed orders.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an order repository.
func NewRepository(conn *gorm.DB) *Repository {
	return &Repository{db: conn}
}

// WithTx returns a repository bound to the given transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// ListForUser returns the user's orders newest first, with items preloaded so
// the list view can show line counts.
func (r *Repository) ListForUser(ctx context.Context, userID uuid.UUID, params pagination.Params) ([]models.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Order{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Order
	err := query.
		Preload("Items").
		Order("created_at DESC").
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// FindDetail loads one order with its lines, variant context, and delivery
// option.
func (r *Repository) FindDetail(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.ProductVariant").
		Preload("Items.ProductVariant.Product").
		Preload("Items.ProductVariant.Size").
		Preload("DeliveryOption").
		Where("id = ?", orderID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByID loads the bare order row.
func (r *Repository) FindByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus sets the status label and bumps updated_at.
func (r *Repository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status enums.OrderStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateTotal overwrites the stored order total.
func (r *Repository) UpdateTotal(ctx context.Context, orderID uuid.UUID, total decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("total_amount", total)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByStatusForUser groups the user's orders per status label.
func (r *Repository) CountByStatusForUser(ctx context.Context, userID uuid.UUID) (map[enums.OrderStatus]int64, error) {
	type bucket struct {
		Status enums.OrderStatus
		Count  int64
	}
	var buckets []bucket
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Find(&buckets).Error
	if err != nil {
		return nil, err
	}
	out := make(map[enums.OrderStatus]int64, len(buckets))
	for _, b := range buckets {
		out[b.Status] = b.Count
	}
	return out, nil
}
