package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stitchline/stitchline-backend/pkg/db/models"
	"github.com/stitchline/stitchline-backend/pkg/pagination"
)

// Repository exposes persistence for products, variants, and images.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// CreateProduct inserts the product and any nested variants.
func (r *Repository) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	for i := range product.Variants {
		if product.Variants[i].ID == uuid.Nil {
			product.Variants[i].ID = uuid.New()
		}
		product.Variants[i].ProductID = product.ID
	}
	return r.db.WithContext(ctx).Create(product).Error
}

// FindProduct loads a product with its variants, sizes, and images.
func (r *Repository) FindProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Variants").
		Preload("Variants.Size").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts returns the filtered product page plus the total match count.
func (r *Repository) ListProducts(ctx context.Context, filters ProductFilters, params pagination.Params) ([]models.Product, int64, error) {
	params = params.Normalize()

	query := r.db.WithContext(ctx).Model(&models.Product{})
	if !filters.IncludeInactive {
		query = query.Where("products.is_active = ?", true)
	}
	if filters.CategoryID != nil {
		query = query.Where("products.category_id = ?", *filters.CategoryID)
	}
	if filters.SubcategoryID != nil {
		query = query.Where("products.subcategory_id = ?", *filters.SubcategoryID)
	}
	if filters.FabricID != nil {
		query = query.Where("products.fabric_id = ?", *filters.FabricID)
	}
	if filters.IsPromotion != nil {
		query = query.Where("products.is_promotion = ?", *filters.IsPromotion)
	}
	if filters.IsNew != nil {
		query = query.Where("products.is_new = ?", *filters.IsNew)
	}
	if filters.SizeID != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM product_variants pv WHERE pv.product_id = products.id AND pv.size_id = ? AND pv.is_active = ?)",
			*filters.SizeID, true,
		)
	}
	if filters.Query != "" {
		query = query.Where("products.name LIKE ?", "%"+filters.Query+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Product
	err := query.
		Preload("Variants").
		Preload("Variants.Size").
		Preload("Images").
		Order("products.created_at DESC").
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// UpdateProductFields applies a partial update to the product row.
func (r *Repository) UpdateProductFields(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// DeleteProduct removes the product; variants and images follow via cascade.
func (r *Repository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Select("Variants", "Images").
		Delete(&models.Product{ID: id}).Error
}

// FindPurchasableVariant resolves a variant only when both the variant and
// its product are active. Anything else reads as not found.
func (r *Repository) FindPurchasableVariant(ctx context.Context, variantID uuid.UUID) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	err := r.db.WithContext(ctx).
		Joins("JOIN products ON products.id = product_variants.product_id").
		Where("product_variants.id = ? AND product_variants.is_active = ? AND products.is_active = ?", variantID, true, true).
		First(&variant).Error
	if err != nil {
		return nil, err
	}
	return &variant, nil
}

// FindVariant loads a variant by id regardless of active flags.
func (r *Repository) FindVariant(ctx context.Context, variantID uuid.UUID) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := r.db.WithContext(ctx).First(&variant, "id = ?", variantID).Error; err != nil {
		return nil, err
	}
	return &variant, nil
}

// CreateVariant inserts a variant for a product.
func (r *Repository) CreateVariant(ctx context.Context, variant *models.ProductVariant) error {
	if variant.ID == uuid.Nil {
		variant.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(variant).Error
}

// UpdateVariantFields applies a partial update to a variant.
func (r *Repository) UpdateVariantFields(ctx context.Context, variantID uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.ProductVariant{}).
		Where("id = ?", variantID).
		Updates(updates).Error
}

// DeleteVariant removes a variant.
func (r *Repository) DeleteVariant(ctx context.Context, variantID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", variantID).
		Delete(&models.ProductVariant{}).Error
}

// CreateImage appends a gallery image.
func (r *Repository) CreateImage(ctx context.Context, image *models.ProductImage) error {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(image).Error
}

// DeleteImage removes a gallery image belonging to the product.
func (r *Repository) DeleteImage(ctx context.Context, productID, imageID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND product_id = ?", imageID, productID).
		Delete(&models.ProductImage{}).Error
}
