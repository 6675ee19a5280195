package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stitchline/stitchline-backend/pkg/db/models"
)

// TaxonomyRepository persists the catalog lookup entities: categories,
// subcategories, sizes, and fabrics.
type TaxonomyRepository struct {
	db *gorm.DB
}

// NewTaxonomyRepository constructs the repo bound to the provided DB.
func NewTaxonomyRepository(db *gorm.DB) *TaxonomyRepository {
	return &TaxonomyRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *TaxonomyRepository) WithTx(tx *gorm.DB) *TaxonomyRepository {
	if tx == nil {
		return r
	}
	return &TaxonomyRepository{db: tx}
}

func (r *TaxonomyRepository) ListCategories(ctx context.Context, includeInactive bool) ([]models.Category, error) {
	var rows []models.Category
	query := r.db.WithContext(ctx).Order("name ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *TaxonomyRepository) FindCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var row models.Category
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *TaxonomyRepository) CreateCategory(ctx context.Context, row *models.Category) error {
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *TaxonomyRepository) UpdateCategory(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Updates(updates).Error
}

func (r *TaxonomyRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{}).Error
}

func (r *TaxonomyRepository) ListSubcategories(ctx context.Context, categoryID *uuid.UUID, includeInactive bool) ([]models.Subcategory, error) {
	var rows []models.Subcategory
	query := r.db.WithContext(ctx).Order("name ASC")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *TaxonomyRepository) FindSubcategory(ctx context.Context, id uuid.UUID) (*models.Subcategory, error) {
	var row models.Subcategory
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *TaxonomyRepository) CreateSubcategory(ctx context.Context, row *models.Subcategory) error {
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *TaxonomyRepository) UpdateSubcategory(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Subcategory{}).Where("id = ?", id).Updates(updates).Error
}

func (r *TaxonomyRepository) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Subcategory{}).Error
}

func (r *TaxonomyRepository) ListSizes(ctx context.Context, includeInactive bool) ([]models.Size, error) {
	var rows []models.Size
	query := r.db.WithContext(ctx).Order("name ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *TaxonomyRepository) FindSize(ctx context.Context, id uuid.UUID) (*models.Size, error) {
	var row models.Size
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *TaxonomyRepository) CreateSize(ctx context.Context, row *models.Size) error {
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *TaxonomyRepository) UpdateSize(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Size{}).Where("id = ?", id).Updates(updates).Error
}

func (r *TaxonomyRepository) DeleteSize(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Size{}).Error
}

func (r *TaxonomyRepository) ListFabrics(ctx context.Context, includeInactive bool) ([]models.Fabric, error) {
	var rows []models.Fabric
	query := r.db.WithContext(ctx).Order("name ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *TaxonomyRepository) FindFabric(ctx context.Context, id uuid.UUID) (*models.Fabric, error) {
	var row models.Fabric
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *TaxonomyRepository) CreateFabric(ctx context.Context, row *models.Fabric) error {
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *TaxonomyRepository) UpdateFabric(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Fabric{}).Where("id = ?", id).Updates(updates).Error
}

func (r *TaxonomyRepository) DeleteFabric(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Fabric{}).Error
}
