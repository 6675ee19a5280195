package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stitchline/stitchline-backend/pkg/db"
	"github.com/stitchline/stitchline-backend/pkg/db/models"
	pkgerrors "github.com/stitchline/stitchline-backend/pkg/errors"
)

func (s *service) ListCategories(ctx context.Context, includeInactive bool) ([]CategoryDTO, error) {
	rows, err := s.taxonomy.ListCategories(ctx, includeInactive)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list categories")
	}
	out := make([]CategoryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, categoryFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryDTO, error) {
	row := &models.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    boolOrDefault(req.IsActive, true),
	}
	if err := s.taxonomy.CreateCategory(ctx, row); err != nil {
		if db.IsUniqueViolation(err, "idx_categories_name") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "category name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create category")
	}
	dto := categoryFromModel(row)
	return &dto, nil
}

func (s *service) UpdateCategory(ctx context.Context, id uuid.UUID, req CreateCategoryRequest) (*CategoryDTO, error) {
	if _, err := s.taxonomy.FindCategory(ctx, id); err != nil {
		return nil, taxonomyNotFound(err, "category")
	}
	updates := map[string]any{
		"name":        strings.TrimSpace(req.Name),
		"description": req.Description,
		"image_url":   req.ImageURL,
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if err := s.taxonomy.UpdateCategory(ctx, id, updates); err != nil {
		if db.IsUniqueViolation(err, "idx_categories_name") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "category name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update category")
	}
	row, err := s.taxonomy.FindCategory(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload category")
	}
	dto := categoryFromModel(row)
	return &dto, nil
}

func (s *service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.taxonomy.FindCategory(ctx, id); err != nil {
		return taxonomyNotFound(err, "category")
	}
	if err := s.taxonomy.DeleteCategory(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete category")
	}
	return nil
}

func (s *service) ListSubcategories(ctx context.Context, categoryID *uuid.UUID, includeInactive bool) ([]SubcategoryDTO, error) {
	rows, err := s.taxonomy.ListSubcategories(ctx, categoryID, includeInactive)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list subcategories")
	}
	out := make([]SubcategoryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, subcategoryFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) CreateSubcategory(ctx context.Context, req CreateSubcategoryRequest) (*SubcategoryDTO, error) {
	if _, err := s.taxonomy.FindCategory(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "category does not exist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check category")
	}
	row := &models.Subcategory{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CategoryID:  req.CategoryID,
		IsActive:    boolOrDefault(req.IsActive, true),
	}
	if err := s.taxonomy.CreateSubcategory(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create subcategory")
	}
	dto := subcategoryFromModel(row)
	return &dto, nil
}

func (s *service) UpdateSubcategory(ctx context.Context, id uuid.UUID, req CreateSubcategoryRequest) (*SubcategoryDTO, error) {
	if _, err := s.taxonomy.FindSubcategory(ctx, id); err != nil {
		return nil, taxonomyNotFound(err, "subcategory")
	}
	updates := map[string]any{
		"name":        strings.TrimSpace(req.Name),
		"description": req.Description,
		"category_id": req.CategoryID,
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if err := s.taxonomy.UpdateSubcategory(ctx, id, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update subcategory")
	}
	row, err := s.taxonomy.FindSubcategory(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload subcategory")
	}
	dto := subcategoryFromModel(row)
	return &dto, nil
}

func (s *service) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.taxonomy.FindSubcategory(ctx, id); err != nil {
		return taxonomyNotFound(err, "subcategory")
	}
	if err := s.taxonomy.DeleteSubcategory(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete subcategory")
	}
	return nil
}

func (s *service) ListSizes(ctx context.Context, includeInactive bool) ([]SizeDTO, error) {
	rows, err := s.taxonomy.ListSizes(ctx, includeInactive)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list sizes")
	}
	out := make([]SizeDTO, 0, len(rows))
	for i := range rows {
		out = append(out, sizeFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) CreateSize(ctx context.Context, req CreateSizeRequest) (*SizeDTO, error) {
	row := &models.Size{
		Name:     strings.TrimSpace(req.Name),
		IsActive: boolOrDefault(req.IsActive, true),
	}
	if err := s.taxonomy.CreateSize(ctx, row); err != nil {
		if db.IsUniqueViolation(err, "idx_sizes_name") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "size name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create size")
	}
	dto := sizeFromModel(row)
	return &dto, nil
}

func (s *service) UpdateSize(ctx context.Context, id uuid.UUID, req CreateSizeRequest) (*SizeDTO, error) {
	if _, err := s.taxonomy.FindSize(ctx, id); err != nil {
		return nil, taxonomyNotFound(err, "size")
	}
	updates := map[string]any{"name": strings.TrimSpace(req.Name)}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if err := s.taxonomy.UpdateSize(ctx, id, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update size")
	}
	row, err := s.taxonomy.FindSize(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload size")
	}
	dto := sizeFromModel(row)
	return &dto, nil
}

func (s *service) DeleteSize(ctx context.Context, id uuid.UUID) error {
	if _, err := s.taxonomy.FindSize(ctx, id); err != nil {
		return taxonomyNotFound(err, "size")
	}
	if err := s.taxonomy.DeleteSize(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete size")
	}
	return nil
}

func (s *service) ListFabrics(ctx context.Context, includeInactive bool) ([]FabricDTO, error) {
	rows, err := s.taxonomy.ListFabrics(ctx, includeInactive)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list fabrics")
	}
	out := make([]FabricDTO, 0, len(rows))
	for i := range rows {
		out = append(out, fabricFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) CreateFabric(ctx context.Context, req CreateFabricRequest) (*FabricDTO, error) {
	row := &models.Fabric{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		IsActive:    boolOrDefault(req.IsActive, true),
	}
	if err := s.taxonomy.CreateFabric(ctx, row); err != nil {
		if db.IsUniqueViolation(err, "idx_fabrics_name") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "fabric name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create fabric")
	}
	dto := fabricFromModel(row)
	return &dto, nil
}

func (s *service) UpdateFabric(ctx context.Context, id uuid.UUID, req CreateFabricRequest) (*FabricDTO, error) {
	if _, err := s.taxonomy.FindFabric(ctx, id); err != nil {
		return nil, taxonomyNotFound(err, "fabric")
	}
	updates := map[string]any{
		"name":        strings.TrimSpace(req.Name),
		"description": req.Description,
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if err := s.taxonomy.UpdateFabric(ctx, id, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update fabric")
	}
	row, err := s.taxonomy.FindFabric(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload fabric")
	}
	dto := fabricFromModel(row)
	return &dto, nil
}

func (s *service) DeleteFabric(ctx context.Context, id uuid.UUID) error {
	if _, err := s.taxonomy.FindFabric(ctx, id); err != nil {
		return taxonomyNotFound(err, "fabric")
	}
	if err := s.taxonomy.DeleteFabric(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete fabric")
	}
	return nil
}

func taxonomyNotFound(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, entity+" not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load "+entity)
}
