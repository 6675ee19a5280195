package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stitchline/stitchline-backend/pkg/db"
	"github.com/stitchline/stitchline-backend/pkg/db/models"
	pkgerrors "github.com/stitchline/stitchline-backend/pkg/errors"
	"github.com/stitchline/stitchline-backend/pkg/pagination"
)

// Service covers catalog reads plus the admin CRUD surface.
type Service interface {
	ListProducts(ctx context.Context, filters ProductFilters, params pagination.Params) (*ProductList, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductDTO, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	AddVariant(ctx context.Context, productID uuid.UUID, req CreateVariantRequest) (*ProductDTO, error)
	UpdateVariant(ctx context.Context, productID, variantID uuid.UUID, req UpdateVariantRequest) (*ProductDTO, error)
	DeleteVariant(ctx context.Context, productID, variantID uuid.UUID) (*ProductDTO, error)
	AddImage(ctx context.Context, productID uuid.UUID, req CreateImageRequest) (*ProductDTO, error)
	DeleteImage(ctx context.Context, productID, imageID uuid.UUID) (*ProductDTO, error)

	ListCategories(ctx context.Context, includeInactive bool) ([]CategoryDTO, error)
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryDTO, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req CreateCategoryRequest) (*CategoryDTO, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	ListSubcategories(ctx context.Context, categoryID *uuid.UUID, includeInactive bool) ([]SubcategoryDTO, error)
	CreateSubcategory(ctx context.Context, req CreateSubcategoryRequest) (*SubcategoryDTO, error)
	UpdateSubcategory(ctx context.Context, id uuid.UUID, req CreateSubcategoryRequest) (*SubcategoryDTO, error)
	DeleteSubcategory(ctx context.Context, id uuid.UUID) error

	ListSizes(ctx context.Context, includeInactive bool) ([]SizeDTO, error)
	CreateSize(ctx context.Context, req CreateSizeRequest) (*SizeDTO, error)
	UpdateSize(ctx context.Context, id uuid.UUID, req CreateSizeRequest) (*SizeDTO, error)
	DeleteSize(ctx context.Context, id uuid.UUID) error

	ListFabrics(ctx context.Context, includeInactive bool) ([]FabricDTO, error)
	CreateFabric(ctx context.Context, req CreateFabricRequest) (*FabricDTO, error)
	UpdateFabric(ctx context.Context, id uuid.UUID, req CreateFabricRequest) (*FabricDTO, error)
	DeleteFabric(ctx context.Context, id uuid.UUID) error
}

type service struct {
	products *Repository
	taxonomy *TaxonomyRepository
}

// ServiceParams bundles the catalog service dependencies.
type ServiceParams struct {
	Products *Repository
	Taxonomy *TaxonomyRepository
}

// NewService constructs the catalog service.
func NewService(params ServiceParams) (Service, error) {
	if params.Products == nil {
		return nil, fmt.Errorf("product repository is required")
	}
	if params.Taxonomy == nil {
		return nil, fmt.Errorf("taxonomy repository is required")
	}
	return &service{products: params.Products, taxonomy: params.Taxonomy}, nil
}

func (s *service) ListProducts(ctx context.Context, filters ProductFilters, params pagination.Params) (*ProductList, error) {
	rows, total, err := s.products.ListProducts(ctx, filters, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	list := &ProductList{
		Products: make([]ProductDTO, 0, len(rows)),
		Page:     pagination.NewPage(params, total),
	}
	for i := range rows {
		list.Products = append(list.Products, productFromModel(&rows[i]))
	}
	return list, nil
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.loadProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := productFromModel(product)
	return &dto, nil
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductDTO, error) {
	if _, err := s.taxonomy.FindCategory(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "category does not exist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check category")
	}

	product := &models.Product{
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		FabricID:      req.FabricID,
		ImageURL:      req.ImageURL,
		IsActive:      boolOrDefault(req.IsActive, true),
		IsPromotion:   boolOrDefault(req.IsPromotion, false),
		IsNew:         boolOrDefault(req.IsNew, false),
	}
	for _, variant := range req.Variants {
		product.Variants = append(product.Variants, models.ProductVariant{
			SizeID:   variant.SizeID,
			Price:    variant.Price,
			IsActive: boolOrDefault(variant.IsActive, true),
		})
	}

	if err := s.products.CreateProduct(ctx, product); err != nil {
		if db.IsUniqueViolation(err, "idx_variant_product_size") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "duplicate size for product")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	return s.GetProduct(ctx, product.ID)
}

func (s *service) UpdateProduct(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductDTO, error) {
	if _, err := s.loadProduct(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = req.Description
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.SubcategoryID != nil {
		updates["subcategory_id"] = req.SubcategoryID
	}
	if req.FabricID != nil {
		updates["fabric_id"] = req.FabricID
	}
	if req.ImageURL != nil {
		updates["image_url"] = req.ImageURL
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.IsPromotion != nil {
		updates["is_promotion"] = *req.IsPromotion
	}
	if req.IsNew != nil {
		updates["is_new"] = *req.IsNew
	}

	if err := s.products.UpdateProductFields(ctx, id, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
	}
	return s.GetProduct(ctx, id)
}

func (s *service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.loadProduct(ctx, id); err != nil {
		return err
	}
	if err := s.products.DeleteProduct(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
	}
	return nil
}

func (s *service) AddVariant(ctx context.Context, productID uuid.UUID, req CreateVariantRequest) (*ProductDTO, error) {
	if _, err := s.loadProduct(ctx, productID); err != nil {
		return nil, err
	}
	if _, err := s.taxonomy.FindSize(ctx, req.SizeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "size does not exist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check size")
	}

	variant := &models.ProductVariant{
		ProductID: productID,
		SizeID:    req.SizeID,
		Price:     req.Price,
		IsActive:  boolOrDefault(req.IsActive, true),
	}
	if err := s.products.CreateVariant(ctx, variant); err != nil {
		if db.IsUniqueViolation(err, "idx_variant_product_size") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "product already has this size")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create variant")
	}
	return s.GetProduct(ctx, productID)
}

func (s *service) UpdateVariant(ctx context.Context, productID, variantID uuid.UUID, req UpdateVariantRequest) (*ProductDTO, error) {
	if err := s.checkVariantOwnership(ctx, productID, variantID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if err := s.products.UpdateVariantFields(ctx, variantID, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update variant")
	}
	return s.GetProduct(ctx, productID)
}

func (s *service) DeleteVariant(ctx context.Context, productID, variantID uuid.UUID) (*ProductDTO, error) {
	if err := s.checkVariantOwnership(ctx, productID, variantID); err != nil {
		return nil, err
	}
	if err := s.products.DeleteVariant(ctx, variantID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete variant")
	}
	return s.GetProduct(ctx, productID)
}

func (s *service) AddImage(ctx context.Context, productID uuid.UUID, req CreateImageRequest) (*ProductDTO, error) {
	if _, err := s.loadProduct(ctx, productID); err != nil {
		return nil, err
	}
	image := &models.ProductImage{
		ProductID: productID,
		URL:       req.URL,
		AltText:   req.AltText,
		Position:  req.Position,
	}
	if err := s.products.CreateImage(ctx, image); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create image")
	}
	return s.GetProduct(ctx, productID)
}

func (s *service) DeleteImage(ctx context.Context, productID, imageID uuid.UUID) (*ProductDTO, error) {
	if _, err := s.loadProduct(ctx, productID); err != nil {
		return nil, err
	}
	if err := s.products.DeleteImage(ctx, productID, imageID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete image")
	}
	return s.GetProduct(ctx, productID)
}

func (s *service) loadProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.products.FindProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	return product, nil
}

func (s *service) checkVariantOwnership(ctx context.Context, productID, variantID uuid.UUID) error {
	variant, err := s.products.FindVariant(ctx, variantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "variant not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load variant")
	}
	if variant.ProductID != productID {
		return pkgerrors.New(pkgerrors.CodeNotFound, "variant not found")
	}
	return nil
}

func boolOrDefault(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
