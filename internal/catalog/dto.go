package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stitchline/stitchline-backend/pkg/db/models"
	"github.com/stitchline/stitchline-backend/pkg/pagination"
)

// CategoryDTO is the transport shape for a category.
type CategoryDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`
}

// SubcategoryDTO is the transport shape for a subcategory.
type SubcategoryDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CategoryID  uuid.UUID `json:"category_id"`
	IsActive    bool      `json:"is_active"`
}

// SizeDTO is the transport shape for a size.
type SizeDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	IsActive bool      `json:"is_active"`
}

// FabricDTO is the transport shape for a fabric.
type FabricDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
}

// VariantDTO is the purchasable unit inside a product payload.
type VariantDTO struct {
	ID       uuid.UUID       `json:"id"`
	SizeID   uuid.UUID       `json:"size_id"`
	SizeName string          `json:"size_name,omitempty"`
	Price    decimal.Decimal `json:"price"`
	IsActive bool            `json:"is_active"`
}

// ImageDTO is a gallery entry inside a product payload.
type ImageDTO struct {
	ID       uuid.UUID `json:"id"`
	URL      string    `json:"url"`
	AltText  string    `json:"alt_text"`
	Position int       `json:"position"`
}

// ProductDTO is the full product payload with variants and images.
type ProductDTO struct {
	ID            uuid.UUID    `json:"id"`
	Name          string       `json:"name"`
	Description   *string      `json:"description,omitempty"`
	CategoryID    uuid.UUID    `json:"category_id"`
	SubcategoryID *uuid.UUID   `json:"subcategory_id,omitempty"`
	FabricID      *uuid.UUID   `json:"fabric_id,omitempty"`
	ImageURL      *string      `json:"image_url,omitempty"`
	IsActive      bool         `json:"is_active"`
	IsPromotion   bool         `json:"is_promotion"`
	IsNew         bool         `json:"is_new"`
	Variants      []VariantDTO `json:"variants"`
	Images        []ImageDTO   `json:"images"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// ProductList wraps a filtered product page.
type ProductList struct {
	Products []ProductDTO    `json:"products"`
	Page     pagination.Page `json:"page"`
}

// ProductFilters describe the inputs supported by the product list.
type ProductFilters struct {
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
	FabricID      *uuid.UUID
	SizeID        *uuid.UUID
	IsPromotion   *bool
	IsNew         *bool
	Query         string
	// IncludeInactive widens the list for admin screens. Public listings
	// leave it false and only see active products.
	IncludeInactive bool
}

// CreateCategoryRequest carries the category create/update payload.
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// CreateSubcategoryRequest carries the subcategory create/update payload.
type CreateSubcategoryRequest struct {
	Name        string    `json:"name" validate:"required,max=255"`
	Description *string   `json:"description,omitempty"`
	CategoryID  uuid.UUID `json:"category_id" validate:"required"`
	IsActive    *bool     `json:"is_active,omitempty"`
}

// CreateSizeRequest carries the size create/update payload.
type CreateSizeRequest struct {
	Name     string `json:"name" validate:"required,max=32"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// CreateFabricRequest carries the fabric create/update payload.
type CreateFabricRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// CreateVariantRequest attaches a size/price pair to a product.
type CreateVariantRequest struct {
	SizeID   uuid.UUID       `json:"size_id" validate:"required"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	IsActive *bool           `json:"is_active,omitempty"`
}

// UpdateVariantRequest edits an existing variant. Size identity is immutable;
// only price and availability can change.
type UpdateVariantRequest struct {
	Price    *decimal.Decimal `json:"price,omitempty"`
	IsActive *bool            `json:"is_active,omitempty"`
}

// CreateImageRequest appends a gallery image to a product.
type CreateImageRequest struct {
	URL      string `json:"url" validate:"required,url"`
	AltText  string `json:"alt_text,omitempty"`
	Position int    `json:"position,omitempty"`
}

// CreateProductRequest carries the product create payload.
type CreateProductRequest struct {
	Name          string                 `json:"name" validate:"required,max=255"`
	Description   *string                `json:"description,omitempty"`
	CategoryID    uuid.UUID              `json:"category_id" validate:"required"`
	SubcategoryID *uuid.UUID             `json:"subcategory_id,omitempty"`
	FabricID      *uuid.UUID             `json:"fabric_id,omitempty"`
	ImageURL      *string                `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive      *bool                  `json:"is_active,omitempty"`
	IsPromotion   *bool                  `json:"is_promotion,omitempty"`
	IsNew         *bool                  `json:"is_new,omitempty"`
	Variants      []CreateVariantRequest `json:"variants,omitempty" validate:"omitempty,dive"`
}

// UpdateProductRequest carries a partial product update.
type UpdateProductRequest struct {
	Name          *string    `json:"name,omitempty" validate:"omitempty,max=255"`
	Description   *string    `json:"description,omitempty"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	SubcategoryID *uuid.UUID `json:"subcategory_id,omitempty"`
	FabricID      *uuid.UUID `json:"fabric_id,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive      *bool      `json:"is_active,omitempty"`
	IsPromotion   *bool      `json:"is_promotion,omitempty"`
	IsNew         *bool      `json:"is_new,omitempty"`
}

func categoryFromModel(m *models.Category) CategoryDTO {
	return CategoryDTO{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		IsActive:    m.IsActive,
	}
}

func subcategoryFromModel(m *models.Subcategory) SubcategoryDTO {
	return SubcategoryDTO{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CategoryID:  m.CategoryID,
		IsActive:    m.IsActive,
	}
}

func sizeFromModel(m *models.Size) SizeDTO {
	return SizeDTO{ID: m.ID, Name: m.Name, IsActive: m.IsActive}
}

func fabricFromModel(m *models.Fabric) FabricDTO {
	return FabricDTO{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
	}
}

func productFromModel(m *models.Product) ProductDTO {
	dto := ProductDTO{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		CategoryID:    m.CategoryID,
		SubcategoryID: m.SubcategoryID,
		FabricID:      m.FabricID,
		ImageURL:      m.ImageURL,
		IsActive:      m.IsActive,
		IsPromotion:   m.IsPromotion,
		IsNew:         m.IsNew,
		Variants:      make([]VariantDTO, 0, len(m.Variants)),
		Images:        make([]ImageDTO, 0, len(m.Images)),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	for i := range m.Variants {
		variant := &m.Variants[i]
		entry := VariantDTO{
			ID:       variant.ID,
			SizeID:   variant.SizeID,
			Price:    variant.Price,
			IsActive: variant.IsActive,
		}
		if variant.Size != nil {
			entry.SizeName = variant.Size.Name
		}
		dto.Variants = append(dto.Variants, entry)
	}
	for i := range m.Images {
		image := &m.Images[i]
		dto.Images = append(dto.Images, ImageDTO{
			ID:       image.ID,
			URL:      image.URL,
			AltText:  image.AltText,
			Position: image.Position,
		})
	}
	return dto
}
