package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stitchline/stitchline-backend/pkg/db/models"
	pkgerrors "github.com/stitchline/stitchline-backend/pkg/errors"
)

const variantNotFoundMessage = "product variant not found"

// VariantFinder resolves purchasable variants. Implemented by the catalog
// repository; inactive variants and variants of inactive products resolve to
// gorm.ErrRecordNotFound.
type VariantFinder interface {
	FindPurchasableVariant(ctx context.Context, variantID uuid.UUID) (*models.ProductVariant, error)
}

// Service defines the cart operations available to an authenticated user.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*CartView, error)
	AddItem(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*CartView, error)
	UpdateItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, req UpdateItemRequest) (*CartView, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) (*CartView, error)
	Clear(ctx context.Context, userID uuid.UUID) (*CartView, error)
}

type service struct {
	repo     *Repository
	variants VariantFinder
}

// ServiceParams bundles the cart service dependencies.
type ServiceParams struct {
	Repo     *Repository
	Variants VariantFinder
}

// NewService constructs the cart service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("cart repository is required")
	}
	if params.Variants == nil {
		return nil, fmt.Errorf("variant finder is required")
	}
	return &service{repo: params.Repo, variants: params.Variants}, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	cart, err := s.repo.GetOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}
	return s.view(ctx, cart.UserID)
}

// AddItem puts the variant in the cart. If the variant is already present the
// quantities are merged into the existing line.
func (s *service) AddItem(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*CartView, error) {
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	variant, err := s.variants.FindPurchasableVariant(ctx, req.ProductVariantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, variantNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load variant")
	}

	cart, err := s.repo.GetOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}

	existing, err := s.repo.FindItemByVariant(ctx, cart.ID, variant.ID)
	switch {
	case err == nil:
		if err := s.repo.UpdateItemQuantity(ctx, existing.ID, existing.Quantity+quantity); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "increment cart line")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item := &models.CartItem{
			CartID:           cart.ID,
			ProductVariantID: variant.ID,
			Quantity:         quantity,
		}
		if err := s.repo.CreateItem(ctx, item); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create cart line")
		}
	default:
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find cart line")
	}

	return s.view(ctx, userID)
}

// UpdateItem sets the absolute quantity of a line. Zero or negative removes it.
func (s *service) UpdateItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, req UpdateItemRequest) (*CartView, error) {
	cart, err := s.repo.GetOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}

	item, err := s.findOwnedItem(ctx, cart.ID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Quantity <= 0 {
		if err := s.repo.DeleteItem(ctx, item.ID); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete cart line")
		}
	} else if err := s.repo.UpdateItemQuantity(ctx, item.ID, req.Quantity); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update cart line")
	}

	return s.view(ctx, userID)
}

func (s *service) RemoveItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) (*CartView, error) {
	cart, err := s.repo.GetOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}

	item, err := s.findOwnedItem(ctx, cart.ID, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteItem(ctx, item.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete cart line")
	}

	return s.view(ctx, userID)
}

func (s *service) Clear(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	cart, err := s.repo.GetOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}
	if err := s.repo.DeleteItems(ctx, cart.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear cart")
	}
	return s.view(ctx, userID)
}

func (s *service) findOwnedItem(ctx context.Context, cartID, itemID uuid.UUID) (*models.CartItem, error) {
	item, err := s.repo.FindItem(ctx, cartID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find cart line")
	}
	return item, nil
}

func (s *service) view(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	cart, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload cart")
	}
	return buildView(cart), nil
}
