package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stitchline/stitchline-backend/internal/cart"
	"github.com/stitchline/stitchline-backend/pkg/db/models"
	"github.com/stitchline/stitchline-backend/pkg/enums"
	pkgerrors "github.com/stitchline/stitchline-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type deliveryOptionFinder interface {
	FindActiveDeliveryOption(ctx context.Context, id uuid.UUID) (*models.DeliveryOption, error)
}

// Service converts a user's cart into an order.
type Service interface {
	CreateFromCart(ctx context.Context, userID uuid.UUID, req CreateOrderRequest) (*OrderSummary, error)
}

type service struct {
	db       txRunner
	orders   *Repository
	carts    *cart.Repository
	delivery deliveryOptionFinder
}

// ServiceParams bundles the checkout service dependencies.
type ServiceParams struct {
	DB       txRunner
	Orders   *Repository
	Carts    *cart.Repository
	Delivery deliveryOptionFinder
}

// NewService constructs the checkout service.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("order repository is required")
	}
	if params.Carts == nil {
		return nil, fmt.Errorf("cart repository is required")
	}
	if params.Delivery == nil {
		return nil, fmt.Errorf("delivery option finder is required")
	}
	return &service{
		db:       params.DB,
		orders:   params.Orders,
		carts:    params.Carts,
		delivery: params.Delivery,
	}, nil
}

// CreateFromCart snapshots the cart into an order. Unit prices are copied from
// the variants at this moment; later catalog edits do not touch placed orders.
// The order insert and the cart wipe share one transaction, so a failure on
// either side leaves the cart exactly as it was.
func (s *service) CreateFromCart(ctx context.Context, userID uuid.UUID, req CreateOrderRequest) (*OrderSummary, error) {
	delivery, err := s.delivery.FindActiveDeliveryOption(ctx, req.DeliveryOptionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "delivery option not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve delivery option")
	}

	cartRow, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}
	if len(cartRow.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	// TotalAmount covers the item lines only; the delivery price rides along
	// on the summary as its own field.
	total := decimal.Zero
	order := &models.Order{
		UserID:           &userID,
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:            strings.TrimSpace(req.Phone),
		Address:          strings.TrimSpace(req.Address),
		DeliveryOptionID: &delivery.ID,
		Status:           enums.OrderStatusPending,
	}
	for i := range cartRow.Items {
		item := &cartRow.Items[i]
		if item.ProductVariant == nil {
			return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart item missing variant")
		}
		unitPrice := item.ProductVariant.Price
		total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		order.Items = append(order.Items, models.OrderItem{
			ProductVariantID: item.ProductVariantID,
			Quantity:         item.Quantity,
			UnitPrice:        unitPrice,
		})
	}
	order.TotalAmount = total

	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.orders.WithTx(tx).CreateOrder(ctx, order); err != nil {
			return err
		}
		return s.carts.WithTx(tx).DeleteItems(ctx, cartRow.ID)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "could not create order")
	}
	return summaryFromModel(order, delivery.Price), nil
}
