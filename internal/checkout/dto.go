package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stitchline/stitchline-backend/pkg/db/models"
	"github.com/stitchline/stitchline-backend/pkg/enums"
)

// CreateOrderRequest is the checkout payload. Contact fields are captured on
// the order itself so the record stays complete even if the account changes
// or is removed later.
type CreateOrderRequest struct {
	DeliveryOptionID uuid.UUID `json:"delivery_option_id" validate:"required"`
	FirstName        string    `json:"first_name" validate:"required,max=150"`
	LastName         string    `json:"last_name" validate:"required,max=150"`
	Email            string    `json:"email" validate:"required,email"`
	Phone            string    `json:"phone" validate:"required,max=32"`
	Address          string    `json:"address" validate:"required"`
}

// OrderLine is one frozen cart line inside the created order.
type OrderLine struct {
	ID               uuid.UUID       `json:"id"`
	ProductVariantID uuid.UUID       `json:"product_variant_id"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Subtotal         decimal.Decimal `json:"subtotal"`
}

// OrderSummary is the response for a successful checkout.
type OrderSummary struct {
	ID               uuid.UUID         `json:"id"`
	Status           enums.OrderStatus `json:"status"`
	DeliveryOptionID *uuid.UUID        `json:"delivery_option_id,omitempty"`
	DeliveryPrice    decimal.Decimal   `json:"delivery_price"`
	TotalAmount      decimal.Decimal   `json:"total_amount"`
	Items            []OrderLine       `json:"items"`
	CreatedAt        time.Time         `json:"created_at"`
}

func summaryFromModel(order *models.Order, deliveryPrice decimal.Decimal) *OrderSummary {
	out := &OrderSummary{
		ID:               order.ID,
		Status:           order.Status,
		DeliveryOptionID: order.DeliveryOptionID,
		DeliveryPrice:    deliveryPrice,
		TotalAmount:      order.TotalAmount,
		Items:            make([]OrderLine, 0, len(order.Items)),
		CreatedAt:        order.CreatedAt,
	}
	for i := range order.Items {
		item := &order.Items[i]
		out.Items = append(out.Items, OrderLine{
			ID:               item.ID,
			ProductVariantID: item.ProductVariantID,
			Quantity:         item.Quantity,
			UnitPrice:        item.UnitPrice,
			Subtotal:         item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}
	return out
}
