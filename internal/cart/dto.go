package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stitchline/stitchline-backend/pkg/db/models"
)

// AddItemRequest selects a variant and how many units to add.
type AddItemRequest struct {
	ProductVariantID uuid.UUID `json:"product_variant_id" validate:"required"`
	Quantity         int       `json:"quantity" validate:"omitempty,gte=1"`
}

// UpdateItemRequest sets the absolute quantity of an existing line. A value of
// zero or less removes the line.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartLine is one variant entry inside the cart view.
type CartLine struct {
	ItemID           uuid.UUID       `json:"item_id"`
	ProductVariantID uuid.UUID       `json:"product_variant_id"`
	ProductID        uuid.UUID       `json:"product_id"`
	ProductName      string          `json:"product_name"`
	SizeName         string          `json:"size_name"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Quantity         int             `json:"quantity"`
	LineTotal        decimal.Decimal `json:"line_total"`
}

// CartView is the full cart payload returned by every cart mutation. Totals
// are always derived from the current lines and prices, never stored.
type CartView struct {
	ID         uuid.UUID       `json:"id"`
	Items      []CartLine      `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func buildView(cart *models.Cart) *CartView {
	view := &CartView{
		ID:    cart.ID,
		Items: make([]CartLine, 0, len(cart.Items)),
	}
	for _, item := range cart.Items {
		line := CartLine{
			ItemID:           item.ID,
			ProductVariantID: item.ProductVariantID,
			Quantity:         item.Quantity,
		}
		if variant := item.ProductVariant; variant != nil {
			line.UnitPrice = variant.Price
			line.LineTotal = variant.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			line.ProductID = variant.ProductID
			if variant.Product != nil {
				line.ProductName = variant.Product.Name
			}
			if variant.Size != nil {
				line.SizeName = variant.Size.Name
			}
		}
		view.Items = append(view.Items, line)
		view.TotalItems += item.Quantity
		view.TotalPrice = view.TotalPrice.Add(line.LineTotal)
	}
	return view
}
