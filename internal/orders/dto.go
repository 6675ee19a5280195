package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stitchline/stitchline-backend/pkg/db/models"
	"github.com/stitchline/stitchline-backend/pkg/enums"
	"github.com/stitchline/stitchline-backend/pkg/pagination"
)

// OrderItemDTO is a single frozen line on an order.
type OrderItemDTO struct {
	ID               uuid.UUID       `json:"id"`
	ProductVariantID uuid.UUID       `json:"product_variant_id"`
	ProductName      string          `json:"product_name,omitempty"`
	SizeName         string          `json:"size_name,omitempty"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Subtotal         decimal.Decimal `json:"subtotal"`
}

// OrderDTO is the list-view shape of an order.
type OrderDTO struct {
	ID          uuid.UUID         `json:"id"`
	Status      enums.OrderStatus `json:"status"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	ItemCount   int               `json:"item_count"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// OrderDetailDTO is the full order payload with contact and delivery data.
type OrderDetailDTO struct {
	ID             uuid.UUID         `json:"id"`
	Status         enums.OrderStatus `json:"status"`
	FirstName      string            `json:"first_name"`
	LastName       string            `json:"last_name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Address        string            `json:"address"`
	DeliveryOption *DeliveryInfo     `json:"delivery_option,omitempty"`
	TotalAmount    decimal.Decimal   `json:"total_amount"`
	Items          []OrderItemDTO    `json:"items"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// DeliveryInfo echoes the delivery option attached to an order.
type DeliveryInfo struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// OrderList wraps a page of the caller's orders.
type OrderList struct {
	Orders []OrderDTO      `json:"orders"`
	Page   pagination.Page `json:"page"`
}

// UpdateStatusRequest carries the raw status label to apply.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderStats summarizes the caller's orders per status.
type OrderStats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

func orderFromModel(m *models.Order) OrderDTO {
	return OrderDTO{
		ID:          m.ID,
		Status:      m.Status,
		TotalAmount: m.TotalAmount,
		ItemCount:   len(m.Items),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func detailFromModel(m *models.Order) *OrderDetailDTO {
	out := &OrderDetailDTO{
		ID:          m.ID,
		Status:      m.Status,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		Phone:       m.Phone,
		Address:     m.Address,
		TotalAmount: m.TotalAmount,
		Items:       make([]OrderItemDTO, 0, len(m.Items)),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.DeliveryOption != nil {
		out.DeliveryOption = &DeliveryInfo{
			ID:    m.DeliveryOption.ID,
			Name:  m.DeliveryOption.Name,
			Price: m.DeliveryOption.Price,
		}
	}
	for i := range m.Items {
		item := &m.Items[i]
		dto := OrderItemDTO{
			ID:               item.ID,
			ProductVariantID: item.ProductVariantID,
			Quantity:         item.Quantity,
			UnitPrice:        item.UnitPrice,
			Subtotal:         item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		}
		if item.ProductVariant != nil {
			if item.ProductVariant.Product != nil {
				dto.ProductName = item.ProductVariant.Product.Name
			}
			if item.ProductVariant.Size != nil {
				dto.SizeName = item.ProductVariant.Size.Name
			}
		}
		out.Items = append(out.Items, dto)
	}
	return out
}
