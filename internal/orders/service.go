package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stitchline/stitchline-backend/pkg/db/models"
	"github.com/stitchline/stitchline-backend/pkg/enums"
	pkgerrors "github.com/stitchline/stitchline-backend/pkg/errors"
	"github.com/stitchline/stitchline-backend/pkg/pagination"
)

const orderNotFoundMessage = "order not found"

// Service exposes the order lifecycle for a signed-in shopper.
type Service interface {
	List(ctx context.Context, userID uuid.UUID, params pagination.Params) (*OrderList, error)
	Detail(ctx context.Context, userID, orderID uuid.UUID) (*OrderDetailDTO, error)
	SetStatus(ctx context.Context, userID, orderID uuid.UUID, req UpdateStatusRequest) (*OrderDetailDTO, error)
	Cancel(ctx context.Context, userID, orderID uuid.UUID) (*OrderDetailDTO, error)
	RecomputeTotal(ctx context.Context, userID, orderID uuid.UUID) (*OrderDetailDTO, error)
	Stats(ctx context.Context, userID uuid.UUID) (*OrderStats, error)
}

type service struct {
	orders *Repository
}

// ServiceParams bundles the order service dependencies.
type ServiceParams struct {
	Orders *Repository
}

// NewService constructs the order service.
func NewService(params ServiceParams) (Service, error) {
	if params.Orders == nil {
		return nil, fmt.Errorf("order repository is required")
	}
	return &service{orders: params.Orders}, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, params pagination.Params) (*OrderList, error) {
	params = params.Normalize()
	rows, total, err := s.orders.ListForUser(ctx, userID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}
	out := &OrderList{
		Orders: make([]OrderDTO, 0, len(rows)),
		Page:   pagination.NewPage(params, total),
	}
	for i := range rows {
		out.Orders = append(out.Orders, orderFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Detail(ctx context.Context, userID, orderID uuid.UUID) (*OrderDetailDTO, error) {
	order, err := s.loadOwned(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	return detailFromModel(order), nil
}

// SetStatus applies any of the recognized labels. Transitions between labels
// are unrestricted; only the label set itself is enforced.
func (s *service) SetStatus(ctx context.Context, userID, orderID uuid.UUID, req UpdateStatusRequest) (*OrderDetailDTO, error) {
	status, err := enums.ParseOrderStatus(req.Status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}
	order, err := s.loadOwnedForWrite(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.orders.UpdateStatus(ctx, order.ID, status); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update order status")
	}
	return s.Detail(ctx, userID, orderID)
}

func (s *service) Cancel(ctx context.Context, userID, orderID uuid.UUID) (*OrderDetailDTO, error) {
	order, err := s.loadOwnedForWrite(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == enums.OrderStatusCancelled {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order is already cancelled")
	}
	if err := s.orders.UpdateStatus(ctx, order.ID, enums.OrderStatusCancelled); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "cancel order")
	}
	return s.Detail(ctx, userID, orderID)
}

// RecomputeTotal re-derives the stored total from the order's lines, for when
// lines were edited out of band. Delivery pricing never folds into it.
func (s *service) RecomputeTotal(ctx context.Context, userID, orderID uuid.UUID) (*OrderDetailDTO, error) {
	order, err := s.loadOwnedForWrite(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for i := range order.Items {
		item := &order.Items[i]
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if err := s.orders.UpdateTotal(ctx, order.ID, total); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "recompute order total")
	}
	return s.Detail(ctx, userID, orderID)
}

func (s *service) Stats(ctx context.Context, userID uuid.UUID) (*OrderStats, error) {
	counts, err := s.orders.CountByStatusForUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count orders")
	}
	out := &OrderStats{ByStatus: make(map[string]int64, len(enums.OrderStatuses()))}
	for _, status := range enums.OrderStatuses() {
		n := counts[status]
		out.ByStatus[status.String()] = n
		out.Total += n
	}
	return out, nil
}

// loadOwned resolves the order and hides other users' orders behind the same
// not-found error as missing ones.
// loadOwned backs the read paths: a foreign order reads as missing so order
// ids do not leak existence across accounts.
func (s *service) loadOwned(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID == nil || *order.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, orderNotFoundMessage)
	}
	return order, nil
}

// loadOwnedForWrite backs the mutating paths, which call out a foreign order
// explicitly rather than hiding it.
func (s *service) loadOwnedForWrite(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID == nil || *order.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "order belongs to another user")
	}
	return order, nil
}

func (s *service) load(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.orders.FindDetail(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, orderNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}
	return order, nil
}
