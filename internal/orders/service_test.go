package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/stitchline/stitchline-backend/pkg/db/models"
	"github.com/stitchline/stitchline-backend/pkg/enums"
	pkgerrors "github.com/stitchline/stitchline-backend/pkg/errors"
	"github.com/stitchline/stitchline-backend/pkg/pagination"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	ddl := []string{`
CREATE TABLE IF NOT EXISTS sizes (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1
);`, `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  category_id TEXT NOT NULL,
  subcategory_id TEXT,
  fabric_id TEXT,
  image_url TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  is_promotion INTEGER NOT NULL DEFAULT 0,
  is_new INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS product_variants (
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL,
  size_id TEXT NOT NULL,
  price TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1
);`, `
CREATE TABLE IF NOT EXISTS delivery_options (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  price TEXT NOT NULL DEFAULT '0',
  is_active INTEGER NOT NULL DEFAULT 1
);`, `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  user_id TEXT,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL,
  address TEXT NOT NULL,
  delivery_option_id TEXT,
  total_amount TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_variant_id TEXT NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 1,
  unit_price TEXT NOT NULL DEFAULT '0'
);`}
	for _, stmt := range ddl {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}

func newOrderService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	conn := setupOrdersTestDB(t)
	svc, err := NewService(ServiceParams{Orders: NewRepository(conn)})
	require.NoError(t, err)
	return svc, conn
}

type orderSeed struct {
	userID    uuid.UUID
	status    enums.OrderStatus
	total     string
	createdAt time.Time
	delivery  *models.DeliveryOption
}

func mustSeedOrder(t *testing.T, conn *gorm.DB, seed orderSeed) *models.Order {
	t.Helper()
	if seed.status == "" {
		seed.status = enums.OrderStatusPending
	}
	if seed.total == "" {
		seed.total = "10.00"
	}
	if seed.createdAt.IsZero() {
		seed.createdAt = time.Now()
	}
	row := &models.Order{
		ID:          uuid.New(),
		UserID:      &seed.userID,
		FirstName:   "Ivan",
		LastName:    "Dimitrov",
		Email:       "ivan@example.com",
		Phone:       "+35988000000",
		Address:     "4 Graf Ignatiev St, Plovdiv",
		TotalAmount: decimal.RequireFromString(seed.total),
		Status:      seed.status,
		CreatedAt:   seed.createdAt,
	}
	if seed.delivery != nil {
		row.DeliveryOptionID = &seed.delivery.ID
	}
	require.NoError(t, conn.Create(row).Error)
	return row
}

func mustSeedOrderItem(t *testing.T, conn *gorm.DB, orderID uuid.UUID, qty int, unitPrice string) *models.OrderItem {
	t.Helper()
	item := &models.OrderItem{
		ID:               uuid.New(),
		OrderID:          orderID,
		ProductVariantID: uuid.New(),
		Quantity:         qty,
		UnitPrice:        decimal.RequireFromString(unitPrice),
	}
	require.NoError(t, conn.Create(item).Error)
	return item
}

func TestListNewestFirstAndScopedToUser(t *testing.T) {
	svc, conn := newOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	older := mustSeedOrder(t, conn, orderSeed{userID: userID, createdAt: time.Now().Add(-2 * time.Hour)})
	newer := mustSeedOrder(t, conn, orderSeed{userID: userID, createdAt: time.Now().Add(-time.Minute)})
	mustSeedOrder(t, conn, orderSeed{userID: uuid.New()})

	list, err := svc.List(ctx, userID, pagination.Params{})
	require.NoError(t, err)
	require.Len(t, list.Orders, 2)
	assert.Equal(t, newer.ID, list.Orders[0].ID)
	assert.Equal(t, older.ID, list.Orders[1].ID)
	assert.Equal(t, int64(2), list.Page.Total)

	page, err := svc.List(ctx, userID, pagination.Params{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page.Orders, 1)
	assert.Equal(t, older.ID, page.Orders[0].ID)
}

func TestDetailHidesForeignOrders(t *testing.T) {
	svc, conn := newOrderService(t)
	ctx := context.Background()
	owner := uuid.New()

	order := mustSeedOrder(t, conn, orderSeed{userID: owner})
	mustSeedOrderItem(t, conn, order.ID, 2, "15.00")

	detail, err := svc.Detail(ctx, owner, order.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.True(t, decimal.RequireFromString("30.00").Equal(detail.Items[0].Subtotal))

	_, err = svc.Detail(ctx, uuid.New(), order.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	_, err = svc.Detail(ctx, owner, uuid.New())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestMutationsOnForeignOrdersAreForbidden(t *testing.T) {
	svc, conn := newOrderService(t)
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	order := mustSeedOrder(t, conn, orderSeed{userID: owner})
	mustSeedOrderItem(t, conn, order.ID, 1, "10.00")

	_, err := svc.SetStatus(ctx, stranger, order.ID, UpdateStatusRequest{Status: "shipped"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeForbidden, pkgerrors.As(err).Code())

	_, err = svc.Cancel(ctx, stranger, order.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeForbidden, pkgerrors.As(err).Code())

	_, err = svc.RecomputeTotal(ctx, stranger, order.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeForbidden, pkgerrors.As(err).Code())

	// A missing order is still a plain not-found on the write paths.
	_, err = svc.Cancel(ctx, owner, uuid.New())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestSetStatusAcceptsAnyKnownLabel(t *testing.T) {
	svc, conn := newOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	order := mustSeedOrder(t, conn, orderSeed{userID: userID, status: enums.OrderStatusDelivered})

	// No transition graph: delivered back to pending is allowed.
	detail, err := svc.SetStatus(ctx, userID, order.ID, UpdateStatusRequest{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPending, detail.Status)

	_, err = svc.SetStatus(ctx, userID, order.ID, UpdateStatusRequest{Status: "teleported"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestCancelTwiceFails(t *testing.T) {
	svc, conn := newOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	order := mustSeedOrder(t, conn, orderSeed{userID: userID})

	detail, err := svc.Cancel(ctx, userID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusCancelled, detail.Status)

	_, err = svc.Cancel(ctx, userID, order.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())
}

func TestRecomputeTotal(t *testing.T) {
	svc, conn := newOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	delivery := &models.DeliveryOption{
		ID:       uuid.New(),
		Name:     "Express " + uuid.NewString(),
		Price:    decimal.RequireFromString("7.50"),
		IsActive: true,
	}
	require.NoError(t, conn.Create(delivery).Error)

	order := mustSeedOrder(t, conn, orderSeed{userID: userID, total: "0.00", delivery: delivery})
	mustSeedOrderItem(t, conn, order.ID, 2, "20.00")
	mustSeedOrderItem(t, conn, order.ID, 1, "5.00")

	detail, err := svc.RecomputeTotal(ctx, userID, order.ID)
	require.NoError(t, err)
	// 2 x 20.00 + 5.00; the delivery price stays out of the total
	assert.True(t, decimal.RequireFromString("45.00").Equal(detail.TotalAmount))
}

func TestStatsCountsPerStatus(t *testing.T) {
	svc, conn := newOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	mustSeedOrder(t, conn, orderSeed{userID: userID, status: enums.OrderStatusPending})
	mustSeedOrder(t, conn, orderSeed{userID: userID, status: enums.OrderStatusPending})
	mustSeedOrder(t, conn, orderSeed{userID: userID, status: enums.OrderStatusShipped})
	mustSeedOrder(t, conn, orderSeed{userID: uuid.New(), status: enums.OrderStatusPending})

	stats, err := svc.Stats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.ByStatus["pending"])
	assert.Equal(t, int64(1), stats.ByStatus["shipped"])
	assert.Equal(t, int64(0), stats.ByStatus["cancelled"])
}
