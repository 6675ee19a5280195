package content

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/stitchline/stitchline-backend/pkg/errors"
	"github.com/stitchline/stitchline-backend/pkg/pagination"
)

func setupContentTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	ddl := []string{`
CREATE TABLE IF NOT EXISTS sliders (
  id TEXT PRIMARY KEY,
  image_url TEXT NOT NULL,
  alt_text TEXT NOT NULL DEFAULT '',
  position INTEGER NOT NULL DEFAULT 0,
  is_active INTEGER NOT NULL DEFAULT 1
);`, `
CREATE TABLE IF NOT EXISTS social_networks (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  icon_url TEXT NOT NULL,
  link TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1
);`, `
CREATE TABLE IF NOT EXISTS feedback (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  phone TEXT NOT NULL,
  message TEXT NOT NULL,
  created_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS delivery_options (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  price TEXT NOT NULL DEFAULT '0',
  is_active INTEGER NOT NULL DEFAULT 1
);`, `
CREATE TABLE IF NOT EXISTS store_locations (
  id TEXT PRIMARY KEY,
  city TEXT NOT NULL,
  address TEXT NOT NULL,
  work_schedule TEXT NOT NULL
);`, `
CREATE TABLE IF NOT EXISTS company_details (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  name TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS site_logos (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  logo_url TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS delivery_payment_info (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  delivery_info TEXT NOT NULL DEFAULT '',
  payment_info TEXT NOT NULL DEFAULT '',
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS about_us (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  title TEXT NOT NULL DEFAULT '',
  content TEXT NOT NULL DEFAULT '',
  created_at DATETIME,
  updated_at DATETIME
);`}
	for _, stmt := range ddl {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}

func newContentService(t *testing.T) Service {
	t.Helper()
	conn := setupContentTestDB(t)
	svc, err := NewService(ServiceParams{Repo: NewRepository(conn)})
	require.NoError(t, err)
	return svc
}

func TestSliderLifecycle(t *testing.T) {
	svc := newContentService(t)
	ctx := context.Background()

	first, err := svc.CreateSlider(ctx, SliderRequest{ImageURL: "https://cdn.example.com/a.jpg", Position: 2})
	require.NoError(t, err)
	assert.True(t, first.IsActive)

	hidden := false
	second, err := svc.CreateSlider(ctx, SliderRequest{ImageURL: "https://cdn.example.com/b.jpg", Position: 1, IsActive: &hidden})
	require.NoError(t, err)

	visible, err := svc.ListSliders(ctx, false)
	require.NoError(t, err)
	for _, s := range visible {
		assert.NotEqual(t, second.ID, s.ID)
	}

	all, err := svc.ListSliders(ctx, true)
	require.NoError(t, err)
	// Ordered by position, so the hidden slider at position 1 leads.
	var positions []int
	for _, s := range all {
		if s.ID == first.ID || s.ID == second.ID {
			positions = append(positions, s.Position)
		}
	}
	require.Len(t, positions, 2)
	assert.LessOrEqual(t, positions[0], positions[1])

	updated, err := svc.UpdateSlider(ctx, first.ID, SliderRequest{ImageURL: "https://cdn.example.com/a2.jpg", Position: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Position)

	require.NoError(t, svc.DeleteSlider(ctx, first.ID))
	err = svc.DeleteSlider(ctx, first.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestFeedbackSubmitAndList(t *testing.T) {
	svc := newContentService(t)
	ctx := context.Background()

	marker := "hello " + uuid.NewString()
	submitted, err := svc.SubmitFeedback(ctx, FeedbackRequest{
		Name:    "  Maria  ",
		Phone:   "+359890000000",
		Message: marker,
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria", submitted.Name)
	assert.NotEqual(t, uuid.Nil, submitted.ID)

	list, err := svc.ListFeedback(ctx, pagination.Params{})
	require.NoError(t, err)
	found := false
	for _, f := range list.Feedback {
		if f.ID == submitted.ID {
			found = true
			assert.Equal(t, marker, f.Message)
		}
	}
	assert.True(t, found)
}

func TestDeliveryOptionActiveFiltering(t *testing.T) {
	svc := newContentService(t)
	ctx := context.Background()

	option, err := svc.CreateDeliveryOption(ctx, DeliveryOptionRequest{
		Name:  "Econt " + uuid.NewString(),
		Price: decimal.RequireFromString("4.50"),
	})
	require.NoError(t, err)

	off := false
	_, err = svc.UpdateDeliveryOption(ctx, option.ID, DeliveryOptionRequest{
		Name:     option.Name,
		Price:    option.Price,
		IsActive: &off,
	})
	require.NoError(t, err)

	active, err := svc.ListDeliveryOptions(ctx, false)
	require.NoError(t, err)
	for _, o := range active {
		assert.NotEqual(t, option.ID, o.ID)
	}

	_, err = svc.CreateDeliveryOption(ctx, DeliveryOptionRequest{
		Name:  "Bad",
		Price: decimal.RequireFromString("-1"),
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestStoreLocationCRUD(t *testing.T) {
	svc := newContentService(t)
	ctx := context.Background()

	loc, err := svc.CreateStoreLocation(ctx, StoreLocationRequest{
		City:         "Varna",
		Address:      "1 Sea Garden",
		WorkSchedule: "Mon-Sat 10:00-19:00",
	})
	require.NoError(t, err)

	moved, err := svc.UpdateStoreLocation(ctx, loc.ID, StoreLocationRequest{
		City:         "Varna",
		Address:      "2 Sea Garden",
		WorkSchedule: "Mon-Sun 10:00-20:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "2 Sea Garden", moved.Address)

	require.NoError(t, svc.DeleteStoreLocation(ctx, loc.ID))
	_, err = svc.UpdateStoreLocation(ctx, loc.ID, StoreLocationRequest{City: "x", Address: "y", WorkSchedule: "z"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestSingletonsReturnTheSameRow(t *testing.T) {
	svc := newContentService(t)
	ctx := context.Background()

	// First read creates the fixed row; later reads and writes keep hitting it.
	initial, err := svc.GetCompanyDetails(ctx)
	require.NoError(t, err)
	assert.Empty(t, initial.Name)

	updated, err := svc.UpdateCompanyDetails(ctx, CompanyDetailsRequest{Name: "Stitchline Ltd", Description: "knitwear"})
	require.NoError(t, err)
	assert.Equal(t, "Stitchline Ltd", updated.Name)

	again, err := svc.GetCompanyDetails(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Stitchline Ltd", again.Name)

	logoURL := "https://cdn.example.com/logo.svg"
	logo, err := svc.UpdateSiteLogo(ctx, SiteLogoRequest{LogoURL: &logoURL})
	require.NoError(t, err)
	require.NotNil(t, logo.LogoURL)

	cleared, err := svc.UpdateSiteLogo(ctx, SiteLogoRequest{})
	require.NoError(t, err)
	assert.Nil(t, cleared.LogoURL)

	info, err := svc.UpdateDeliveryPaymentInfo(ctx, DeliveryPaymentInfoRequest{DeliveryInfo: "2-3 days", PaymentInfo: "card or cash"})
	require.NoError(t, err)
	assert.Equal(t, "2-3 days", info.DeliveryInfo)

	about, err := svc.UpdateAboutUs(ctx, AboutUsRequest{Title: "About us", Content: "Since 1998."})
	require.NoError(t, err)
	assert.Equal(t, "About us", about.Title)

	aboutAgain, err := svc.GetAboutUs(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Since 1998.", aboutAgain.Content)
}
