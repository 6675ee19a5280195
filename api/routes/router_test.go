package routes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	authsvc "github.com/stitchline/stitchline-backend/internal/auth"
	cartsvc "github.com/stitchline/stitchline-backend/internal/cart"
	catalogsvc "github.com/stitchline/stitchline-backend/internal/catalog"
	checkoutsvc "github.com/stitchline/stitchline-backend/internal/checkout"
	contentsvc "github.com/stitchline/stitchline-backend/internal/content"
	orderssvc "github.com/stitchline/stitchline-backend/internal/orders"
	userssvc "github.com/stitchline/stitchline-backend/internal/users"
	pkgAuth "github.com/stitchline/stitchline-backend/pkg/auth"
	"github.com/stitchline/stitchline-backend/pkg/auth/session"
	"github.com/stitchline/stitchline-backend/pkg/config"
	"github.com/stitchline/stitchline-backend/pkg/logger"
	"github.com/stitchline/stitchline-backend/pkg/pagination"
	"github.com/stitchline/stitchline-backend/pkg/redis"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubSessionVerifier struct{}

func (stubSessionVerifier) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, req authsvc.LoginRequest) (*authsvc.LoginResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (stubAuthService) Refresh(ctx context.Context, req authsvc.RefreshRequest) (*authsvc.RefreshResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (stubAuthService) Logout(ctx context.Context, accessID string) error {
	return nil
}

type stubRegisterService struct{}

func (stubRegisterService) Register(ctx context.Context, req authsvc.RegisterRequest) (*authsvc.RegisterResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

type stubUsersService struct{}

func (stubUsersService) Me(ctx context.Context, userID uuid.UUID) (*userssvc.UserDTO, error) {
	return &userssvc.UserDTO{ID: userID}, nil
}

func (stubUsersService) UpdateProfile(ctx context.Context, userID uuid.UUID, req userssvc.UpdateProfileRequest) (*userssvc.UserDTO, error) {
	panic("unimplemented")
}

func (stubUsersService) ChangePassword(ctx context.Context, userID uuid.UUID, req userssvc.ChangePasswordRequest) error {
	panic("unimplemented")
}

func (stubUsersService) ChangeEmail(ctx context.Context, userID uuid.UUID, req userssvc.ChangeEmailRequest) (*userssvc.UserDTO, error) {
	panic("unimplemented")
}

func (stubUsersService) UpdateAvatar(ctx context.Context, userID uuid.UUID, req userssvc.UpdateAvatarRequest) (*userssvc.UserDTO, error) {
	panic("unimplemented")
}

func (stubUsersService) Archive(ctx context.Context, userID uuid.UUID) error {
	panic("unimplemented")
}

func (stubUsersService) Delete(ctx context.Context, userID uuid.UUID) error {
	panic("unimplemented")
}

type stubCartService struct{}

func (stubCartService) Get(ctx context.Context, userID uuid.UUID) (*cartsvc.CartView, error) {
	return &cartsvc.CartView{}, nil
}

func (stubCartService) AddItem(ctx context.Context, userID uuid.UUID, req cartsvc.AddItemRequest) (*cartsvc.CartView, error) {
	panic("unimplemented")
}

func (stubCartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, req cartsvc.UpdateItemRequest) (*cartsvc.CartView, error) {
	panic("unimplemented")
}

func (stubCartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*cartsvc.CartView, error) {
	panic("unimplemented")
}

func (stubCartService) Clear(ctx context.Context, userID uuid.UUID) (*cartsvc.CartView, error) {
	panic("unimplemented")
}

type stubCheckoutService struct{}

func (stubCheckoutService) CreateFromCart(ctx context.Context, userID uuid.UUID, req checkoutsvc.CreateOrderRequest) (*checkoutsvc.OrderSummary, error) {
	panic("unimplemented")
}

type stubOrdersService struct{}

func (stubOrdersService) List(ctx context.Context, userID uuid.UUID, params pagination.Params) (*orderssvc.OrderList, error) {
	panic("unimplemented")
}

func (stubOrdersService) Detail(ctx context.Context, userID, orderID uuid.UUID) (*orderssvc.OrderDetailDTO, error) {
	panic("unimplemented")
}

func (stubOrdersService) SetStatus(ctx context.Context, userID, orderID uuid.UUID, req orderssvc.UpdateStatusRequest) (*orderssvc.OrderDetailDTO, error) {
	panic("unimplemented")
}

func (stubOrdersService) Cancel(ctx context.Context, userID, orderID uuid.UUID) (*orderssvc.OrderDetailDTO, error) {
	panic("unimplemented")
}

func (stubOrdersService) RecomputeTotal(ctx context.Context, userID, orderID uuid.UUID) (*orderssvc.OrderDetailDTO, error) {
	panic("unimplemented")
}

func (stubOrdersService) Stats(ctx context.Context, userID uuid.UUID) (*orderssvc.OrderStats, error) {
	return &orderssvc.OrderStats{ByStatus: map[string]int64{}}, nil
}

type stubCatalogService struct{}

func (stubCatalogService) ListProducts(ctx context.Context, filters catalogsvc.ProductFilters, params pagination.Params) (*catalogsvc.ProductList, error) {
	return &catalogsvc.ProductList{}, nil
}

func (stubCatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*catalogsvc.ProductDTO, error) {
	panic("unimplemented")
}

func (stubCatalogService) CreateProduct(ctx context.Context, req catalogsvc.CreateProductRequest) (*catalogsvc.ProductDTO, error) {
	panic("unimplemented")
}

func (stubCatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, req catalogsvc.UpdateProductRequest) (*catalogsvc.ProductDTO, error) {
	panic("unimplemented")
}

func (stubCatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubCatalogService) AddVariant(ctx context.Context, productID uuid.UUID, req catalogsvc.CreateVariantRequest) (*catalogsvc.ProductDTO, error) {
	panic("unimplemented")
}

func (stubCatalogService) UpdateVariant(ctx context.Context, productID, variantID uuid.UUID, req catalogsvc.UpdateVariantRequest) (*catalogsvc.ProductDTO, error) {
	panic("unimplemented")
}

func (stubCatalogService) DeleteVariant(ctx context.Context, productID, variantID uuid.UUID) (*catalogsvc.ProductDTO, error) {
	panic("unimplemented")
}

func (stubCatalogService) AddImage(ctx context.Context, productID uuid.UUID, req catalogsvc.CreateImageRequest) (*catalogsvc.ProductDTO, error) {
	panic("unimplemented")
}

func (stubCatalogService) DeleteImage(ctx context.Context, productID, imageID uuid.UUID) (*catalogsvc.ProductDTO, error) {
	panic("unimplemented")
}

func (stubCatalogService) ListCategories(ctx context.Context, includeInactive bool) ([]catalogsvc.CategoryDTO, error) {
	return []catalogsvc.CategoryDTO{}, nil
}

func (stubCatalogService) CreateCategory(ctx context.Context, req catalogsvc.CreateCategoryRequest) (*catalogsvc.CategoryDTO, error) {
	panic("unimplemented")
}

func (stubCatalogService) UpdateCategory(ctx context.Context, id uuid.UUID, req catalogsvc.CreateCategoryRequest) (*catalogsvc.CategoryDTO, error) {
	panic("unimplemented")
}

func (stubCatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubCatalogService) ListSubcategories(ctx context.Context, categoryID *uuid.UUID, includeInactive bool) ([]catalogsvc.SubcategoryDTO, error) {
	panic("unimplemented")
}

func (stubCatalogService) CreateSubcategory(ctx context.Context, req catalogsvc.CreateSubcategoryRequest) (*catalogsvc.SubcategoryDTO, error) {
	panic("unimplemented")
}

func (stubCatalogService) UpdateSubcategory(ctx context.Context, id uuid.UUID, req catalogsvc.CreateSubcategoryRequest) (*catalogsvc.SubcategoryDTO, error) {
	panic("unimplemented")
}

func (stubCatalogService) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubCatalogService) ListSizes(ctx context.Context, includeInactive bool) ([]catalogsvc.SizeDTO, error) {
	panic("unimplemented")
}

func (stubCatalogService) CreateSize(ctx context.Context, req catalogsvc.CreateSizeRequest) (*catalogsvc.SizeDTO, error) {
	panic("unimplemented")
}

func (stubCatalogService) UpdateSize(ctx context.Context, id uuid.UUID, req catalogsvc.CreateSizeRequest) (*catalogsvc.SizeDTO, error) {
	panic("unimplemented")
}

func (stubCatalogService) DeleteSize(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubCatalogService) ListFabrics(ctx context.Context, includeInactive bool) ([]catalogsvc.FabricDTO, error) {
	panic("unimplemented")
}

func (stubCatalogService) CreateFabric(ctx context.Context, req catalogsvc.CreateFabricRequest) (*catalogsvc.FabricDTO, error) {
	panic("unimplemented")
}

func (stubCatalogService) UpdateFabric(ctx context.Context, id uuid.UUID, req catalogsvc.CreateFabricRequest) (*catalogsvc.FabricDTO, error) {
	panic("unimplemented")
}

func (stubCatalogService) DeleteFabric(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

type stubContentService struct{}

func (stubContentService) ListSliders(ctx context.Context, includeInactive bool) ([]contentsvc.SliderDTO, error) {
	return []contentsvc.SliderDTO{}, nil
}

func (stubContentService) CreateSlider(ctx context.Context, req contentsvc.SliderRequest) (*contentsvc.SliderDTO, error) {
	panic("unimplemented")
}

func (stubContentService) UpdateSlider(ctx context.Context, id uuid.UUID, req contentsvc.SliderRequest) (*contentsvc.SliderDTO, error) {
	panic("unimplemented")
}

func (stubContentService) DeleteSlider(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubContentService) ListSocialNetworks(ctx context.Context, includeInactive bool) ([]contentsvc.SocialNetworkDTO, error) {
	panic("unimplemented")
}

func (stubContentService) CreateSocialNetwork(ctx context.Context, req contentsvc.SocialNetworkRequest) (*contentsvc.SocialNetworkDTO, error) {
	panic("unimplemented")
}

func (stubContentService) UpdateSocialNetwork(ctx context.Context, id uuid.UUID, req contentsvc.SocialNetworkRequest) (*contentsvc.SocialNetworkDTO, error) {
	panic("unimplemented")
}

func (stubContentService) DeleteSocialNetwork(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubContentService) SubmitFeedback(ctx context.Context, req contentsvc.FeedbackRequest) (*contentsvc.FeedbackDTO, error) {
	return &contentsvc.FeedbackDTO{ID: uuid.New(), Name: req.Name}, nil
}

func (stubContentService) ListFeedback(ctx context.Context, params pagination.Params) (*contentsvc.FeedbackList, error) {
	panic("unimplemented")
}

func (stubContentService) ListDeliveryOptions(ctx context.Context, includeInactive bool) ([]contentsvc.DeliveryOptionDTO, error) {
	panic("unimplemented")
}

func (stubContentService) CreateDeliveryOption(ctx context.Context, req contentsvc.DeliveryOptionRequest) (*contentsvc.DeliveryOptionDTO, error) {
	panic("unimplemented")
}

func (stubContentService) UpdateDeliveryOption(ctx context.Context, id uuid.UUID, req contentsvc.DeliveryOptionRequest) (*contentsvc.DeliveryOptionDTO, error) {
	panic("unimplemented")
}

func (stubContentService) DeleteDeliveryOption(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubContentService) ListStoreLocations(ctx context.Context) ([]contentsvc.StoreLocationDTO, error) {
	panic("unimplemented")
}

func (stubContentService) CreateStoreLocation(ctx context.Context, req contentsvc.StoreLocationRequest) (*contentsvc.StoreLocationDTO, error) {
	panic("unimplemented")
}

func (stubContentService) UpdateStoreLocation(ctx context.Context, id uuid.UUID, req contentsvc.StoreLocationRequest) (*contentsvc.StoreLocationDTO, error) {
	panic("unimplemented")
}

func (stubContentService) DeleteStoreLocation(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubContentService) GetCompanyDetails(ctx context.Context) (*contentsvc.CompanyDetailsDTO, error) {
	panic("unimplemented")
}

func (stubContentService) UpdateCompanyDetails(ctx context.Context, req contentsvc.CompanyDetailsRequest) (*contentsvc.CompanyDetailsDTO, error) {
	panic("unimplemented")
}

func (stubContentService) GetSiteLogo(ctx context.Context) (*contentsvc.SiteLogoDTO, error) {
	panic("unimplemented")
}

func (stubContentService) UpdateSiteLogo(ctx context.Context, req contentsvc.SiteLogoRequest) (*contentsvc.SiteLogoDTO, error) {
	panic("unimplemented")
}

func (stubContentService) GetDeliveryPaymentInfo(ctx context.Context) (*contentsvc.DeliveryPaymentInfoDTO, error) {
	panic("unimplemented")
}

func (stubContentService) UpdateDeliveryPaymentInfo(ctx context.Context, req contentsvc.DeliveryPaymentInfoRequest) (*contentsvc.DeliveryPaymentInfoDTO, error) {
	panic("unimplemented")
}

func (stubContentService) GetAboutUs(ctx context.Context) (*contentsvc.AboutUsDTO, error) {
	panic("unimplemented")
}

func (stubContentService) UpdateAboutUs(ctx context.Context, req contentsvc.AboutUsRequest) (*contentsvc.AboutUsDTO, error) {
	panic("unimplemented")
}

func testRouterConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test"},
		JWT: config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 10},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		cfg,
		logg,
		stubPinger{},
		(*redis.Client)(nil),
		stubSessionVerifier{},
		nil,
		stubAuthService{},
		stubRegisterService{},
		stubUsersService{},
		stubCatalogService{},
		stubCartService{},
		stubCheckoutService{},
		stubOrdersService{},
		stubContentService{},
	)
}

func mintRouterToken(t *testing.T, cfg *config.Config, userID uuid.UUID) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: userID,
		Email:  "shopper@example.com",
		JTI:    session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(testRouterConfig())

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("X-Stitchline-Env"); got != "test" {
		t.Fatalf("expected env header test, got %q", got)
	}
}

func TestCatalogReadsNeedNoCredentials(t *testing.T) {
	router := newTestRouter(testRouterConfig())

	for _, path := range []string{"/api/v1/catalog/products", "/api/v1/catalog/categories", "/api/v1/content/sliders"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d (%s)", path, rec.Code, rec.Body.String())
		}
	}
}

func TestFeedbackSubmitIsPublic(t *testing.T) {
	router := newTestRouter(testRouterConfig())

	body := strings.NewReader(`{"name":"Iva","phone":"+359888000000","message":"lovely shirts"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/content/feedback", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestCartRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(testRouterConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestCatalogWritesRejectMissingJWT(t *testing.T) {
	router := newTestRouter(testRouterConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/products", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestCartSucceedsWithJWT(t *testing.T) {
	cfg := testRouterConfig()
	router := newTestRouter(cfg)
	token := mintRouterToken(t, cfg, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestOrderStatsWithJWT(t *testing.T) {
	cfg := testRouterConfig()
	router := newTestRouter(cfg)
	token := mintRouterToken(t, cfg, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}
