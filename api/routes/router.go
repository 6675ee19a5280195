package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stitchline/stitchline-backend/api/controllers"
	"github.com/stitchline/stitchline-backend/api/middleware"
	authsvc "github.com/stitchline/stitchline-backend/internal/auth"
	cartsvc "github.com/stitchline/stitchline-backend/internal/cart"
	catalogsvc "github.com/stitchline/stitchline-backend/internal/catalog"
	checkoutsvc "github.com/stitchline/stitchline-backend/internal/checkout"
	contentsvc "github.com/stitchline/stitchline-backend/internal/content"
	orderssvc "github.com/stitchline/stitchline-backend/internal/orders"
	userssvc "github.com/stitchline/stitchline-backend/internal/users"
	"github.com/stitchline/stitchline-backend/pkg/auth/session"
	"github.com/stitchline/stitchline-backend/pkg/config"
	"github.com/stitchline/stitchline-backend/pkg/db"
	"github.com/stitchline/stitchline-backend/pkg/logger"
	"github.com/stitchline/stitchline-backend/pkg/metrics"
	"github.com/stitchline/stitchline-backend/pkg/redis"
)

// NewRouter assembles the HTTP surface: health probes, metrics, the public
// storefront reads, and the authenticated account/cart/order/admin routes.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	sessionVerifier session.AccessSessionChecker,
	httpMetrics *metrics.HTTPMetrics,
	authService authsvc.Service,
	registerService authsvc.RegisterService,
	usersService userssvc.Service,
	catalogService catalogsvc.Service,
	cartService cartsvc.Service,
	checkoutService checkoutsvc.Service,
	ordersService orderssvc.Service,
	contentService contentsvc.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)
	if httpMetrics != nil {
		r.Use(httpMetrics.Middleware)
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, redisClient))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.Register(registerService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.Login(authService, logg))
		r.Post("/refresh", controllers.Refresh(authService, logg))
		r.With(middleware.Auth(cfg.JWT, sessionVerifier, logg)).Post("/logout", controllers.Logout(authService, logg))
	})

	// Storefront reads need no credentials; feedback submission is open too.
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", controllers.ProductList(catalogService, logg))
		r.Get("/products/{productId}", controllers.ProductGet(catalogService, logg))
		r.Get("/categories", controllers.CategoryList(catalogService, logg))
		r.Get("/subcategories", controllers.SubcategoryList(catalogService, logg))
		r.Get("/sizes", controllers.SizeList(catalogService, logg))
		r.Get("/fabrics", controllers.FabricList(catalogService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, sessionVerifier, logg))
			r.Post("/products", controllers.ProductCreate(catalogService, logg))
			r.Put("/products/{productId}", controllers.ProductUpdate(catalogService, logg))
			r.Patch("/products/{productId}", controllers.ProductUpdate(catalogService, logg))
			r.Delete("/products/{productId}", controllers.ProductDelete(catalogService, logg))
			r.Post("/products/{productId}/variants", controllers.VariantCreate(catalogService, logg))
			r.Put("/products/{productId}/variants/{variantId}", controllers.VariantUpdate(catalogService, logg))
			r.Patch("/products/{productId}/variants/{variantId}", controllers.VariantUpdate(catalogService, logg))
			r.Delete("/products/{productId}/variants/{variantId}", controllers.VariantDelete(catalogService, logg))
			r.Post("/products/{productId}/images", controllers.ImageCreate(catalogService, logg))
			r.Delete("/products/{productId}/images/{imageId}", controllers.ImageDelete(catalogService, logg))

			r.Post("/categories", controllers.CategoryCreate(catalogService, logg))
			r.Put("/categories/{categoryId}", controllers.CategoryUpdate(catalogService, logg))
			r.Delete("/categories/{categoryId}", controllers.CategoryDelete(catalogService, logg))
			r.Post("/subcategories", controllers.SubcategoryCreate(catalogService, logg))
			r.Put("/subcategories/{subcategoryId}", controllers.SubcategoryUpdate(catalogService, logg))
			r.Delete("/subcategories/{subcategoryId}", controllers.SubcategoryDelete(catalogService, logg))
			r.Post("/sizes", controllers.SizeCreate(catalogService, logg))
			r.Put("/sizes/{sizeId}", controllers.SizeUpdate(catalogService, logg))
			r.Delete("/sizes/{sizeId}", controllers.SizeDelete(catalogService, logg))
			r.Post("/fabrics", controllers.FabricCreate(catalogService, logg))
			r.Put("/fabrics/{fabricId}", controllers.FabricUpdate(catalogService, logg))
			r.Delete("/fabrics/{fabricId}", controllers.FabricDelete(catalogService, logg))
		})
	})

	r.Route("/api/v1/content", func(r chi.Router) {
		r.Get("/sliders", controllers.SliderList(contentService, logg))
		r.Get("/social-networks", controllers.SocialNetworkList(contentService, logg))
		r.Get("/delivery-options", controllers.DeliveryOptionList(contentService, logg))
		r.Get("/store-locations", controllers.StoreLocationList(contentService, logg))
		r.Get("/company-details", controllers.CompanyDetailsGet(contentService, logg))
		r.Get("/site-logo", controllers.SiteLogoGet(contentService, logg))
		r.Get("/delivery-payment-info", controllers.DeliveryPaymentInfoGet(contentService, logg))
		r.Get("/about-us", controllers.AboutUsGet(contentService, logg))
		r.Post("/feedback", controllers.FeedbackSubmit(contentService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, sessionVerifier, logg))
			r.Get("/feedback", controllers.FeedbackList(contentService, logg))
			r.Post("/sliders", controllers.SliderCreate(contentService, logg))
			r.Put("/sliders/{sliderId}", controllers.SliderUpdate(contentService, logg))
			r.Delete("/sliders/{sliderId}", controllers.SliderDelete(contentService, logg))
			r.Post("/social-networks", controllers.SocialNetworkCreate(contentService, logg))
			r.Put("/social-networks/{socialNetworkId}", controllers.SocialNetworkUpdate(contentService, logg))
			r.Delete("/social-networks/{socialNetworkId}", controllers.SocialNetworkDelete(contentService, logg))
			r.Post("/delivery-options", controllers.DeliveryOptionCreate(contentService, logg))
			r.Put("/delivery-options/{deliveryOptionId}", controllers.DeliveryOptionUpdate(contentService, logg))
			r.Delete("/delivery-options/{deliveryOptionId}", controllers.DeliveryOptionDelete(contentService, logg))
			r.Post("/store-locations", controllers.StoreLocationCreate(contentService, logg))
			r.Put("/store-locations/{storeLocationId}", controllers.StoreLocationUpdate(contentService, logg))
			r.Delete("/store-locations/{storeLocationId}", controllers.StoreLocationDelete(contentService, logg))
			r.Put("/company-details", controllers.CompanyDetailsUpdate(contentService, logg))
			r.Put("/site-logo", controllers.SiteLogoUpdate(contentService, logg))
			r.Put("/delivery-payment-info", controllers.DeliveryPaymentInfoUpdate(contentService, logg))
			r.Put("/about-us", controllers.AboutUsUpdate(contentService, logg))
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionVerifier, logg))

		r.Route("/api/v1/users", func(r chi.Router) {
			r.Get("/me", controllers.Me(usersService, logg))
			r.Get("/profile", controllers.Me(usersService, logg))
			r.Put("/profile", controllers.UpdateProfile(usersService, logg))
			r.Patch("/profile", controllers.UpdateProfile(usersService, logg))
			r.Post("/change-password", controllers.ChangePassword(usersService, logg))
			r.Post("/change-email", controllers.ChangeEmail(usersService, logg))
			r.Post("/update-avatar", controllers.UpdateAvatar(usersService, logg))
			r.Post("/archive-account", controllers.ArchiveAccount(usersService, logg))
			r.Delete("/delete-account", controllers.DeleteAccount(usersService, logg))
		})

		r.Route("/api/v1/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(cartService, logg))
			r.Post("/add", controllers.CartAddItem(cartService, logg))
			r.Put("/update/{itemId}", controllers.CartUpdateItem(cartService, logg))
			r.Patch("/update/{itemId}", controllers.CartUpdateItem(cartService, logg))
			r.Delete("/remove/{itemId}", controllers.CartRemoveItem(cartService, logg))
			r.Delete("/clear", controllers.CartClear(cartService, logg))
		})

		r.Route("/api/v1/orders", func(r chi.Router) {
			r.Post("/create", controllers.OrderCreate(checkoutService, logg))
			r.Get("/", controllers.OrderList(ordersService, logg))
			r.Get("/stats", controllers.OrderStats(ordersService, logg))
			r.Get("/{orderId}", controllers.OrderDetail(ordersService, logg))
			r.Put("/{orderId}/update-status", controllers.OrderUpdateStatus(ordersService, logg))
			r.Patch("/{orderId}/update-status", controllers.OrderUpdateStatus(ordersService, logg))
			r.Post("/{orderId}/cancel", controllers.OrderCancel(ordersService, logg))
		})
	})

	return r
}
