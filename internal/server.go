package internal

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"asset-management-api/internal/auth"
	"asset-management-api/internal/config"
	"asset-management-api/internal/models"
	"asset-management-api/internal/service"
	"asset-management-api/internal/store"
	"asset-management-api/pkg/export"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Server struct {
	DB         *sql.DB
	Pool       *pgxpool.Pool
	Router     *chi.Mux
	JWTManager *auth.JWTManager
	Metrics    *Metrics

	Auth       *service.AuthService
	Users      *service.UserService
	Roles      *service.RoleService
	Categories *service.CategoryService
	Brands     *service.BrandService
	Locations  *service.LocationService
	Assets     *service.AssetService
	Orders     *service.PurchaseOrderService
	Vendors    *service.VendorService
	Exporter   *export.Exporter
}

func NewServer(cfg *config.Config) *Server {
	db, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Also create a pgxpool for the exporter
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to create pgxpool:", err)
	}

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTExpiry)
	if err := jwtManager.ValidateConfig(); err != nil {
		log.Fatal("JWT configuration validation failed:", err)
	}

	mapping, err := export.LoadMapping("configs/export/assets.yaml")
	if err != nil {
		log.Fatal("Failed to load export mapping:", err)
	}

	users := store.NewUserStore(db)
	roles := store.NewRoleStore(db)
	categories := store.NewCategoryStore(db)
	brands := store.NewBrandStore(db)
	locations := store.NewLocationStore(db)
	assets := store.NewAssetStore(db)
	orders := store.NewPurchaseOrderStore(db)
	vendors := store.NewVendorStore(db)

	s := &Server{
		DB:         db,
		Pool:       pool,
		Router:     chi.NewRouter(),
		JWTManager: jwtManager,
		Metrics:    NewMetrics(),

		Auth:       service.NewAuthService(users, jwtManager),
		Users:      service.NewUserService(users, roles),
		Roles:      service.NewRoleService(roles),
		Categories: service.NewCategoryService(categories),
		Brands:     service.NewBrandService(brands),
		Locations:  service.NewLocationService(locations),
		Assets:     service.NewAssetService(assets, categories, brands, locations, users),
		Orders:     service.NewPurchaseOrderService(orders, users),
		Vendors:    service.NewVendorService(vendors),
		Exporter:   export.NewExporter(pool, mapping),
	}

	s.Router.Use(recoverer)

	// Mount metrics if enabled
	if cfg.EnableMetrics {
		s.Router.Use(s.Metrics.Middleware())
		s.Router.Get("/metrics", s.Metrics.Handler().ServeHTTP)
	}

	// Public routes (no JWT required)
	s.Router.Get("/health", s.health)
	s.Router.Post("/api/auth/login", s.login)
	s.Router.Get("/api/categories/active", s.listActiveCategories)
	s.Router.Get("/api/users/registration-options", s.userRegistrationOptions)
	s.Router.Get("/api/users/departments", s.listDepartments)
	s.Router.Get("/api/users/departments/{type}/sub-departments", s.listSubDepartments)

	// Protected route group
	s.Router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware(s.JWTManager))
		s.mountProtectedRoutes(r)
	})

	return s
}

// Close properly shuts down the server and cleans up resources
func (s *Server) Close(ctx context.Context) error {
	if s.Pool != nil {
		s.Pool.Close()
	}
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.DB.PingContext(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, models.Fail("Database unavailable"))
		return
	}
	writeSuccess(w, http.StatusOK, nil, "ok")
}

// requireRole wraps a handler with an allow-list check.
func requireRole(roles []string, h http.HandlerFunc) http.HandlerFunc {
	return auth.MustRole(roles...)(h).(http.HandlerFunc)
}

// mountProtectedRoutes mounts all routes that require authentication
func (s *Server) mountProtectedRoutes(r chi.Router) {
	adminManager := []string{models.RoleAdmin, models.RoleManager}

	// Self-service auth routes (any authenticated role)
	r.Get("/api/auth/me", s.me)
	r.Post("/api/auth/change-password", s.changePassword)
	r.Post("/api/auth/logout", s.logout)

	// User management
	r.Post("/api/users/register", requireRole(auth.AdminOnly, s.registerUser))
	r.Get("/api/users", requireRole(auth.AdminOnly, s.listUsers))
	r.Get("/api/users/{id}", requireRole(auth.AdminManagerIT, s.getUser))
	r.Get("/api/users/by-email/{email}", requireRole(auth.AdminAndIT, s.getUserByEmail))
	r.Delete("/api/users/{id}", requireRole(auth.AdminOnly, s.deleteUser))

	// Roles
	r.Get("/api/roles", requireRole(auth.AdminManagerIT, s.listRoles))
	r.Get("/api/roles/active", requireRole(auth.AdminManagerIT, s.listActiveRoles))
	r.Get("/api/roles/{id}", requireRole(auth.AdminManagerIT, s.getRole))
	r.Get("/api/roles/by-name/{name}", requireRole(auth.AdminManagerIT, s.getRoleByName))
	r.Post("/api/roles", requireRole(auth.AdminOnly, s.createRole))
	r.Put("/api/roles/{id}", requireRole(auth.AdminOnly, s.updateRole))
	r.Delete("/api/roles/{id}", requireRole(auth.AdminOnly, s.deleteRole))

	// Categories (the active list is mounted publicly)
	r.Get("/api/categories", requireRole(auth.AdminManagerIT, s.listCategories))
	r.Get("/api/categories/{id}", requireRole(auth.AdminManagerIT, s.getCategory))
	r.Post("/api/categories", requireRole(auth.AdminAndIT, s.createCategory))
	r.Put("/api/categories/{id}", requireRole(auth.AdminAndIT, s.updateCategory))
	r.Delete("/api/categories/{id}", requireRole(auth.AdminOnly, s.deleteCategory))

	// Brands
	r.Get("/api/brands", requireRole(auth.AdminManagerIT, s.listBrands))
	r.Get("/api/brands/active", requireRole(auth.AdminManagerIT, s.listActiveBrands))
	r.Get("/api/brands/{id}", requireRole(auth.AdminManagerIT, s.getBrand))
	r.Post("/api/brands", requireRole(auth.AdminAndIT, s.createBrand))
	r.Put("/api/brands/{id}", requireRole(auth.AdminAndIT, s.updateBrand))
	r.Delete("/api/brands/{id}", requireRole(auth.AdminOnly, s.deleteBrand))

	// Locations
	r.Get("/api/locations", requireRole(auth.AdminManagerIT, s.listLocations))
	r.Get("/api/locations/active", requireRole(auth.AdminManagerIT, s.listActiveLocations))
	r.Get("/api/locations/{id}", requireRole(auth.AdminManagerIT, s.getLocation))
	r.Post("/api/locations", requireRole(auth.AdminAndIT, s.createLocation))
	r.Put("/api/locations/{id}", requireRole(auth.AdminAndIT, s.updateLocation))
	r.Delete("/api/locations/{id}", requireRole(auth.AdminOnly, s.deleteLocation))

	// Assets
	r.Post("/api/assets/register", requireRole(auth.AdminAndIT, s.registerAsset))
	r.Get("/api/assets", requireRole(auth.AdminManagerIT, s.listAssets))
	r.Get("/api/assets/registration-options", requireRole(auth.AdminManagerIT, s.assetRegistrationOptions))
	r.Get("/api/assets/export", requireRole(auth.AdminManagerIT, s.exportAssets))
	r.Get("/api/assets/serial/{serialNumber}", requireRole(auth.AdminManagerIT, s.getAssetBySerial))
	r.Get("/api/assets/by-user/{userId}", requireRole(auth.AdminManagerIT, s.listAssetsByUser))
	r.Get("/api/assets/by-category/{categoryId}", requireRole(auth.AdminManagerIT, s.listAssetsByCategory))
	r.Get("/api/assets/by-location/{locationId}", requireRole(auth.AdminManagerIT, s.listAssetsByLocation))
	r.Get("/api/assets/by-status/{status}", requireRole(auth.AdminManagerIT, s.listAssetsByStatus))
	r.Get("/api/assets/{id}", requireRole(auth.AdminManagerIT, s.getAsset))
	r.Put("/api/assets/{id}", requireRole(auth.AdminAndIT, s.updateAsset))
	r.Post("/api/assets/{id}/assign", requireRole(auth.AdminAndIT, s.assignAsset))
	r.Post("/api/assets/{id}/unassign", requireRole(auth.AdminAndIT, s.unassignAsset))
	r.Delete("/api/assets/{id}", requireRole(auth.AdminOnly, s.deleteAsset))

	// Purchase orders
	r.Get("/api/purchaseorders", requireRole(auth.AdminManagerIT, s.listPurchaseOrders))
	r.Get("/api/purchaseorders/statuses", requireRole(auth.AllRoles, s.purchaseOrderStatuses))
	r.Get("/api/purchaseorders/{id}", requireRole(auth.AdminManagerIT, s.getPurchaseOrder))
	r.Post("/api/purchaseorders", requireRole(auth.AllRoles, s.createPurchaseOrder))
	r.Put("/api/purchaseorders/{id}", requireRole(auth.AdminManagerIT, s.updatePurchaseOrder))
	r.Patch("/api/purchaseorders/{id}/status", requireRole(auth.AdminManagerIT, s.updatePurchaseOrderStatus))
	r.Delete("/api/purchaseorders/{id}", requireRole(adminManager, s.deletePurchaseOrder))

	// Legacy absolute routes kept for the approval screen
	r.Get("/GetById/{id}", requireRole(auth.AdminManagerIT, s.getPurchaseOrder))
	r.Get("/UpdateForApproval/{id}", requireRole(auth.AdminManagerIT, s.getPurchaseOrder))

	// Vendors
	r.Get("/api/vendors", requireRole(auth.AdminManagerIT, s.listVendors))
	r.Get("/api/vendors/{id}", requireRole(auth.AdminManagerIT, s.getVendor))
	r.Post("/api/vendors", requireRole(auth.AdminAndIT, s.createVendor))
	r.Put("/api/vendors/{id}", requireRole(auth.AdminAndIT, s.updateVendor))
	r.Delete("/api/vendors/{id}", requireRole(auth.AdminAndIT, s.deleteVendor))
}
