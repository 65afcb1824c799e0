package v1

import (
	"github.com/gin-gonic/gin"

	"tradebill/internal/domain/auth"
	"tradebill/internal/domain/billing"
	"tradebill/internal/domain/catalogs/client"
	"tradebill/internal/domain/catalogs/material"
	"tradebill/internal/domain/company"
	"tradebill/internal/domain/documents/order"
	"tradebill/internal/domain/documents/payment"
	"tradebill/internal/domain/render"
	"tradebill/internal/infrastructure/http/v1/handlers"
	"tradebill/internal/infrastructure/http/v1/middleware"
	"tradebill/internal/infrastructure/storage/postgres"
	"tradebill/pkg/logger"
)

// RouterConfig holds everything the router wires up.
type RouterConfig struct {
	// Pool is the database pool (for health checks)
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// Domain services
	AuthService     *auth.Service
	ClientService   *client.Service
	MaterialService *material.Service
	OrderService    *order.Service
	PaymentService  *payment.Service
	CompanyService  *company.Service
	BillingService  *billing.Service

	// Renderers for invoice documents
	Renderers *render.Registry
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	api := router.Group("/api/v1")
	{
		registerAuthRoutes(api, cfg)

		protected := api.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		registerCatalogRoutes(protected, cfg)
		registerDocumentRoutes(protected, cfg)
		registerBillingRoutes(protected, cfg)
		registerCompanyRoutes(protected, cfg)
	}

	return router
}

// registerAuthRoutes registers authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)

	// Public auth endpoints (no JWT required)
	public := rg.Group("/auth")
	public.POST("/register", authHandler.Register)
	public.POST("/login", authHandler.Login)
	public.POST("/refresh", authHandler.Refresh)

	// Protected auth endpoints (JWT required)
	protected := rg.Group("/auth")
	protected.Use(middleware.Auth(cfg.JWTValidator))
	protected.POST("/logout", authHandler.Logout)
	protected.GET("/me", authHandler.Me)
	protected.POST("/change-password", authHandler.ChangePassword)
	protected.GET("/users", middleware.RequireRole("admin"), authHandler.ListUsers)
}

// registerCatalogRoutes registers catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")
	baseHandler := handlers.NewBaseHandler()

	// --- CLIENTS ---
	{
		handler := handlers.NewClientHandler(baseHandler, cfg.ClientService)
		group := catalogs.Group("/clients")
		RegisterCatalogRoutes(group, handler)
		group.GET("/by-gst/:gst", handler.FindByGST)
	}

	// --- MATERIALS ---
	{
		handler := handlers.NewMaterialHandler(baseHandler, cfg.MaterialService)
		RegisterCatalogRoutes(catalogs.Group("/materials"), handler)
	}
}

// registerDocumentRoutes registers document endpoints.
func registerDocumentRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	docs := rg.Group("/document")
	baseHandler := handlers.NewBaseHandler()

	// --- ORDERS ---
	{
		handler := handlers.NewOrderHandler(baseHandler, cfg.OrderService)
		RegisterDocumentRoutes(docs.Group("/orders"), handler)
	}

	// --- PAYMENTS ---
	{
		handler := handlers.NewPaymentHandler(baseHandler, cfg.PaymentService)
		RegisterDocumentRoutes(docs.Group("/payments"), handler)
	}
}

// registerBillingRoutes registers balance and invoice endpoints.
func registerBillingRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()
	handler := handlers.NewBillingHandler(baseHandler, cfg.BillingService, cfg.Renderers)

	rg.GET("/clients/:id/balance", handler.Balance)

	invoices := rg.Group("/invoices")
	invoices.GET("", handler.List)
	invoices.POST("/preview", handler.Preview)
	invoices.POST("/generate", handler.Generate)
	invoices.GET("/:id", handler.Get)
	invoices.GET("/:id/document", handler.Document)
}

// registerCompanyRoutes registers company settings endpoints.
func registerCompanyRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()
	handler := handlers.NewCompanyHandler(baseHandler, cfg.CompanyService)

	rg.GET("/company", handler.Get)
	rg.PUT("/company", middleware.RequireRole("admin"), handler.Update)
}
