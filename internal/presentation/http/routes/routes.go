package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sangkips/pos-terminal/internal/application/service"
	"github.com/sangkips/pos-terminal/internal/config"
	"github.com/sangkips/pos-terminal/internal/presentation/http/handler"
	"github.com/sangkips/pos-terminal/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Health   *handler.HealthHandler
	Product  *handler.ProductHandler
	Category *handler.CategoryHandler
	Cart     *handler.CartHandler
	Sale     *handler.SaleHandler
	Report   *handler.ReportHandler
	Settings *handler.SettingsHandler
	Printer  *handler.PrinterHandler
}

// NewHandlers builds every handler on top of the terminal services
func NewHandlers(term *service.Terminal, appName string) *Handlers {
	return &Handlers{
		Health:   handler.NewHealthHandler(appName),
		Product:  handler.NewProductHandler(term.Catalog),
		Category: handler.NewCategoryHandler(term.Catalog),
		Cart:     handler.NewCartHandler(term.Cart),
		Sale:     handler.NewSaleHandler(term.Sales, term.Printer),
		Report:   handler.NewReportHandler(term.Reports, term.Export),
		Settings: handler.NewSettingsHandler(term.Settings),
		Printer:  handler.NewPrinterHandler(term.Printer),
	}
}

// Setup creates the Gin router and registers all routes.
func Setup(term *service.Terminal, cfg *config.Config, log *zap.Logger) *gin.Engine {
	h := NewHandlers(term, cfg.App.Name)

	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	router.GET("/health", h.Health.Check)

	v1 := router.Group("/api/v1")
	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		Requests: cfg.RateLimit.Requests,
		Window:   cfg.RateLimit.Duration,
	})
	v1.Use(rateLimiter.Middleware())
	{
		v1.GET("/health", h.Health.Check)

		registerCatalogRoutes(v1, h)
		registerCartRoutes(v1, h)
		registerSaleRoutes(v1, h)
		registerReportRoutes(v1, h)
		registerSettingsRoutes(v1, h)
		registerPrinterRoutes(v1, h)
	}

	return router
}

func registerCatalogRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/filter", h.Product.Filter)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.POST("", h.Category.Create)
		categories.PUT("/:id", h.Category.Update)
		categories.DELETE("/:id", h.Category.Delete)
	}

	v1.GET("/catalog/selection", h.Category.GetSelection)
	v1.PUT("/catalog/selection", h.Category.Select)
}

func registerCartRoutes(v1 *gin.RouterGroup, h *Handlers) {
	cart := v1.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.DELETE("", h.Cart.Clear)
		cart.POST("/items", h.Cart.AddItem)
		cart.POST("/scan", h.Cart.Scan)
		cart.PUT("/items/:productId", h.Cart.UpdateItem)
		cart.DELETE("/items/:productId", h.Cart.RemoveItem)
	}
}

func registerSaleRoutes(v1 *gin.RouterGroup, h *Handlers) {
	sales := v1.Group("/sales")
	{
		sales.POST("", h.Sale.Complete)
		sales.GET("", h.Sale.List)
		sales.GET("/today", h.Sale.Today)
		sales.GET("/:id", h.Sale.Get)
		sales.GET("/:id/receipt", h.Sale.Receipt)
		sales.POST("/:id/print", h.Sale.Print)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("", h.Report.GetStats)
		reports.GET("/export", h.Report.Export)
	}
}

func registerSettingsRoutes(v1 *gin.RouterGroup, h *Handlers) {
	settings := v1.Group("/settings")
	{
		settings.GET("/tax", h.Settings.GetTax)
		settings.PUT("/tax", h.Settings.UpdateTax)
		settings.GET("/business", h.Settings.GetBusiness)
		settings.PUT("/business", h.Settings.UpdateBusiness)
		settings.GET("/receipt", h.Settings.GetReceipt)
		settings.PUT("/receipt", h.Settings.UpdateReceipt)
	}
}

func registerPrinterRoutes(v1 *gin.RouterGroup, h *Handlers) {
	printer := v1.Group("/printer")
	{
		printer.GET("/status", h.Printer.GetStatus)
		printer.POST("/test", h.Printer.TestPrint)
	}
}
