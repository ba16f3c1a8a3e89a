package routes

import (
	"time"

	"github.com/arjunmenon/restobill/internal/config"
	"github.com/arjunmenon/restobill/internal/presentation/http/handler"
	"github.com/arjunmenon/restobill/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Menu    *handler.MenuHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
	Receipt *handler.ReceiptHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		menu := v1.Group("/menu")
		{
			menu.GET("", h.Menu.List)
			menu.GET("/:id", h.Menu.Get)
			menu.POST("", h.Menu.Create)
			menu.PUT("/:id", h.Menu.Update)
			menu.DELETE("/:id", h.Menu.Deactivate)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", h.Cart.View)
			cart.DELETE("", h.Cart.Clear)
			cart.POST("/items", h.Cart.AddItem)
			cart.PUT("/items/:id", h.Cart.SetQuantity)
			cart.DELETE("/items/:id", h.Cart.RemoveItem)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", h.Order.Checkout)
			orders.GET("", h.Order.List)
			orders.GET("/:id", h.Order.Get)
			orders.GET("/reference/:ref", h.Order.GetByReference)
			orders.GET("/:id/receipt", h.Receipt.Get)
			orders.GET("/:id/receipt/text", h.Receipt.GetText)
			orders.GET("/:id/receipt/csv", h.Receipt.GetCSV)
			orders.GET("/:id/receipt/qr", h.Receipt.GetQR)
			orders.POST("/:id/receipt/print", h.Receipt.Print)
		}

		v1.GET("/printer/status", h.Receipt.PrinterStatus)
	}

	return router
}
