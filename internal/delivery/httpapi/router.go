// Package httpapi is the storefront's HTTP surface, a JSON API served
// with gin.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/furnishfusion/storefront/internal/infrastructure/storage"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	Catalog *CatalogHandler
	Cart    *CartHandler
	Order   *OrderHandler
	Planner *PlannerHandler
	Admin   *AdminHandler
}

// RouterOptions carries router-level configuration.
type RouterOptions struct {
	AllowedOrigins []string
	UploadDir      string
}

// NewRouter builds the gin engine with CORS, sessions, rate limits and
// all the routes.
func NewRouter(h Handlers, sessions *storage.SessionStore, opts RouterOptions) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.Config{
		AllowOrigins:     opts.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(opts.AllowedOrigins) == 0 {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	if opts.UploadDir != "" {
		r.Static("/uploads", opts.UploadDir)
	}

	// Login and the planner get a stricter per-IP limit than the rest.
	authLimiter := NewRateLimiter(10, time.Minute)
	plannerLimiter := NewRateLimiter(30, time.Minute)

	api := r.Group("/api")
	api.Use(SessionMiddleware(sessions))
	{
		authRoutes := api.Group("")
		authRoutes.Use(authLimiter.Middleware())
		{
			authRoutes.POST("/register", h.Auth.Register)
			authRoutes.POST("/login", h.Auth.Login)
			authRoutes.POST("/admin/login", h.Auth.AdminLogin)
		}
		api.POST("/logout", h.Auth.Logout)

		api.GET("/products", h.Catalog.List)
		api.GET("/contact", h.Admin.Contact)

		api.POST("/budget-planner", plannerLimiter.Middleware(), h.Planner.Run)

		api.GET("/cart", h.Cart.View)
		api.POST("/cart/:id", h.Cart.Add)
		api.POST("/cart/:id/update", h.Cart.Update)

		user := api.Group("")
		user.Use(RequireUser())
		{
			user.GET("/dashboard", h.Auth.Dashboard)

			user.GET("/wishlist", h.Catalog.Wishlist)
			user.POST("/wishlist/:id", h.Catalog.AddToWishlist)
			user.DELETE("/wishlist/:id", h.Catalog.RemoveFromWishlist)

			user.GET("/checkout", h.Order.CheckoutPreview)
			user.POST("/orders", h.Order.Place)
			user.GET("/orders", h.Order.List)
			user.POST("/orders/:id/cancel", h.Order.Cancel)
			user.POST("/products/:id/rate", h.Order.Rate)
		}

		admin := api.Group("/admin")
		admin.Use(RequireAdmin())
		{
			admin.GET("/dashboard", h.Admin.Dashboard)

			admin.GET("/products", h.Admin.Products)
			admin.POST("/products", h.Admin.AddProduct)
			admin.DELETE("/products/:id", h.Admin.DeleteProduct)
			admin.POST("/products/import", h.Admin.ImportCatalog)
			admin.GET("/products/export", h.Admin.ExportCatalog)

			admin.GET("/orders", h.Admin.Orders)
			admin.POST("/orders/:id/status", h.Admin.UpdateOrderStatus)
			admin.POST("/orders/:id/verify-payment", h.Admin.VerifyPayment)

			admin.GET("/coupons", h.Admin.Coupons)
			admin.POST("/coupons", h.Admin.AddCoupon)
			admin.POST("/coupons/:id/toggle", h.Admin.SetCouponActive)
			admin.DELETE("/coupons/:id", h.Admin.DeleteCoupon)

			admin.POST("/contact", h.Admin.UpdateContact)
			admin.POST("/upi-qr", h.Admin.UploadUPIQR)
		}
	}

	return r
}
