package router

import (
	"time"

	"github.com/ramneet9/Food-DEL/internal/auth"
	"github.com/ramneet9/Food-DEL/internal/cart"
	"github.com/ramneet9/Food-DEL/internal/menu"
	"github.com/ramneet9/Food-DEL/internal/middleware"
	"github.com/ramneet9/Food-DEL/internal/order"
	"github.com/ramneet9/Food-DEL/internal/preference"
	"github.com/ramneet9/Food-DEL/internal/recommend"
	"github.com/ramneet9/Food-DEL/internal/restaurant"
	"github.com/ramneet9/Food-DEL/internal/review"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers collects every feature handler the router mounts.
type Handlers struct {
	Auth       *auth.Handler
	Restaurant *restaurant.Handler
	Menu       *menu.Handler
	Cart       *cart.Handler
	Order      *order.Handler
	Preference *preference.Handler
	Recommend  *recommend.Handler
	Review     *review.Handler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)

		protected := authGroup.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/change-password", h.Auth.ChangePassword)
		}
	}

	// ───────────────────────── PUBLIC BROWSING ─────────────────────────
	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("", h.Restaurant.Browse)
		restaurants.GET("/:id", h.Restaurant.Detail)
		restaurants.GET("/:id/menu", h.Menu.BrowseMenu)
		restaurants.GET("/:id/reviews", h.Review.RestaurantReviews)
	}

	// ───────────────────────── CUSTOMER ROUTES ─────────────────────────
	customer := r.Group("")
	customer.Use(
		middleware.AuthMiddleware(),
		middleware.CustomerOnly(),
	)
	{
		customer.GET("/cart", h.Cart.View)
		customer.POST("/cart/items", h.Cart.Add)
		customer.PATCH("/cart/items/:id", h.Cart.UpdateQuantity)
		customer.DELETE("/cart/items/:id", h.Cart.Remove)
		customer.POST("/cart/coupon", h.Cart.ApplyCoupon)

		customer.POST("/orders", h.Order.PlaceOrder)
		customer.GET("/orders", h.Order.CustomerOrders)

		customer.POST("/preferences", h.Preference.Add)
		customer.DELETE("/preferences/:id", h.Preference.Remove)
		customer.GET("/preferences", h.Preference.List)

		customer.GET("/dashboard/recommendations", h.Recommend.Recommendations)

		customer.POST("/restaurants/:id/reviews", h.Review.AddReview)
	}

	// ───────────────────────── OWNER ROUTES ─────────────────────────
	owner := r.Group("/owner")
	owner.Use(
		middleware.AuthMiddleware(),
		middleware.OwnerOnly(),
	)
	{
		owner.POST("/restaurants", h.Restaurant.CreateRestaurant)
		owner.GET("/restaurants", h.Restaurant.ListMyRestaurants)
		owner.DELETE("/restaurants/:id", h.Restaurant.DeactivateRestaurant)
		owner.POST("/restaurants/:id/image", h.Restaurant.UploadImage)
		owner.GET("/restaurants/:id/menu", h.Menu.OwnerMenu)

		owner.POST("/menu-items", h.Menu.AddItem)
		owner.PATCH("/menu-items/:id", h.Menu.UpdateItem)
		owner.DELETE("/menu-items/:id", h.Menu.DeleteItem)
		owner.POST("/menu-items/:id/image", h.Menu.UploadItemImage)

		owner.GET("/orders", h.Order.OwnerOrders)
		owner.PATCH("/orders/:id/status", h.Order.UpdateStatus)

		owner.POST("/reviews/:id/reply", h.Review.Reply)
	}

	return r
}
