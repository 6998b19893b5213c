package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/satyam-pandey/scan-to-order/config"
	"github.com/satyam-pandey/scan-to-order/controllers"
	"github.com/satyam-pandey/scan-to-order/middlewares"
	"github.com/satyam-pandey/scan-to-order/store"
)

func SetupRouter(db *gorm.DB, tablePrefix string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 50).RateLimit())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	st := store.New(db, tablePrefix)

	userCtrl := controllers.NewUserController(st)
	categoryCtrl := controllers.NewMenuCategoryController(st)
	menuCtrl := controllers.NewMenuController(st)
	orderCtrl := controllers.NewOrderController(st)
	restaurantCtrl := controllers.NewRestaurantController(st)
	qrCtrl := controllers.NewQRController(st, config.GetEnv("PUBLIC_ORDER_URL", "http://localhost:3000"))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	public := r.Group("/auth")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Customers browse and order without an account.
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/menu-items/:restaurant_id", menuCtrl.GetMenuItems)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.GET("/restaurants/:restaurant_id/qr", qrCtrl.GenerateQR)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/auth/me", userCtrl.GetProfile)
		auth.POST("/restaurants-with-menu", restaurantCtrl.CreateRestaurantWithMenu)
		auth.GET("/orders", orderCtrl.GetAllOrders)
		auth.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)
	}

	return r
}
