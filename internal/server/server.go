package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/jsaurabh334/PanditJii/internal/auth"
	"github.com/jsaurabh334/PanditJii/internal/booking"
	"github.com/jsaurabh334/PanditJii/internal/config"
	"github.com/jsaurabh334/PanditJii/internal/coupon"
	"github.com/jsaurabh334/PanditJii/internal/notify"
	"github.com/jsaurabh334/PanditJii/internal/pricing"
	"github.com/jsaurabh334/PanditJii/internal/product"
	"github.com/jsaurabh334/PanditJii/internal/review"
	"github.com/jsaurabh334/PanditJii/internal/user"
	"github.com/jsaurabh334/PanditJii/internal/wallet"
)

type Server struct {
	router   *gin.Engine
	db       *sqlx.DB
	config   *config.Config
	notifier *notify.Service
	httpSrv  *http.Server
}

func New(db *sqlx.DB, cfg *config.Config, notifier *notify.Service, surge *pricing.Table) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	userRepo := user.NewRepository(db)
	walletRepo := wallet.NewRepository(db)
	couponRepo := coupon.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	productRepo := product.NewRepository(db)
	reviewRepo := review.NewRepository(db)

	couponService := coupon.NewService(couponRepo)
	userService := user.NewService(userRepo, cfg.JWTSecret)
	bookingService := booking.NewService(bookingRepo, couponService, walletRepo, userRepo, surge, notifier)
	productService := product.NewService(productRepo)
	reviewService := review.NewService(reviewRepo)

	userHandler := user.NewHandler(userService)
	walletHandler := wallet.NewHandler(walletRepo)
	couponHandler := coupon.NewHandler(couponRepo, couponService)
	bookingHandler := booking.NewHandler(bookingService)
	productHandler := product.NewHandler(productService)
	reviewHandler := review.NewHandler(reviewService)

	public := router.Group("/")
	{
		public.POST("/auth/register", userHandler.Register)
		public.POST("/auth/login", userHandler.Login)
		public.POST("/auth/refresh", userHandler.Refresh)
		public.GET("/pandits", userHandler.ListPandits)
		public.GET("/pandits/:panditID/availability", userHandler.GetAvailability)
		public.GET("/products", productHandler.List)
		public.GET("/products/:id", productHandler.Get)
		public.GET("/reviews/pandit/:panditID", reviewHandler.ForPandit)
		public.GET("/reviews/product/:productID", reviewHandler.ForProduct)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.Me)
		protected.PUT("/users/profile", userHandler.UpdateProfile)
		protected.PUT("/users/password", userHandler.ChangePassword)

		protected.POST("/bookings", bookingHandler.Create)
		protected.GET("/bookings/my", bookingHandler.MyBookings)
		protected.POST("/bookings/:id/cancel", bookingHandler.Cancel)

		protected.GET("/wallet", walletHandler.Get)
		protected.POST("/wallet/deposit", walletHandler.Deposit)
		protected.POST("/wallet/withdraw", auth.RequireRole(auth.RolePandit, auth.RoleVendor), walletHandler.Withdraw)
		protected.POST("/wallet/pay", walletHandler.Pay)
		protected.GET("/wallet/transactions", walletHandler.Transactions)

		protected.GET("/coupons/validate/:code", couponHandler.Validate)
		protected.POST("/coupons/apply/:code", couponHandler.Apply)

		protected.POST("/reviews", reviewHandler.Create)
	}

	pandits := router.Group("/pandits")
	pandits.Use(authMiddleware, auth.RequireRole(auth.RolePandit))
	{
		pandits.POST("/availability", userHandler.SetAvailability)
		pandits.GET("/bookings", bookingHandler.PanditBookings)
		pandits.GET("/dashboard", bookingHandler.Dashboard)
		pandits.POST("/bookings/:id/complete", bookingHandler.Complete)
	}

	vendors := router.Group("/vendor")
	vendors.Use(authMiddleware, auth.RequireRole(auth.RoleVendor, auth.RoleAdmin))
	{
		vendors.POST("/products", productHandler.Create)
		vendors.GET("/products", productHandler.Mine)
		vendors.PUT("/products/:id", productHandler.Update)
		vendors.DELETE("/products/:id", productHandler.Delete)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(auth.RoleAdmin))
	{
		admin.GET("/dashboard", bookingHandler.AdminDashboard)
		admin.GET("/users", userHandler.ListUsers)
		admin.PUT("/users/:id/status", userHandler.ToggleStatus)
		admin.PUT("/users/:id/role", userHandler.UpdateRole)
		admin.PUT("/users/:id/approve", userHandler.Approve)
		admin.DELETE("/users/:id", userHandler.DeleteUser)
		admin.POST("/coupons", couponHandler.Create)
		admin.GET("/coupons", couponHandler.List)
		admin.DELETE("/coupons/:id", couponHandler.Delete)
		admin.GET("/bookings", bookingHandler.AllBookings)
		admin.PUT("/bookings/:id/status", bookingHandler.OverrideStatus)
		admin.DELETE("/bookings/:id", bookingHandler.Delete)
		admin.DELETE("/products/:id", productHandler.AdminDelete)
		admin.GET("/wallet-summary", walletHandler.Summary)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-notification", TestNotification(notifier))

	return &Server{
		router:   router,
		db:       db,
		config:   cfg,
		notifier: notifier,
	}
}

func (s *Server) Start(port string) error {
	s.httpSrv = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.httpSrv.ListenAndServe()
}

// Shutdown drains in-flight requests before closing the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
