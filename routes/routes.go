package routes

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/templetrust/sevaledger/config"
	"github.com/templetrust/sevaledger/controllers"
	"github.com/templetrust/sevaledger/middleware"
	"github.com/templetrust/sevaledger/utils"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	sessionKey := cfg.JWTSecret
	if sessionKey == "" {
		sessionKey = "sevaledger-dev-session"
	}
	store := cookie.NewStore([]byte(sessionKey))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24, // 1 day
		Path:     "/",
		Secure:   cfg.IsProduction(),
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("sevaledger", store))

	// Wire contract with the payment gateway and donate widget. These
	// respond with exact shapes, outside the /v1 envelope.
	router.POST("/create-order", controllers.CreateOrder)
	router.POST("/razorpay-webhook", controllers.HandleWebhook)
	router.POST("/webhook", controllers.HandleWebhook)
	router.GET("/health", controllers.Health)
	router.GET("/ping", controllers.Ping)

	api := router.Group("/v1")
	{
		api.GET("/donations", controllers.ListDonations)
		api.GET("/donations/recent", controllers.RecentDonations)
		api.GET("/expenses", controllers.ListExpenses)
		api.GET("/dashboard", controllers.GetDashboard)
		api.GET("/ledger/stream", controllers.StreamLedger)
		api.GET("/notifications", controllers.ListNotifications)

		admin := api.Group("/admin")
		admin.POST("/login", controllers.AdminLogin)

		authed := admin.Group("")
		authed.Use(middleware.AdminAuthMiddleware())
		{
			authed.POST("/donations", controllers.CreateCashDonation)
			authed.POST("/expenses", controllers.CreateExpense)
			authed.POST("/notifications", controllers.CreateNotification)
			authed.PATCH("/notifications/read", controllers.MarkNotificationsRead)
			authed.GET("/reports/ledger/excel", controllers.DownloadLedgerExcel)
			authed.GET("/reports/ledger/pdf", controllers.DownloadLedgerPDF)
		}
	}

	return router
}
