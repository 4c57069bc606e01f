// Package server assembles the HTTP router.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cashbook/internal/handlers"
	"cashbook/internal/middleware"
	"cashbook/internal/notify"
	"cashbook/internal/services"
	"cashbook/internal/validator"

	_ "cashbook/internal/docs" // Import swagger docs
)

// Deps are the collaborators the router needs.
type Deps struct {
	Transactions services.TransactionServicer
	Debts        services.DebtServicer
	Reports      services.ReportServicer
	Audit        services.AuditServicer
	Auth         services.AuthServicer
	Pusher       notify.Pusher
	TextSender   notify.TextSender

	// JWTSecret verifies owner tokens when Auth is enabled.
	JWTSecret string
	// RelayAPIKey, when set, is accepted on the relay routes via X-API-Key.
	RelayAPIKey string
	// Location decides the calendar day for the dashboard and default reports.
	Location *time.Location
	// Ping reports store health; nil means always healthy.
	Ping func(ctx context.Context) error
	// AccessLog enables per-request logging.
	AccessLog bool
}

// NewRouter builds the gin engine with every route mounted. It registers the
// custom binding validators the handlers rely on.
func NewRouter(d Deps) *gin.Engine {
	validator.Register()

	authHandler := handlers.NewAuthHandler(d.Auth, d.Audit)
	transactionHandler := handlers.NewTransactionHandler(d.Transactions, d.Audit)
	debtHandler := handlers.NewDebtHandler(d.Debts, d.Audit)
	reportHandler := handlers.NewReportHandler(d.Reports, d.Location)
	notifyHandler := handlers.NewNotifyHandler(d.Pusher, d.TextSender)

	authEnabled := d.Auth.Enabled()

	router := gin.New()
	router.Use(gin.Recovery())
	if d.AccessLog {
		router.Use(middleware.RequestLogging())
	}
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", health(d.Ping))

	// Relay routes
	relay := router.Group("/api")
	relay.Use(middleware.RelayAuth(d.JWTSecret, authEnabled, d.RelayAPIKey))
	relay.POST("/notify", notifyHandler.Push)
	relay.POST("/whatsapp", notifyHandler.WhatsApp)

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/auth/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(d.JWTSecret, authEnabled))

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	debts := protected.Group("/debts")
	debts.POST("", debtHandler.CreateDebt)
	debts.GET("", debtHandler.ListDebts)
	debts.POST("/:id/paid", debtHandler.MarkPaid)
	debts.DELETE("/:id", debtHandler.DeleteDebt)

	protected.GET("/dashboard", reportHandler.GetDashboard)
	protected.GET("/reports", reportHandler.GetReport)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func health(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
