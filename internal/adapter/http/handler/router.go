package handler

import (
	"campus-ledger/internal/adapter/http/middleware"
	"campus-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Ledger         ports.LedgerService
	Connection     ports.ConnectionService
	Modes          ports.ModeService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(64 << 10))

	r.GET("/health", HealthCheck(deps.Modes, deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// One ledger write at a time, across every write route.
	guard := middleware.NewInFlightGuard(deps.Logger).Handler()

	v1 := r.Group("/api/v1")

	sessionHandler := NewSessionHandler(deps.Connection, deps.Modes)
	session := v1.Group("/session")
	{
		session.GET("", sessionHandler.Get)
		session.POST("", sessionHandler.Connect)
		session.DELETE("", sessionHandler.Disconnect)
	}
	v1.GET("/mode", sessionHandler.GetMode)
	v1.PUT("/mode", guard, sessionHandler.SetMode)

	ledgerHandler := NewLedgerHandler(deps.Ledger)
	ledger := v1.Group("/ledger")
	{
		ledger.GET("/balance", ledgerHandler.GetBalance)
		ledger.GET("/history", ledgerHandler.History)
		ledger.POST("/check-in", guard, ledgerHandler.CheckIn)
		ledger.POST("/purchase", guard, ledgerHandler.Purchase)
		ledger.POST("/transfer", guard, ledgerHandler.Transfer)
	}
	v1.GET("/products", ledgerHandler.Products)

	identityHandler := NewIdentityHandler(deps.Ledger)
	identity := v1.Group("/identity")
	{
		identity.GET("", identityHandler.Status)
		identity.GET("/avatars", identityHandler.Avatars)
		identity.GET("/:token_id", identityHandler.Info)
		identity.POST("/mint", guard, identityHandler.Mint)
	}

	return r
}
