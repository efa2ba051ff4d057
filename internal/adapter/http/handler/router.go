package handler

import (
	"zippay/internal/adapter/http/middleware"
	"zippay/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Ledger         ports.LedgerService
	TokenSvc       ports.TokenService
	HashSvc        ports.HashService
	OperatorPIN    string // Argon2id hash of the operator PIN
	MerchantName   string // default terminal label on payment requests
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
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	sessionHandler := NewSessionHandler(deps.HashSvc, deps.TokenSvc, deps.OperatorPIN, deps.Logger)
	v1.POST("/session", sessionHandler.Create)

	// --- JWT-authenticated routes (operator console) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	walletHandler := NewWalletHandler(deps.Ledger)
	paymentHandler := NewPaymentHandler(deps.Ledger, deps.MerchantName)
	merchantHandler := NewMerchantHandler(deps.Ledger)
	deviceHandler := NewDeviceHandler(deps.Ledger)

	wallet := v1.Group("/wallet", jwtAuth)
	{
		wallet.POST("/load", walletHandler.Load)
		wallet.POST("/sync", walletHandler.Sync)
		wallet.PUT("/auto-reload", walletHandler.AutoReload)
	}

	payments := v1.Group("/payments", jwtAuth)
	{
		payments.POST("/request", paymentHandler.Create)
		payments.POST("/resolve", paymentHandler.Resolve)
	}

	merchant := v1.Group("/merchant", jwtAuth)
	{
		merchant.POST("/settle", merchantHandler.Settle)
	}

	v1.PUT("/connectivity", jwtAuth, deviceHandler.SetConnectivity)
	v1.POST("/devices/toggle", jwtAuth, deviceHandler.Toggle)
	v1.GET("/snapshot", jwtAuth, walletHandler.GetSnapshot)

	return r
}
