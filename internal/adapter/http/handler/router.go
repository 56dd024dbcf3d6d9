package handler

import (
	"monero-wallet-manager/internal/adapter/http/middleware"
	redisStore "monero-wallet-manager/internal/adapter/storage/redis"
	"monero-wallet-manager/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Wallet         ports.WalletClient
	AddressSvc     ports.AddressService
	TransferSvc    ports.TransferService
	QueueAdmin     QueueAdmin                 // nil = consumer disabled
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
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

	// Rate limit rules. Only the fund-moving routes are limited.
	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	r.GET("/healthz", Healthz(deps.Wallet, deps.HealthCheckers...))

	addressHandler := NewAddressHandler(deps.AddressSvc)
	transferHandler := NewTransferHandler(deps.TransferSvc, deps.AddressSvc)
	adminHandler := NewAdminHandler(deps.QueueAdmin)

	r.GET("/primary_address", transferHandler.PrimaryAddress)

	addresses := r.Group("/addresses")
	{
		addresses.POST("", addressHandler.Create)
		addresses.GET("", addressHandler.List)
		addresses.GET("/by-label/:label", addressHandler.GetByLabel)
		addresses.GET("/by-address/:address", addressHandler.GetByAddress)
	}

	balance := r.Group("/balance")
	{
		balance.GET("/label/:label", transferHandler.BalanceByLabel)
		balance.GET("/:address", transferHandler.Balance)
	}

	r.POST("/transfer", rl("transfers"), transferHandler.Transfer)
	r.POST("/transfer_split", rl("transfers"), transferHandler.TransferSplit)
	r.POST("/sweep_all", rl("sweeps"), transferHandler.SweepAll)

	admin := r.Group("/admin")
	{
		admin.GET("/queue", adminHandler.GetQueue)
		admin.POST("/drain", adminHandler.Drain)
	}

	return r
}
