package handler

import (
	"crypto-dashboard/internal/adapter/http/middleware"
	redisStore "crypto-dashboard/internal/adapter/storage/redis"
	"crypto-dashboard/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	AuthSvc        ports.AuthService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	TemplatesGlob  string // "" = dashboard pages disabled
	CookieName     string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
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

	// API v1 routes
	v1 := r.Group("/api/v1")

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallets := v1.Group("/wallets")
	{
		wallets.GET("/all", walletHandler.List)
		wallets.GET("", walletHandler.Get)
		wallets.POST("", rl("wallets_write"), walletHandler.Create)
		wallets.PUT("", rl("wallets_write"), walletHandler.Update)
		wallets.DELETE("", rl("wallets_write"), walletHandler.Delete)
	}

	authHandler := NewAuthHandler(deps.AuthSvc)
	v1.GET("/auth/renew", rl("auth"), authHandler.RenewToken)

	// Server-rendered dashboard
	if deps.TemplatesGlob != "" {
		r.LoadHTMLGlob(deps.TemplatesGlob)

		pages := NewPagesHandler(deps.WalletSvc, deps.AuthSvc, deps.CookieName, deps.Logger)
		r.GET("/", rl("dashboard"), pages.Index)
		r.GET("/login", rl("dashboard"), pages.LoginForm)
		r.POST("/login", rl("auth"), pages.Login)
		r.GET("/logout", rl("dashboard"), pages.Logout)
		r.GET("/test", rl("dashboard"), pages.TestPage)
	}

	return r
}
