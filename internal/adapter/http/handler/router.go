package handler

import (
	"net/http"

	"bookingnest-payments/internal/adapter/http/middleware"
	"bookingnest-payments/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	OrderSvc       ports.OrderService
	WithdrawalSvc  ports.WithdrawalService
	Geocoder       ports.Geocoder
	HealthCheckers []ports.HealthChecker
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

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "PayPal backend running")
	})
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Geocoding proxy
	geocodeHandler := NewGeocodeHandler(deps.Geocoder)
	r.GET("/reverse", geocodeHandler.Reverse)

	// Payment flows
	orderHandler := NewOrderHandler(deps.OrderSvc)
	r.POST("/create-order", orderHandler.CreateOrder)
	r.POST("/capture-order", orderHandler.CaptureOrder)

	payoutHandler := NewPayoutHandler(deps.WithdrawalSvc)
	r.POST("/withdraw", payoutHandler.Withdraw)
	r.GET("/payout-status/:payoutBatchId", payoutHandler.PayoutStatus)

	return r
}
