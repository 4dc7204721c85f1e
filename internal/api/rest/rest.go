package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/parametriclabs/policyd/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Policy reads (public)
		v1.GET("/policies", handler.ListPolicies)
		v1.GET("/policies/:authority/:holder", handler.GetPolicy)
		v1.GET("/policies/:authority/:holder/record", handler.GetPolicyRecord)

		// Lifecycle operations (the identity gate inside the engine checks
		// the JWT subject against the role each operation requires)
		v1.POST("/policies", middleware.Auth(authCfg), handler.CreatePolicy)
		v1.POST("/policies/:authority/:holder/purchase", middleware.Auth(authCfg), handler.PurchasePolicy)
		v1.POST("/policies/:authority/:holder/check-trigger", middleware.Auth(authCfg), handler.CheckTrigger)
		v1.POST("/policies/:authority/:holder/payout", middleware.Auth(authCfg), handler.ExecutePayout)
		v1.POST("/policies/:authority/:holder/cancel", middleware.Auth(authCfg), handler.CancelPolicy)
		v1.PUT("/policies/:authority/:holder/oracle", middleware.Auth(authCfg), handler.UpdateOracle)

		// Account endpoints
		v1.GET("/accounts/:identity/balance", handler.GetBalance)
		v1.POST("/accounts/:identity/deposit", middleware.APIKeyAuth(authCfg), handler.Deposit)
	}
}
