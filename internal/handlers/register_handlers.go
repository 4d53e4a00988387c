package handlers

import (
	"net/http"

	"github.com/SscSPs/leadvault_backend/cmd/docs"
	portssvc "github.com/SscSPs/leadvault_backend/internal/core/ports/services"
	"github.com/SscSPs/leadvault_backend/internal/middleware"
	"github.com/SscSPs/leadvault_backend/internal/platform/analytics"
	"github.com/SscSPs/leadvault_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteDeps carries the cross-cutting components routes need besides services.
type RouteDeps struct {
	// LoginLimiter throttles login attempts per IP. Nil disables throttling.
	LoginLimiter *limiter.Limiter
	Analytics    *analytics.Client
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	registerAuthRoutes(api, services, deps.LoginLimiter)
	registerGoogleOAuthRoutes(api, services)

	protected := api.Group("",
		middleware.APITokenAuth(services.APIToken),
		middleware.AuthMiddleware(services.TokenService),
		middleware.PosthogMiddleware(deps.Analytics),
	)
	registerUserRoutes(protected, services.User)
	registerLeadRoutes(protected, services.Lead, services.Credit)
	registerImportRoutes(protected, services.Lead)
	registerSavedListRoutes(protected, services.SavedList)
	registerSavedFilterRoutes(protected, services.SavedFilter)
	registerCreditRoutes(protected, services.Credit, services.Checkout, deps.Analytics)
	RegisterAPITokenRoutes(protected, services.APIToken)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
