package handlers

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/cleaning_tracker/cmd/docs"
	portssvc "github.com/SscSPs/cleaning_tracker/internal/core/ports/services"
	"github.com/SscSPs/cleaning_tracker/internal/middleware"
	"github.com/SscSPs/cleaning_tracker/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes on r.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	usage middleware.EventSink,
) error {
	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	// the login route stays reachable without a token
	api := r.Group("/api", middleware.RateLimit(rateLimiter))
	if cfg.AuthEnabled {
		registerAuthRoutes(api, services.Auth)
	}

	protected := r.Group("/", middleware.RateLimit(rateLimiter))
	if cfg.AuthEnabled {
		protected.Use(middleware.AuthMiddleware(services.Auth))
	} else {
		slog.Warn("AUTH_ENABLED is false, the API is open to anyone who can reach it")
	}
	protected.Use(middleware.UsageEvents(usage))
	setupAPIRoutes(protected.Group("/api"), services)
	RegisterInvoiceRoutes(protected, services.Invoice)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIRoutes delegates route registration to the entity handlers.
func setupAPIRoutes(api *gin.RouterGroup, services *portssvc.ServiceContainer) {
	RegisterSessionRoutes(api, services.Session)
	RegisterExpenseRoutes(api, services.Expense)
	RegisterClientRoutes(api, services.Client)
	RegisterConfigRoutes(api, services.Settings)
	RegisterReportingRoutes(api, services.Reporting)
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	corsCfg.ExposeHeaders = []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	if len(cfg.CORSAllowedOrigins) == 0 || (len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return corsCfg
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Port)
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
