// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stagepass/internal/auth"
	"stagepass/internal/events"
	"stagepass/internal/notifications"
	"stagepass/internal/scenery"
	"stagepass/internal/seats"
	"stagepass/internal/shared/config"
	"stagepass/internal/shared/database"
	"stagepass/pkg/cache"
)

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	db           *database.DB
	notifier     notifications.Service
	cacheService cache.Service

	authRepo     auth.Repository // shared with seat holder checks
	eventService events.Service  // shared with scenery reference checks
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, notifier notifications.Service) *Router {
	return &Router{
		config:       cfg,
		db:           db,
		notifier:     notifier,
		cacheService: cache.NewService(db.GetRedis()),
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Swagger UI
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Auth routes first, the auth repository backs seat holder lookups
		r.setupAuthRoutes(api)

		// Event routes before scenery routes for dependency injection
		r.setupEventRoutes(api)

		r.setupSceneryRoutes(api)
		r.setupSeatRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "stagepass-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "stagepass-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	if r.notifier != nil {
		authService.SetNotifier(r.notifier)
	}
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	// Keep the repository around for the seats holder checks
	r.authRepo = authRepo

	authRouter.SetupRoutes(rg)
}

// setupEventRoutes configures event lifecycle routes
func (r *Router) setupEventRoutes(rg *gin.RouterGroup) {
	eventRepo := events.NewRepository(r.db.GetPostgreSQL())
	eventService := events.NewService(eventRepo)
	eventService.SetCacheService(r.cacheService)
	if r.notifier != nil {
		eventService.SetNotifier(r.notifier)
	}

	// Store event service for dependency injection
	r.eventService = eventService

	eventController := events.NewController(eventService)
	events.SetupEventRoutes(rg, eventController)
}

// setupSceneryRoutes configures scenery provisioning routes
func (r *Router) setupSceneryRoutes(rg *gin.RouterGroup) {
	sceneryRepo := scenery.NewRepository(r.db.GetPostgreSQL())
	sceneryService := scenery.NewService(sceneryRepo)
	sceneryService.SetCacheService(r.cacheService)

	// Inject event service dependency
	if r.eventService != nil {
		sceneryService.SetEventService(r.eventService)
	}

	sceneryController := scenery.NewController(sceneryService)
	scenery.SetupSceneryRoutes(rg, sceneryController)
}

// setupSeatRoutes configures seat management routes
func (r *Router) setupSeatRoutes(rg *gin.RouterGroup) {
	seatRepo := seats.NewRepository(r.db.GetPostgreSQL())
	seatService := seats.NewService(seatRepo)

	// Inject user lookups for holder validation
	if r.authRepo != nil {
		seatService.SetUserService(auth.NewUserServiceAdapter(r.authRepo))
	}

	seatController := seats.NewController(seatService)
	seats.SetupSeatRoutes(rg, seatController)
}
