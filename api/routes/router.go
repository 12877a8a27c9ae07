// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gasparellodev/mono-repo2/internal/arenas"
	"github.com/gasparellodev/mono-repo2/internal/auth"
	"github.com/gasparellodev/mono-repo2/internal/courts"
	"github.com/gasparellodev/mono-repo2/internal/reservations"
	"github.com/gasparellodev/mono-repo2/internal/schedule"
	"github.com/gasparellodev/mono-repo2/internal/shared/config"
	"github.com/gasparellodev/mono-repo2/internal/shared/database"
	"github.com/gasparellodev/mono-repo2/internal/users"
	"github.com/gasparellodev/mono-repo2/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	cache    cache.Service
	producer reservations.EventProducer

	// Shared repositories, wired once and reused across feature services
	userRepo  users.Repository
	arenaRepo arenas.Repository
	courtRepo courts.Repository
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, producer reservations.EventProducer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		cache:    cache.NewService(db.GetRedis()),
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Repositories shared across feature modules
	r.userRepo = users.NewRepository(r.db.GetPostgreSQL())
	r.arenaRepo = arenas.NewRepository(r.db.GetPostgreSQL())
	r.courtRepo = courts.NewRepository(r.db.GetPostgreSQL())

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupUserRoutes(api)
		r.setupArenaRoutes(api)
		r.setupScheduleRoutes(api)
		r.setupCourtRoutes(api)
		r.setupReservationRoutes(api)
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
				"service":   "arenas-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "arenas-backend",
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
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController)

	authRouter.SetupRoutes(rg)
}

// setupUserRoutes configures profile routes
func (r *Router) setupUserRoutes(rg *gin.RouterGroup) {
	userService := users.NewService(r.userRepo)
	userController := users.NewController(userService)

	users.SetupUserRoutes(rg, userController)
}

// setupArenaRoutes configures arena registration and discovery routes
func (r *Router) setupArenaRoutes(rg *gin.RouterGroup) {
	arenaService := arenas.NewService(r.arenaRepo, r.userRepo, r.cache)
	arenaController := arenas.NewController(arenaService)

	arenas.SetupArenaRoutes(rg, arenaController)
}

// setupScheduleRoutes configures weekly opening hours routes
func (r *Router) setupScheduleRoutes(rg *gin.RouterGroup) {
	scheduleRepo := schedule.NewRepository(r.db.GetPostgreSQL())
	scheduleService := schedule.NewService(scheduleRepo)
	scheduleController := schedule.NewController(scheduleService)

	schedule.SetupScheduleRoutes(rg, scheduleController)
}

// setupCourtRoutes configures court management routes
func (r *Router) setupCourtRoutes(rg *gin.RouterGroup) {
	courtService := courts.NewService(r.courtRepo, r.arenaRepo)
	courtController := courts.NewController(courtService)

	courts.SetupCourtRoutes(rg, courtController)
}

// setupReservationRoutes configures reservation admission and availability routes
func (r *Router) setupReservationRoutes(rg *gin.RouterGroup) {
	reservationRepo := reservations.NewRepository(r.db.GetPostgreSQL())
	clock := reservations.NewClock(r.config.Arena.Location)
	reservationService := reservations.NewService(
		reservationRepo,
		r.courtRepo,
		r.arenaRepo,
		r.cache,
		r.producer,
		clock,
		r.config.Arena.Location,
	)
	reservationController := reservations.NewController(reservationService)

	reservations.SetupReservationRoutes(rg, reservationController)
}
