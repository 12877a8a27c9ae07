package arenas

import (
	"github.com/gasparellodev/mono-repo2/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupArenaRoutes(rg *gin.RouterGroup, controller *Controller) {
	arenas := rg.Group("/arenas")
	{
		// Player-facing discovery
		arenas.GET("/search", controller.Search) // GET /api/v1/arenas/search
		arenas.GET("/nearby", controller.Nearby) // GET /api/v1/arenas/nearby

		// Owner routes
		protected := arenas.Group("")
		protected.Use(middleware.JWTAuth(), middleware.RequireArenaOwner())
		{
			protected.POST("", controller.Create) // POST /api/v1/arenas
			protected.GET("", controller.GetMine) // GET /api/v1/arenas
		}
	}
}
