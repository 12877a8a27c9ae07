package schedule

import (
	"github.com/gasparellodev/mono-repo2/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupScheduleRoutes(rg *gin.RouterGroup, controller *Controller) {
	hours := rg.Group("/opening-hours")
	{
		hours.GET("/:arenaId", controller.FindByArena) // GET /api/v1/opening-hours/:arenaId

		protected := hours.Group("")
		protected.Use(middleware.JWTAuth(), middleware.RequireArenaOwner())
		{
			protected.POST("", controller.Create) // POST /api/v1/opening-hours
		}
	}
}
