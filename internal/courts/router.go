package courts

import (
	"github.com/gasparellodev/mono-repo2/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCourtRoutes(rg *gin.RouterGroup, controller *Controller) {
	courts := rg.Group("/courts")
	{
		courts.GET("/:id", controller.GetByID)               // GET /api/v1/courts/:id
		courts.GET("/arena/:arenaId", controller.GetByArena) // GET /api/v1/courts/arena/:arenaId

		protected := courts.Group("")
		protected.Use(middleware.JWTAuth(), middleware.RequireArenaOwner())
		{
			protected.POST("", controller.Create) // POST /api/v1/courts
		}
	}
}
