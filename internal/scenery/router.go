package scenery

import (
	"stagepass/internal/shared/middleware"
	"stagepass/internal/users"

	"github.com/gin-gonic/gin"
)

func SetupSceneryRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - seat maps are visible to everyone
	publicSceneries := router.Group("/sceneries")
	{
		publicSceneries.GET("", controller.GetAllSceneries)          // GET /api/v1/sceneries
		publicSceneries.GET("/:sceneryId", controller.GetScenery)    // GET /api/v1/sceneries/:sceneryId
	}

	// Provisioning routes - organizers and admins manage sceneries
	managedSceneries := router.Group("/sceneries")
	managedSceneries.Use(middleware.JWTAuth(), middleware.RequireRoles(string(users.RoleOrganizer), string(users.RoleAdmin)))
	{
		managedSceneries.POST("", controller.CreateScenery)              // POST /api/v1/sceneries
		managedSceneries.PUT("/:sceneryId", controller.UpdateScenery)    // PUT /api/v1/sceneries/:sceneryId
		managedSceneries.DELETE("/:sceneryId", controller.DeleteScenery) // DELETE /api/v1/sceneries/:sceneryId
	}
}
