package events

import (
	"stagepass/internal/shared/middleware"
	"stagepass/internal/users"

	"github.com/gin-gonic/gin"
)

func SetupEventRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - anyone can view an event
	publicEvents := router.Group("/events")
	{
		publicEvents.GET("/:eventId", controller.GetEvent) // GET /api/v1/events/:eventId
	}

	// Organizer routes - create and edit own events
	organizerEvents := router.Group("/events")
	organizerEvents.Use(middleware.JWTAuth(), middleware.RequireRoles(string(users.RoleOrganizer), string(users.RoleAdmin)))
	{
		organizerEvents.POST("", controller.CreateEvent)         // POST /api/v1/events
		organizerEvents.PUT("/:eventId", controller.UpdateEvent) // PUT /api/v1/events/:eventId
		organizerEvents.GET("/mine", controller.ListMyEvents)    // GET /api/v1/events/mine
	}

	// Reviewer routes - triage and decisions require the admin role
	reviewerEvents := router.Group("/events")
	reviewerEvents.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		reviewerEvents.GET("/pending", controller.ListPending)                // GET /api/v1/events/pending
		reviewerEvents.PATCH("/:eventId/approve", controller.ApproveEvent)    // PATCH /api/v1/events/:eventId/approve
		reviewerEvents.PATCH("/:eventId/disapprove", controller.DisapproveEvent) // PATCH /api/v1/events/:eventId/disapprove
	}
}
