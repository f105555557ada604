package router

import (
	"community-api/core/middleware"
	authService "community-api/modules/auth/service"
	"community-api/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	controller *controller.EventController
}

func NewEventRouter(controller *controller.EventController) *EventRouter {
	return &EventRouter{controller: controller}
}

func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	// Public calendar surface.
	v1.GET("/events", r.controller.ListPublished)
	v1.GET("/events/:id", r.controller.Get)
	v1.GET("/events/:id/occurrences", r.controller.Occurrences)
	v1.GET("/events/:id/calendar-links", r.controller.CalendarLinks)

	private := v1.Group("/private", mw.AuthMiddleware())

	authors := private.Group("/events", mw.Require(authService.CanAuthorEvents, "event author access required"))
	authors.POST("", r.controller.Create)
	authors.PUT("/:id", r.controller.Update)

	admin := private.Group("/admin/events", mw.Require(authService.CanAccessAdminPanel, "admin access required"))
	admin.GET("", r.controller.ListAll)
	admin.DELETE("/:id", r.controller.Delete)
}
