package router

import (
	"community-api/core/middleware"
	authService "community-api/modules/auth/service"
	"community-api/modules/rsvp/controller"

	"github.com/labstack/echo/v4"
)

type RSVPRouter struct {
	controller *controller.RSVPController
}

func NewRSVPRouter(controller *controller.RSVPController) *RSVPRouter {
	return &RSVPRouter{controller: controller}
}

func (r *RSVPRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	// Public: anyone can register for a published event.
	v1.POST("/events/:id/rsvps", r.controller.Submit)

	private := v1.Group("/private", mw.AuthMiddleware())
	private.GET("/events/:id/rsvps", r.controller.ListByEvent,
		mw.Require(authService.CanAccessAdminPanel, "admin access required"))
}
