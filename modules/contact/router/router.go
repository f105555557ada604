package router

import (
	"community-api/core/middleware"
	authService "community-api/modules/auth/service"
	"community-api/modules/contact/controller"

	"github.com/labstack/echo/v4"
)

type ContactRouter struct {
	controller *controller.ContactController
}

func NewContactRouter(controller *controller.ContactController) *ContactRouter {
	return &ContactRouter{controller: controller}
}

func (r *ContactRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	v1.POST("/contact", r.controller.Submit)
	v1.GET("/contact/interests", r.controller.InterestOptions)

	private := v1.Group("/private", mw.AuthMiddleware())
	private.GET("/contact-inquiries", r.controller.List,
		mw.Require(authService.CanAccessAdminPanel, "admin access required"))
}
