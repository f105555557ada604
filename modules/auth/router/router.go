package router

import (
	"community-api/core/middleware"
	"community-api/modules/auth/controller"
	"community-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{controller: controller}
}

func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	v1.POST("/auth/login", r.controller.Login)

	private := v1.Group("/private", mw.AuthMiddleware())
	private.GET("/auth/me", r.controller.Me)

	admin := private.Group("/auth", mw.Require(service.CanAccessAdminPanel, "admin access required"))
	admin.POST("/users/:id/roles", r.controller.AssignRole)
}
