package auth

import (
	"community-api/core/database"
	"community-api/core/middleware"
	"community-api/modules/auth/controller"
	"community-api/modules/auth/repository"
	"community-api/modules/auth/router"
	"community-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init wires the auth module and registers its routes.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) *service.AuthService {
	users := repository.NewUserRepository(db)
	roles := repository.NewUserRoleRepository(db)
	svc := service.NewAuthService(users, roles)
	ctrl := controller.NewAuthController(svc)

	router.NewAuthRouter(ctrl).Setup(e, mw)

	return svc
}
