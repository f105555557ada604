package event

import (
	"community-api/core/cache"
	"community-api/core/database"
	"community-api/core/middleware"
	"community-api/modules/event/controller"
	"community-api/modules/event/repository"
	"community-api/modules/event/router"
	"community-api/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init wires the event module and registers its routes. The repository is
// returned so other modules can resolve events without re-wiring.
func Init(e *echo.Echo, db database.IDatabase, c *cache.Cache, mw *middleware.Middleware) repository.EventRepositoryInterface {
	events := repository.NewEventRepository(db)
	svc := service.NewEventService(events, c)
	ctrl := controller.NewEventController(svc)

	router.NewEventRouter(ctrl).Setup(e, mw)

	return events
}
