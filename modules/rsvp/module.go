package rsvp

import (
	"community-api/core/database"
	"community-api/core/middleware"
	eventRepository "community-api/modules/event/repository"
	"community-api/modules/rsvp/controller"
	"community-api/modules/rsvp/repository"
	"community-api/modules/rsvp/router"
	"community-api/modules/rsvp/service"

	"github.com/labstack/echo/v4"
)

// Init wires the rsvp module and registers its routes.
func Init(e *echo.Echo, db database.IDatabase, events eventRepository.EventRepositoryInterface, dispatcher service.ConfirmationDispatcher, mw *middleware.Middleware) {
	rsvps := repository.NewRSVPRepository(db)
	svc := service.NewRSVPService(rsvps, events, dispatcher)
	ctrl := controller.NewRSVPController(svc)

	router.NewRSVPRouter(ctrl).Setup(e, mw)
}
