package contact

import (
	"community-api/core/database"
	"community-api/core/middleware"
	"community-api/modules/contact/controller"
	"community-api/modules/contact/repository"
	"community-api/modules/contact/router"
	"community-api/modules/contact/service"

	"github.com/labstack/echo/v4"
)

// Init wires the contact module and registers its routes. The repository is
// returned so the notification worker can load inquiries.
func Init(e *echo.Echo, db database.IDatabase, dispatcher service.InquiryDispatcher, mw *middleware.Middleware) repository.ContactRepositoryInterface {
	inquiries := repository.NewContactRepository(db)
	svc := service.NewContactService(inquiries, dispatcher)
	ctrl := controller.NewContactController(svc)

	router.NewContactRouter(ctrl).Setup(e, mw)

	return inquiries
}
