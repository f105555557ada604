package controller

import (
	"community-api/core/controller"
	"community-api/core/errors"
	"community-api/modules/rsvp/dto"
	"community-api/modules/rsvp/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type RSVPController struct {
	service *service.RSVPService
	controller.BaseController
}

func NewRSVPController(svc *service.RSVPService) *RSVPController {
	return &RSVPController{
		service:        svc,
		BaseController: controller.NewBaseController(),
	}
}

func (c *RSVPController) Submit(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id", nil)
	}

	form := new(dto.RSVPForm)
	if err := ctx.Bind(form); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if violations := form.Validate(); len(violations) > 0 {
		return c.ValidationFailed(ctx, violations)
	}

	resp, err := c.service.Submit(ctx.Request().Context(), eventID, form)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, resp, resp.Message)
}

func (c *RSVPController) ListByEvent(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id", nil)
	}

	resp, err := c.service.ListByEvent(ctx.Request().Context(), eventID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Registrations retrieved")
}
