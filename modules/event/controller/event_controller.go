package controller

import (
	"time"

	"community-api/core/controller"
	"community-api/core/errors"
	"community-api/core/middleware"
	"community-api/core/params"
	"community-api/modules/event/dto"
	"community-api/modules/event/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EventController struct {
	service *service.EventService
	controller.BaseController
}

func NewEventController(svc *service.EventService) *EventController {
	return &EventController{
		service:        svc,
		BaseController: controller.NewBaseController(),
	}
}

func (c *EventController) Create(ctx echo.Context) error {
	session, ok := middleware.CurrentSession(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	form := new(dto.EventForm)
	if err := ctx.Bind(form); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if violations := form.Validate(); len(violations) > 0 {
		return c.ValidationFailed(ctx, violations)
	}

	resp, err := c.service.Create(ctx.Request().Context(), session, form)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, resp, "Event created")
}

func (c *EventController) Update(ctx echo.Context) error {
	session, ok := middleware.CurrentSession(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id", nil)
	}

	form := new(dto.EventForm)
	if err := ctx.Bind(form); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if violations := form.Validate(); len(violations) > 0 {
		return c.ValidationFailed(ctx, violations)
	}

	resp, err := c.service.Update(ctx.Request().Context(), session, id, form)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Event updated")
}

func (c *EventController) Delete(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id", nil)
	}

	if err := c.service.Delete(ctx.Request().Context(), id); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Event deleted")
}

func (c *EventController) Get(ctx echo.Context) error {
	resp, err := c.service.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Event retrieved")
}

func (c *EventController) ListPublished(ctx echo.Context) error {
	p := params.NewQueryParams(ctx)
	resp, err := c.service.ListPublished(ctx.Request().Context(), *p, ctx.QueryParam("calendar_type"))
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Events retrieved")
}

func (c *EventController) ListAll(ctx echo.Context) error {
	p := params.NewQueryParams(ctx)
	resp, err := c.service.ListAll(ctx.Request().Context(), *p)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Events retrieved")
}

// Occurrences expands an event's dates. Defaults to the next 90 days when
// the range is not given.
func (c *EventController) Occurrences(ctx echo.Context) error {
	from := time.Now().UTC()
	until := from.AddDate(0, 0, 90)

	if v := ctx.QueryParam("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid from date, expected YYYY-MM-DD", nil)
		}
		from = t
	}
	if v := ctx.QueryParam("until"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid until date, expected YYYY-MM-DD", nil)
		}
		until = t
	}

	resp, err := c.service.Occurrences(ctx.Request().Context(), ctx.Param("id"), from, until)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Occurrences retrieved")
}

func (c *EventController) CalendarLinks(ctx echo.Context) error {
	resp, err := c.service.CalendarLinks(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Calendar links generated")
}
