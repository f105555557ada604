package controller

import (
	"community-api/core/controller"
	"community-api/core/errors"
	"community-api/core/params"
	"community-api/modules/contact/dto"
	"community-api/modules/contact/entity"
	"community-api/modules/contact/service"

	"github.com/labstack/echo/v4"
)

type ContactController struct {
	service *service.ContactService
	controller.BaseController
}

func NewContactController(svc *service.ContactService) *ContactController {
	return &ContactController{
		service:        svc,
		BaseController: controller.NewBaseController(),
	}
}

func (c *ContactController) Submit(ctx echo.Context) error {
	form := new(dto.ContactForm)
	if err := ctx.Bind(form); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if violations := form.Validate(); len(violations) > 0 {
		return c.ValidationFailed(ctx, violations)
	}

	resp, err := c.service.Submit(ctx.Request().Context(), form)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, resp, resp.Message)
}

// InterestOptions feeds the contact form select.
func (c *ContactController) InterestOptions(ctx echo.Context) error {
	return c.SuccessResponse(ctx, entity.InterestOptions, "Interest options retrieved")
}

func (c *ContactController) List(ctx echo.Context) error {
	p := params.NewQueryParams(ctx)
	resp, err := c.service.List(ctx.Request().Context(), *p)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Inquiries retrieved")
}
