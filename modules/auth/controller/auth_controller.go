package controller

import (
	"community-api/core/controller"
	"community-api/core/errors"
	"community-api/core/middleware"
	"community-api/modules/auth/dto"
	"community-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	service *service.AuthService
	controller.BaseController
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{
		service:        svc,
		BaseController: controller.NewBaseController(),
	}
}

func (c *AuthController) Login(ctx echo.Context) error {
	req := new(dto.LoginRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Email and password are required", nil)
	}

	resp, err := c.service.Login(ctx.Request().Context(), req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Logged in successfully")
}

func (c *AuthController) Me(ctx echo.Context) error {
	session, ok := middleware.CurrentSession(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	resp, err := c.service.Me(ctx.Request().Context(), session)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Session retrieved")
}

func (c *AuthController) AssignRole(ctx echo.Context) error {
	req := new(dto.AssignRoleRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Role is required", nil)
	}

	if err := c.service.AssignRole(ctx.Request().Context(), ctx.Param("id"), req); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Role assigned")
}
