package controller

import (
	"landivo-be/internal/dto"
	"landivo-be/internal/pkg/serverutils"
	"landivo-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQualificationController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type qualificationController struct {
	qualificationService service.IQualificationService
}

func NewQualificationController(qualificationService service.IQualificationService) IQualificationController {
	return &qualificationController{
		qualificationService: qualificationService,
	}
}

func (c *qualificationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/qualification/v1")

	// The financing survey is filled in by anonymous visitors.
	h.Post("", c.Submit)

	h.Get("", serverutils.JwtMiddleware, serverutils.RequireRole("admin"), c.List)
}

func (c *qualificationController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitQualificationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.qualificationService.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Qualification submitted", res))
}

func (c *qualificationController) List(ctx *fiber.Ctx) error {
	qualifiedOnly := ctx.QueryBool("qualified", false)

	res, err := c.qualificationService.List(ctx.Context(), qualifiedOnly)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list qualifications", res))
}
