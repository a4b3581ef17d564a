package controller

import (
	"landivo-be/internal/dto"
	"landivo-be/internal/pkg/serverutils"
	"landivo-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBuyerController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Unsubscribe(ctx *fiber.Ctx) error
	Activities(ctx *fiber.Ctx) error
}

type buyerController struct {
	buyerService service.IBuyerService
}

func NewBuyerController(buyerService service.IBuyerService) IBuyerController {
	return &buyerController{
		buyerService: buyerService,
	}
}

func (c *buyerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/buyer/v1")

	// Signup and unsubscribe come from public marketing pages.
	h.Post("", c.Create)
	h.Post(":id/unsubscribe", c.Unsubscribe)

	protected := h.Group("")
	protected.Use(serverutils.JwtMiddleware)
	protected.Get("", c.List)
	protected.Get(":id", c.Show)
	protected.Get(":id/activities", c.Activities)
	protected.Put(":id", c.Update)
	protected.Delete(":id", serverutils.RequireRole("admin"), c.Delete)
}

func (c *buyerController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateBuyerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.buyerService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create buyer", res))
}

func (c *buyerController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid buyer id")
	}

	var req dto.UpdateBuyerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.buyerService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update buyer", res))
}

func (c *buyerController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid buyer id")
	}

	res, err := c.buyerService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show buyer", res))
}

func (c *buyerController) List(ctx *fiber.Ctx) error {
	res, err := c.buyerService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list buyers", res))
}

func (c *buyerController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid buyer id")
	}

	if err := c.buyerService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete buyer", nil))
}

func (c *buyerController) Unsubscribe(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid buyer id")
	}

	if err := c.buyerService.Unsubscribe(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("You have been unsubscribed", nil))
}

func (c *buyerController) Activities(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid buyer id")
	}

	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.buyerService.Activities(ctx.Context(), id, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list buyer activities", res))
}
