package controller

import (
	"landivo-be/internal/dto"
	"landivo-be/internal/pkg/serverutils"
	"landivo-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDealController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	CreatePayment(ctx *fiber.Ctx) error
	PaymentNotification(ctx *fiber.Ctx) error
	Payments(ctx *fiber.Ctx) error
}

type dealController struct {
	dealService service.IDealService
}

func NewDealController(dealService service.IDealService) IDealController {
	return &dealController{
		dealService: dealService,
	}
}

func (c *dealController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/deal/v1")

	// Midtrans calls this server-to-server, no JWT involved.
	h.Post("payments/notification", c.PaymentNotification)

	protected := h.Group("")
	protected.Use(serverutils.JwtMiddleware)
	protected.Post("", serverutils.RequireRole("admin"), c.Create)
	protected.Get("", c.List)
	protected.Get(":id", c.Show)
	protected.Get(":id/payments", c.Payments)
	protected.Post("payments", c.CreatePayment)
}

func (c *dealController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateDealRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.dealService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create deal", res))
}

func (c *dealController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid deal id")
	}

	res, err := c.dealService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show deal", res))
}

func (c *dealController) List(ctx *fiber.Ctx) error {
	res, err := c.dealService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list deals", res))
}

func (c *dealController) CreatePayment(ctx *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.dealService.CreatePayment(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Payment created", res))
}

func (c *dealController) PaymentNotification(ctx *fiber.Ctx) error {
	var req dto.PaymentNotificationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.dealService.HandlePaymentNotification(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (c *dealController) Payments(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid deal id")
	}

	res, err := c.dealService.Payments(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list payments", res))
}
