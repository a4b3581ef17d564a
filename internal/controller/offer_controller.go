package controller

import (
	"landivo-be/internal/dto"
	"landivo-be/internal/pkg/serverutils"
	"landivo-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IOfferController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	Counter(ctx *fiber.Ctx) error
	Accept(ctx *fiber.Ctx) error
	Reject(ctx *fiber.Ctx) error
	ListByProperty(ctx *fiber.Ctx) error
}

type offerController struct {
	offerService service.IOfferService
}

func NewOfferController(offerService service.IOfferService) IOfferController {
	return &offerController{
		offerService: offerService,
	}
}

func (c *offerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/offer/v1")

	// Buyers submit offers from the public listing page.
	h.Post("", c.Submit)

	protected := h.Group("")
	protected.Use(serverutils.JwtMiddleware)
	protected.Get("property/:propertyId", c.ListByProperty)
	protected.Post(":id/counter", c.Counter)
	protected.Post(":id/accept", c.Accept)
	protected.Post(":id/reject", c.Reject)
}

func (c *offerController) Submit(ctx *fiber.Ctx) error {
	var req dto.CreateOfferRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.offerService.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Offer submitted", res))
}

func (c *offerController) Counter(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid offer id")
	}

	var req dto.CounterOfferRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.offerService.Counter(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Counter offer sent", res))
}

func (c *offerController) Accept(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid offer id")
	}

	res, err := c.offerService.Accept(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Offer accepted", res))
}

func (c *offerController) Reject(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid offer id")
	}

	res, err := c.offerService.Reject(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Offer rejected", res))
}

func (c *offerController) ListByProperty(ctx *fiber.Ctx) error {
	propertyId, err := uuid.Parse(ctx.Params("propertyId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid property id")
	}

	res, err := c.offerService.ListByProperty(ctx.Context(), propertyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list offers", res))
}
