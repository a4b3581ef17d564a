package controller

import (
	"landivo-be/internal/dto"
	"landivo-be/internal/pkg/serverutils"
	"landivo-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IEmailListController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	AddMembers(ctx *fiber.Ctx) error
	RemoveMember(ctx *fiber.Ctx) error
}

type emailListController struct {
	emailListService service.IEmailListService
}

func NewEmailListController(emailListService service.IEmailListService) IEmailListController {
	return &emailListController{
		emailListService: emailListService,
	}
}

func (c *emailListController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/email-list/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/members", c.AddMembers)
	h.Delete(":id/members/:buyerId", c.RemoveMember)
}

func (c *emailListController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateEmailListRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.emailListService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create email list", res))
}

func (c *emailListController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid list id")
	}

	var req dto.UpdateEmailListRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.emailListService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update email list", res))
}

func (c *emailListController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid list id")
	}

	res, err := c.emailListService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show email list", res))
}

func (c *emailListController) List(ctx *fiber.Ctx) error {
	res, err := c.emailListService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list email lists", res))
}

func (c *emailListController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid list id")
	}

	if err := c.emailListService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete email list", nil))
}

func (c *emailListController) AddMembers(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid list id")
	}

	var req dto.AddListMembersRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.emailListService.AddMembers(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Members added", res))
}

func (c *emailListController) RemoveMember(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid list id")
	}
	buyerId, err := uuid.Parse(ctx.Params("buyerId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid buyer id")
	}

	if err := c.emailListService.RemoveMember(ctx.Context(), id, buyerId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Member removed", nil))
}
