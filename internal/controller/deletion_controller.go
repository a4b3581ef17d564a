package controller

import (
	"landivo-be/internal/dto"
	"landivo-be/internal/pkg/serverutils"
	"landivo-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDeletionController interface {
	RegisterRoutes(r fiber.Router)
	Request(ctx *fiber.Ctx) error
	RequestBulk(ctx *fiber.Ctx) error
	Approve(ctx *fiber.Ctx) error
	Reject(ctx *fiber.Ctx) error
	DeleteDirect(ctx *fiber.Ctx) error
	ListPending(ctx *fiber.Ctx) error
	ResendApproval(ctx *fiber.Ctx) error
}

type deletionController struct {
	deletionService service.IDeletionService
}

func NewDeletionController(deletionService service.IDeletionService) IDeletionController {
	return &deletionController{
		deletionService: deletionService,
	}
}

func (c *deletionController) RegisterRoutes(r fiber.Router) {
	// The approval link lands here straight from the admin's inbox, so it
	// stays outside the JWT group. The token itself is the credential.
	pub := r.Group("/residency")
	pub.Get("approve-deletion/:token", c.Approve)
	pub.Post("approve-deletion/:token", c.Approve)

	h := r.Group("/property/v1/deletion")
	h.Use(serverutils.JwtMiddleware)
	h.Post("bulk", c.RequestBulk)
	h.Post(":propertyId", c.Request)
	h.Post(":token/reject", serverutils.RequireRole("admin"), c.Reject)
	h.Get("pending", serverutils.RequireRole("admin"), c.ListPending)
	h.Post(":id/resend", serverutils.RequireRole("admin"), c.ResendApproval)
	h.Delete("direct/:propertyId", serverutils.RequireRole("admin"), c.DeleteDirect)
}

func requesterFromLocals(ctx *fiber.Ctx) service.Requester {
	email, _ := ctx.Locals("user_email").(string)
	identity, _ := ctx.Locals("user_id").(string)
	name, _ := ctx.Locals("user_name").(string)
	return service.Requester{
		Email:    email,
		Identity: identity,
		Name:     name,
	}
}

func (c *deletionController) Request(ctx *fiber.Ctx) error {
	propertyId, err := uuid.Parse(ctx.Params("propertyId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid property id")
	}

	var req dto.CreateDeletionRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return err
		}
	}
	req.PropertyId = propertyId

	res, err := c.deletionService.RequestDeletion(ctx.Context(), requesterFromLocals(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Deletion request submitted", res))
}

func (c *deletionController) RequestBulk(ctx *fiber.Ctx) error {
	var req dto.BulkDeletionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.deletionService.RequestBulkDeletion(ctx.Context(), requesterFromLocals(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Bulk deletion request submitted", res))
}

func (c *deletionController) Approve(ctx *fiber.Ctx) error {
	token := ctx.Params("token")
	if token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing token")
	}

	res, err := c.deletionService.ApproveDeletion(ctx.Context(), token)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Deletion approved", res))
}

func (c *deletionController) Reject(ctx *fiber.Ctx) error {
	token := ctx.Params("token")
	if token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing token")
	}

	res, err := c.deletionService.RejectDeletion(ctx.Context(), token)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Deletion rejected", res))
}

func (c *deletionController) DeleteDirect(ctx *fiber.Ctx) error {
	propertyId, err := uuid.Parse(ctx.Params("propertyId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid property id")
	}

	if err := c.deletionService.DeleteDirect(ctx.Context(), propertyId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Property deleted", nil))
}

func (c *deletionController) ListPending(ctx *fiber.Ctx) error {
	res, err := c.deletionService.ListPending(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list pending deletion requests", res))
}

func (c *deletionController) ResendApproval(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request id")
	}

	if err := c.deletionService.ResendApproval(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Approval email resent", nil))
}
