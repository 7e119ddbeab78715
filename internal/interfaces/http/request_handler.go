package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/application/sales"
)

// RequestHandler the stock-request lifecycle endpoints.
type RequestHandler struct {
	uc *sales.RequestUsecase
}

func NewRequestHandler(uc *sales.RequestUsecase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

// Create godoc
// @Summary      Open a stock request against the caller's parent
// @Tags         requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRequestRequest  true  "Product and quantity"
// @Success      201   {object}  dto.APIResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/crmSales/createRequest [post]
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Update godoc
// @Summary      Transition a request's status or edit it while pending
// @Tags         requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Request id"
// @Param        body  body  dto.UpdateRequestRequest  true  "Target status or field edits"
// @Success      200   {object}  dto.APIResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/crmSales/updateRequest/{id} [put]
func (h *RequestHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), GetRoles(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Delete one's own pending request
// @Tags         requests
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Request id"
// @Success      200  {object}  dto.APIResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/crmSales/deleteRequest/{id} [delete]
func (h *RequestHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(fiber.Map{"message": "request deleted"}))
}

// ListAssigned godoc
// @Summary      The caller's incoming queue, all statuses
// @Tags         requests
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/crmSales/getAllRequests [get]
func (h *RequestHandler) ListAssigned(c *fiber.Ctx) error {
	out, err := h.uc.ListAssigned(c.Context(), GetUserID(c), GetRoles(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// ListMine godoc
// @Summary      The caller's own requests (approved ones excluded)
// @Tags         requests
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/crmSales/getMyRequests [get]
func (h *RequestHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.Context(), GetUserID(c), GetRoles(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// ListApproved godoc
// @Summary      Approved requests awaiting fulfillment in the caller's queue
// @Tags         requests
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/crmSales/getApprovedRequests [get]
func (h *RequestHandler) ListApproved(c *fiber.Ctx) error {
	out, err := h.uc.ListApproved(c.Context(), GetUserID(c), GetRoles(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
