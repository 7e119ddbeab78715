package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/application/sales"
)

// OrderHandler order creation and listing.
type OrderHandler struct {
	uc *sales.OrderUsecase
}

func NewOrderHandler(uc *sales.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Commit a stock transfer down the hierarchy or to a customer
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Order data"
// @Success      201   {object}  dto.APIResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/crmSales/createOrder [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// ListMine godoc
// @Summary      The caller's orders, newest first
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/crmSales/getMyOrders [get]
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
