package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/application/usecase"
)

// BookingHandler hoarding booking endpoints. The SPA calls these "orders"
// on the hoarding side; the route names keep that vocabulary.
type BookingHandler struct {
	uc *usecase.BookingUsecase
}

func NewBookingHandler(uc *usecase.BookingUsecase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// List godoc
// @Summary      List bookings
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/hoardings/getAllOrders [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Create godoc
// @Summary      Book hoardings for a customer; totals are computed server-side
// @Tags         bookings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBookingRequest  true  "Booking data"
// @Success      201   {object}  dto.APIResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/hoardings/createOrder [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookingRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Get godoc
// @Summary      Fetch one booking
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Booking id"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hoardings/getOrderById/{id} [get]
func (h *BookingHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update godoc
// @Summary      Update a booking's status and notes
// @Tags         bookings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Booking id"
// @Param        body  body  dto.UpdateBookingRequest  true  "Status and notes"
// @Success      200   {object}  dto.APIResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/hoardings/updateOrder/{id} [put]
func (h *BookingHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBookingRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Delete a booking
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Booking id"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hoardings/deleteOrder/{id} [delete]
func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(fiber.Map{"message": "booking deleted"}))
}
