package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/application/usecase"
)

// EnquiryHandler enquiry endpoints. This is the one working surface of a
// marketing-lead-only user.
type EnquiryHandler struct {
	uc *usecase.EnquiryUsecase
}

func NewEnquiryHandler(uc *usecase.EnquiryUsecase) *EnquiryHandler {
	return &EnquiryHandler{uc: uc}
}

// Create godoc
// @Summary      Record an inbound enquiry
// @Tags         enquiries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEnquiryRequest  true  "Enquiry data"
// @Success      201   {object}  dto.APIResponse
// @Router       /api/hoardings/enquiries [post]
func (h *EnquiryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEnquiryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// List godoc
// @Summary      List enquiries, newest first
// @Tags         enquiries
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/hoardings/enquiries [get]
func (h *EnquiryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update godoc
// @Summary      Update an enquiry; new notes are appended, never replaced
// @Tags         enquiries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Enquiry id"
// @Param        body  body  dto.UpdateEnquiryRequest  true  "Fields and new notes"
// @Success      200   {object}  dto.APIResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/hoardings/enquiries/{id} [put]
func (h *EnquiryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEnquiryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
