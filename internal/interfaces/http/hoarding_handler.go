package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/application/usecase"
)

// HoardingHandler advertising site inventory endpoints.
type HoardingHandler struct {
	uc *usecase.HoardingUsecase
}

func NewHoardingHandler(uc *usecase.HoardingUsecase) *HoardingHandler {
	return &HoardingHandler{uc: uc}
}

// List godoc
// @Summary      List hoardings, paginated and searchable
// @Tags         hoardings
// @Security     Bearer
// @Produce      json
// @Param        page    query  int     false  "Page"   default(1)
// @Param        limit   query  int     false  "Limit"  default(10)
// @Param        search  query  string  false  "Name, city or area"
// @Success      200     {object}  dto.APIResponse
// @Router       /api/hoardings/getAllHoardings [get]
func (h *HoardingHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, pageMeta, err := h.uc.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKPage(out, pageMeta))
}

// Create godoc
// @Summary      Add a hoarding to the inventory
// @Tags         hoardings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHoardingRequest  true  "Hoarding data"
// @Success      201   {object}  dto.APIResponse
// @Router       /api/hoardings/createHoarding [post]
func (h *HoardingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHoardingRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// UpdateStatus godoc
// @Summary      Flip a hoarding's availability status
// @Tags         hoardings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Hoarding id"
// @Param        body  body  dto.UpdateHoardingRequest  true  "New status"
// @Success      200   {object}  dto.APIResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/hoardings/updateHoarding/{id} [post]
func (h *HoardingHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateHoardingRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
