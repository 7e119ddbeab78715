package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/application/usecase"
)

// LeadHandler lead CRUD and bulk upload. Update and delete take the id as a
// query parameter, matching the client.
type LeadHandler struct {
	uc *usecase.LeadUsecase
}

func NewLeadHandler(uc *usecase.LeadUsecase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

// Create godoc
// @Summary      Create a lead
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeadRequest  true  "Lead data"
// @Success      201   {object}  dto.APIResponse
// @Router       /api/crmSales/createLead [post]
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeadRequest
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
// @Summary      List leads, paginated and searchable
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        page    query  int     false  "Page"   default(1)
// @Param        limit   query  int     false  "Limit"  default(10)
// @Param        search  query  string  false  "Name, email or company"
// @Success      200     {object}  dto.APIResponse
// @Router       /api/crmSales/getAllLeads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
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

// Update godoc
// @Summary      Update a lead
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    query  string  true  "Lead id"
// @Param        body  body   dto.UpdateLeadRequest  true  "Fields to update"
// @Success      200   {object}  dto.APIResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/crmSales/updateLead [put]
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Query("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Delete a lead
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        id   query  string  true  "Lead id"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crmSales/deleteLead [delete]
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Query("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(fiber.Map{"message": "lead deleted"}))
}

// BulkUpload godoc
// @Summary      Persist pre-parsed spreadsheet rows as leads
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkUploadRequest  true  "Parsed rows"
// @Success      201   {object}  dto.APIResponse
// @Router       /api/crmSales/createBulkUpload [post]
func (h *LeadHandler) BulkUpload(c *fiber.Ctx) error {
	var in dto.BulkUploadRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	count, err := h.uc.BulkUpload(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(fiber.Map{"inserted": count}))
}
