package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/application/usecase"
)

// AdminHandler user administration and the dashboard, admin-gated.
type AdminHandler struct {
	users     *usecase.UserUsecase
	dashboard *usecase.DashboardUsecase
}

func NewAdminHandler(users *usecase.UserUsecase, dashboard *usecase.DashboardUsecase) *AdminHandler {
	return &AdminHandler{users: users, dashboard: dashboard}
}

// GetAllEmsUsers godoc
// @Summary      List all users, paginated and searchable
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        page    query  int     false  "Page"   default(1)
// @Param        limit   query  int     false  "Limit"  default(10)
// @Param        search  query  string  false  "Name or email"
// @Success      200     {object}  dto.APIResponse
// @Router       /api/admin/getAllEmsUsers [get]
func (h *AdminHandler) GetAllEmsUsers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, pageMeta, err := h.users.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKPage(out, pageMeta))
}

// UpdateEmsUser godoc
// @Summary      Change a user's role
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateEmsUserRequest  true  "User id and new role"
// @Success      200   {object}  dto.APIResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/updateEmsUser [put]
func (h *AdminHandler) UpdateEmsUser(c *fiber.Ctx) error {
	var in dto.UpdateEmsUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.users.UpdateRole(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// DeleteEmsUser godoc
// @Summary      Delete a user without hierarchy children
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "User id"
// @Success      200  {object}  dto.APIResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/deleteEmsUser/{id} [delete]
func (h *AdminHandler) DeleteEmsUser(c *fiber.Ctx) error {
	if err := h.users.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(fiber.Map{"message": "user deleted"}))
}

// GetDashboardData godoc
// @Summary      Dashboard counters
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/admin/getDashboardData [get]
func (h *AdminHandler) GetDashboardData(c *fiber.Ctx) error {
	out, err := h.dashboard.Get(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
