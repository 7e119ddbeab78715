package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/application/usecase"
	"github.com/arcisai/crm-backend/internal/domain/entity"
)

// UserHandler user creation and hierarchy queries.
type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// CreateEmsUser godoc
// @Summary      Create a user under the hierarchy rules
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmsUserRequest  true  "User data"
// @Success      201   {object}  dto.APIResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/createEmsUser [post]
func (h *UserHandler) CreateEmsUser(c *fiber.Ctx) error {
	var in dto.CreateEmsUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// GetUsersByRole godoc
// @Summary      List users holding a role tag
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        role  query  string  true  "Role tag"
// @Success      200   {object}  dto.APIResponse
// @Router       /api/users/getUsersByRole [get]
func (h *UserHandler) GetUsersByRole(c *fiber.Ctx) error {
	out, err := h.uc.ListByRole(c.Context(), c.Query("role"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetChildrenByUserID godoc
// @Summary      Direct hierarchy children of a user
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Parent user id"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/users/getChildrenByUserId/{id} [get]
func (h *UserHandler) GetChildrenByUserID(c *fiber.Ctx) error {
	out, err := h.uc.ListChildren(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetMyChildren godoc
// @Summary      Direct hierarchy children of the caller
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/users/getMyChildren [get]
func (h *UserHandler) GetMyChildren(c *fiber.Ctx) error {
	out, err := h.uc.ListChildren(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetSalesUsers godoc
// @Summary      List sales users (booking salesperson picker)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/users/getSalesUsers [get]
func (h *UserHandler) GetSalesUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListByRole(c.Context(), entity.RoleSales)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
