package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/arcisai/crm-backend/internal/application/auth"
	"github.com/arcisai/crm-backend/internal/application/dto"
)

// AuthHandler login, logout and session introspection.
type AuthHandler struct {
	uc      *auth.Usecase
	tracker *ActivityTracker
}

func NewAuthHandler(uc *auth.Usecase, tracker *ActivityTracker) *AuthHandler {
	return &AuthHandler{uc: uc, tracker: tracker}
}

// Login godoc
// @Summary      Authenticate and receive a JWT
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.APIResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/users/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}

	h.tracker.Reset(out.User.ID)
	// The SPA authenticates with a cookie; API clients use the token field.
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookie,
		Value:    out.Token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	return c.JSON(dto.OK(out))
}

// Logout godoc
// @Summary      Clear the session cookie
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/users/logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if userID := GetUserID(c); userID != "" {
		h.tracker.Reset(userID)
	}
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookie,
		Value:    "",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
	return c.JSON(dto.OK(fiber.Map{"message": "logged out"}))
}

// Me godoc
// @Summary      Authenticated user plus allowed routes and menu
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
