package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/domain/access"
	"github.com/arcisai/crm-backend/pkg/jwt"
)

// Locals keys set by AuthMiddleware.
const (
	LocalUserID = "user_id"
	LocalRoles  = "roles"

	// TokenCookie is the cookie the SPA sends on every request.
	TokenCookie = "token"
)

// AuthMiddleware validates the JWT from the Authorization header or the
// token cookie and stores user_id and roles in c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			tokenString = c.Cookies(TokenCookie)
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("MISSING_TOKEN", "authentication required"))
		}
		userID, roles, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("INVALID_TOKEN", "invalid or expired token"))
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRoles, roles)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetUserID returns the authenticated user id (after AuthMiddleware).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRoles returns the authenticated role set (after AuthMiddleware).
func GetRoles(c *fiber.Ctx) []string {
	v := c.Locals(LocalRoles)
	if v == nil {
		return nil
	}
	roles, _ := v.([]string)
	return roles
}

// GetVerdict resolves the access verdict for the authenticated role set.
func GetVerdict(c *fiber.Ctx) access.Verdict {
	raw := GetRoles(c)
	roles := make([]access.Role, 0, len(raw))
	for _, r := range raw {
		roles = append(roles, access.Role(r))
	}
	return access.Resolve(roles)
}

// RequireRoles authorizes only users holding at least one of the given role
// tags. Must run after AuthMiddleware.
func RequireRoles(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roles := GetRoles(c)
		for _, have := range roles {
			for _, want := range allowed {
				if have == want {
					return c.Next()
				}
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("FORBIDDEN", "insufficient role"))
	}
}

// RequireRoute gates an API group with the same table the SPA router uses,
// so a marketing-lead-only user is denied server-side too. The response
// carries the destination the client should land on.
func RequireRoute(route access.Route) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v := GetVerdict(c)
		if v.Allowed(route) {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success":  false,
			"code":     "FORBIDDEN",
			"message":  "role set may not access this surface",
			"redirect": string(v.RedirectFor(route)),
		})
	}
}
