package middleware

import (
	"strings"

	"github.com/yurakhomitsky/E-Shop/apperr"
	"github.com/yurakhomitsky/E-Shop/models"
	"github.com/yurakhomitsky/E-Shop/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	// UserIDKey is the locals key holding the authenticated user's id.
	UserIDKey = "user_id"
	// IsAdminKey is the locals key holding the token's admin flag.
	IsAdminKey = "is_admin"
)

// Protected returns the authorization gate. A request passes when it
// carries a correctly signed, unexpired Bearer token; the admin flag
// is stored for later route-level checks but never blocks the request
// here.
func Protected(tm *utils.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperr.Auth("The user is not authorized")
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return apperr.Auth("Invalid authorization header format")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tm.ValidateToken(tokenString)
		if err != nil {
			if err == utils.ErrExpiredToken {
				return apperr.Auth("Token has expired")
			}
			return apperr.Auth("Token is invalid")
		}

		c.Locals(UserIDKey, claims.UserID)
		c.Locals(IsAdminKey, claims.IsAdmin)

		return c.Next()
	}
}

// RequireAdmin gates admin-only routes on the token's admin flag. It
// must run after Protected.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isAdmin, ok := c.Locals(IsAdminKey).(bool)
		if !ok || !isAdmin {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Admin access required"))
		}
		return c.Next()
	}
}
