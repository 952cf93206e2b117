package middleware

import (
	"listenup/backend/config"
	"listenup/backend/models"
	"listenup/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthMiddleware verifies the JWT and stores the caller's identity in locals.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, role, err := utils.ExtractUserFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		c.Locals("userID", userID)
		c.Locals("userRole", role)
		return c.Next()
	}
}

// AdminMiddleware allows only users whose stored role is ADMIN. The role is
// checked against the database rather than the token claim so demotions take
// effect immediately.
func AdminMiddleware(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _, err := utils.ExtractUserFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}

		if err := Authorize(user.Role, models.RoleAdmin); err != nil {
			return utils.Forbidden(c, "Admin access required")
		}

		c.Locals("userID", user.ID)
		c.Locals("userRole", user.Role)
		return c.Next()
	}
}

// Authorize reports whether a caller with the given role holds the required one.
func Authorize(role, required string) error {
	if role != required {
		return fiber.NewError(fiber.StatusForbidden, "Forbidden")
	}
	return nil
}

// UserID returns the authenticated user's id stored by AuthMiddleware.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}
