package api

import (
	"github.com/ahleever/caltrack/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

// ProfileRequired gates the tracking surface: a session still awaiting its
// profile may only read and write the profile (and log out).
func (handler *Handler) ProfileRequired(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	if !services.PhaseForUser(user).CanTrack() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "profile required"})
	}
	return c.Next()
}
