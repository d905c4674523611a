package api

import (
	"errors"

	"github.com/ahleever/caltrack/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := validateRegistrationPassword(credentials.Password); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := handler.authService.Register(credentials.Username, credentials.Password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return apiError(c, fiber.StatusConflict, "username already exists")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	if err := handler.setAuthCookie(c, &user, credentials.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	// Fresh accounts start without a profile and land in the setup phase.
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":      true,
		"user_id": user.ID,
		"phase":   services.PhaseForUser(&user).String(),
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Authenticate(credentials.Username, credentials.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid username or password")
	}

	if err := handler.setAuthCookie(c, &user, credentials.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"user_id": user.ID,
		"phase":   services.PhaseForUser(&user).String(),
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{
		"ok":    true,
		"phase": services.PhaseLoggedOut.String(),
	})
}
