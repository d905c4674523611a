package api

import (
	"errors"

	"github.com/ahleever/caltrack/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	snapshot, err := services.SnapshotOf(user)
	if errors.Is(err, services.ErrProfileIncomplete) {
		return c.JSON(fiber.Map{
			"complete": false,
			"phase":    services.PhaseAwaitingProfile.String(),
		})
	}

	return c.JSON(fiber.Map{
		"complete":       true,
		"phase":          services.PhaseTracking.String(),
		"age":            snapshot.Age,
		"height_inches":  snapshot.HeightInches,
		"weight_lb":      snapshot.WeightLb,
		"goal_weight_lb": snapshot.GoalWeightLb,
		"sex":            snapshot.Sex,
		"activity_level": snapshot.ActivityLevel,
	})
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	snapshot, err := parseProfileInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.profileService.Update(user.ID, snapshot); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
	}

	return c.JSON(fiber.Map{
		"ok":    true,
		"phase": services.PhaseTracking.String(),
	})
}
