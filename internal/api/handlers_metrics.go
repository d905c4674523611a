package api

import (
	"errors"

	"github.com/ahleever/caltrack/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetMetrics recomputes the derived metrics from the current profile snapshot
// on every call; nothing here is cached or stored.
func (handler *Handler) GetMetrics(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	snapshot, err := services.SnapshotOf(user)
	if err != nil {
		if errors.Is(err, services.ErrProfileIncomplete) {
			return apiError(c, fiber.StatusConflict, "profile incomplete")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	calculator, err := services.NewMetricsCalculator(snapshot)
	if err != nil {
		return apiError(c, fiber.StatusUnprocessableEntity, "invalid profile measurements")
	}

	bmi := calculator.BMI()
	bmr := calculator.BMR()
	maintenance := calculator.TDEE(bmr)
	goal := calculator.GoalCalories(maintenance)
	healthyMin, healthyMax := calculator.HealthyWeightRange()

	return c.JSON(fiber.Map{
		"bmi":                   bmi,
		"bmi_category":          services.BMICategory(bmi),
		"bmr":                   bmr,
		"maintenance_calories":  maintenance,
		"goal_calories":         goal.Target,
		"goal_floor_clamped":    goal.FloorClamped,
		"healthy_weight_min_lb": healthyMin,
		"healthy_weight_max_lb": healthyMax,
	})
}
