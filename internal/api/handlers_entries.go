package api

import (
	"errors"

	"github.com/ahleever/caltrack/internal/models"
	"github.com/ahleever/caltrack/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CreateEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := parseEntryInput(c, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entry, err := handler.entryService.Save(user.ID, input.Meal, input.Calories, input.Date)
	if err != nil {
		if errors.Is(err, services.ErrBlankMeal) || errors.Is(err, services.ErrInvalidCalories) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save entry")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":    true,
		"entry": entryPayload(entry),
	})
}

func (handler *Handler) GetDayEntries(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entries, err := handler.entryService.LoadEntries(user.ID, day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entries")
	}

	payload := make([]fiber.Map, 0, len(entries))
	for _, entry := range entries {
		payload = append(payload, entryPayload(entry))
	}

	return c.JSON(fiber.Map{
		"date":           day.Format(dayParamLayout),
		"entries":        payload,
		"total_calories": services.SumCalories(entries),
	})
}

func (handler *Handler) GetDailyTotals(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	limit := parseTotalsLimit(c.Query("limit"))
	totals, err := handler.entryService.LoadDailyTotals(user.ID, limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load totals")
	}

	payload := make([]fiber.Map, 0, len(totals))
	for _, total := range totals {
		payload = append(payload, fiber.Map{
			"date":           total.Date.Format(dayParamLayout),
			"total_calories": total.TotalCalories,
		})
	}
	return c.JSON(fiber.Map{"totals": payload})
}

func (handler *Handler) GetTrackedDates(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	dates, err := handler.entryService.LoadTrackedDates(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load tracked dates")
	}

	payload := make([]string, 0, len(dates))
	for _, date := range dates {
		payload = append(payload, date.Format(dayParamLayout))
	}
	return c.JSON(fiber.Map{"dates": payload})
}

func entryPayload(entry models.Entry) fiber.Map {
	return fiber.Map{
		"id":       entry.ID,
		"meal":     entry.Meal,
		"calories": entry.Calories,
		"date":     entry.EntryDate.Format(dayParamLayout),
	}
}
