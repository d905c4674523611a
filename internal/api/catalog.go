package api

import "github.com/gofiber/fiber/v2"

// Static suggestion catalogs backing the entry form: a combobox of common
// meals and the daily exercise sidebar with rough burn estimates.

var commonMeals = []string{
	"Chicken and Rice",
	"Oatmeal",
	"Protein Shake",
	"Scrambled Eggs",
	"Tuna Salad",
	"Pasta with Sauce",
	"Apple",
	"Banana",
}

type exerciseRecommendation struct {
	Name         string `json:"name"`
	BurnEstimate int    `json:"burn_estimate_kcal"`
}

var exerciseRecommendations = []exerciseRecommendation{
	{Name: "Walk 30 min", BurnEstimate: 150},
	{Name: "1 hour Strength Training", BurnEstimate: 300},
	{Name: "20 min HIIT", BurnEstimate: 250},
	{Name: "Yoga or Stretching", BurnEstimate: 80},
	{Name: "Running 5k", BurnEstimate: 400},
	{Name: "Cycling (Moderate)", BurnEstimate: 350},
}

func (handler *Handler) GetMealSuggestions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"meals": commonMeals})
}

func (handler *Handler) GetExerciseRecommendations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"exercises": exerciseRecommendations})
}
