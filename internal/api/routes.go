package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	// Profile setup is reachable before the tracking surface unlocks.
	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpdateProfile)

	metrics := api.Group("/metrics", handler.AuthRequired)
	metrics.Get("", handler.GetMetrics)

	entries := api.Group("/entries", handler.AuthRequired, handler.ProfileRequired)
	entries.Post("", handler.CreateEntry)
	entries.Get("/totals", handler.GetDailyTotals)
	entries.Get("/dates", handler.GetTrackedDates)
	entries.Get("/:date", handler.GetDayEntries)

	catalog := api.Group("/catalog", handler.AuthRequired)
	catalog.Get("/meals", handler.GetMealSuggestions)
	catalog.Get("/exercises", handler.GetExerciseRecommendations)
}
