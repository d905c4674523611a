package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/ahleever/caltrack/internal/services"
	"github.com/gofiber/fiber/v2"
)

const dayParamLayout = "2006-01-02"

const minPasswordLength = 4

var (
	errMissingCredentials = errors.New("username and password are required")
	errShortPassword      = errors.New("password must be at least 4 characters")
)

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return credentialsInput{}, err
	}
	input.Username = strings.TrimSpace(input.Username)
	input.Password = strings.TrimSpace(input.Password)
	if input.Username == "" || input.Password == "" {
		return credentialsInput{}, errMissingCredentials
	}
	return input, nil
}

func validateRegistrationPassword(password string) error {
	if len(password) < minPasswordLength {
		return errShortPassword
	}
	return nil
}

// parseProfileInput owns the input-shape validation for profile submissions:
// all numeric fields positive, sex and activity level drawn from their closed
// sets. The core assumes this has happened.
func parseProfileInput(c *fiber.Ctx) (services.ProfileSnapshot, error) {
	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return services.ProfileSnapshot{}, errors.New("invalid input")
	}

	if input.Age <= 0 {
		return services.ProfileSnapshot{}, errors.New("age must be a positive whole number")
	}
	if input.HeightInches <= 0 {
		return services.ProfileSnapshot{}, errors.New("height must be a positive number")
	}
	if input.WeightLb <= 0 {
		return services.ProfileSnapshot{}, errors.New("weight must be a positive number")
	}
	if input.GoalWeightLb <= 0 {
		return services.ProfileSnapshot{}, errors.New("goal weight must be a positive number")
	}

	sex := strings.ToLower(strings.TrimSpace(input.Sex))
	if !services.IsValidSex(sex) {
		return services.ProfileSnapshot{}, errors.New("sex must be male or female")
	}

	activityLevel := strings.ToLower(strings.TrimSpace(input.ActivityLevel))
	if !services.IsValidActivityLevel(activityLevel) {
		return services.ProfileSnapshot{}, errors.New("unknown activity level")
	}

	return services.ProfileSnapshot{
		Age:           input.Age,
		HeightInches:  input.HeightInches,
		WeightLb:      input.WeightLb,
		GoalWeightLb:  input.GoalWeightLb,
		Sex:           sex,
		ActivityLevel: activityLevel,
	}, nil
}

type parsedEntry struct {
	Meal     string
	Calories int
	Date     *time.Time
}

// parseEntryInput rejects blank meals and non-numeric or non-positive
// calories before the core sees them. The optional date backdates or
// forward-dates the entry; omitted means today.
func parseEntryInput(c *fiber.Ctx, location *time.Location) (parsedEntry, error) {
	input := entryInput{}
	if err := c.BodyParser(&input); err != nil {
		return parsedEntry{}, errors.New("invalid input")
	}

	meal := strings.TrimSpace(input.Meal)
	caloriesText := strings.TrimSpace(input.Calories)
	if meal == "" || caloriesText == "" {
		return parsedEntry{}, errors.New("please fill in both the meal and calorie fields")
	}

	calories, err := strconv.Atoi(caloriesText)
	if err != nil || calories <= 0 {
		return parsedEntry{}, errors.New("calories must be a positive whole number")
	}

	parsed := parsedEntry{Meal: meal, Calories: calories}
	if strings.TrimSpace(input.Date) != "" {
		day, err := parseDayParam(input.Date, location)
		if err != nil {
			return parsedEntry{}, err
		}
		parsed.Date = &day
	}
	return parsed, nil
}

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	day, err := time.ParseInLocation(dayParamLayout, strings.TrimSpace(raw), location)
	if err != nil {
		return time.Time{}, errors.New("invalid date, expected YYYY-MM-DD")
	}
	return day, nil
}

func parseTotalsLimit(raw string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || limit <= 0 {
		return services.DefaultTotalsWindow
	}
	return limit
}
