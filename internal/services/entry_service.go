package services

import (
	"errors"
	"strings"
	"time"

	"github.com/ahleever/caltrack/internal/db"
	"github.com/ahleever/caltrack/internal/models"
)

var (
	ErrBlankMeal       = errors.New("meal must not be blank")
	ErrInvalidCalories = errors.New("calories must be a positive whole number")
)

// DefaultTotalsWindow bounds the recent-history rollup when the caller does
// not ask for a specific number of days.
const DefaultTotalsWindow = 30

type EntryLogRepository interface {
	Create(entry *models.Entry) error
	ListByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.Entry, error)
	SumCaloriesByDay(userID uint, limit int) ([]db.DailyTotalRow, error)
	DistinctEntryDates(userID uint) ([]time.Time, error)
}

// DailyTotal is derived on demand, never stored.
type DailyTotal struct {
	Date          time.Time
	TotalCalories int
}

// EntryService is the append-only, per-user, per-date meal log.
type EntryService struct {
	entries  EntryLogRepository
	location *time.Location
	now      func() time.Time
}

func NewEntryService(entries EntryLogRepository, location *time.Location) *EntryService {
	if location == nil {
		location = time.UTC
	}
	return &EntryService{
		entries:  entries,
		location: location,
		now:      time.Now,
	}
}

// Save appends one immutable record. The date defaults to today when nil;
// callers may backdate or forward-date explicitly. Blank meals and
// non-positive calories are re-rejected here even though the boundary
// validates them first.
func (service *EntryService) Save(userID uint, meal string, calories int, date *time.Time) (models.Entry, error) {
	if strings.TrimSpace(meal) == "" {
		return models.Entry{}, ErrBlankMeal
	}
	if calories <= 0 {
		return models.Entry{}, ErrInvalidCalories
	}

	day := service.now()
	if date != nil {
		day = *date
	}

	entry := models.Entry{
		UserID:    userID,
		Meal:      strings.TrimSpace(meal),
		Calories:  calories,
		EntryDate: DateAtLocation(day, service.location),
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}

// LoadEntries returns the day's records in insertion order; an untracked day
// yields an empty slice, never an error.
func (service *EntryService) LoadEntries(userID uint, day time.Time) ([]models.Entry, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	return service.entries.ListByUserAndDayRange(userID, dayStart, dayEnd)
}

// SumCalories folds a day's entries into its DailyTotal.
func SumCalories(entries []models.Entry) int {
	total := 0
	for _, entry := range entries {
		total += entry.Calories
	}
	return total
}

// LoadDailyTotals aggregates calories per tracked date, most recent first,
// truncated to the limit most-recent days (DefaultTotalsWindow when limit is
// not positive).
func (service *EntryService) LoadDailyTotals(userID uint, limit int) ([]DailyTotal, error) {
	if limit <= 0 {
		limit = DefaultTotalsWindow
	}
	rows, err := service.entries.SumCaloriesByDay(userID, limit)
	if err != nil {
		return nil, err
	}

	totals := make([]DailyTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, DailyTotal{
			Date:          DateAtLocation(row.EntryDate, service.location),
			TotalCalories: row.TotalCalories,
		})
	}
	return totals, nil
}

// LoadTrackedDates lists the distinct dates carrying at least one entry. The
// result marks a date picker; order is incidental.
func (service *EntryService) LoadTrackedDates(userID uint) ([]time.Time, error) {
	dates, err := service.entries.DistinctEntryDates(userID)
	if err != nil {
		return nil, err
	}
	tracked := make([]time.Time, 0, len(dates))
	for _, date := range dates {
		tracked = append(tracked, DateAtLocation(date, service.location))
	}
	return tracked, nil
}
