package db

import (
	"time"

	"github.com/ahleever/caltrack/internal/models"
	"gorm.io/gorm"
)

type EntryRepository struct {
	database *gorm.DB
}

func NewEntryRepository(database *gorm.DB) *EntryRepository {
	return &EntryRepository{database: database}
}

// DailyTotalRow is one aggregated day. Dates are stored normalized to local
// midnight, so grouping by the stored value groups by calendar day.
type DailyTotalRow struct {
	EntryDate     time.Time `gorm:"column:entry_date"`
	TotalCalories int       `gorm:"column:total_calories"`
}

func (repo *EntryRepository) Create(entry *models.Entry) error {
	return repo.database.Create(entry).Error
}

func (repo *EntryRepository) ListByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.Entry, error) {
	entries := make([]models.Entry, 0)
	if err := repo.database.
		Where("user_id = ? AND entry_date >= ? AND entry_date < ?", userID, dayStart, dayEnd).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *EntryRepository) SumCaloriesByDay(userID uint, limit int) ([]DailyTotalRow, error) {
	rows := make([]DailyTotalRow, 0)
	query := repo.database.Model(&models.Entry{}).
		Select("entry_date, SUM(calories) AS total_calories").
		Where("user_id = ?", userID).
		Group("entry_date").
		Order("entry_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *EntryRepository) DistinctEntryDates(userID uint) ([]time.Time, error) {
	dates := make([]time.Time, 0)
	if err := repo.database.Model(&models.Entry{}).
		Distinct().
		Where("user_id = ?", userID).
		Order("entry_date ASC").
		Pluck("entry_date", &dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}
