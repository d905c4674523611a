package models

import "time"

// Entry is one immutable meal record. Entries are append-only: duplicates
// within a day are allowed and simply sum into the day's total.
type Entry struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index:idx_entries_user_date"`
	Meal      string    `gorm:"not null"`
	Calories  int       `gorm:"not null"`
	EntryDate time.Time `gorm:"type:date;not null;index:idx_entries_user_date"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
