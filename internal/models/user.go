package models

import "time"

const (
	SexMale   = "male"
	SexFemale = "female"
)

// User is one account together with its fitness profile. Profile columns
// start at their zero values on registration; since every profile field must
// be positive (or a non-empty enum) to be meaningful, a zero value doubles as
// "unset" and routes callers to the profile-setup path.
type User struct {
	ID            uint      `gorm:"primaryKey"`
	Username      string    `gorm:"uniqueIndex;not null"`
	PasswordHash  string    `gorm:"not null"`
	Age           int       `gorm:"not null;default:0"`
	HeightInches  float64   `gorm:"not null;default:0"`
	WeightLb      float64   `gorm:"not null;default:0"`
	GoalWeightLb  float64   `gorm:"not null;default:0"`
	Sex           string    `gorm:"not null;default:''"`
	ActivityLevel string    `gorm:"not null;default:''"`
	CreatedAt     time.Time `gorm:"not null"`
}
