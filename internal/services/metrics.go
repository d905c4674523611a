package services

import (
	"errors"
	"math"

	"github.com/ahleever/caltrack/internal/models"
)

var (
	ErrInvalidMeasurement = errors.New("profile measurements must be positive numbers")
	ErrProfileIncomplete  = errors.New("profile incomplete")
)

// Activity levels form a closed set of named multipliers. Unknown keys fall
// back to the sedentary factor instead of erroring; the lenient default is a
// deliberate policy, not an accident.
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityVeryActive = "very_active"
)

const (
	BMIUnderweightUpper = 18.5
	BMIHealthyUpper     = 24.9
	BMIOverweightUpper  = 29.9
)

const (
	CategoryUnderweight = "Underweight"
	CategoryHealthy     = "Healthy Weight"
	CategoryOverweight  = "Overweight"
	CategoryObese       = "Obese"
)

// Goal adjustment applied to maintenance calories, and the per-sex floors a
// deficit target is never allowed to fall below.
const (
	GoalCalorieAdjustment = 500
	DeficitFloorMale      = 1500
	DeficitFloorFemale    = 1200
)

var activityFactors = map[string]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityVeryActive: 1.725,
}

func ActivityFactor(level string) float64 {
	if factor, ok := activityFactors[level]; ok {
		return factor
	}
	return activityFactors[ActivitySedentary]
}

func IsValidActivityLevel(level string) bool {
	_, ok := activityFactors[level]
	return ok
}

func IsValidSex(sex string) bool {
	return sex == models.SexMale || sex == models.SexFemale
}

// ProfileSnapshot is the immutable input to the metrics calculations, taken
// from the stored profile at each display refresh.
type ProfileSnapshot struct {
	Age           int
	HeightInches  float64
	WeightLb      float64
	GoalWeightLb  float64
	Sex           string
	ActivityLevel string
}

func (snapshot ProfileSnapshot) Complete() bool {
	return snapshot.Age > 0 &&
		snapshot.HeightInches > 0 &&
		snapshot.WeightLb > 0 &&
		snapshot.GoalWeightLb > 0 &&
		IsValidSex(snapshot.Sex) &&
		snapshot.ActivityLevel != ""
}

// MetricsCalculator derives BMI, BMR, TDEE and goal calories from a profile
// snapshot. It never mutates stored state.
type MetricsCalculator struct {
	snapshot ProfileSnapshot
}

// NewMetricsCalculator validates the snapshot's numeric fields before any
// computation. Non-positive age, height, weight or goal weight is rejected,
// never silently coerced.
func NewMetricsCalculator(snapshot ProfileSnapshot) (*MetricsCalculator, error) {
	if snapshot.Age <= 0 || snapshot.HeightInches <= 0 || snapshot.WeightLb <= 0 || snapshot.GoalWeightLb <= 0 {
		return nil, ErrInvalidMeasurement
	}
	return &MetricsCalculator{snapshot: snapshot}, nil
}

// BMI converts the stored imperial measurements to metric and returns
// weight_kg / height_m². A zero height yields 0.0 rather than dividing by
// zero; the constructor already rejects it, the guard documents the policy.
func (calc *MetricsCalculator) BMI() float64 {
	heightMeters := InchesToMeters(calc.snapshot.HeightInches)
	if heightMeters == 0 {
		return 0.0
	}
	weightKg := PoundsToKilograms(calc.snapshot.WeightLb)
	return weightKg / (heightMeters * heightMeters)
}

// BMICategory buckets a BMI value with strict upper bounds: exactly 18.5 is
// already Healthy Weight, exactly 24.9 already Overweight.
func BMICategory(bmi float64) string {
	switch {
	case bmi < BMIUnderweightUpper:
		return CategoryUnderweight
	case bmi < BMIHealthyUpper:
		return CategoryHealthy
	case bmi < BMIOverweightUpper:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

// BMR estimates resting energy expenditure with the Mifflin-St Jeor formula,
// rounded to the nearest whole kcal. Height in cm goes through the
// inches→meters→inches→cm round trip to keep the original formula path.
func (calc *MetricsCalculator) BMR() int {
	weightKg := PoundsToKilograms(calc.snapshot.WeightLb)
	heightMeters := InchesToMeters(calc.snapshot.HeightInches)
	heightCm := MetersToInches(heightMeters) * 2.54

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(calc.snapshot.Age)
	if calc.snapshot.Sex == models.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(math.Round(bmr))
}

// TDEE scales a BMR by the profile's activity factor.
func (calc *MetricsCalculator) TDEE(bmr int) int {
	return int(math.Round(float64(bmr) * ActivityFactor(calc.snapshot.ActivityLevel)))
}

// GoalCalories is a daily calorie target derived from maintenance TDEE.
type GoalCalories struct {
	Target       int
	FloorClamped bool
}

// GoalCalories applies a ±500 kcal adjustment toward the goal weight. Deficit
// targets are clamped to the per-sex safety floor and flagged so the display
// can annotate the clamp.
func (calc *MetricsCalculator) GoalCalories(maintenance int) GoalCalories {
	switch {
	case calc.snapshot.GoalWeightLb < calc.snapshot.WeightLb:
		target := maintenance - GoalCalorieAdjustment
		floor := DeficitFloorFemale
		if calc.snapshot.Sex == models.SexMale {
			floor = DeficitFloorMale
		}
		if target < floor {
			return GoalCalories{Target: floor, FloorClamped: true}
		}
		return GoalCalories{Target: target}
	case calc.snapshot.GoalWeightLb > calc.snapshot.WeightLb:
		return GoalCalories{Target: maintenance + GoalCalorieAdjustment}
	default:
		return GoalCalories{Target: maintenance}
	}
}

// HealthyWeightRange returns the whole-pound weights at BMI 18.5 and 24.9 for
// the profile's height.
func (calc *MetricsCalculator) HealthyWeightRange() (int, int) {
	heightMeters := InchesToMeters(calc.snapshot.HeightInches)
	minKg := BMIUnderweightUpper * heightMeters * heightMeters
	maxKg := BMIHealthyUpper * heightMeters * heightMeters
	return int(math.Round(KilogramsToPounds(minKg))), int(math.Round(KilogramsToPounds(maxKg)))
}
