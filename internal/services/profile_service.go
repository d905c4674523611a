package services

import "github.com/ahleever/caltrack/internal/models"

type ProfileUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateProfile(userID uint, updates map[string]any) error
}

// ProfileService owns the single mutable profile record per user.
type ProfileService struct {
	users ProfileUserRepository
}

func NewProfileService(users ProfileUserRepository) *ProfileService {
	return &ProfileService{users: users}
}

// Update overwrites the whole profile. Numeric fields arrive validated
// positive from the boundary; the caller owns that check.
func (service *ProfileService) Update(userID uint, snapshot ProfileSnapshot) error {
	return service.users.UpdateProfile(userID, map[string]any{
		"age":            snapshot.Age,
		"height_inches":  snapshot.HeightInches,
		"weight_lb":      snapshot.WeightLb,
		"goal_weight_lb": snapshot.GoalWeightLb,
		"sex":            snapshot.Sex,
		"activity_level": snapshot.ActivityLevel,
	})
}

// Snapshot loads the stored profile. An unset or partially set profile
// returns ErrProfileIncomplete so callers surface the setup path instead of
// computing metrics from zero values.
func (service *ProfileService) Snapshot(userID uint) (ProfileSnapshot, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return ProfileSnapshot{}, err
	}
	return SnapshotOf(&user)
}

// SnapshotOf extracts the profile snapshot from an already loaded user.
func SnapshotOf(user *models.User) (ProfileSnapshot, error) {
	snapshot := ProfileSnapshot{
		Age:           user.Age,
		HeightInches:  user.HeightInches,
		WeightLb:      user.WeightLb,
		GoalWeightLb:  user.GoalWeightLb,
		Sex:           user.Sex,
		ActivityLevel: user.ActivityLevel,
	}
	if !snapshot.Complete() {
		return ProfileSnapshot{}, ErrProfileIncomplete
	}
	return snapshot, nil
}
