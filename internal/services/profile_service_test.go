package services

import (
	"errors"
	"testing"

	"github.com/ahleever/caltrack/internal/models"
)

type stubProfileUserRepository struct {
	user        models.User
	findErr     error
	lastUpdates map[string]any
}

func (stub *stubProfileUserRepository) FindByID(uint) (models.User, error) {
	if stub.findErr != nil {
		return models.User{}, stub.findErr
	}
	return stub.user, nil
}

func (stub *stubProfileUserRepository) UpdateProfile(_ uint, updates map[string]any) error {
	stub.lastUpdates = updates
	return nil
}

func TestProfileUpdateOverwritesAllFields(t *testing.T) {
	repository := &stubProfileUserRepository{}
	service := NewProfileService(repository)

	err := service.Update(1, ProfileSnapshot{
		Age:           30,
		HeightInches:  70,
		WeightLb:      175,
		GoalWeightLb:  165,
		Sex:           models.SexMale,
		ActivityLevel: ActivityModerate,
	})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}

	wantColumns := []string{"age", "height_inches", "weight_lb", "goal_weight_lb", "sex", "activity_level"}
	if len(repository.lastUpdates) != len(wantColumns) {
		t.Fatalf("expected %d updated columns, got %d (%v)", len(wantColumns), len(repository.lastUpdates), repository.lastUpdates)
	}
	for _, column := range wantColumns {
		if _, ok := repository.lastUpdates[column]; !ok {
			t.Fatalf("expected column %q in the overwrite, got %v", column, repository.lastUpdates)
		}
	}
}

func TestSnapshotOfIncompleteProfile(t *testing.T) {
	// Height unset: metrics must be refused, not computed with zero.
	user := models.User{
		Age:           30,
		WeightLb:      175,
		GoalWeightLb:  165,
		Sex:           models.SexMale,
		ActivityLevel: ActivityModerate,
	}
	if _, err := SnapshotOf(&user); !errors.Is(err, ErrProfileIncomplete) {
		t.Fatalf("expected ErrProfileIncomplete, got %v", err)
	}

	repository := &stubProfileUserRepository{user: user}
	service := NewProfileService(repository)
	if _, err := service.Snapshot(7); !errors.Is(err, ErrProfileIncomplete) {
		t.Fatalf("expected ErrProfileIncomplete from the service, got %v", err)
	}
}

func TestSnapshotOfCompleteProfile(t *testing.T) {
	user := models.User{
		Age:           30,
		HeightInches:  70,
		WeightLb:      175,
		GoalWeightLb:  165,
		Sex:           models.SexFemale,
		ActivityLevel: ActivityLight,
	}
	snapshot, err := SnapshotOf(&user)
	if err != nil {
		t.Fatalf("SnapshotOf() unexpected error: %v", err)
	}
	if snapshot.HeightInches != 70 || snapshot.Sex != models.SexFemale || snapshot.ActivityLevel != ActivityLight {
		t.Fatalf("unexpected snapshot %+v", snapshot)
	}
}
