package services

import (
	"testing"

	"github.com/ahleever/caltrack/internal/models"
)

func TestNextPhaseTransitions(t *testing.T) {
	tests := []struct {
		name            string
		phase           SessionPhase
		event           SessionEvent
		profileComplete bool
		want            SessionPhase
	}{
		{name: "login without profile", phase: PhaseLoggedOut, event: EventLoggedIn, want: PhaseAwaitingProfile},
		{name: "login with profile", phase: PhaseLoggedOut, event: EventLoggedIn, profileComplete: true, want: PhaseTracking},
		{name: "profile saved unlocks tracking", phase: PhaseAwaitingProfile, event: EventProfileSaved, profileComplete: true, want: PhaseTracking},
		{name: "profile saved incomplete stays", phase: PhaseAwaitingProfile, event: EventProfileSaved, want: PhaseAwaitingProfile},
		{name: "logout from tracking", phase: PhaseTracking, event: EventLoggedOut, want: PhaseLoggedOut},
		{name: "logout from setup", phase: PhaseAwaitingProfile, event: EventLoggedOut, want: PhaseLoggedOut},
		{name: "login event ignored mid-session", phase: PhaseTracking, event: EventLoggedIn, want: PhaseTracking},
		{name: "profile saved ignored when logged out", phase: PhaseLoggedOut, event: EventProfileSaved, profileComplete: true, want: PhaseLoggedOut},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := NextPhase(testCase.phase, testCase.event, testCase.profileComplete)
			if got != testCase.want {
				t.Fatalf("NextPhase(%v, %v, %v) = %v, want %v", testCase.phase, testCase.event, testCase.profileComplete, got, testCase.want)
			}
		})
	}
}

func TestPhaseForUser(t *testing.T) {
	if got := PhaseForUser(nil); got != PhaseLoggedOut {
		t.Fatalf("expected nil user to be logged out, got %v", got)
	}

	fresh := models.User{Username: "alice"}
	if got := PhaseForUser(&fresh); got != PhaseAwaitingProfile {
		t.Fatalf("expected fresh account to await profile, got %v", got)
	}

	ready := models.User{
		Username:      "alice",
		Age:           30,
		HeightInches:  70,
		WeightLb:      175,
		GoalWeightLb:  165,
		Sex:           models.SexFemale,
		ActivityLevel: ActivitySedentary,
	}
	if got := PhaseForUser(&ready); got != PhaseTracking {
		t.Fatalf("expected complete profile to track, got %v", got)
	}
	if !PhaseTracking.CanTrack() || PhaseAwaitingProfile.CanTrack() || PhaseLoggedOut.CanTrack() {
		t.Fatal("CanTrack must hold for Tracking only")
	}
}
