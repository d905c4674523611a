package services

import "github.com/ahleever/caltrack/internal/models"

// SessionPhase is the explicit session state machine:
//
//	LoggedOut → AwaitingProfile → Tracking
//
// Login or registration moves a session out of LoggedOut; saving a complete
// profile moves it to Tracking; logout returns it to LoggedOut from anywhere.
type SessionPhase int

const (
	PhaseLoggedOut SessionPhase = iota
	PhaseAwaitingProfile
	PhaseTracking
)

// SessionEvent is a discrete external transition trigger.
type SessionEvent int

const (
	EventLoggedIn SessionEvent = iota
	EventProfileSaved
	EventLoggedOut
)

func (phase SessionPhase) String() string {
	switch phase {
	case PhaseAwaitingProfile:
		return "awaiting_profile"
	case PhaseTracking:
		return "tracking"
	default:
		return "logged_out"
	}
}

// CanTrack reports whether entry logging and metrics are available.
func (phase SessionPhase) CanTrack() bool {
	return phase == PhaseTracking
}

// NextPhase advances the machine. Events that do not apply in the current
// phase leave it unchanged.
func NextPhase(phase SessionPhase, event SessionEvent, profileComplete bool) SessionPhase {
	switch event {
	case EventLoggedOut:
		return PhaseLoggedOut
	case EventLoggedIn:
		if phase != PhaseLoggedOut {
			return phase
		}
		if profileComplete {
			return PhaseTracking
		}
		return PhaseAwaitingProfile
	case EventProfileSaved:
		if phase == PhaseLoggedOut {
			return phase
		}
		if profileComplete {
			return PhaseTracking
		}
		return PhaseAwaitingProfile
	default:
		return phase
	}
}

// PhaseForUser derives the phase of an authenticated session from the stored
// profile, so every request agrees with the machine without persisting it.
func PhaseForUser(user *models.User) SessionPhase {
	if user == nil {
		return PhaseLoggedOut
	}
	if _, err := SnapshotOf(user); err != nil {
		return PhaseAwaitingProfile
	}
	return PhaseTracking
}
