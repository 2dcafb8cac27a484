package entity

import (
	"strings"

	"github.com/pkg/errors"
)

// Profile is the routing mode of a navigation attempt.
type Profile string

const (
	// ProfileDriving routes along roads for vehicles.
	ProfileDriving Profile = "driving"
	// ProfileWalking routes along footpaths.
	ProfileWalking Profile = "walking"
)

// ErrUnknownProfile is returned when a profile name cannot be parsed.
var ErrUnknownProfile = errors.New("unknown routing profile")

// ParseProfile accepts both the short names and the primary service names.
func ParseProfile(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "driving", "driving-car", "car", "vehicle":
		return ProfileDriving, nil
	case "walking", "foot-walking", "foot":
		return ProfileWalking, nil
	default:
		return "", errors.Wrapf(ErrUnknownProfile, "profile %q", name)
	}
}

// String returns the string representation of the Profile.
func (p Profile) String() string {
	return string(p)
}

// IsValid checks if the Profile is a known value.
func (p Profile) IsValid() bool {
	switch p {
	case ProfileDriving, ProfileWalking:
		return true
	default:
		return false
	}
}

// PrimaryName is the profile identifier expected by the primary routing service.
func (p Profile) PrimaryName() string {
	if p == ProfileWalking {
		return "foot-walking"
	}

	return "driving-car"
}

// FallbackName is the profile identifier expected by the fallback routing service.
func (p Profile) FallbackName() string {
	if p == ProfileWalking {
		return "walking"
	}

	return "driving"
}

// DefaultBuffer is the deviation buffer used when the operator has not overridden it.
func (p Profile) DefaultBuffer() BufferDistance {
	if p == ProfileWalking {
		return 20
	}

	return 40
}

// Label is the human wording used in notifications ("vehicle route", "walking route").
func (p Profile) Label() string {
	if p == ProfileWalking {
		return "walking"
	}

	return "vehicle"
}
