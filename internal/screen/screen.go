package screen

import (
	"errors"
	"fmt"
)

// ErrUnknownScreen is returned when a name does not match any screen.
var ErrUnknownScreen = errors.New("screen: unknown screen")

// ID identifies one full-view screen in the closed navigation set.
type ID int

const (
	OnboardingStep1 ID = iota
	OnboardingStep2
	Login
	EmailVerification
	Search
	History
	Profile

	count
)

var names = [...]string{
	OnboardingStep1:   "onboarding1",
	OnboardingStep2:   "onboarding2",
	Login:             "login",
	EmailVerification: "emailVerification",
	Search:            "search",
	History:           "history",
	Profile:           "profile",
}

// All returns every screen in carousel order.
func All() []ID {
	ids := make([]ID, 0, int(count))
	for id := OnboardingStep1; id < count; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Valid reports whether id belongs to the closed set.
func (id ID) Valid() bool {
	return id >= OnboardingStep1 && id < count
}

func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("screen(%d)", int(id))
	}
	return names[id]
}

// Parse maps a stable screen name to its ID. Unknown names yield
// OnboardingStep1 together with ErrUnknownScreen.
func Parse(name string) (ID, error) {
	for id, candidate := range names {
		if candidate == name {
			return ID(id), nil
		}
	}
	return OnboardingStep1, fmt.Errorf("%w: %q", ErrUnknownScreen, name)
}
