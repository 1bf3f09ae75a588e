package screen

import (
	"errors"
	"testing"
)

func TestRouterStartsOnFirstOnboardingStep(t *testing.T) {
	r := NewRouter()
	if got := r.Current(); got != OnboardingStep1 {
		t.Fatalf("initial screen = %v, want %v", got, OnboardingStep1)
	}
}

func TestRouterGoToEveryScreen(t *testing.T) {
	r := NewRouter()
	for _, id := range All() {
		t.Run(id.String(), func(t *testing.T) {
			r.GoTo(id)
			if got := r.Current(); got != id {
				t.Fatalf("Current() = %v, want %v", got, id)
			}
		})
	}
}

func TestRouterGoToUnknownFallsBack(t *testing.T) {
	cases := []ID{ID(-1), count, ID(42)}
	for _, target := range cases {
		r := NewRouter()
		r.GoTo(Profile)
		r.GoTo(target)
		if got := r.Current(); got != OnboardingStep1 {
			t.Fatalf("GoTo(%d) left router on %v, want %v", int(target), got, OnboardingStep1)
		}
	}
}

func TestAllIsClosedSet(t *testing.T) {
	ids := All()
	if len(ids) != 7 {
		t.Fatalf("expected 7 screens, got %d", len(ids))
	}
	seen := map[ID]bool{}
	for _, id := range ids {
		if !id.Valid() {
			t.Fatalf("screen %d reported invalid", int(id))
		}
		if seen[id] {
			t.Fatalf("duplicate screen %v", id)
		}
		seen[id] = true
	}
}

func TestParseRoundTripsNames(t *testing.T) {
	for _, id := range All() {
		got, err := Parse(id.String())
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", id.String(), err)
		}
		if got != id {
			t.Fatalf("Parse(%q) = %v, want %v", id.String(), got, id)
		}
	}
}

func TestParseUnknownName(t *testing.T) {
	got, err := Parse("checkout")
	if !errors.Is(err, ErrUnknownScreen) {
		t.Fatalf("expected ErrUnknownScreen, got %v", err)
	}
	if got != OnboardingStep1 {
		t.Fatalf("Parse fallback = %v, want %v", got, OnboardingStep1)
	}
}

func TestStringForUnknownID(t *testing.T) {
	if got := ID(99).String(); got != "screen(99)" {
		t.Fatalf("String() = %q", got)
	}
}
