package screen

// Router holds the currently active screen. Transitions are unconditional and
// there is no back stack: a screen that wants to go "back" names its target.
type Router struct {
	current ID
}

// NewRouter returns a router positioned on the first onboarding screen.
func NewRouter() *Router {
	return &Router{current: OnboardingStep1}
}

// Current returns the active screen.
func (r *Router) Current() ID {
	return r.current
}

// GoTo makes target the active screen. Targets outside the closed set fall
// back to OnboardingStep1.
func (r *Router) GoTo(target ID) {
	r.current = Resolve(target)
}

// Resolve is the renderer's default arm: valid IDs map to themselves and
// anything else maps to OnboardingStep1.
func Resolve(id ID) ID {
	if !id.Valid() {
		return OnboardingStep1
	}
	return id
}
