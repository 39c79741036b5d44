package wizard

import "github.com/SChristophS/StoryMagic/session"

// Navigator owns the step graph and resolves every navigation attempt:
// requests for unknown steps dead-end on NotFound, requests for
// protected steps without authentication land on Login. The originally
// requested step is not retried after login; the user navigates again
// explicitly.
type Navigator struct {
	gate *Gate
}

// NewNavigator creates a navigator backed by the auth gate.
func NewNavigator(gate *Gate) *Navigator {
	return &Navigator{gate: gate}
}

// Resolve maps a requested step to the step that is actually rendered.
func (n *Navigator) Resolve(requested Step, sess *session.Session) Step {
	if !requested.Known() {
		return StepNotFound
	}
	if !n.gate.CanEnter(requested, sess) {
		return StepLogin
	}
	return requested
}

// Advance resolves a controller-requested transition out of the current
// step. Transitions not present in the graph dead-end on NotFound;
// gating applies the same way as for direct navigation.
func (n *Navigator) Advance(current, next Step, sess *session.Session) Step {
	if !current.CanAdvance(next) {
		return StepNotFound
	}
	return n.Resolve(next, sess)
}
