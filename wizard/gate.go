package wizard

import "github.com/SChristophS/StoryMagic/session"

// Gate guards entry to protected steps. It is consulted on every
// navigation attempt and never caches its answer: the auth token can
// change between renders (a logout on another step, an expired token).
type Gate struct{}

// NewGate creates the auth gate.
func NewGate() *Gate {
	return &Gate{}
}

// CanEnter reports whether the step may be entered with the given
// session: public steps always, protected steps only when the session
// carries an auth token.
func (g *Gate) CanEnter(step Step, sess *session.Session) bool {
	if step.Public() {
		return true
	}
	return sess != nil && sess.Authenticated()
}
