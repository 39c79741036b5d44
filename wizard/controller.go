package wizard

import (
	"context"
	"net/url"

	"github.com/SChristophS/StoryMagic/session"
)

// Input is the submitted data of one wizard step: form values plus any
// uploaded files.
type Input struct {
	Values url.Values
	Files  map[string]FileUpload
}

// FileUpload is one uploaded file, keyed by its form field name.
type FileUpload struct {
	Filename string
	Content  []byte
}

// Get returns a single trimmed-as-submitted form value.
func (in Input) Get(key string) string {
	if in.Values == nil {
		return ""
	}
	return in.Values.Get(key)
}

// Controller is the contract every wizard step implements: read what it
// needs from the session, validate the submitted input, perform the
// step's API call if any, write the results back into the session, and
// name the step to advance to.
//
// A ValidationError or API error blocks the transition; the caller
// renders it inline on the same step with the submitted values
// preserved, so the user can correct and retry.
type Controller interface {
	Step() Step
	Submit(ctx context.Context, sess *session.Session, in Input) (Step, error)
}
