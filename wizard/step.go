package wizard

// Step identifies one stage of the book wizard. Navigation works on
// these typed identifiers; translating them to URL paths is the HTTP
// layer's concern.
type Step string

const (
	StepWelcome         Step = "welcome"
	StepLogin           Step = "login"
	StepRegister        Step = "register"
	StepRoleAndAge      Step = "role-and-age"
	StepStorySelection  Step = "story-selection"
	StepPersonalization Step = "personalization"
	StepPhotoCapture    Step = "photo-capture"
	StepImagePrompts    Step = "image-prompts"
	StepPreview         Step = "preview"
	StepOrder           Step = "order"
	StepConfirmation    Step = "confirmation"
	StepUserStories     Step = "user-stories"

	// StepNotFound is the terminal pseudo-step unknown paths resolve
	// to. It has no outgoing transitions.
	StepNotFound Step = "not-found"
)

// transitions is the wizard's step graph: for every step, the steps a
// controller may advance to. Mostly linear, with one branch after story
// selection (upload one image per scene vs. capture a single photo).
var transitions = map[Step][]Step{
	StepWelcome:         {StepRoleAndAge, StepLogin},
	StepLogin:           {StepRoleAndAge},
	StepRegister:        {StepRoleAndAge},
	StepRoleAndAge:      {StepStorySelection},
	StepStorySelection:  {StepPersonalization, StepImagePrompts},
	StepPersonalization: {StepPhotoCapture},
	StepPhotoCapture:    {StepPreview},
	StepImagePrompts:    {StepPreview},
	StepPreview:         {StepOrder, StepUserStories},
	StepOrder:           {StepConfirmation},
	StepUserStories:     {StepPreview},
	StepConfirmation:    {},
	StepNotFound:        {},
}

// publicSteps may be entered without authentication.
var publicSteps = map[Step]bool{
	StepWelcome:  true,
	StepLogin:    true,
	StepRegister: true,
	StepNotFound: true,
}

// Known reports whether the step exists in the graph.
func (s Step) Known() bool {
	_, ok := transitions[s]
	return ok
}

// Public reports whether the step may be entered unauthenticated.
func (s Step) Public() bool {
	return publicSteps[s]
}

// CanAdvance reports whether the graph has an edge from s to next.
func (s Step) CanAdvance(next Step) bool {
	for _, candidate := range transitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}
