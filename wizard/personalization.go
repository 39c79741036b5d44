package wizard

import (
	"context"

	interrors "github.com/SChristophS/StoryMagic/internal/errors"
	"github.com/SChristophS/StoryMagic/session"
	"github.com/SChristophS/StoryMagic/story"
)

// PersonalizationController confirms or edits the names substituted
// into the story text.
type PersonalizationController struct {
	validator *Validator
}

func NewPersonalizationController(validator *Validator) *PersonalizationController {
	return &PersonalizationController{validator: validator}
}

func (c *PersonalizationController) Step() Step { return StepPersonalization }

func (c *PersonalizationController) Submit(_ context.Context, sess *session.Session, in Input) (Step, error) {
	if _, ok := sess.SelectedStory(); !ok {
		return StepPersonalization, interrors.ErrNoStorySelected
	}

	childName := in.Get("childName")
	if err := c.validator.ValidatePersonalization(childName); err != nil {
		return StepPersonalization, err
	}

	info := sess.UserInfo()
	sess.SetPersonalData(story.PersonalData{
		ChildName: childName,
		Role:      info.Role,
		ChildAge:  info.ChildAge,
	})
	return StepPhotoCapture, nil
}
