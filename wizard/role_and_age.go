package wizard

import (
	"context"
	"strconv"

	"github.com/SChristophS/StoryMagic/session"
	"github.com/SChristophS/StoryMagic/story"
)

// RoleAndAgeController records who the book is from and which child it
// is for. No API call; invalid input leaves the session untouched.
type RoleAndAgeController struct {
	validator *Validator
}

func NewRoleAndAgeController(validator *Validator) *RoleAndAgeController {
	return &RoleAndAgeController{validator: validator}
}

func (c *RoleAndAgeController) Step() Step { return StepRoleAndAge }

func (c *RoleAndAgeController) Submit(_ context.Context, sess *session.Session, in Input) (Step, error) {
	role := story.Role(in.Get("role"))
	childName := in.Get("childName")

	childAge, err := strconv.Atoi(in.Get("childAge"))
	if err != nil {
		return StepRoleAndAge, invalid("childAge", "Das Alter muss eine Zahl sein")
	}

	if err := c.validator.ValidateUserInfo(role, childAge, childName); err != nil {
		return StepRoleAndAge, err
	}

	sess.SetUserInfo(session.UserInfo{Role: role, ChildAge: childAge, ChildName: childName})
	return StepStorySelection, nil
}
