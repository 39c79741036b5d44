package wizard

import (
	"context"

	"github.com/SChristophS/StoryMagic/session"
)

// PhotoCaptureController stores the single camera frame captured for
// the book. The frame arrives as a data payload from the capture page.
type PhotoCaptureController struct {
	validator *Validator
}

func NewPhotoCaptureController(validator *Validator) *PhotoCaptureController {
	return &PhotoCaptureController{validator: validator}
}

func (c *PhotoCaptureController) Step() Step { return StepPhotoCapture }

func (c *PhotoCaptureController) Submit(_ context.Context, sess *session.Session, in Input) (Step, error) {
	photo := in.Get("photo")
	if err := c.validator.ValidatePhoto(photo); err != nil {
		return StepPhotoCapture, err
	}

	sess.SetCapturedPhoto(photo)
	return StepPreview, nil
}
