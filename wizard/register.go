package wizard

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	interrors "github.com/SChristophS/StoryMagic/internal/errors"
	"github.com/SChristophS/StoryMagic/session"
	"github.com/SChristophS/StoryMagic/storyapi"
)

// RegisterController creates an account and logs straight in, so a new
// user lands in the wizard authenticated.
type RegisterController struct {
	gateway   storyapi.Gateway
	validator *Validator
}

func NewRegisterController(gateway storyapi.Gateway, validator *Validator) *RegisterController {
	return &RegisterController{gateway: gateway, validator: validator}
}

func (c *RegisterController) Step() Step { return StepRegister }

func (c *RegisterController) Submit(ctx context.Context, sess *session.Session, in Input) (Step, error) {
	username := in.Get("username")
	password := in.Get("password")

	if err := c.validator.ValidateCredentials(username, password); err != nil {
		return StepRegister, err
	}

	if err := c.gateway.Register(ctx, username, password); err != nil {
		var apiErr *storyapi.APIError
		if interrors.As(err, &apiErr) && apiErr.Message != "" {
			// Typically "Username already exists"
			return StepRegister, invalid("username", apiErr.Message)
		}
		return StepRegister, errors.Wrap(err, "[Register] request failed")
	}

	token, err := c.gateway.Login(ctx, username, password)
	if err != nil {
		return StepRegister, errors.Wrap(err, "[Register] login after registration failed")
	}

	sess.SetAuthToken(token)
	if !sess.Authenticated() {
		return StepRegister, interrors.ErrInvalidToken
	}

	log.Debug().Str("userID", sess.CurrentUserID()).Msg("User registered and logged in")
	return StepRoleAndAge, nil
}
