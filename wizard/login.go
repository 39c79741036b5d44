package wizard

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	interrors "github.com/SChristophS/StoryMagic/internal/errors"
	"github.com/SChristophS/StoryMagic/session"
	"github.com/SChristophS/StoryMagic/storyapi"
)

// LoginController exchanges credentials for a bearer token and stores
// it in the session.
type LoginController struct {
	gateway   storyapi.Gateway
	validator *Validator
}

func NewLoginController(gateway storyapi.Gateway, validator *Validator) *LoginController {
	return &LoginController{gateway: gateway, validator: validator}
}

func (c *LoginController) Step() Step { return StepLogin }

func (c *LoginController) Submit(ctx context.Context, sess *session.Session, in Input) (Step, error) {
	username := in.Get("username")
	password := in.Get("password")

	if err := c.validator.ValidateCredentials(username, password); err != nil {
		return StepLogin, err
	}

	token, err := c.gateway.Login(ctx, username, password)
	if err != nil {
		if interrors.Is(err, interrors.ErrUnauthorized) {
			return StepLogin, invalid("", "Benutzername oder Passwort ist falsch")
		}
		return StepLogin, errors.Wrap(err, "[Login] request failed")
	}

	sess.SetAuthToken(token)
	if !sess.Authenticated() {
		// The API handed out a token the session could not decode.
		log.Error().Str("username", username).Msg("Login returned an undecodable token")
		return StepLogin, interrors.ErrInvalidToken
	}

	log.Debug().Str("userID", sess.CurrentUserID()).Msg("User logged in")
	return StepRoleAndAge, nil
}
