package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	interrors "github.com/SChristophS/StoryMagic/internal/errors"
)

// DecodeUserID extracts the user identity claim from a bearer token.
// The token is issued and validated by the StoryMaker API; on this side
// it is opaque credential material, so the claims are read without
// signature verification. Newer backend versions put the identity in
// "sub", older ones in "identity".
func DecodeUserID(token string) (string, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("%w: %v", interrors.ErrInvalidToken, err)
	}

	for _, claim := range []string{"sub", "identity"} {
		switch v := claims[claim].(type) {
		case string:
			if v != "" {
				return v, nil
			}
		case float64:
			// Numeric user IDs arrive as JSON numbers.
			return fmt.Sprintf("%.0f", v), nil
		}
	}
	return "", fmt.Errorf("%w: no identity claim", interrors.ErrInvalidToken)
}

func logDecodeFailure(err error) {
	log.Err(err).Msg("Failed to decode auth token, treating session as unauthenticated")
}
