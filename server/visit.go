package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	interrors "github.com/SChristophS/StoryMagic/internal/errors"
	"github.com/SChristophS/StoryMagic/session"
)

// resolveSession finds the wizard session for this visit, creating a
// fresh one when the visit cookie is missing or the session expired.
// A fresh session restores the bearer token from the auth cookie, so a
// returning visitor stays logged in but starts the flow over.
func (s *Server) resolveSession(w http.ResponseWriter, r *http.Request) (string, *session.Session) {
	if cookie, err := r.Cookie(s.config.GetVisitCookieName()); err == nil && cookie.Value != "" {
		sess, err := s.sessions.Get(cookie.Value)
		if err == nil {
			return cookie.Value, sess
		}
		if !interrors.Is(err, interrors.ErrSessionNotFound) {
			log.Err(err).Str("visitID", cookie.Value).Msg("Session lookup failed")
		}
	}

	visitID := uuid.NewString()
	sess := session.New()
	if cookie, err := r.Cookie(s.config.GetAuthCookieName()); err == nil && cookie.Value != "" {
		sess.SetAuthToken(cookie.Value)
	}
	if err := s.sessions.Upsert(visitID, sess); err != nil {
		log.Err(err).Msg("Failed to store new session")
	}
	s.setVisitCookie(w, visitID)

	return visitID, sess
}

func (s *Server) setVisitCookie(w http.ResponseWriter, visitID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.GetVisitCookieName(),
		Value:    visitID,
		Path:     "/",
		MaxAge:   int(s.config.GetVisitTTL().Seconds()),
		HttpOnly: true,
		Secure:   s.config.GetSecureCookies(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.GetAuthCookieName(),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.config.GetSecureCookies(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.GetAuthCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.config.GetSecureCookies(),
		SameSite: http.SameSiteLaxMode,
	})
}
