package server

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	interrors "github.com/SChristophS/StoryMagic/internal/errors"
	"github.com/SChristophS/StoryMagic/session"
	"github.com/SChristophS/StoryMagic/wizard"
)

// maxUploadBytes caps multipart submissions, generous enough for a
// handful of scene photos.
const maxUploadBytes = 32 << 20

// SubmitHandler processes a wizard step's form submission: gate check,
// double-submit guard, controller call, then redirect to the step the
// controller named. Errors re-render the same step inline with the
// submitted values preserved.
func (s *Server) SubmitHandler(step wizard.Step) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, sess := s.resolveSession(w, r)
		resolved := s.navigator.Resolve(step, sess)
		if resolved != step {
			http.Redirect(w, r, routeFor(resolved), http.StatusSeeOther)
			return
		}

		// A submission already running for this session wins; the
		// duplicate is bounced back to the page.
		if err := sess.BeginSubmit(); err != nil {
			http.Redirect(w, r, routeFor(step), http.StatusSeeOther)
			return
		}
		defer sess.EndSubmit()

		input, err := parseInput(r)
		if err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		ctrl := s.controllerFor(step, sess)
		if ctrl == nil {
			s.renderNotFound(w)
			return
		}

		next, err := ctrl.Submit(r.Context(), sess, input)
		if err != nil {
			s.submitError(w, r, sess, step, err, input.Values)
			return
		}

		// Login and register hand out a fresh token; persist it so the
		// visitor stays logged in across lost visits.
		if step == wizard.StepLogin || step == wizard.StepRegister {
			s.setAuthCookie(w, sess.AuthToken())
		}

		if next != step {
			next = s.navigator.Advance(step, next, sess)
		}
		http.Redirect(w, r, routeFor(next), http.StatusSeeOther)
	}
}

func (s *Server) submitError(w http.ResponseWriter, r *http.Request, sess *session.Session, step wizard.Step, err error, values url.Values) {
	if ve, ok := wizard.IsValidationError(err); ok {
		s.renderStep(w, r, sess, step, ve.Message, values)
		return
	}

	// An expired or rejected token ends the login; the wizard state is
	// gone and the visitor starts over at the login page.
	if interrors.Is(err, interrors.ErrUnauthorized) {
		sess.Logout()
		s.clearAuthCookie(w)
		http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
		return
	}

	if interrors.Is(err, interrors.ErrInvalidToken) {
		s.renderStep(w, r, sess, step, "Anmeldung fehlgeschlagen. Bitte versuche es erneut.", values)
		return
	}

	log.Err(err).Str("step", string(step)).Msg("Step submission failed")
	s.renderStep(w, r, sess, step, errServiceUnavailable, values)
}

// LogoutHandler clears the session and the auth cookie and returns the
// visitor to the welcome page.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, sess := s.resolveSession(w, r)
		sess.Logout()
		s.clearAuthCookie(w)
		http.Redirect(w, r, RouteWelcome, http.StatusSeeOther)
	}
}

// parseInput reads a submission into the step input shape. Multipart
// forms carry the per-scene photo uploads; everything else is a plain
// URL-encoded form.
func parseInput(r *http.Request) (wizard.Input, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return wizard.Input{}, err
		}
		files := make(map[string]wizard.FileUpload)
		for field, headers := range r.MultipartForm.File {
			if len(headers) == 0 {
				continue
			}
			file, err := headers[0].Open()
			if err != nil {
				return wizard.Input{}, err
			}
			content, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				return wizard.Input{}, err
			}
			if len(content) == 0 {
				continue // Empty file inputs are skipped, not errors
			}
			files[field] = wizard.FileUpload{Filename: headers[0].Filename, Content: content}
		}
		return wizard.Input{Values: url.Values(r.MultipartForm.Value), Files: files}, nil
	}

	if err := r.ParseForm(); err != nil {
		return wizard.Input{}, err
	}
	return wizard.Input{Values: r.PostForm}, nil
}
