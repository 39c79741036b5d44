package server

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/SChristophS/StoryMagic/session"
	"github.com/SChristophS/StoryMagic/story"
	"github.com/SChristophS/StoryMagic/storyapi"
	"github.com/SChristophS/StoryMagic/wizard"
)

const contentTypeHTML = "text/html; charset=utf-8"

// errServiceUnavailable is shown inline whenever the StoryMaker API
// cannot be reached or answers with an unexpected status.
const errServiceUnavailable = "Der Dienst ist gerade nicht erreichbar. Bitte versuche es später noch einmal."

// WelcomePageData contains data for rendering the welcome page
type WelcomePageData struct {
	AppName       string
	Authenticated bool
}

// CredentialsPageData backs the login and register pages
type CredentialsPageData struct {
	AppName  string
	Error    string
	Username string // Preserve username on error
}

type UserInfoPageData struct {
	AppName   string
	Error     string
	Roles     []story.Role
	Role      string
	ChildAge  string
	ChildName string
}

type StoriesPageData struct {
	AppName string
	Error   string
	Stories []story.Story
}

type PersonalizationPageData struct {
	AppName    string
	Error      string
	StoryTitle string
	ChildName  string
	Role       string
}

type PhotoPageData struct {
	AppName string
	Error   string
	Photo   string
}

// ScenePrompt is one per-scene upload slot on the image prompts page.
type ScenePrompt struct {
	Index    int // Zero-based scene index, used as the form field suffix
	Number   int // One-based page number for display
	Prompt   string
	Uploaded bool
}

type ImagePromptsPageData struct {
	AppName    string
	Error      string
	StoryTitle string
	Scenes     []ScenePrompt
}

type PreviewPageData struct {
	AppName    string
	Error      string
	StoryTitle string
	Pages      []story.Page
}

type OrderPageData struct {
	AppName string
	Error   string
	Form    session.OrderForm
}

type ConfirmationPageData struct {
	AppName    string
	StoryTitle string
	Email      string
}

type MyStoriesPageData struct {
	AppName string
	Error   string
	Stories []storyapi.SavedStorySummary
}

type NotFoundPageData struct {
	AppName string
}

func (s *Server) renderPage(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", contentTypeHTML)
	if err := s.templates[name].Execute(w, data); err != nil {
		log.Err(err).Str("template", name).Msg("Failed to render template")
	}
}

func (s *Server) renderErrorPage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(http.StatusInternalServerError)
	if err := s.templates["error.html"].Execute(w, NotFoundPageData{AppName: s.config.GetAppName()}); err != nil {
		log.Err(err).Msg("Failed to render error template")
	}
}

func (s *Server) renderNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(http.StatusNotFound)
	if err := s.templates["not_found.html"].Execute(w, NotFoundPageData{AppName: s.config.GetAppName()}); err != nil {
		log.Err(err).Msg("Failed to render not found template")
	}
}

// WelcomePageHandler renders the landing page. "GET /" is the mux
// catch-all, so any path without a route of its own lands here and is
// answered with the not-found page.
func (s *Server) WelcomePageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != RouteWelcome {
			s.renderNotFound(w)
			return
		}
		_, sess := s.resolveSession(w, r)
		s.renderPage(w, "welcome.html", WelcomePageData{
			AppName:       s.config.GetAppName(),
			Authenticated: sess.Authenticated(),
		})
	}
}

// NotFoundPageHandler renders the dead-end page a broken transition
// lands on. The only way out is the welcome link on the page itself.
func (s *Server) NotFoundPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderNotFound(w)
	}
}

// PageHandler renders a wizard step page, first routing the request
// through the navigator so gated steps bounce to login.
func (s *Server) PageHandler(step wizard.Step) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, sess := s.resolveSession(w, r)
		resolved := s.navigator.Resolve(step, sess)
		if resolved != step {
			http.Redirect(w, r, routeFor(resolved), http.StatusSeeOther)
			return
		}
		s.renderStep(w, r, sess, step, "", nil)
	}
}

// renderStep renders the page of a step, optionally with an inline
// error and the previously submitted values so the visitor can correct
// and retry without losing input.
func (s *Server) renderStep(w http.ResponseWriter, r *http.Request, sess *session.Session, step wizard.Step, errMsg string, values url.Values) {
	switch step {
	case wizard.StepLogin:
		s.renderPage(w, "login.html", s.credentialsData(errMsg, values))
	case wizard.StepRegister:
		s.renderPage(w, "register.html", s.credentialsData(errMsg, values))
	case wizard.StepRoleAndAge:
		s.renderUserInfo(w, sess, errMsg, values)
	case wizard.StepStorySelection:
		s.renderStories(w, r, sess, errMsg)
	case wizard.StepPersonalization:
		s.renderPersonalization(w, r, sess, errMsg, values)
	case wizard.StepPhotoCapture:
		s.renderPhoto(w, sess, errMsg, values)
	case wizard.StepImagePrompts:
		s.renderImagePrompts(w, r, sess, errMsg)
	case wizard.StepPreview:
		s.renderPreview(w, r, sess, errMsg)
	case wizard.StepOrder:
		s.renderOrder(w, sess, errMsg, values)
	case wizard.StepConfirmation:
		s.renderConfirmation(w, sess)
	case wizard.StepUserStories:
		s.renderMyStories(w, r, sess, errMsg)
	default:
		s.renderNotFound(w)
	}
}

func (s *Server) credentialsData(errMsg string, values url.Values) CredentialsPageData {
	return CredentialsPageData{
		AppName:  s.config.GetAppName(),
		Error:    errMsg,
		Username: values.Get("username"),
	}
}

func (s *Server) renderUserInfo(w http.ResponseWriter, sess *session.Session, errMsg string, values url.Values) {
	data := UserInfoPageData{
		AppName: s.config.GetAppName(),
		Error:   errMsg,
		Roles:   story.Roles(),
	}
	if values != nil {
		data.Role = values.Get("role")
		data.ChildAge = values.Get("childAge")
		data.ChildName = values.Get("childName")
	} else if info := sess.UserInfo(); info.ChildName != "" {
		data.Role = string(info.Role)
		data.ChildAge = strconv.Itoa(info.ChildAge)
		data.ChildName = info.ChildName
	}
	s.renderPage(w, "user_info.html", data)
}

func (s *Server) renderStories(w http.ResponseWriter, r *http.Request, sess *session.Session, errMsg string) {
	ctrl := wizard.NewStorySelectionController(s.gatewayFor(sess))
	stories, err := ctrl.Load(r.Context(), sess)
	if err != nil {
		log.Err(err).Msg("Failed to load story catalog")
		stories = sess.Catalog()
		if errMsg == "" {
			errMsg = errServiceUnavailable
		}
	}
	s.renderPage(w, "stories.html", StoriesPageData{
		AppName: s.config.GetAppName(),
		Error:   errMsg,
		Stories: stories,
	})
}

func (s *Server) renderPersonalization(w http.ResponseWriter, r *http.Request, sess *session.Session, errMsg string, values url.Values) {
	picked, ok := sess.SelectedStory()
	if !ok {
		http.Redirect(w, r, RouteStories, http.StatusSeeOther)
		return
	}
	data := PersonalizationPageData{
		AppName:    s.config.GetAppName(),
		Error:      errMsg,
		StoryTitle: picked.Title,
		ChildName:  sess.PersonalData().ChildName,
		Role:       string(sess.PersonalData().Role),
	}
	if values != nil {
		data.ChildName = values.Get("childName")
	}
	s.renderPage(w, "personalization.html", data)
}

func (s *Server) renderPhoto(w http.ResponseWriter, sess *session.Session, errMsg string, values url.Values) {
	data := PhotoPageData{
		AppName: s.config.GetAppName(),
		Error:   errMsg,
		Photo:   sess.CapturedPhoto(),
	}
	if values != nil && values.Get("photo") != "" {
		data.Photo = values.Get("photo")
	}
	s.renderPage(w, "photo.html", data)
}

func (s *Server) renderImagePrompts(w http.ResponseWriter, r *http.Request, sess *session.Session, errMsg string) {
	picked, ok := sess.SelectedStory()
	if !ok {
		http.Redirect(w, r, RouteStories, http.StatusSeeOther)
		return
	}
	uploaded := sess.UserImages()
	scenes := make([]ScenePrompt, 0, len(picked.Scenes))
	for i, scene := range picked.Scenes {
		prompt := ""
		for _, el := range scene.ImageElements {
			if el.ImagePrompt != "" {
				prompt = el.ImagePrompt
				break
			}
		}
		_, done := uploaded[i]
		scenes = append(scenes, ScenePrompt{Index: i, Number: i + 1, Prompt: prompt, Uploaded: done})
	}
	s.renderPage(w, "image_prompts.html", ImagePromptsPageData{
		AppName:    s.config.GetAppName(),
		Error:      errMsg,
		StoryTitle: picked.Title,
		Scenes:     scenes,
	})
}

func (s *Server) renderPreview(w http.ResponseWriter, r *http.Request, sess *session.Session, errMsg string) {
	ctrl := wizard.NewPreviewController(s.gatewayFor(sess))
	pages, ok := ctrl.Pages(sess)
	if !ok {
		http.Redirect(w, r, RouteStories, http.StatusSeeOther)
		return
	}
	picked, _ := sess.SelectedStory()
	s.renderPage(w, "preview.html", PreviewPageData{
		AppName:    s.config.GetAppName(),
		Error:      errMsg,
		StoryTitle: picked.Title,
		Pages:      pages,
	})
}

func (s *Server) renderOrder(w http.ResponseWriter, sess *session.Session, errMsg string, values url.Values) {
	form := sess.OrderForm()
	if values != nil {
		form = session.OrderForm{
			FullName: values.Get("fullName"),
			Address:  values.Get("address"),
			City:     values.Get("city"),
			ZipCode:  values.Get("zipCode"),
			Email:    values.Get("email"),
		}
	}
	s.renderPage(w, "order.html", OrderPageData{
		AppName: s.config.GetAppName(),
		Error:   errMsg,
		Form:    form,
	})
}

func (s *Server) renderConfirmation(w http.ResponseWriter, sess *session.Session) {
	title := ""
	if picked, ok := sess.SelectedStory(); ok {
		title = picked.Title
	}
	s.renderPage(w, "confirmation.html", ConfirmationPageData{
		AppName:    s.config.GetAppName(),
		StoryTitle: title,
		Email:      sess.OrderForm().Email,
	})
}

func (s *Server) renderMyStories(w http.ResponseWriter, r *http.Request, sess *session.Session, errMsg string) {
	ctrl := wizard.NewUserStoriesController(s.gatewayFor(sess))
	saved, err := ctrl.Load(r.Context(), sess)
	if err != nil {
		log.Err(err).Msg("Failed to load saved stories")
		if errMsg == "" {
			errMsg = errServiceUnavailable
		}
	}
	s.renderPage(w, "my_stories.html", MyStoriesPageData{
		AppName: s.config.GetAppName(),
		Error:   errMsg,
		Stories: saved,
	})
}
