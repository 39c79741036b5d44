package server

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/SChristophS/StoryMagic/internal/config"
	"github.com/SChristophS/StoryMagic/session"
	"github.com/SChristophS/StoryMagic/session/sessionrepo"
	"github.com/SChristophS/StoryMagic/storyapi"
	"github.com/SChristophS/StoryMagic/wizard"
)

type Server struct {
	env       string // Environment (e.g., "DEV", "production")
	mux       *http.ServeMux
	routes    []string
	config    config.Config
	sessions  sessionrepo.Repo
	gateway   storyapi.Gateway
	navigator *wizard.Navigator
	validator *wizard.Validator
	templates map[string]*template.Template
}

func New(config config.Config, sessions sessionrepo.Repo, gateway storyapi.Gateway) (*Server, error) {
	s := &Server{
		mux:       http.NewServeMux(),
		config:    config,
		sessions:  sessions,
		gateway:   gateway,
		navigator: wizard.NewNavigator(wizard.NewGate()),
		validator: wizard.NewValidator(),
	}
	s.env = config.GetEnv()

	if err := s.parseTemplates(); err != nil {
		return nil, fmt.Errorf("[Server New] failed to parse templates: %w", err)
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

// gatewayFor derives a gateway carrying the session's bearer token.
// Sessions without a token get the unauthenticated base client.
func (s *Server) gatewayFor(sess *session.Session) storyapi.Gateway {
	token := sess.AuthToken()
	if token == "" {
		return s.gateway
	}
	return s.gateway.WithToken(token)
}

// controllerFor builds the controller for a step against the session's
// gateway. Controllers are cheap and carry no state of their own.
func (s *Server) controllerFor(step wizard.Step, sess *session.Session) wizard.Controller {
	gw := s.gatewayFor(sess)
	switch step {
	case wizard.StepLogin:
		return wizard.NewLoginController(gw, s.validator)
	case wizard.StepRegister:
		return wizard.NewRegisterController(gw, s.validator)
	case wizard.StepRoleAndAge:
		return wizard.NewRoleAndAgeController(s.validator)
	case wizard.StepStorySelection:
		return wizard.NewStorySelectionController(gw)
	case wizard.StepPersonalization:
		return wizard.NewPersonalizationController(s.validator)
	case wizard.StepPhotoCapture:
		return wizard.NewPhotoCaptureController(s.validator)
	case wizard.StepImagePrompts:
		return wizard.NewImagePromptsController(gw)
	case wizard.StepPreview:
		return wizard.NewPreviewController(gw)
	case wizard.StepOrder:
		return wizard.NewOrderController(gw, s.validator)
	case wizard.StepUserStories:
		return wizard.NewUserStoriesController(gw)
	}
	return nil
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + resetColor
	} else {
		displayMethod = gray + paddedMethod + resetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

func logError(method, path, error string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + resetColor
	} else {
		displayMethod = gray + paddedMethod + resetColor
	}
	errorString := red + error + resetColor
	log.Printf("[%-19s] %s %s\n", displayMethod, path, errorString)
}
