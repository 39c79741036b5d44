package server

import (
	"github.com/SChristophS/StoryMagic/wizard"
)

func (s *Server) initRoutes() {
	html := s.HTMLMiddleWare()

	s.RegisterRouteHandler("GET /", ChainMiddleware(s.WelcomePageHandler(), html...))

	// AUTH
	s.RegisterRouteHandler("GET "+RouteLogin, ChainMiddleware(s.PageHandler(wizard.StepLogin), html...))
	s.RegisterRouteHandler("POST "+RouteLogin, ChainMiddleware(s.SubmitHandler(wizard.StepLogin), html...))
	s.RegisterRouteHandler("GET "+RouteRegister, ChainMiddleware(s.PageHandler(wizard.StepRegister), html...))
	s.RegisterRouteHandler("POST "+RouteRegister, ChainMiddleware(s.SubmitHandler(wizard.StepRegister), html...))
	s.RegisterRouteHandler("GET "+RouteLogout, ChainMiddleware(s.LogoutHandler(), html...))

	// WIZARD
	s.RegisterRouteHandler("GET "+RouteUserInfo, ChainMiddleware(s.PageHandler(wizard.StepRoleAndAge), html...))
	s.RegisterRouteHandler("POST "+RouteUserInfo, ChainMiddleware(s.SubmitHandler(wizard.StepRoleAndAge), html...))
	s.RegisterRouteHandler("GET "+RouteStories, ChainMiddleware(s.PageHandler(wizard.StepStorySelection), html...))
	s.RegisterRouteHandler("POST "+RouteStories, ChainMiddleware(s.SubmitHandler(wizard.StepStorySelection), html...))
	s.RegisterRouteHandler("GET "+RoutePersonalize, ChainMiddleware(s.PageHandler(wizard.StepPersonalization), html...))
	s.RegisterRouteHandler("POST "+RoutePersonalize, ChainMiddleware(s.SubmitHandler(wizard.StepPersonalization), html...))
	s.RegisterRouteHandler("GET "+RoutePhotoCapture, ChainMiddleware(s.PageHandler(wizard.StepPhotoCapture), html...))
	s.RegisterRouteHandler("POST "+RoutePhotoCapture, ChainMiddleware(s.SubmitHandler(wizard.StepPhotoCapture), html...))
	s.RegisterRouteHandler("GET "+RouteImagePrompts, ChainMiddleware(s.PageHandler(wizard.StepImagePrompts), html...))
	s.RegisterRouteHandler("POST "+RouteImagePrompts, ChainMiddleware(s.SubmitHandler(wizard.StepImagePrompts), html...))
	s.RegisterRouteHandler("GET "+RoutePreview, ChainMiddleware(s.PageHandler(wizard.StepPreview), html...))
	s.RegisterRouteHandler("POST "+RoutePreview, ChainMiddleware(s.SubmitHandler(wizard.StepPreview), html...))
	s.RegisterRouteHandler("GET "+RouteOrder, ChainMiddleware(s.PageHandler(wizard.StepOrder), html...))
	s.RegisterRouteHandler("POST "+RouteOrder, ChainMiddleware(s.SubmitHandler(wizard.StepOrder), html...))
	s.RegisterRouteHandler("GET "+RouteConfirmation, ChainMiddleware(s.PageHandler(wizard.StepConfirmation), html...))
	s.RegisterRouteHandler("GET "+RouteMyStories, ChainMiddleware(s.PageHandler(wizard.StepUserStories), html...))
	s.RegisterRouteHandler("POST "+RouteMyStories, ChainMiddleware(s.SubmitHandler(wizard.StepUserStories), html...))

	s.RegisterRouteHandler("GET "+RouteNotFound, ChainMiddleware(s.NotFoundPageHandler(), html...))
}
