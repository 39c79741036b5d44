package server

import "github.com/SChristophS/StoryMagic/wizard"

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	RouteWelcome      = "/"
	RouteLogin        = "/login"
	RouteRegister     = "/register"
	RouteLogout       = "/logout"
	RouteUserInfo     = "/user-info"
	RouteStories      = "/stories"
	RoutePersonalize  = "/personalization"
	RoutePhotoCapture = "/photo"
	RouteImagePrompts = "/image-prompts"
	RoutePreview      = "/preview"
	RouteOrder        = "/order"
	RouteConfirmation = "/confirmation"
	RouteMyStories    = "/my-stories"
	RouteNotFound     = "/not-found"
)

// stepRoutes maps wizard steps to their URL paths.
var stepRoutes = map[wizard.Step]string{
	wizard.StepWelcome:         RouteWelcome,
	wizard.StepLogin:           RouteLogin,
	wizard.StepRegister:        RouteRegister,
	wizard.StepRoleAndAge:      RouteUserInfo,
	wizard.StepStorySelection:  RouteStories,
	wizard.StepPersonalization: RoutePersonalize,
	wizard.StepPhotoCapture:    RoutePhotoCapture,
	wizard.StepImagePrompts:    RouteImagePrompts,
	wizard.StepPreview:         RoutePreview,
	wizard.StepOrder:           RouteOrder,
	wizard.StepConfirmation:    RouteConfirmation,
	wizard.StepUserStories:     RouteMyStories,
	wizard.StepNotFound:        RouteNotFound,
}

// routeFor returns the path a step is rendered at.
func routeFor(step wizard.Step) string {
	if path, ok := stepRoutes[step]; ok {
		return path
	}
	return RouteNotFound
}
