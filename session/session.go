package session

import (
	"sync"

	interrors "github.com/SChristophS/StoryMagic/internal/errors"
	"github.com/SChristophS/StoryMagic/story"
)

// UserInfo is the role/age/name selection made at the start of the wizard.
type UserInfo struct {
	Role      story.Role
	ChildAge  int
	ChildName string
}

// OrderForm holds the delivery details collected in the order step.
type OrderForm struct {
	FullName string
	Address  string
	City     string
	ZipCode  string
	Email    string
}

// Session is the wizard state for one visit. It is the single source of
// truth every step reads from and writes to; all mutation goes through
// the setters below so the mutation points stay auditable.
//
// Only the auth token survives a lost visit (it lives in its own
// durable cookie); everything else resets with the visit.
type Session struct {
	mu sync.Mutex

	authToken     string
	currentUserID string

	userInfo      UserInfo
	catalog       []story.Story
	selectedStory *story.Story
	personalData  story.PersonalData
	userImages    map[int]string
	capturedPhoto string
	orderForm     OrderForm

	submitting bool
}

// New returns an empty, unauthenticated session.
func New() *Session {
	return &Session{userImages: make(map[int]string)}
}

// SetAuthToken stores the token and recomputes the derived user
// identity. A token that cannot be decoded counts as unauthenticated:
// both the token and the identity are cleared. Passing "" logs out.
func (s *Session) SetAuthToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token == "" {
		s.authToken = ""
		s.currentUserID = ""
		return
	}
	userID, err := DecodeUserID(token)
	if err != nil {
		logDecodeFailure(err)
		s.authToken = ""
		s.currentUserID = ""
		return
	}
	s.authToken = token
	s.currentUserID = userID
}

// AuthToken returns the bearer token, or "" when unauthenticated.
func (s *Session) AuthToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authToken
}

// CurrentUserID returns the identity claim of the auth token, or ""
// when unauthenticated.
func (s *Session) CurrentUserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUserID
}

// Authenticated reports whether the session carries a valid auth token.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authToken != ""
}

func (s *Session) SetUserInfo(info UserInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userInfo = info
}

func (s *Session) UserInfo() UserInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userInfo
}

func (s *Session) SetCatalog(stories []story.Story) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = stories
}

func (s *Session) Catalog() []story.Story {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog
}

// SelectStory stores the chosen story. Choosing a story with a
// different ID than the current selection clears the user images and
// personal data collected for the previous story, so stale per-scene
// entries can never outlive the story they belong to.
func (s *Session) SelectStory(st story.Story) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedStory != nil && s.selectedStory.ID != st.ID {
		s.userImages = make(map[int]string)
		s.personalData = story.PersonalData{}
	}
	copied := st
	s.selectedStory = &copied
}

// SelectedStory returns the chosen story, if any.
func (s *Session) SelectedStory() (story.Story, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedStory == nil {
		return story.Story{}, false
	}
	return *s.selectedStory, true
}

func (s *Session) SetPersonalData(data story.PersonalData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.personalData = data
}

func (s *Session) PersonalData() story.PersonalData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.personalData
}

// SetUserImage records the uploaded image for one scene. Entries for
// other scenes are untouched; re-uploading a scene replaces only that
// scene's reference.
func (s *Session) SetUserImage(sceneIndex int, imageRef string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userImages == nil {
		s.userImages = make(map[int]string)
	}
	s.userImages[sceneIndex] = imageRef
}

// SetUserImages replaces the whole image map, used when loading a saved
// personalized story.
func (s *Session) SetUserImages(images map[int]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userImages = make(map[int]string, len(images))
	for k, v := range images {
		s.userImages[k] = v
	}
}

// UserImages returns a copy of the scene-index -> image-reference map.
func (s *Session) UserImages() map[int]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	images := make(map[int]string, len(s.userImages))
	for k, v := range s.userImages {
		images[k] = v
	}
	return images
}

func (s *Session) SetCapturedPhoto(photo string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capturedPhoto = photo
}

func (s *Session) CapturedPhoto() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capturedPhoto
}

func (s *Session) SetOrderForm(form OrderForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderForm = form
}

func (s *Session) OrderForm() OrderForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderForm
}

// Logout clears the auth token and identity and resets the wizard state.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authToken = ""
	s.currentUserID = ""
	s.resetLocked()
}

// Reset clears all wizard progress but keeps the auth token, matching
// what a full page reload does.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.userInfo = UserInfo{}
	s.catalog = nil
	s.selectedStory = nil
	s.personalData = story.PersonalData{}
	s.userImages = make(map[int]string)
	s.capturedPhoto = ""
	s.orderForm = OrderForm{}
	s.submitting = false
}

// BeginSubmit marks a submission as in flight. A second submission
// before EndSubmit is rejected, guarding against double-submits.
func (s *Session) BeginSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return interrors.ErrSubmitInFlight
	}
	s.submitting = true
	return nil
}

// EndSubmit clears the in-flight marker.
func (s *Session) EndSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
}
