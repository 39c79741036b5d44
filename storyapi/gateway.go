package storyapi

import (
	"context"
	"io"
	"time"

	"github.com/SChristophS/StoryMagic/story"
)

// Gateway is the remote StoryMaker API as seen by the wizard. All
// authenticated calls carry the bearer token the gateway was derived
// with via WithToken.
type Gateway interface {
	// WithToken returns a gateway whose requests carry
	// "Authorization: Bearer <token>" by default. An empty token
	// removes the header.
	WithToken(token string) Gateway

	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (accessToken string, err error)

	Stories(ctx context.Context, role story.Role, childAge int) ([]story.Story, error)
	StoryDetail(ctx context.Context, storyID string) (story.Story, error)

	UploadImage(ctx context.Context, filename string, file io.Reader) (filePath string, err error)

	SaveStory(ctx context.Context, req PersonalizeRequest) (savedStoryID string, err error)
	UserStories(ctx context.Context) ([]SavedStorySummary, error)
	SavedStory(ctx context.Context, savedStoryID string) (SavedStory, error)
	DeleteSavedStory(ctx context.Context, savedStoryID string) error

	PlaceOrder(ctx context.Context, req OrderRequest) (confirmation string, err error)
}

// PersonalizeRequest is the payload of POST /api/personalize. User
// images are keyed by the decimal scene index.
type PersonalizeRequest struct {
	StoryID      string             `json:"story_id"`
	PersonalData story.PersonalData `json:"personal_data"`
	UserImages   map[string]string  `json:"user_images"`
}

// SavedStorySummary is one entry of GET /api/user-stories.
type SavedStorySummary struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	CreatedAt    time.Time          `json:"created_at"`
	PersonalData story.PersonalData `json:"personal_data"`
}

// SavedStory is the full payload of GET /api/personalized-stories/{id}.
type SavedStory struct {
	story.Story
	PersonalData story.PersonalData `json:"personal_data"`
	UserImages   map[string]string  `json:"user_images"`
}

// OrderRequest is the payload of POST /api/place-order. The field names
// match what the backend's order endpoint expects.
type OrderRequest struct {
	UserName  string    `json:"userName"`
	ChildName string    `json:"childName"`
	Photo     string    `json:"photo"`
	StoryID   string    `json:"storyId"`
	OrderData OrderData `json:"orderData"`
}

// OrderData holds the delivery details of an order.
type OrderData struct {
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	City     string `json:"city"`
	ZipCode  string `json:"zipCode"`
	Email    string `json:"email"`
}
