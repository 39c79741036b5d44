package gatewayfake

import (
	"context"
	"io"
	"sync"

	"github.com/SChristophS/StoryMagic/story"
	"github.com/SChristophS/StoryMagic/storyapi"
)

// FakeGateway is an in-memory Gateway for tests. Responses are
// configured through the public fields; every call is recorded.
type FakeGateway struct {
	mu sync.Mutex

	Token string

	RegisterErr   error
	LoginToken    string
	LoginErr      error
	StoriesResult []story.Story
	StoriesErr    error
	DetailResult  story.Story
	DetailErr     error
	UploadResult  string
	UploadErr     error
	SaveResult    string
	SaveErr       error
	ListResult    []storyapi.SavedStorySummary
	ListErr       error
	SavedResult   storyapi.SavedStory
	SavedErr      error
	DeleteErr     error
	OrderResult   string
	OrderErr      error

	RegisterCalls []Credentials
	LoginCalls    []Credentials
	StoriesCalls  []StoriesQuery
	DetailCalls   []string
	UploadCalls   []Upload
	SaveCalls     []storyapi.PersonalizeRequest
	ListCalls     int
	SavedCalls    []string
	DeleteCalls   []string
	OrderCalls    []storyapi.OrderRequest
}

type Credentials struct {
	Username string
	Password string
}

type StoriesQuery struct {
	Role     story.Role
	ChildAge int
}

type Upload struct {
	Filename string
	Content  []byte
}

var _ storyapi.Gateway = (*FakeGateway)(nil)

func (f *FakeGateway) WithToken(token string) storyapi.Gateway {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Token = token
	return f
}

func (f *FakeGateway) Register(_ context.Context, username, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RegisterCalls = append(f.RegisterCalls, Credentials{Username: username, Password: password})
	return f.RegisterErr
}

func (f *FakeGateway) Login(_ context.Context, username, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls = append(f.LoginCalls, Credentials{Username: username, Password: password})
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	return f.LoginToken, nil
}

func (f *FakeGateway) Stories(_ context.Context, role story.Role, childAge int) ([]story.Story, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.StoriesCalls = append(f.StoriesCalls, StoriesQuery{Role: role, ChildAge: childAge})
	if f.StoriesErr != nil {
		return nil, f.StoriesErr
	}
	return f.StoriesResult, nil
}

func (f *FakeGateway) StoryDetail(_ context.Context, storyID string) (story.Story, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DetailCalls = append(f.DetailCalls, storyID)
	if f.DetailErr != nil {
		return story.Story{}, f.DetailErr
	}
	return f.DetailResult, nil
}

func (f *FakeGateway) UploadImage(_ context.Context, filename string, file io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	content, _ := io.ReadAll(file)
	f.UploadCalls = append(f.UploadCalls, Upload{Filename: filename, Content: content})
	if f.UploadErr != nil {
		return "", f.UploadErr
	}
	return f.UploadResult, nil
}

func (f *FakeGateway) SaveStory(_ context.Context, req storyapi.PersonalizeRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SaveCalls = append(f.SaveCalls, req)
	if f.SaveErr != nil {
		return "", f.SaveErr
	}
	return f.SaveResult, nil
}

func (f *FakeGateway) UserStories(_ context.Context) ([]storyapi.SavedStorySummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.ListResult, nil
}

func (f *FakeGateway) SavedStory(_ context.Context, savedStoryID string) (storyapi.SavedStory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SavedCalls = append(f.SavedCalls, savedStoryID)
	if f.SavedErr != nil {
		return storyapi.SavedStory{}, f.SavedErr
	}
	return f.SavedResult, nil
}

func (f *FakeGateway) DeleteSavedStory(_ context.Context, savedStoryID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls = append(f.DeleteCalls, savedStoryID)
	return f.DeleteErr
}

func (f *FakeGateway) PlaceOrder(_ context.Context, req storyapi.OrderRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.OrderCalls = append(f.OrderCalls, req)
	if f.OrderErr != nil {
		return "", f.OrderErr
	}
	return f.OrderResult, nil
}
