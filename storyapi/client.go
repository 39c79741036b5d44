package storyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/SChristophS/StoryMagic/internal/config"
	interrors "github.com/SChristophS/StoryMagic/internal/errors"
	"github.com/SChristophS/StoryMagic/story"
)

// Client talks to the StoryMaker HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

var _ Gateway = (*Client)(nil)

// NewClient creates a client for the configured StoryMaker API.
func NewClient(cfg config.APIConfig) *Client {
	return &Client{
		baseURL:    cfg.GetAPIBaseURL(),
		httpClient: &http.Client{Timeout: cfg.GetAPITimeout()},
	}
}

// WithToken returns a copy of the client whose requests carry the
// bearer token by default.
func (c *Client) WithToken(token string) Gateway {
	copied := *c
	copied.token = token
	return &copied
}

func (c *Client) Register(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return c.doJSON(ctx, http.MethodPost, "/api/register", nil, body, nil)
}

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/login", nil, body, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("%w: login response missing access_token", interrors.ErrStatus)
	}
	return out.AccessToken, nil
}

func (c *Client) Stories(ctx context.Context, role story.Role, childAge int) ([]story.Story, error) {
	query := url.Values{}
	if role != "" {
		query.Set("role", string(role))
	}
	query.Set("childAge", strconv.Itoa(childAge))

	var stories []story.Story
	if err := c.doJSON(ctx, http.MethodGet, "/api/stories", query, nil, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (c *Client) StoryDetail(ctx context.Context, storyID string) (story.Story, error) {
	var s story.Story
	err := c.doJSON(ctx, http.MethodGet, "/api/stories/"+url.PathEscape(storyID), nil, nil, &s)
	return s, err
}

func (c *Client) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("storyapi: create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("storyapi: copy upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("storyapi: close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload-image", &buf)
	if err != nil {
		return "", fmt.Errorf("storyapi: build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var out struct {
		FilePath string `json:"file_path"`
	}
	if err := c.send(req, &out); err != nil {
		return "", err
	}
	return out.FilePath, nil
}

func (c *Client) SaveStory(ctx context.Context, request PersonalizeRequest) (string, error) {
	var out struct {
		PersonalizedStoryID string `json:"personalized_story_id"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/personalize", nil, request, &out); err != nil {
		return "", err
	}
	return out.PersonalizedStoryID, nil
}

func (c *Client) UserStories(ctx context.Context) ([]SavedStorySummary, error) {
	var stories []SavedStorySummary
	if err := c.doJSON(ctx, http.MethodGet, "/api/user-stories", nil, nil, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (c *Client) SavedStory(ctx context.Context, savedStoryID string) (SavedStory, error) {
	var s SavedStory
	err := c.doJSON(ctx, http.MethodGet, "/api/personalized-stories/"+url.PathEscape(savedStoryID), nil, nil, &s)
	return s, err
}

func (c *Client) DeleteSavedStory(ctx context.Context, savedStoryID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/personalized-stories/"+url.PathEscape(savedStoryID), nil, nil, nil)
}

func (c *Client) PlaceOrder(ctx context.Context, request OrderRequest) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/place-order", nil, request, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// doJSON issues a JSON request and decodes the response into out (out
// may be nil when the body is irrelevant).
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("storyapi: encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("storyapi: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", interrors.ErrNetwork, req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: decodeMessage(resp.Body)}
		log.Warn().Str("method", req.Method).Str("path", req.URL.Path).Int("status", resp.StatusCode).Msg("Story API request failed")
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("storyapi: decode response: %w", err)
	}
	return nil
}

// decodeMessage pulls the backend's {"message": "..."} out of an error
// response, best effort.
func decodeMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 4096)).Decode(&payload); err != nil {
		return ""
	}
	return payload.Message
}
