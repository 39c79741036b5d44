package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// API holds settings for the remote StoryMaker API.
type API struct {
	BaseURL string        `envconfig:"STORY_API_URL" default:"http://localhost:5000"`
	Timeout time.Duration `envconfig:"STORY_API_TIMEOUT" default:"30s"`
}

var _ APIConfig = API{}

func newAPI() (API, error) {
	var a API
	if err := envconfig.Process("", &a); err != nil {
		return API{}, fmt.Errorf("config: process api vars: %w", err)
	}
	return a, nil
}

func (a API) GetAPIBaseURL() string {
	return a.BaseURL
}

func (a API) GetAPITimeout() time.Duration {
	return a.Timeout
}
