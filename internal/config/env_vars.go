package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvVars holds general process settings, loaded from the environment.
type EnvVars struct {
	Port    string `envconfig:"PORT" default:"8080"`
	AppName string `envconfig:"APP_NAME" default:"StoryMagic"`
	Env     string `envconfig:"ENV" default:"DEV"`
}

var _ EnvConfig = EnvVars{}

func newEnvVars() (EnvVars, error) {
	var e EnvVars
	if err := envconfig.Process("", &e); err != nil {
		return EnvVars{}, fmt.Errorf("config: process env vars: %w", err)
	}
	return e, nil
}

func (e EnvVars) GetPort() string {
	port := e.Port
	if port != "" && port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

func (e EnvVars) GetEnv() string {
	return e.Env
}
