package config

import "time"

type Config interface {
	EnvConfig
	APIConfig
	CookieConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

type APIConfig interface {
	GetAPIBaseURL() string
	GetAPITimeout() time.Duration
}

type CookieConfig interface {
	GetVisitCookieName() string
	GetAuthCookieName() string
	GetSecureCookies() bool
	GetVisitTTL() time.Duration
}

type mainConfig struct {
	EnvVars
	API
	Cookies
}

func New() (Config, error) {
	env, err := newEnvVars()
	if err != nil {
		return nil, err
	}
	api, err := newAPI()
	if err != nil {
		return nil, err
	}
	cookies, err := newCookies()
	if err != nil {
		return nil, err
	}
	return mainConfig{EnvVars: env, API: api, Cookies: cookies}, nil
}
