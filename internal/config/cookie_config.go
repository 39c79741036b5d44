package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Cookies holds cookie naming and lifetime settings.
//
// The visit cookie identifies the in-memory wizard session; the auth
// cookie carries only the bearer token and is the one piece of state
// that survives a lost visit.
type Cookies struct {
	VisitName string        `envconfig:"VISIT_COOKIE_NAME" default:"visit_id"`
	AuthName  string        `envconfig:"AUTH_COOKIE_NAME" default:"auth_token"`
	Secure    bool          `envconfig:"SECURE_COOKIES" default:"false"`
	VisitTTL  time.Duration `envconfig:"VISIT_TTL" default:"12h"`
}

var _ CookieConfig = Cookies{}

func newCookies() (Cookies, error) {
	var c Cookies
	if err := envconfig.Process("", &c); err != nil {
		return Cookies{}, fmt.Errorf("config: process cookie vars: %w", err)
	}
	return c, nil
}

func (c Cookies) GetVisitCookieName() string {
	return c.VisitName
}

func (c Cookies) GetAuthCookieName() string {
	return c.AuthName
}

func (c Cookies) GetSecureCookies() bool {
	return c.Secure
}

func (c Cookies) GetVisitTTL() time.Duration {
	return c.VisitTTL
}
