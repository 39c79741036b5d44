package server_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/SChristophS/StoryMagic/internal/config"
	interrors "github.com/SChristophS/StoryMagic/internal/errors"
	"github.com/SChristophS/StoryMagic/server"
	"github.com/SChristophS/StoryMagic/session/sessionrepo"
	"github.com/SChristophS/StoryMagic/storyapi/gatewayfake"
)

type serverConfig struct {
	config.EnvVars
	config.API
	config.Cookies
}

func testConfig() config.Config {
	return serverConfig{
		EnvVars: config.EnvVars{Port: "8080", AppName: "StoryMagic", Env: "TEST"},
		API:     config.API{BaseURL: "http://localhost:5000", Timeout: time.Second},
		Cookies: config.Cookies{VisitName: "visit_id", AuthName: "auth_token", VisitTTL: time.Hour},
	}
}

func newTestServer(t *testing.T) (*server.Server, *gatewayfake.FakeGateway) {
	t.Helper()
	gateway := &gatewayfake.FakeGateway{}
	srv, err := server.New(testConfig(), sessionrepo.NewInMemoryRepo(time.Hour), gateway)
	require.NoError(t, err)
	return srv, gateway
}

func signedToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": userID}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func doRequest(srv *server.Server, r *http.Request, cookies []*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		r.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, r)
	return rr
}

func postForm(srv *server.Server, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return doRequest(srv, r, cookies)
}

func cookieNamed(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestWelcomePage(t *testing.T) {
	srv, _ := newTestServer(t)

	rr := doRequest(srv, httptest.NewRequest(http.MethodGet, "/", nil), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Willkommen")
	require.NotNil(t, cookieNamed(rr, "visit_id"))
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	rr := doRequest(srv, httptest.NewRequest(http.MethodGet, "/no-such-page", nil), nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGatedStepRedirectsToLogin(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/user-info", "/stories", "/preview", "/order", "/my-stories"} {
		t.Run(path, func(t *testing.T) {
			rr := doRequest(srv, httptest.NewRequest(http.MethodGet, path, nil), nil)
			require.Equal(t, http.StatusSeeOther, rr.Code)
			require.Equal(t, "/login", rr.Header().Get("Location"))
		})
	}
}

func TestLoginFlow(t *testing.T) {
	srv, gateway := newTestServer(t)
	gateway.LoginToken = signedToken(t, "user-1")

	// First visit establishes the session cookie
	first := doRequest(srv, httptest.NewRequest(http.MethodGet, "/login", nil), nil)
	require.Equal(t, http.StatusOK, first.Code)
	visit := cookieNamed(first, "visit_id")
	require.NotNil(t, visit)

	rr := postForm(srv, "/login", url.Values{"username": {"chris"}, "password": {"secret"}}, []*http.Cookie{visit})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/user-info", rr.Header().Get("Location"))

	auth := cookieNamed(rr, "auth_token")
	require.NotNil(t, auth)
	require.Equal(t, gateway.LoginToken, auth.Value)

	// The same visit can now enter gated steps
	page := doRequest(srv, httptest.NewRequest(http.MethodGet, "/user-info", nil), []*http.Cookie{visit})
	require.Equal(t, http.StatusOK, page.Code)
	require.Contains(t, page.Body.String(), "Wer liest vor?")
}

func TestLoginRejectionStaysOnPage(t *testing.T) {
	srv, gateway := newTestServer(t)
	gateway.LoginErr = interrors.ErrUnauthorized

	first := doRequest(srv, httptest.NewRequest(http.MethodGet, "/login", nil), nil)
	visit := cookieNamed(first, "visit_id")

	rr := postForm(srv, "/login", url.Values{"username": {"chris"}, "password": {"wrong"}}, []*http.Cookie{visit})
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Benutzername oder Passwort ist falsch")
	require.Contains(t, rr.Body.String(), "chris") // Submitted username is preserved
	require.Nil(t, cookieNamed(rr, "auth_token"))
}

func TestAuthCookieSurvivesLostVisit(t *testing.T) {
	srv, gateway := newTestServer(t)
	token := signedToken(t, "user-1")
	gateway.LoginToken = token

	first := doRequest(srv, httptest.NewRequest(http.MethodGet, "/login", nil), nil)
	visit := cookieNamed(first, "visit_id")
	login := postForm(srv, "/login", url.Values{"username": {"chris"}, "password": {"secret"}}, []*http.Cookie{visit})
	auth := cookieNamed(login, "auth_token")
	require.NotNil(t, auth)

	// No visit cookie: a fresh session is created, but the auth cookie
	// keeps the visitor logged in
	rr := doRequest(srv, httptest.NewRequest(http.MethodGet, "/user-info", nil), []*http.Cookie{auth})
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestLogoutClearsAuth(t *testing.T) {
	srv, gateway := newTestServer(t)
	gateway.LoginToken = signedToken(t, "user-1")

	first := doRequest(srv, httptest.NewRequest(http.MethodGet, "/login", nil), nil)
	visit := cookieNamed(first, "visit_id")
	postForm(srv, "/login", url.Values{"username": {"chris"}, "password": {"secret"}}, []*http.Cookie{visit})

	rr := doRequest(srv, httptest.NewRequest(http.MethodGet, "/logout", nil), []*http.Cookie{visit})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/", rr.Header().Get("Location"))

	auth := cookieNamed(rr, "auth_token")
	require.NotNil(t, auth)
	require.Empty(t, auth.Value)

	// The session no longer passes the gate
	gated := doRequest(srv, httptest.NewRequest(http.MethodGet, "/stories", nil), []*http.Cookie{visit})
	require.Equal(t, http.StatusSeeOther, gated.Code)
	require.Equal(t, "/login", gated.Header().Get("Location"))
}

func TestUnauthenticatedSubmitRedirects(t *testing.T) {
	srv, gateway := newTestServer(t)

	rr := postForm(srv, "/order", url.Values{"fullName": {"Chris"}}, nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/login", rr.Header().Get("Location"))
	require.Empty(t, gateway.OrderCalls)
}
