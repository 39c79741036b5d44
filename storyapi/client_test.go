package storyapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SChristophS/StoryMagic/internal/config"
	interrors "github.com/SChristophS/StoryMagic/internal/errors"
	"github.com/SChristophS/StoryMagic/story"
	"github.com/SChristophS/StoryMagic/storyapi"
)

func newClient(t *testing.T, handler http.Handler) (*storyapi.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := storyapi.NewClient(config.API{BaseURL: srv.URL, Timeout: 5 * time.Second})
	return client, srv
}

func TestClientLogin(t *testing.T) {
	t.Run("successful login returns the access token", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/login", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "chris", body["username"])
			require.Equal(t, "secret", body["password"])

			json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-123"})
		}))

		token, err := client.Login(context.Background(), "chris", "secret")
		require.NoError(t, err)
		require.Equal(t, "tok-123", token)
	})

	t.Run("rejected credentials map to ErrUnauthorized", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid username or password"})
		}))

		_, err := client.Login(context.Background(), "chris", "wrong")
		require.ErrorIs(t, err, interrors.ErrUnauthorized)

		var apiErr *storyapi.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "Invalid username or password", apiErr.Message)
	})
}

func TestClientBearerToken(t *testing.T) {
	t.Run("WithToken sets the default Authorization header", func(t *testing.T) {
		var gotAuth string
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte("[]"))
		}))

		_, err := client.WithToken("tok-1").UserStories(context.Background())
		require.NoError(t, err)
		require.Equal(t, "Bearer tok-1", gotAuth)
	})

	t.Run("without a token no Authorization header is sent", func(t *testing.T) {
		var gotAuth string
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte("[]"))
		}))

		_, err := client.Stories(context.Background(), story.RoleMama, 5)
		require.NoError(t, err)
		require.Empty(t, gotAuth)
	})
}

func TestClientStories(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/stories", r.URL.Path)
		require.Equal(t, "Oma", r.URL.Query().Get("role"))
		require.Equal(t, "6", r.URL.Query().Get("childAge"))

		json.NewEncoder(w).Encode([]story.Story{{ID: "s1", Title: "Drache"}, {ID: "s2", Title: "Pirat"}})
	}))

	stories, err := client.Stories(context.Background(), story.RoleOma, 6)
	require.NoError(t, err)
	require.Len(t, stories, 2)
	require.Equal(t, "Drache", stories[0].Title)
}

func TestClientUploadImage(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/upload-image", r.URL.Path)
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "scene0.jpg", header.Filename)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"file_path": "/uploads/scene0.jpg"})
	}))

	path, err := client.UploadImage(context.Background(), "scene0.jpg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	require.Equal(t, "/uploads/scene0.jpg", path)
}

func TestClientSavedStories(t *testing.T) {
	t.Run("delete issues one DELETE to the story path", func(t *testing.T) {
		var gotMethod, gotPath string
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})
		}))

		require.NoError(t, client.DeleteSavedStory(context.Background(), "S1"))
		require.Equal(t, http.MethodDelete, gotMethod)
		require.Equal(t, "/api/personalized-stories/S1", gotPath)
	})

	t.Run("saved story decodes the full payload", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"id":    "P1",
				"title": "Drache",
				"scenes": []map[string]any{
					{"textElements": []map[string]string{{"content": "Hallo {child_name}"}}, "imageElements": []map[string]string{{"imagePrompt": "Garten"}}},
				},
				"personal_data": map[string]any{"child_name": "Mia", "role": "Mama", "child_age": 5},
				"user_images":   map[string]string{"0": "/uploads/a.jpg"},
			})
		}))

		saved, err := client.SavedStory(context.Background(), "P1")
		require.NoError(t, err)
		require.Equal(t, "Drache", saved.Title)
		require.Len(t, saved.Scenes, 1)
		require.Equal(t, "Mia", saved.PersonalData.ChildName)
		require.Equal(t, "/uploads/a.jpg", saved.UserImages["0"])
	})
}

func TestClientNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // Refuse connections from now on
	client := storyapi.NewClient(config.API{BaseURL: srv.URL, Timeout: time.Second})

	_, err := client.Login(context.Background(), "chris", "secret")
	require.ErrorIs(t, err, interrors.ErrNetwork)
}
