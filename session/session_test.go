package session_test

import (
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	interrors "github.com/SChristophS/StoryMagic/internal/errors"
	"github.com/SChristophS/StoryMagic/session"
	"github.com/SChristophS/StoryMagic/story"
)

func signedToken(t *testing.T, claims jwtlib.MapClaims) string {
	t.Helper()
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestSessionAuthToken(t *testing.T) {
	t.Run("decoding the sub claim yields the user id", func(t *testing.T) {
		sess := session.New()
		sess.SetAuthToken(signedToken(t, jwtlib.MapClaims{"sub": "user-42"}))
		require.True(t, sess.Authenticated())
		require.Equal(t, "user-42", sess.CurrentUserID())
	})

	t.Run("identity claim is accepted as fallback", func(t *testing.T) {
		sess := session.New()
		sess.SetAuthToken(signedToken(t, jwtlib.MapClaims{"identity": "user-7"}))
		require.Equal(t, "user-7", sess.CurrentUserID())
	})

	t.Run("numeric identity is stringified", func(t *testing.T) {
		sess := session.New()
		sess.SetAuthToken(signedToken(t, jwtlib.MapClaims{"sub": 42}))
		require.Equal(t, "42", sess.CurrentUserID())
	})

	t.Run("undecodable token forces both fields to empty", func(t *testing.T) {
		sess := session.New()
		sess.SetAuthToken("not-a-jwt")
		require.False(t, sess.Authenticated())
		require.Empty(t, sess.AuthToken())
		require.Empty(t, sess.CurrentUserID())
	})

	t.Run("token without identity claim counts as unauthenticated", func(t *testing.T) {
		sess := session.New()
		sess.SetAuthToken(signedToken(t, jwtlib.MapClaims{"aud": "storymagic"}))
		require.False(t, sess.Authenticated())
	})

	t.Run("clearing the token clears the identity", func(t *testing.T) {
		sess := session.New()
		sess.SetAuthToken(signedToken(t, jwtlib.MapClaims{"sub": "user-42"}))
		sess.SetAuthToken("")
		require.False(t, sess.Authenticated())
		require.Empty(t, sess.CurrentUserID())
	})
}

func TestSessionUserImages(t *testing.T) {
	t.Run("uploads merge by scene index", func(t *testing.T) {
		sess := session.New()
		sess.SetUserImage(0, "/uploads/a.jpg")
		sess.SetUserImage(2, "/uploads/b.jpg")
		require.Equal(t, map[int]string{0: "/uploads/a.jpg", 2: "/uploads/b.jpg"}, sess.UserImages())
	})

	t.Run("re-upload replaces only its own key", func(t *testing.T) {
		sess := session.New()
		sess.SetUserImage(0, "/uploads/a.jpg")
		sess.SetUserImage(2, "/uploads/b.jpg")
		sess.SetUserImage(2, "/uploads/b2.jpg")
		require.Equal(t, map[int]string{0: "/uploads/a.jpg", 2: "/uploads/b2.jpg"}, sess.UserImages())
	})

	t.Run("returned map is a copy", func(t *testing.T) {
		sess := session.New()
		sess.SetUserImage(1, "/uploads/a.jpg")
		images := sess.UserImages()
		images[1] = "tampered"
		require.Equal(t, "/uploads/a.jpg", sess.UserImages()[1])
	})
}

func TestSessionSelectStory(t *testing.T) {
	first := story.Story{ID: "s1", Title: "Drache"}
	second := story.Story{ID: "s2", Title: "Pirat"}

	t.Run("selecting a different story clears images and personal data", func(t *testing.T) {
		sess := session.New()
		sess.SelectStory(first)
		sess.SetUserImage(0, "/uploads/a.jpg")
		sess.SetPersonalData(story.PersonalData{ChildName: "Mia", Role: story.RoleMama})

		sess.SelectStory(second)
		require.Empty(t, sess.UserImages())
		require.Equal(t, story.PersonalData{}, sess.PersonalData())

		selected, ok := sess.SelectedStory()
		require.True(t, ok)
		require.Equal(t, "s2", selected.ID)
	})

	t.Run("re-selecting the same story keeps the collected state", func(t *testing.T) {
		sess := session.New()
		sess.SelectStory(first)
		sess.SetUserImage(1, "/uploads/a.jpg")

		sess.SelectStory(first)
		require.Equal(t, "/uploads/a.jpg", sess.UserImages()[1])
	})

	t.Run("no story selected", func(t *testing.T) {
		sess := session.New()
		_, ok := sess.SelectedStory()
		require.False(t, ok)
	})
}

func TestSessionLifecycle(t *testing.T) {
	t.Run("logout clears token and wizard progress", func(t *testing.T) {
		sess := session.New()
		sess.SetAuthToken(signedToken(t, jwtlib.MapClaims{"sub": "user-1"}))
		sess.SetUserInfo(session.UserInfo{Role: story.RolePapa, ChildAge: 6, ChildName: "Tom"})
		sess.SelectStory(story.Story{ID: "s1"})

		sess.Logout()
		require.False(t, sess.Authenticated())
		require.Equal(t, session.UserInfo{}, sess.UserInfo())
		_, ok := sess.SelectedStory()
		require.False(t, ok)
	})

	t.Run("reset keeps the auth token", func(t *testing.T) {
		sess := session.New()
		sess.SetAuthToken(signedToken(t, jwtlib.MapClaims{"sub": "user-1"}))
		sess.SetCapturedPhoto("data:image/png;base64,xyz")

		sess.Reset()
		require.True(t, sess.Authenticated())
		require.Empty(t, sess.CapturedPhoto())
	})
}

func TestSessionSubmitGuard(t *testing.T) {
	sess := session.New()
	require.NoError(t, sess.BeginSubmit())

	err := sess.BeginSubmit()
	require.ErrorIs(t, err, interrors.ErrSubmitInFlight)

	sess.EndSubmit()
	require.NoError(t, sess.BeginSubmit())
}
