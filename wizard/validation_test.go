package wizard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SChristophS/StoryMagic/session"
	"github.com/SChristophS/StoryMagic/story"
)

func TestValidateCredentials(t *testing.T) {
	v := NewValidator()

	t.Run("valid credentials pass", func(t *testing.T) {
		require.NoError(t, v.ValidateCredentials("chris", "secret"))
	})

	t.Run("blank username is rejected", func(t *testing.T) {
		err := v.ValidateCredentials("   ", "secret")
		ve, ok := IsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "username", ve.Field)
	})

	t.Run("missing password is rejected", func(t *testing.T) {
		err := v.ValidateCredentials("chris", "")
		ve, ok := IsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "password", ve.Field)
	})
}

func TestValidateUserInfo(t *testing.T) {
	v := NewValidator()

	t.Run("valid info passes", func(t *testing.T) {
		require.NoError(t, v.ValidateUserInfo(story.RoleMama, 5, "Mia"))
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		err := v.ValidateUserInfo(story.Role("Nachbar"), 5, "Mia")
		ve, ok := IsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "role", ve.Field)
	})

	t.Run("age outside range is rejected", func(t *testing.T) {
		for _, age := range []int{-1, 19} {
			err := v.ValidateUserInfo(story.RoleMama, age, "Mia")
			ve, ok := IsValidationError(err)
			require.True(t, ok)
			require.Equal(t, "childAge", ve.Field)
		}
	})

	t.Run("age bounds are inclusive", func(t *testing.T) {
		require.NoError(t, v.ValidateUserInfo(story.RoleMama, 0, "Mia"))
		require.NoError(t, v.ValidateUserInfo(story.RoleMama, 18, "Mia"))
	})
}

func TestValidateOrderForm(t *testing.T) {
	v := NewValidator()

	valid := session.OrderForm{
		FullName: "Chris S",
		Address:  "Musterweg 1",
		City:     "Berlin",
		ZipCode:  "10115",
		Email:    "chris@example.com",
	}

	t.Run("complete form passes", func(t *testing.T) {
		require.NoError(t, v.ValidateOrderForm(valid))
	})

	t.Run("any empty field is rejected", func(t *testing.T) {
		for _, mutate := range []func(*session.OrderForm){
			func(f *session.OrderForm) { f.FullName = "" },
			func(f *session.OrderForm) { f.Address = " " },
			func(f *session.OrderForm) { f.City = "" },
			func(f *session.OrderForm) { f.ZipCode = "" },
			func(f *session.OrderForm) { f.Email = "" },
		} {
			form := valid
			mutate(&form)
			_, ok := IsValidationError(v.ValidateOrderForm(form))
			require.True(t, ok)
		}
	})

	t.Run("email without @ is rejected", func(t *testing.T) {
		form := valid
		form.Email = "chris.example.com"
		ve, ok := IsValidationError(v.ValidateOrderForm(form))
		require.True(t, ok)
		require.Equal(t, "email", ve.Field)
	})
}
