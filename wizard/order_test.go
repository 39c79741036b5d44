package wizard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	interrors "github.com/SChristophS/StoryMagic/internal/errors"
	"github.com/SChristophS/StoryMagic/session"
	"github.com/SChristophS/StoryMagic/story"
	"github.com/SChristophS/StoryMagic/storyapi/gatewayfake"
	"github.com/SChristophS/StoryMagic/wizard"
)

func orderInput() wizard.Input {
	return formInput(
		"fullName", "Christoph S",
		"address", "Musterweg 1",
		"city", "Berlin",
		"zipCode", "10115",
		"email", "chris@example.com",
	)
}

func TestOrderController(t *testing.T) {
	validator := wizard.NewValidator()

	t.Run("complete form places one order", func(t *testing.T) {
		gw := &gatewayfake.FakeGateway{OrderResult: "Order placed"}
		ctrl := wizard.NewOrderController(gw, validator)
		sess := threeSceneSession()
		sess.SetPersonalData(story.PersonalData{ChildName: "Mia", Role: story.RoleMama, ChildAge: 5})
		sess.SetCapturedPhoto("data:image/png;base64,abc")

		next, err := ctrl.Submit(context.Background(), sess, orderInput())
		require.NoError(t, err)
		require.Equal(t, wizard.StepConfirmation, next)

		require.Len(t, gw.OrderCalls, 1)
		placed := gw.OrderCalls[0]
		require.Equal(t, "s1", placed.StoryID)
		require.Equal(t, "Mia", placed.ChildName)
		require.Equal(t, "data:image/png;base64,abc", placed.Photo)
		require.Equal(t, "Berlin", placed.OrderData.City)
	})

	t.Run("missing field blocks the API call and keeps the form", func(t *testing.T) {
		gw := &gatewayfake.FakeGateway{}
		ctrl := wizard.NewOrderController(gw, validator)
		sess := threeSceneSession()

		in := orderInput()
		in.Values.Set("city", " ")

		next, err := ctrl.Submit(context.Background(), sess, in)
		require.Equal(t, wizard.StepOrder, next)
		_, ok := wizard.IsValidationError(err)
		require.True(t, ok)
		require.Empty(t, gw.OrderCalls)

		// Submitted values survive for the retry
		require.Equal(t, "Christoph S", sess.OrderForm().FullName)
	})

	t.Run("API failure keeps the step and the form", func(t *testing.T) {
		gw := &gatewayfake.FakeGateway{OrderErr: interrors.ErrNetwork}
		ctrl := wizard.NewOrderController(gw, validator)
		sess := threeSceneSession()

		next, err := ctrl.Submit(context.Background(), sess, orderInput())
		require.Equal(t, wizard.StepOrder, next)
		require.ErrorIs(t, err, interrors.ErrNetwork)
		require.Equal(t, "Musterweg 1", sess.OrderForm().Address)
	})

	t.Run("no story selected", func(t *testing.T) {
		ctrl := wizard.NewOrderController(&gatewayfake.FakeGateway{}, validator)
		_, err := ctrl.Submit(context.Background(), session.New(), orderInput())
		require.ErrorIs(t, err, interrors.ErrNoStorySelected)
	})
}
