package wizard

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	interrors "github.com/SChristophS/StoryMagic/internal/errors"
	"github.com/SChristophS/StoryMagic/session"
	"github.com/SChristophS/StoryMagic/storyapi"
)

// OrderController collects the delivery details and places the order.
// The form values are written to the session before the API call so a
// failed request keeps them for the retry.
type OrderController struct {
	gateway   storyapi.Gateway
	validator *Validator
}

func NewOrderController(gateway storyapi.Gateway, validator *Validator) *OrderController {
	return &OrderController{gateway: gateway, validator: validator}
}

func (c *OrderController) Step() Step { return StepOrder }

func (c *OrderController) Submit(ctx context.Context, sess *session.Session, in Input) (Step, error) {
	selected, ok := sess.SelectedStory()
	if !ok {
		return StepOrder, interrors.ErrNoStorySelected
	}

	form := session.OrderForm{
		FullName: in.Get("fullName"),
		Address:  in.Get("address"),
		City:     in.Get("city"),
		ZipCode:  in.Get("zipCode"),
		Email:    in.Get("email"),
	}
	sess.SetOrderForm(form)

	if err := c.validator.ValidateOrderForm(form); err != nil {
		return StepOrder, err
	}

	personal := sess.PersonalData()
	req := storyapi.OrderRequest{
		UserName:  form.FullName,
		ChildName: personal.ChildName,
		Photo:     sess.CapturedPhoto(),
		StoryID:   selected.ID,
		OrderData: storyapi.OrderData{
			FullName: form.FullName,
			Address:  form.Address,
			City:     form.City,
			ZipCode:  form.ZipCode,
			Email:    form.Email,
		},
	}

	confirmation, err := c.gateway.PlaceOrder(ctx, req)
	if err != nil {
		return StepOrder, errors.Wrap(err, "[Order] place order failed")
	}

	log.Info().Str("storyID", selected.ID).Str("confirmation", confirmation).Msg("Order placed")
	return StepConfirmation, nil
}
