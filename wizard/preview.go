package wizard

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	interrors "github.com/SChristophS/StoryMagic/internal/errors"
	"github.com/SChristophS/StoryMagic/session"
	"github.com/SChristophS/StoryMagic/story"
	"github.com/SChristophS/StoryMagic/storyapi"
)

// PreviewController renders the personalized book and optionally saves
// it to the visitor's account before ordering.
type PreviewController struct {
	gateway storyapi.Gateway
}

func NewPreviewController(gateway storyapi.Gateway) *PreviewController {
	return &PreviewController{gateway: gateway}
}

func (c *PreviewController) Step() Step { return StepPreview }

// Pages renders the preview from the session state. Scenes without an
// uploaded image render without one; that is not an error.
func (c *PreviewController) Pages(sess *session.Session) ([]story.Page, bool) {
	selected, ok := sess.SelectedStory()
	if !ok {
		return nil, false
	}
	return story.RenderPages(selected, sess.PersonalData(), sess.UserImages()), true
}

func (c *PreviewController) Submit(ctx context.Context, sess *session.Session, in Input) (Step, error) {
	selected, ok := sess.SelectedStory()
	if !ok {
		return StepPreview, interrors.ErrNoStorySelected
	}

	switch action := in.Get("action"); action {
	case "order":
		return StepOrder, nil
	case "save":
		req := storyapi.PersonalizeRequest{
			StoryID:      selected.ID,
			PersonalData: sess.PersonalData(),
			UserImages:   imagesByDecimalIndex(sess.UserImages()),
		}
		savedID, err := c.gateway.SaveStory(ctx, req)
		if err != nil {
			return StepPreview, errors.Wrap(err, "[Preview] save personalized story failed")
		}
		log.Debug().Str("savedStoryID", savedID).Msg("Personalized story saved")
		return StepUserStories, nil
	default:
		return StepPreview, invalid("action", "Unbekannte Aktion")
	}
}

// imagesByDecimalIndex converts the scene-index map to the string-keyed
// shape the personalize endpoint expects.
func imagesByDecimalIndex(images map[int]string) map[string]string {
	out := make(map[string]string, len(images))
	for index, ref := range images {
		out[strconv.Itoa(index)] = ref
	}
	return out
}
