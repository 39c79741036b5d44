package wizard

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/SChristophS/StoryMagic/session"
	"github.com/SChristophS/StoryMagic/story"
	"github.com/SChristophS/StoryMagic/storyapi"
)

// StorySelectionController loads the catalog matching the visitor's
// role and child age and records the picked story.
type StorySelectionController struct {
	gateway storyapi.Gateway
}

func NewStorySelectionController(gateway storyapi.Gateway) *StorySelectionController {
	return &StorySelectionController{gateway: gateway}
}

func (c *StorySelectionController) Step() Step { return StepStorySelection }

// Load fetches the catalog for the session's role and age and stores it
// in the session. An empty catalog is not an error.
func (c *StorySelectionController) Load(ctx context.Context, sess *session.Session) ([]story.Story, error) {
	info := sess.UserInfo()
	stories, err := c.gateway.Stories(ctx, info.Role, info.ChildAge)
	if err != nil {
		return nil, errors.Wrap(err, "[StorySelection] load catalog failed")
	}
	sess.SetCatalog(stories)
	log.Debug().Int("count", len(stories)).Str("role", string(info.Role)).Int("childAge", info.ChildAge).Msg("Catalog loaded")
	return stories, nil
}

// Submit records the picked story. Stories arriving as summaries are
// completed with a detail fetch so the scenes are available to the
// following steps. Stories whose scenes name image prompts take the
// per-scene upload path; the rest go through personalization and a
// single photo capture.
func (c *StorySelectionController) Submit(ctx context.Context, sess *session.Session, in Input) (Step, error) {
	storyID := in.Get("storyId")
	if storyID == "" {
		return StepStorySelection, invalid("storyId", "Bitte eine Geschichte auswählen")
	}

	picked, ok := findStory(sess.Catalog(), storyID)
	if !ok {
		return StepStorySelection, invalid("storyId", "Diese Geschichte gibt es nicht mehr")
	}

	if !picked.HasScenes() {
		detailed, err := c.gateway.StoryDetail(ctx, storyID)
		if err != nil {
			return StepStorySelection, errors.Wrap(err, "[StorySelection] load story detail failed")
		}
		picked = detailed
	}

	sess.SelectStory(picked)

	// Seed the personal data from the role/age step so the upload path
	// can render substituted text without passing personalization.
	info := sess.UserInfo()
	sess.SetPersonalData(story.PersonalData{ChildName: info.ChildName, Role: info.Role, ChildAge: info.ChildAge})

	if len(picked.ImagePrompts()) > 0 {
		return StepImagePrompts, nil
	}
	return StepPersonalization, nil
}

func findStory(catalog []story.Story, id string) (story.Story, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return story.Story{}, false
}
