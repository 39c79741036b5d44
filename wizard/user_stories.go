package wizard

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	interrors "github.com/SChristophS/StoryMagic/internal/errors"
	"github.com/SChristophS/StoryMagic/session"
	"github.com/SChristophS/StoryMagic/storyapi"
)

// UserStoriesController lists the visitor's saved personalized stories
// and loads or deletes one. Loading restores the story, personal data
// and per-scene images into the session so the preview can resume.
type UserStoriesController struct {
	gateway storyapi.Gateway
}

func NewUserStoriesController(gateway storyapi.Gateway) *UserStoriesController {
	return &UserStoriesController{gateway: gateway}
}

func (c *UserStoriesController) Step() Step { return StepUserStories }

// Load fetches the saved-story list for the authenticated visitor.
func (c *UserStoriesController) Load(ctx context.Context, sess *session.Session) ([]storyapi.SavedStorySummary, error) {
	if sess.CurrentUserID() == "" {
		return nil, interrors.ErrUnauthorized
	}
	stories, err := c.gateway.UserStories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[UserStories] load list failed")
	}
	return stories, nil
}

func (c *UserStoriesController) Submit(ctx context.Context, sess *session.Session, in Input) (Step, error) {
	if sess.CurrentUserID() == "" {
		return StepUserStories, interrors.ErrUnauthorized
	}

	savedStoryID := in.Get("id")
	if savedStoryID == "" {
		return StepUserStories, invalid("id", "Keine Geschichte angegeben")
	}

	switch action := in.Get("action"); action {
	case "load":
		saved, err := c.gateway.SavedStory(ctx, savedStoryID)
		if err != nil {
			return StepUserStories, errors.Wrap(err, "[UserStories] load story failed")
		}
		sess.SelectStory(saved.Story)
		sess.SetPersonalData(saved.PersonalData)
		sess.SetUserImages(imagesBySceneIndex(saved.UserImages))
		log.Debug().Str("savedStoryID", savedStoryID).Msg("Saved story restored into session")
		return StepPreview, nil
	case "delete":
		if err := c.gateway.DeleteSavedStory(ctx, savedStoryID); err != nil {
			return StepUserStories, errors.Wrap(err, "[UserStories] delete story failed")
		}
		log.Debug().Str("savedStoryID", savedStoryID).Msg("Saved story deleted")
		return StepUserStories, nil
	default:
		return StepUserStories, invalid("action", "Unbekannte Aktion")
	}
}

// imagesBySceneIndex converts the API's string-keyed image map back to
// scene indices. Keys that are not decimal indices are dropped.
func imagesBySceneIndex(images map[string]string) map[int]string {
	out := make(map[int]string, len(images))
	for raw, ref := range images {
		index, err := strconv.Atoi(raw)
		if err != nil || index < 0 {
			continue
		}
		out[index] = ref
	}
	return out
}
