package wizard

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	interrors "github.com/SChristophS/StoryMagic/internal/errors"
	"github.com/SChristophS/StoryMagic/session"
	"github.com/SChristophS/StoryMagic/storyapi"
)

// sceneFieldPrefix names the upload form fields: scene_0, scene_1, ...
const sceneFieldPrefix = "scene_"

// ImagePromptsController uploads one image per scene. Uploads are
// independent requests keyed by scene index; each completed upload is
// written to the session immediately, so a failure mid-way keeps the
// scenes already uploaded and the step can be resumed.
type ImagePromptsController struct {
	gateway storyapi.Gateway
}

func NewImagePromptsController(gateway storyapi.Gateway) *ImagePromptsController {
	return &ImagePromptsController{gateway: gateway}
}

func (c *ImagePromptsController) Step() Step { return StepImagePrompts }

func (c *ImagePromptsController) Submit(ctx context.Context, sess *session.Session, in Input) (Step, error) {
	selected, ok := sess.SelectedStory()
	if !ok {
		return StepImagePrompts, interrors.ErrNoStorySelected
	}

	for field, upload := range in.Files {
		sceneIndex, err := sceneIndexFromField(field, len(selected.Scenes))
		if err != nil {
			return StepImagePrompts, err
		}

		filePath, err := c.gateway.UploadImage(ctx, upload.Filename, bytes.NewReader(upload.Content))
		if err != nil {
			return StepImagePrompts, errors.Wrapf(err, "[ImagePrompts] upload for scene %d failed", sceneIndex)
		}
		sess.SetUserImage(sceneIndex, filePath)
		log.Debug().Int("scene", sceneIndex).Str("filePath", filePath).Msg("Scene image uploaded")
	}

	// Partial uploads are a valid, resumable state; the preview simply
	// omits images for scenes without one.
	return StepPreview, nil
}

func sceneIndexFromField(field string, sceneCount int) (int, error) {
	raw, ok := strings.CutPrefix(field, sceneFieldPrefix)
	if !ok {
		return 0, invalid(field, "Unbekanntes Upload-Feld")
	}
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 || index >= sceneCount {
		return 0, invalid(field, fmt.Sprintf("Ungültige Szene %q", raw))
	}
	return index, nil
}
