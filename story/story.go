package story

// Story is one book template from the StoryMaker catalog. Catalog
// queries return summaries without scene detail; the detail endpoint
// returns the full shape including scenes.
type Story struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CoverImage  string  `json:"coverImage,omitempty"`
	Scenes      []Scene `json:"scenes,omitempty"`
}

// Scene is a single page of a story template.
type Scene struct {
	TextElements  []TextElement  `json:"textElements"`
	ImageElements []ImageElement `json:"imageElements"`
}

// TextElement holds template text with placeholders such as
// {child_name} and {role}.
type TextElement struct {
	Content string `json:"content"`
}

// ImageElement describes the picture the user should supply for a scene.
type ImageElement struct {
	ImagePrompt string `json:"imagePrompt"`
}

// HasScenes reports whether the story carries full scene detail.
func (s Story) HasScenes() bool {
	return len(s.Scenes) > 0
}

// ImagePrompts collects the image prompts of all scenes, in scene order.
func (s Story) ImagePrompts() []string {
	prompts := make([]string, 0, len(s.Scenes))
	for _, scene := range s.Scenes {
		for _, el := range scene.ImageElements {
			if el.ImagePrompt != "" {
				prompts = append(prompts, el.ImagePrompt)
			}
		}
	}
	return prompts
}
