package story

import "strings"

// PersonalData holds the values substituted into story text. The JSON
// keys match the StoryMaker API's personal_data payload.
type PersonalData struct {
	ChildName string `json:"child_name"`
	Role      Role   `json:"role"`
	ChildAge  int    `json:"child_age"`
}

// ellipsis stands in for a placeholder whose value is not set yet, so a
// preview can be rendered before personalization is complete.
const ellipsis = "..."

// Recognized placeholders. This set is fixed; anything else in the
// template text is left verbatim.
const (
	placeholderChildName = "{child_name}"
	placeholderRole      = "{role}"
)

// RenderText substitutes the recognized placeholders in a template text.
func RenderText(content string, data PersonalData) string {
	childName := data.ChildName
	if childName == "" {
		childName = ellipsis
	}
	role := string(data.Role)
	if role == "" {
		role = ellipsis
	}
	content = strings.ReplaceAll(content, placeholderChildName, childName)
	content = strings.ReplaceAll(content, placeholderRole, role)
	return content
}

// Page is one rendered page of a personalized book preview.
type Page struct {
	Number   int    // 1-based page number
	Text     string // substituted scene text
	ImageURL string // user image for the scene, empty when not uploaded
	Prompt   string // the scene's image prompt
}

// RenderPages renders every scene of the story with the given personal
// data and per-scene user images. Scenes without an uploaded image get
// an empty ImageURL; missing entries are not an error.
func RenderPages(s Story, data PersonalData, userImages map[int]string) []Page {
	pages := make([]Page, 0, len(s.Scenes))
	for i, scene := range s.Scenes {
		var text strings.Builder
		for _, el := range scene.TextElements {
			text.WriteString(RenderText(el.Content, data))
		}
		var prompt string
		if len(scene.ImageElements) > 0 {
			prompt = scene.ImageElements[0].ImagePrompt
		}
		pages = append(pages, Page{
			Number:   i + 1,
			Text:     text.String(),
			ImageURL: userImages[i],
			Prompt:   prompt,
		})
	}
	return pages
}
