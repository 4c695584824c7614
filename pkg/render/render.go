package render

import (
	"strings"

	"github.com/russross/blackfriday"
)

// Markdown renders LLM output (markdown) into HTML for clients that want
// pre-rendered text.
type Markdown struct{}

func (Markdown) ToHTML(markdown string) string {
	return strings.TrimSpace(string(blackfriday.MarkdownCommon([]byte(markdown))))
}
