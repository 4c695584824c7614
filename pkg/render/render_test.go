package render

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	html := Markdown{}.ToHTML("# Treino\n\n- **agachamento** 3x12\n- supino 3x10")

	for _, want := range []string{"<h1>", "<li>", "<strong>agachamento</strong>"} {
		if !strings.Contains(html, want) {
			t.Errorf("html %q is missing %q", html, want)
		}
	}
}

func TestToHTML_PlainText(t *testing.T) {
	html := Markdown{}.ToHTML("beba água")
	if !strings.Contains(html, "beba água") {
		t.Errorf("html = %q", html)
	}
}
