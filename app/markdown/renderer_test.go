package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	renderer := NewRenderer()

	html, err := renderer.Render("# Title\n\nsome *emphasis* here")
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>Title</h1>")
	assert.Contains(t, html, "<em>emphasis</em>")
}

func TestRenderGFMTable(t *testing.T) {
	renderer := NewRenderer()

	html, err := renderer.Render("| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)

	assert.Contains(t, html, "<table>")
}

func TestRenderKeepsRawHTML(t *testing.T) {
	renderer := NewRenderer()

	html, err := renderer.Render("before\n\n<div class=\"x\">kept</div>\n")
	require.NoError(t, err)

	assert.Contains(t, html, `<div class="x">kept</div>`)
}
