package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderBasicMarkdown(t *testing.T) {
	out := string(Render("I build **web services**."))
	require.Contains(t, out, "<strong>web services</strong>")
}

func TestRenderStripsScripts(t *testing.T) {
	out := string(Render(`hello <script>alert("x")</script> world`))
	require.NotContains(t, out, "<script>")
	require.Contains(t, out, "hello")
}

func TestRenderKeepsLinksSafe(t *testing.T) {
	out := string(Render(`<a href="javascript:alert(1)">x</a>`))
	require.NotContains(t, out, "javascript:")
}
