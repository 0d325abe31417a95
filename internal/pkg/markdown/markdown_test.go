package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	r := NewRenderer()

	t.Run("renders basic markdown", func(t *testing.T) {
		out := r.Render("hello **world**")
		assert.Contains(t, out, "<strong>world</strong>")
	})

	t.Run("strips script tags", func(t *testing.T) {
		out := r.Render("hi <script>alert(1)</script>")
		assert.NotContains(t, out, "<script>")
		assert.NotContains(t, out, "alert(1)")
	})

	t.Run("strips inline event handlers", func(t *testing.T) {
		out := r.Render(`<img src="x" onerror="alert(1)">`)
		assert.NotContains(t, out, "onerror")
	})

	t.Run("keeps links", func(t *testing.T) {
		out := r.Render("[site](https://example.com)")
		assert.Contains(t, out, `href="https://example.com"`)
	})
}
