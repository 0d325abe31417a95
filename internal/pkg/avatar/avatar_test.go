package avatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		assert.Equal(t, URL("a@x.com"), URL("  A@X.COM  "))
	})

	t.Run("empty email falls back to default image", func(t *testing.T) {
		assert.Equal(t, "https://www.gravatar.com/avatar/?d=mp", URL(""))
	})

	t.Run("known md5", func(t *testing.T) {
		// md5("a@x.com")
		assert.Equal(t, "https://www.gravatar.com/avatar/743173788aa9166801df2e18f0e7ff24?d=mp", URL("a@x.com"))
	})
}
