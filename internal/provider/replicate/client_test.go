package replicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertOutput(t *testing.T) {
	t.Run("sequence outputs keep order", func(t *testing.T) {
		out := convertOutput([]any{"https://example.com/a.jpg", "https://example.com/b.jpg"})
		assert.Equal(t, []string{"https://example.com/a.jpg", "https://example.com/b.jpg"}, out.URLs)
		assert.Empty(t, out.Value)
		assert.Equal(t, "https://example.com/a.jpg", out.URL())
	})

	t.Run("string outputs become the single value", func(t *testing.T) {
		out := convertOutput("https://example.com/only.jpg")
		assert.Empty(t, out.URLs)
		assert.Equal(t, "https://example.com/only.jpg", out.URL())
	})

	t.Run("nil output normalizes to empty", func(t *testing.T) {
		out := convertOutput(nil)
		assert.Empty(t, out.URL())
	})

	t.Run("other shapes are stringified", func(t *testing.T) {
		out := convertOutput(map[string]any{"url": "x"})
		assert.NotEmpty(t, out.URL())
	})

	t.Run("non-string sequence elements are stringified", func(t *testing.T) {
		out := convertOutput([]any{42})
		assert.Equal(t, "42", out.URL())
	})
}

func TestDataURL(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,aGk=", dataURL("image/png", []byte("hi")))
}

func TestNew(t *testing.T) {
	t.Run("defaults to flux-schnell", func(t *testing.T) {
		c, err := New("r8_test")
		assert.NoError(t, err)
		assert.Equal(t, DefaultModel, c.model)
	})

	t.Run("model override", func(t *testing.T) {
		c, err := New("r8_test", WithModel("black-forest-labs/flux-dev"))
		assert.NoError(t, err)
		assert.Equal(t, "black-forest-labs/flux-dev", c.model)
	})
}
