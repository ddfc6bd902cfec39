package goggles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionFor(t *testing.T) {
	t.Run("accepted types map to canonical extensions", func(t *testing.T) {
		tests := []struct {
			contentType string
			extension   string
		}{
			{"image/jpeg", "jpg"},
			{"image/png", "png"},
			{"image/webp", "webp"},
		}

		for _, tt := range tests {
			t.Run(tt.contentType, func(t *testing.T) {
				ext, err := ExtensionFor(tt.contentType)
				require.NoError(t, err)
				assert.Equal(t, tt.extension, ext)
			})
		}
	})

	t.Run("mapping is deterministic", func(t *testing.T) {
		first, err := ExtensionFor("image/jpeg")
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			ext, err := ExtensionFor("image/jpeg")
			require.NoError(t, err)
			assert.Equal(t, first, ext)
		}
	})

	t.Run("everything else is rejected", func(t *testing.T) {
		for _, contentType := range []string{
			"text/plain",
			"application/json",
			"image/gif",
			"image/svg+xml",
			"image/jpg", // not the canonical MIME name
			"IMAGE/JPEG",
			"",
		} {
			t.Run(contentType, func(t *testing.T) {
				_, err := ExtensionFor(contentType)
				require.Error(t, err)
				assert.True(t, IsInvalidMediaType(err))
				assert.Equal(t, 400, StatusCodeOf(err))
			})
		}
	})
}

func TestContentTypeFor(t *testing.T) {
	t.Run("round-trips with ExtensionFor", func(t *testing.T) {
		for _, contentType := range []string{"image/jpeg", "image/png", "image/webp"} {
			ext, err := ExtensionFor(contentType)
			require.NoError(t, err)
			assert.Equal(t, contentType, ContentTypeFor(ext))
		}
	})

	t.Run("unknown extension yields empty string", func(t *testing.T) {
		assert.Empty(t, ContentTypeFor("gif"))
	})
}

func TestExtensions(t *testing.T) {
	t.Run("fixed probe order", func(t *testing.T) {
		assert.Equal(t, []string{"jpg", "png", "webp"}, Extensions())
	})

	t.Run("returns a copy", func(t *testing.T) {
		exts := Extensions()
		exts[0] = "tampered"
		assert.Equal(t, []string{"jpg", "png", "webp"}, Extensions())
	})
}
