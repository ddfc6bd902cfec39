package goggles

import (
	"context"
	"io"
)

// GenerationProvider is the synchronous boundary to the external
// image-to-image model. One call, one response; cancellation mid-generation
// is not supported beyond the supplied context's deadline.
type GenerationProvider interface {
	// Generate sends the prompt and source image to the provider.
	// sourceType is the content type of the source bytes.
	Generate(ctx context.Context, prompt string, source io.Reader, sourceType string, opts ...GenerateOption) (*Output, error)
}

// Output is the provider response shape before normalization: either an
// ordered sequence of URLs or a single opaque value. Provider adapters fill
// exactly one of the two fields; callers go through URL and never inspect
// the shape themselves.
type Output struct {
	// URLs is the ordered sequence form of the response.
	URLs []string
	// Value is the single-value form, used when the provider did not return
	// a sequence. May be a data URL for providers that return raw bytes.
	Value string
}

// URL normalizes the response to one string: the first sequence element if
// present, otherwise the single value.
func (o *Output) URL() string {
	if len(o.URLs) > 0 {
		return o.URLs[0]
	}
	return o.Value
}

// ImageStore is ephemeral storage for uploaded photos. Implementations key
// every image by identifier plus canonical extension and promise no
// durability across crashes.
type ImageStore interface {
	// Put writes the image bytes under <id>.<ext>. Any I/O failure surfaces
	// as a storage write error; writes are never retried.
	Put(id, ext string, data []byte) error

	// Resolve returns the location of the image with the given identifier,
	// probing the canonical extensions in fixed order. Returns a not-found
	// error when no extension matches.
	Resolve(id string) (string, error)

	// Open returns the stored image bytes and the extension they were found
	// under. The caller closes the reader.
	Open(id string) (io.ReadCloser, string, error)
}
