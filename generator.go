package goggles

import (
	"bytes"
	"context"
	"io"
)

// Policy selects how provider failures are surfaced. It is a deployment-time
// choice: one running instance uses exactly one policy for every request.
type Policy string

const (
	// PolicyStrict propagates provider failures as generation errors.
	PolicyStrict Policy = "strict"
	// PolicyTolerant substitutes PlaceholderURL for provider failures,
	// keeping demo deployments usable without valid provider credentials.
	PolicyTolerant Policy = "tolerant"
)

// PlaceholderURL is the fixed result substituted under PolicyTolerant.
const PlaceholderURL = "https://via.placeholder.com/512?text=AI+Generated+Result"

// Generator composes the content-type gate, identifier allocation, image
// store, prompt builder, and generation provider into the two request flows.
// It holds no request-specific state: construct one value and share it across
// concurrent handlers without synchronization.
type Generator struct {
	store    ImageStore
	provider GenerationProvider
	policy   Policy
	opts     []GenerateOption
}

// NewGenerator constructs a Generator. opts carry the fixed per-deployment
// generation parameters forwarded on every provider call.
func NewGenerator(store ImageStore, provider GenerationProvider, policy Policy, opts ...GenerateOption) Generator {
	if policy == "" {
		policy = PolicyStrict
	}
	return Generator{
		store:    store,
		provider: provider,
		policy:   policy,
		opts:     opts,
	}
}

// Policy returns the configured failure policy.
func (g Generator) Policy() Policy {
	return g.policy
}

// Upload validates the declared content type, allocates an identifier, and
// persists the image bytes. Invalid media types are rejected before any
// write is attempted.
func (g Generator) Upload(ctx context.Context, contentType string, data []byte) (UploadedImage, error) {
	ext, err := ExtensionFor(contentType)
	if err != nil {
		return UploadedImage{}, err
	}

	img := UploadedImage{
		ID:          NewImageID(),
		ContentType: contentType,
		Extension:   ext,
	}
	if err := g.store.Put(img.ID, img.Extension, data); err != nil {
		return UploadedImage{}, err
	}
	return img, nil
}

// GenerateStored resolves a previously uploaded image by identifier and runs
// generation against it. A failed resolution is terminal and surfaces as a
// not-found error before any provider call.
func (g Generator) GenerateStored(ctx context.Context, id string, mode Mode) (Result, error) {
	src, ext, err := g.store.Open(id)
	if err != nil {
		return Result{}, err
	}
	defer src.Close()

	return g.generate(ctx, mode, src, ContentTypeFor(ext))
}

// GenerateDirect validates the upload and runs generation straight from the
// in-memory bytes, bypassing the store entirely. This is the stateless flow
// for deployments without persistent local disk.
func (g Generator) GenerateDirect(ctx context.Context, contentType string, data []byte, mode Mode) (Result, error) {
	if _, err := ExtensionFor(contentType); err != nil {
		return Result{}, err
	}
	return g.generate(ctx, mode, bytes.NewReader(data), contentType)
}

func (g Generator) generate(ctx context.Context, mode Mode, src io.Reader, sourceType string) (Result, error) {
	out, err := g.provider.Generate(ctx, BuildPrompt(mode), src, sourceType, g.opts...)
	if err != nil {
		return g.fail(NewGenerationError("generation request failed", err))
	}

	url := out.URL()
	if url == "" {
		return g.fail(NewGenerationError("provider returned no usable output", nil))
	}
	return Result{URL: url}, nil
}

func (g Generator) fail(err *Error) (Result, error) {
	if g.policy == PolicyTolerant {
		return Result{URL: PlaceholderURL}, nil
	}
	return Result{}, err
}
