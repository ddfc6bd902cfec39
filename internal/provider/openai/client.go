package openai

import (
	"context"
	"io"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/petgoggles/goggles"
)

// DefaultModel is the image model used when no override is given.
const DefaultModel = "gpt-image-1"

// Client wraps the OpenAI SDK to implement goggles.GenerationProvider.
type Client struct {
	client *openai.Client
	model  string
}

// New creates a new OpenAI client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	c := &Client{
		client: &client,
		model:  DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientOption configures the OpenAI client.
type ClientOption func(*Client)

// WithModel sets the default model for requests.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// Generate edits the source image according to the prompt.
func (c *Client) Generate(ctx context.Context, prompt string, source io.Reader, sourceType string, opts ...goggles.GenerateOption) (*goggles.Output, error) {
	options := goggles.ApplyGenerateOptions(opts...)
	model := c.model
	if options.Model != "" {
		model = options.Model
	}

	filename := "source"
	if ext, err := goggles.ExtensionFor(sourceType); err == nil {
		filename += "." + ext
	}

	params := openai.ImageEditParams{
		Image: openai.ImageEditParamsImageUnion{
			OfFile: openai.File(source, filename, sourceType),
		},
		Prompt: prompt,
		Model:  openai.ImageModel(model),
		N:      openai.Int(1),
	}

	resp, err := c.client.Images.Edit(ctx, params)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(resp.Data))
	for _, img := range resp.Data {
		switch {
		case img.URL != "":
			urls = append(urls, img.URL)
		case img.B64JSON != "":
			urls = append(urls, "data:image/png;base64,"+img.B64JSON)
		}
	}
	return &goggles.Output{URLs: urls}, nil
}

var _ goggles.GenerationProvider = (*Client)(nil)
