package google

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"google.golang.org/genai"

	"github.com/petgoggles/goggles"
)

// DefaultModel is the image-output model used when no override is given.
const DefaultModel = "gemini-2.5-flash-image"

// Client wraps the Google GenAI SDK to implement goggles.GenerationProvider.
type Client struct {
	client *genai.Client
	model  string
}

// New creates a new Google GenAI client with the given API key.
func New(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	c := &Client{
		client: client,
		model:  DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ClientOption configures the Google client.
type ClientOption func(*Client)

// WithModel sets the default model for requests.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// Generate sends the source image and prompt as one multimodal request.
func (c *Client) Generate(ctx context.Context, prompt string, source io.Reader, sourceType string, opts ...goggles.GenerateOption) (*goggles.Output, error) {
	options := goggles.ApplyGenerateOptions(opts...)
	model := c.model
	if options.Model != "" {
		model = options.Model
	}

	data, err := io.ReadAll(source)
	if err != nil {
		return nil, fmt.Errorf("read source image: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				{InlineData: &genai.Blob{MIMEType: sourceType, Data: data}},
				{Text: prompt},
			},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return nil, err
	}

	var urls []string
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				urls = append(urls, "data:"+part.InlineData.MIMEType+";base64,"+
					base64.StdEncoding.EncodeToString(part.InlineData.Data))
			}
		}
	}
	return &goggles.Output{URLs: urls}, nil
}

var _ goggles.GenerationProvider = (*Client)(nil)
