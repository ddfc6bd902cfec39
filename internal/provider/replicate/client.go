package replicate

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	r8 "github.com/replicate/replicate-go"

	"github.com/petgoggles/goggles"
)

// DefaultModel is the image-to-image model used when no override is given.
const DefaultModel = "black-forest-labs/flux-schnell"

// Client wraps the Replicate SDK to implement goggles.GenerationProvider.
type Client struct {
	client *r8.Client
	model  string
}

// New creates a new Replicate client with the given API token.
func New(token string, opts ...ClientOption) (*Client, error) {
	client, err := r8.NewClient(r8.WithToken(token))
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

// ClientOption configures the Replicate client.
type ClientOption func(*Client)

// WithModel sets the default model for requests, as "owner/name".
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// Generate runs one prediction and blocks until it settles.
func (c *Client) Generate(ctx context.Context, prompt string, source io.Reader, sourceType string, opts ...goggles.GenerateOption) (*goggles.Output, error) {
	options := goggles.ApplyGenerateOptions(opts...)
	model := c.model
	if options.Model != "" {
		model = options.Model
	}

	owner, name, ok := strings.Cut(model, "/")
	if !ok {
		return nil, fmt.Errorf("invalid replicate model %q: want owner/name", model)
	}

	data, err := io.ReadAll(source)
	if err != nil {
		return nil, fmt.Errorf("read source image: %w", err)
	}

	input := r8.PredictionInput{
		"prompt":              prompt,
		"image":               dataURL(sourceType, data),
		"num_inference_steps": options.InferenceSteps,
		"guidance_scale":      options.GuidanceScale,
		"strength":            options.Strength,
	}

	prediction, err := c.client.CreatePredictionWithModel(ctx, owner, name, input, nil, false)
	if err != nil {
		return nil, err
	}
	if err := c.client.Wait(ctx, prediction); err != nil {
		return nil, err
	}
	if prediction.Error != nil {
		return nil, fmt.Errorf("prediction failed: %v", prediction.Error)
	}

	return convertOutput(prediction.Output), nil
}

// convertOutput preserves the provider response shape: list outputs keep
// their order, anything else becomes the single-value form.
func convertOutput(out r8.PredictionOutput) *goggles.Output {
	switch v := out.(type) {
	case []any:
		urls := make([]string, 0, len(v))
		for _, item := range v {
			urls = append(urls, fmt.Sprint(item))
		}
		return &goggles.Output{URLs: urls}
	case string:
		return &goggles.Output{Value: v}
	case nil:
		return &goggles.Output{}
	default:
		return &goggles.Output{Value: fmt.Sprint(v)}
	}
}

func dataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

var _ goggles.GenerationProvider = (*Client)(nil)
