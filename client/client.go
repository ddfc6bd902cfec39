package client

import (
	"context"
	"fmt"

	"github.com/petgoggles/goggles"
	"github.com/petgoggles/goggles/internal/provider/google"
	"github.com/petgoggles/goggles/internal/provider/openai"
	"github.com/petgoggles/goggles/internal/provider/replicate"
)

// Provider identifies a generation backend.
type Provider string

const (
	ProviderReplicate Provider = "replicate"
	ProviderOpenAI    Provider = "openai"
	ProviderGoogle    Provider = "google"
)

// APIKeys holds credentials per backend. Only the key for the configured
// provider is required.
type APIKeys struct {
	Replicate string
	OpenAI    string
	Google    string
}

// Config selects and configures the generation backend.
type Config struct {
	// Provider names the backend to use.
	Provider Provider

	// APIKeys contains authentication keys for each backend.
	APIKeys APIKeys

	// Model overrides the backend's default model identifier.
	Model string
}

// ErrUnknownProvider is returned for a provider name outside the known set.
type ErrUnknownProvider struct {
	Provider string
}

func (e *ErrUnknownProvider) Error() string {
	return fmt.Sprintf("unknown provider: %s (must be replicate, openai, or google)", e.Provider)
}

// ErrMissingAPIKey is returned when the configured provider has no key.
type ErrMissingAPIKey struct {
	Provider string
}

func (e *ErrMissingAPIKey) Error() string {
	return fmt.Sprintf("no API key configured for %s", e.Provider)
}

// New constructs the provider named by cfg.
func New(ctx context.Context, cfg Config) (goggles.GenerationProvider, error) {
	switch cfg.Provider {
	case ProviderReplicate:
		if cfg.APIKeys.Replicate == "" {
			return nil, &ErrMissingAPIKey{Provider: string(cfg.Provider)}
		}
		var opts []replicate.ClientOption
		if cfg.Model != "" {
			opts = append(opts, replicate.WithModel(cfg.Model))
		}
		return replicate.New(cfg.APIKeys.Replicate, opts...)

	case ProviderOpenAI:
		if cfg.APIKeys.OpenAI == "" {
			return nil, &ErrMissingAPIKey{Provider: string(cfg.Provider)}
		}
		var opts []openai.ClientOption
		if cfg.Model != "" {
			opts = append(opts, openai.WithModel(cfg.Model))
		}
		return openai.New(cfg.APIKeys.OpenAI, opts...), nil

	case ProviderGoogle:
		if cfg.APIKeys.Google == "" {
			return nil, &ErrMissingAPIKey{Provider: string(cfg.Provider)}
		}
		var opts []google.ClientOption
		if cfg.Model != "" {
			opts = append(opts, google.WithModel(cfg.Model))
		}
		return google.New(ctx, cfg.APIKeys.Google, opts...)

	default:
		return nil, &ErrUnknownProvider{Provider: string(cfg.Provider)}
	}
}
