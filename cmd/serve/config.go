package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/petgoggles/goggles"
	"github.com/petgoggles/goggles/client"
)

// Config holds the server configuration loaded from environment variables.
type Config struct {
	// Server
	Port      string
	UploadDir string
	LogLevel  string // debug, info, warn, error

	// Provider selection
	Provider client.Provider
	Model    string

	// API keys
	ReplicateToken string
	OpenAIKey      string
	GoogleKey      string

	// Generation behavior
	FailurePolicy  goggles.Policy
	Timeout        time.Duration
	InferenceSteps int
	GuidanceScale  float64
	Strength       float64
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
func LoadConfig() (*Config, error) {
	godotenv.Load() // Load .env file if present

	cfg := &Config{
		Port:           getEnvOrDefault("GOGGLES_PORT", "8000"),
		UploadDir:      getEnvOrDefault("GOGGLES_UPLOAD_DIR", "uploads"),
		LogLevel:       getEnvOrDefault("GOGGLES_LOG_LEVEL", "info"),
		Provider:       client.Provider(os.Getenv("GOGGLES_PROVIDER")),
		Model:          os.Getenv("GOGGLES_MODEL"),
		ReplicateToken: os.Getenv("REPLICATE_API_TOKEN"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		GoogleKey:      os.Getenv("GOOGLE_API_KEY"),
		FailurePolicy:  goggles.Policy(getEnvOrDefault("GOGGLES_FAILURE_POLICY", string(goggles.PolicyStrict))),
		Timeout:        getEnvDurationOrDefault("GOGGLES_TIMEOUT", 60*time.Second),
		InferenceSteps: getEnvIntOrDefault("GOGGLES_STEPS", goggles.DefaultInferenceSteps),
		GuidanceScale:  getEnvFloatOrDefault("GOGGLES_GUIDANCE", goggles.DefaultGuidanceScale),
		Strength:       getEnvFloatOrDefault("GOGGLES_STRENGTH", goggles.DefaultStrength),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	switch c.Provider {
	case client.ProviderReplicate:
		if c.ReplicateToken == "" {
			return fmt.Errorf("REPLICATE_API_TOKEN is required for replicate provider")
		}
	case client.ProviderOpenAI:
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for openai provider")
		}
	case client.ProviderGoogle:
		if c.GoogleKey == "" {
			return fmt.Errorf("GOOGLE_API_KEY is required for google provider")
		}
	case "":
		return fmt.Errorf("GOGGLES_PROVIDER is required (replicate, openai, or google)")
	default:
		return fmt.Errorf("unknown provider: %s (must be replicate, openai, or google)", c.Provider)
	}

	switch c.FailurePolicy {
	case goggles.PolicyStrict, goggles.PolicyTolerant:
	default:
		return fmt.Errorf("invalid GOGGLES_FAILURE_POLICY: %s (must be strict or tolerant)", c.FailurePolicy)
	}

	return nil
}

// APIKeys builds the client credential set from the loaded keys.
func (c *Config) APIKeys() client.APIKeys {
	return client.APIKeys{
		Replicate: c.ReplicateToken,
		OpenAI:    c.OpenAIKey,
		Google:    c.GoogleKey,
	}
}

// GenerateOptions builds the fixed per-deployment generation parameters.
func (c *Config) GenerateOptions() []goggles.GenerateOption {
	return []goggles.GenerateOption{
		goggles.WithInferenceSteps(c.InferenceSteps),
		goggles.WithGuidanceScale(c.GuidanceScale),
		goggles.WithStrength(c.Strength),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
