package goggles

// Default generation parameters. These are fixed per deployment; only the
// prompt text varies by mode.
const (
	DefaultInferenceSteps = 4
	DefaultGuidanceScale  = 3.5
	DefaultStrength       = 0.8
)

// GenerateOptions contains the tuning parameters for one provider request.
type GenerateOptions struct {
	Model          string
	InferenceSteps int
	GuidanceScale  float64
	Strength       float64
}

// GenerateOption is a functional option for configuring a provider request.
type GenerateOption func(*GenerateOptions)

// WithModel overrides the provider's default model identifier.
func WithModel(model string) GenerateOption {
	return func(o *GenerateOptions) {
		o.Model = model
	}
}

// WithInferenceSteps sets the inference step count.
func WithInferenceSteps(n int) GenerateOption {
	return func(o *GenerateOptions) {
		o.InferenceSteps = n
	}
}

// WithGuidanceScale sets the guidance scale.
func WithGuidanceScale(g float64) GenerateOption {
	return func(o *GenerateOptions) {
		o.GuidanceScale = g
	}
}

// WithStrength sets the prompt-adherence factor for image-to-image
// generation.
func WithStrength(s float64) GenerateOption {
	return func(o *GenerateOptions) {
		o.Strength = s
	}
}

// ApplyGenerateOptions applies functional options over the deployment
// defaults. Providers that do not support a given parameter ignore it.
func ApplyGenerateOptions(opts ...GenerateOption) *GenerateOptions {
	o := &GenerateOptions{
		InferenceSteps: DefaultInferenceSteps,
		GuidanceScale:  DefaultGuidanceScale,
		Strength:       DefaultStrength,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
