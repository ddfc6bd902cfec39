// Package google provides a Google GenAI client implementing
// [goggles.GenerationProvider].
//
// It sends the source photo and prompt as one multimodal request to a
// Gemini image-output model. Gemini returns inline image bytes rather than
// URLs, so results are normalized to data URLs.
//
// The replicate-specific tuning parameters (inference steps, guidance scale,
// strength) have no equivalent here and are ignored.
package google
