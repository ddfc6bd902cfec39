// Package openai provides an OpenAI API client implementing
// [goggles.GenerationProvider].
//
// It wraps the official OpenAI Go SDK and uses the image edit endpoint so
// the uploaded photo is part of the request, not just the prompt. gpt-image-1
// returns base64 payloads, which are normalized to data URLs in the output.
//
// The replicate-specific tuning parameters (inference steps, guidance scale,
// strength) have no equivalent on this endpoint and are ignored.
package openai
