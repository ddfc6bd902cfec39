// Package replicate provides a Replicate API client implementing
// [goggles.GenerationProvider].
//
// This is the primary backend: one prediction per request against an
// image-to-image model (flux-schnell by default), with the source photo sent
// inline as a data URL. The prediction output may be a sequence of URLs or a
// single value; both shapes are preserved in [goggles.Output] and normalized
// by the caller.
package replicate
