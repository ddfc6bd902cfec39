// Package goggles implements the pet-vision image pipeline: it validates an
// uploaded pet photo, derives a generation prompt from a requested vision
// mode, and forwards both to an external image-to-image model, returning the
// resulting image URL.
//
// # Core Contracts
//
// The package defines two interfaces wired together by [Generator]:
//
//   - [ImageStore]: ephemeral storage of uploaded photos keyed by identifier
//   - [GenerationProvider]: one synchronous call to the external image model
//
// Provider implementations live under internal/provider and are selected
// through the [github.com/petgoggles/goggles/client] package. The filesystem
// store lives in [github.com/petgoggles/goggles/store].
//
// # Request Flows
//
// Two-step: [Generator.Upload] persists the photo and returns its identifier;
// a later [Generator.GenerateStored] resolves the identifier and calls the
// provider. Single-step: [Generator.GenerateDirect] validates and generates
// straight from the in-memory upload without touching the store.
//
// # Failure Policy
//
// Provider failures are handled per deployment, never per request: under
// [PolicyStrict] they surface as a generation error, under [PolicyTolerant]
// the fixed [PlaceholderURL] is substituted so the pipeline stays usable
// without provider credentials.
package goggles
