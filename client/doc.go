// Package client constructs the configured generation provider.
//
// Deployments pick exactly one backend; the client package validates the
// choice and the matching API key and returns a ready
// [goggles.GenerationProvider]:
//
//	provider, err := client.New(ctx, client.Config{
//	    Provider: client.ProviderReplicate,
//	    APIKeys:  client.APIKeys{Replicate: os.Getenv("REPLICATE_API_TOKEN")},
//	})
package client
