// Command mcp exposes the pet-vision pipeline as a single MCP tool over
// stdio, so MCP clients (like Claude Desktop) can run generations directly.
//
// The tool takes the photo as base64 plus its declared content type and the
// requested vision mode; it returns the generated image URL. Provider
// selection and credentials use the same environment variables as cmd/serve.
//
// Usage:
//
//	GOGGLES_PROVIDER=replicate go run ./cmd/mcp
package main

import (
	"context"
	"encoding/base64"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/petgoggles/goggles"
	"github.com/petgoggles/goggles/client"
)

func main() {
	godotenv.Load()

	provider, err := client.New(context.Background(), client.Config{
		Provider: client.Provider(os.Getenv("GOGGLES_PROVIDER")),
		APIKeys: client.APIKeys{
			Replicate: os.Getenv("REPLICATE_API_TOKEN"),
			OpenAI:    os.Getenv("OPENAI_API_KEY"),
			Google:    os.Getenv("GOOGLE_API_KEY"),
		},
		Model: os.Getenv("GOGGLES_MODEL"),
	})
	if err != nil {
		log.Fatalf("Failed to create provider: %v", err)
	}

	// The MCP surface is stateless: only the single-step flow is exposed,
	// so no image store is wired.
	gen := goggles.NewGenerator(nil, provider, goggles.Policy(os.Getenv("GOGGLES_FAILURE_POLICY")))

	s := server.NewMCPServer(
		"petgoggles",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	tool := mcp.NewTool("generate_pet_vision",
		mcp.WithDescription("Restyle a pet photo as seen through the pet's own eyes and return the generated image URL"),
		mcp.WithString("image_base64",
			mcp.Required(),
			mcp.Description("Base64-encoded photo bytes"),
		),
		mcp.WithString("content_type",
			mcp.Required(),
			mcp.Description("Declared content type: image/jpeg, image/png, or image/webp"),
		),
		mcp.WithString("mode",
			mcp.Description("Vision mode: dog, cat, or default"),
		),
	)

	s.AddTool(tool, generateHandler(gen))

	if err := server.ServeStdio(s); err != nil {
		log.Fatal(err)
	}
}

func generateHandler(gen goggles.Generator) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		b64, err := req.RequireString("image_base64")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		contentType, err := req.RequireString("content_type")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		mode := goggles.ParseMode(req.GetString("mode", ""))

		data, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			return mcp.NewToolResultError("image_base64 is not valid base64: " + err.Error()), nil
		}

		result, err := gen.GenerateDirect(ctx, contentType, data, mode)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(result.URL), nil
	}
}
