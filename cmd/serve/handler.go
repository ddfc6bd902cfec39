package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/petgoggles/goggles"
)

// maxUploadBytes caps how much of a request body is read into memory.
const maxUploadBytes = 20 << 20 // 20 MiB

// ImageHandler serves the image intake and generation endpoints. It holds the
// shared stateless generator and the per-request provider deadline.
type ImageHandler struct {
	gen     goggles.Generator
	timeout time.Duration
}

// NewImageHandler creates a handler around the shared generator.
func NewImageHandler(gen goggles.Generator, timeout time.Duration) *ImageHandler {
	return &ImageHandler{gen: gen, timeout: timeout}
}

// Register attaches the handler's routes to the mux.
func (h *ImageHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /images/upload", h.Upload)
	mux.HandleFunc("POST /images/generate/{id}", h.Generate)
	mux.HandleFunc("POST /images/process", h.Process)
	mux.HandleFunc("GET /health", h.Health)
}

// Health returns a fixed liveness payload.
func (h *ImageHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Upload validates and persists an uploaded photo, returning its identifier
// and stored filename.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	data, contentType, err := readUpload(r)
	if err != nil {
		slog.Warn("upload rejected", "error", err)
		writeError(w, err)
		return
	}

	img, err := h.gen.Upload(r.Context(), contentType, data)
	if err != nil {
		logRejectOrFailure("upload failed", err)
		writeError(w, err)
		return
	}

	slog.Info("image uploaded", "id", img.ID, "filename", img.Filename())
	writeJSON(w, http.StatusOK, map[string]string{
		"id":       img.ID,
		"filename": img.Filename(),
	})
}

// Generate runs the two-step flow against a previously uploaded image.
func (h *ImageHandler) Generate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	mode := goggles.ParseMode(r.URL.Query().Get("mode"))

	ctx, cancel := h.requestContext(r)
	defer cancel()

	start := time.Now()
	result, err := h.gen.GenerateStored(ctx, id, mode)
	if err != nil {
		logRejectOrFailure("generation failed", err, "id", id, "mode", string(mode))
		writeError(w, err)
		return
	}

	slog.Info("generation completed", "id", id, "mode", string(mode), "duration", time.Since(start))
	writeJSON(w, http.StatusOK, map[string]string{"url": result.URL})
}

// Process runs the single-step flow: multipart file plus mode field, no
// persistence.
func (h *ImageHandler) Process(w http.ResponseWriter, r *http.Request) {
	data, contentType, err := readUpload(r)
	if err != nil {
		slog.Warn("process rejected", "error", err)
		writeError(w, err)
		return
	}
	mode := goggles.ParseMode(processMode(r))

	ctx, cancel := h.requestContext(r)
	defer cancel()

	start := time.Now()
	result, err := h.gen.GenerateDirect(ctx, contentType, data, mode)
	if err != nil {
		logRejectOrFailure("processing failed", err, "mode", string(mode))
		writeError(w, err)
		return
	}

	slog.Info("processing completed", "mode", string(mode), "duration", time.Since(start))
	writeJSON(w, http.StatusOK, map[string]string{"url": result.URL})
}

// requestContext bounds the provider round-trip: once issued the call runs to
// completion or deadline, there is no mid-flight abort beyond this.
func (h *ImageHandler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.timeout)
}

// readUpload extracts the image bytes and their declared content type from
// either a multipart form (field "file", using the part's declared type) or
// a raw body with a Content-Type header. The filename is never consulted.
func readUpload(r *http.Request) ([]byte, string, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, "", goggles.NewInvalidMediaTypeError(r.Header.Get("Content-Type"))
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, "", goggles.NewInvalidMediaTypeError(mediaType)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", goggles.NewInvalidMediaTypeError(mediaType)
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			return nil, "", goggles.NewStorageWriteError("could not read upload", err)
		}
		return data, header.Header.Get("Content-Type"), nil
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		return nil, "", goggles.NewStorageWriteError("could not read upload", err)
	}
	return data, mediaType, nil
}

// processMode reads the requested mode from the multipart form field, falling
// back to the query string.
func processMode(r *http.Request) string {
	if v := r.FormValue("mode"); v != "" {
		return v
	}
	return r.URL.Query().Get("mode")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError maps classified pipeline errors to their status codes;
// everything else is an internal error.
func writeError(w http.ResponseWriter, err error) {
	status := goggles.StatusCodeOf(err)
	if status == 0 {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, map[string]string{"detail": err.Error()})
}

func logRejectOrFailure(msg string, err error, args ...any) {
	args = append(args, "error", err)
	if goggles.StatusCodeOf(err) == http.StatusInternalServerError || goggles.StatusCodeOf(err) == 0 {
		slog.Error(msg, args...)
		return
	}
	slog.Warn(msg, args...)
}
