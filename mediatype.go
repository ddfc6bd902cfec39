package goggles

// extensionByType maps accepted declared content types to their canonical
// storage extensions. Filenames supplied by callers are never consulted, so
// the extension written at upload time is always one the resolver probes for.
var extensionByType = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// typeByExtension is the reverse mapping, used when a stored image is read
// back and handed to a provider.
var typeByExtension = map[string]string{
	"jpg":  "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
}

// probeOrder is the fixed order in which identifier resolution checks
// canonical extensions.
var probeOrder = []string{"jpg", "png", "webp"}

// ExtensionFor returns the canonical storage extension for a declared content
// type. Anything outside the accepted set fails with an invalid-media-type
// error.
func ExtensionFor(contentType string) (string, error) {
	ext, ok := extensionByType[contentType]
	if !ok {
		return "", NewInvalidMediaTypeError(contentType)
	}
	return ext, nil
}

// ContentTypeFor returns the content type implied by a canonical extension,
// or an empty string for unknown extensions.
func ContentTypeFor(ext string) string {
	return typeByExtension[ext]
}

// Extensions returns the canonical extensions in resolution probe order:
// jpg, png, webp.
func Extensions() []string {
	out := make([]string, len(probeOrder))
	copy(out, probeOrder)
	return out
}
