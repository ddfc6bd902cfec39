package goggles

// UploadedImage describes a validated upload held by the image store. It is
// never mutated after creation.
type UploadedImage struct {
	// ID is the opaque unique token assigned at intake time.
	ID string
	// ContentType is the declared type the upload was validated against.
	ContentType string
	// Extension is the canonical storage extension derived from ContentType.
	Extension string
}

// Filename is the on-disk name the image is stored under.
func (i UploadedImage) Filename() string {
	return i.ID + "." + i.Extension
}

// Result is the normalized outcome of one generation: a single resolved URL,
// even when the provider returned a sequence. Nothing is cached beyond it.
type Result struct {
	URL string
}
