package goggles

import "github.com/google/uuid"

// NewImageID allocates the opaque identifier for one uploaded image: a
// version-4 random UUID. Collisions across the system's lifetime are treated
// as negligible, so no uniqueness check against existing storage is made.
func NewImageID() string {
	return uuid.NewString()
}
