package goggles

// Mode is the requested pet-vision stylistic variant.
type Mode string

const (
	// ModeDog renders the scene through canine dichromatic vision.
	ModeDog Mode = "dog"
	// ModeCat renders the scene through feline low-light vision.
	ModeCat Mode = "cat"
	// ModeDefault renders a generic cinematic style.
	ModeDefault Mode = "default"
)

// ParseMode maps a raw mode string to a Mode. Unknown or empty values
// degrade to ModeDefault; parsing never fails.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeDog:
		return ModeDog
	case ModeCat:
		return ModeCat
	default:
		return ModeDefault
	}
}
