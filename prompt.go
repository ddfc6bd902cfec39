package goggles

// promptPrefix frames every generation as a scene seen through the pet's
// eyes, regardless of mode.
const promptPrefix = "A POV shot from a pet's perspective. "

const (
	// Dichromatic yellow/blue palette, blur, fisheye: the visual qualities
	// associated with canine vision.
	dogClause = "Dog vision simulation: limited color palette (yellow, blue, gray tones), no red or green. " +
		"Slightly blurry peripheral vision, strong wide-angle lens distortion (fisheye), low angle view from the ground. " +
		"High contrast, dreamy atmosphere. The human looks friendly but color-shifted."

	// Desaturated night-vision look with vignette and grain for feline vision.
	catClause = "Cat vision simulation: enhanced night vision style, desaturated cool colors (blues and greens), glowing edges. " +
		"Vignette effect around the corners, very sharp focus in the center. " +
		"Slightly grainy high-ISO look, mysterious atmosphere. " +
		"The world looks brighter than reality."

	defaultClause = "Cinematic lighting, realistic texture."
)

// BuildPrompt returns the generation prompt for a mode. It is a pure
// function: the same mode always yields the same string, and unrecognized
// modes fall through to the generic cinematic clause rather than failing.
func BuildPrompt(mode Mode) string {
	switch mode {
	case ModeDog:
		return promptPrefix + dogClause
	case ModeCat:
		return promptPrefix + catClause
	default:
		return promptPrefix + defaultClause
	}
}
