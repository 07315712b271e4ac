package session

// Intensity is the user-facing category of a session's XP.
type Intensity string

const (
	IntensityVeryIntense Intensity = "very_intense"
	IntensityHeavy       Intensity = "heavy"
	IntensityNormal      Intensity = "normal"
	IntensityLight       Intensity = "light"
)

// Classify maps a session XP award onto an intensity category.
func Classify(xp int) Intensity {
	switch {
	case xp >= 100:
		return IntensityVeryIntense
	case xp >= 70:
		return IntensityHeavy
	case xp >= 45:
		return IntensityNormal
	default:
		return IntensityLight
	}
}

// Message returns the display text for the category.
func (i Intensity) Message() string {
	switch i {
	case IntensityVeryIntense:
		return "Very intense session"
	case IntensityHeavy:
		return "Heavy session"
	case IntensityNormal:
		return "Normal session"
	default:
		return "Light / recovery session"
	}
}
