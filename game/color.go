package game

// Color of a square or a player. Red makes the first move.
type Color int

const (
	None Color = iota
	Red
	Blue
)

// Opposite returns the other player's color. None has no opposite.
func (c Color) Opposite() Color {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return None
	}
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "none"
	}
}

// abbrev is the one-letter suffix used in board dumps.
func (c Color) abbrev() string {
	switch c {
	case Red:
		return "r"
	case Blue:
		return "b"
	default:
		return "-"
	}
}

// ParseColor accepts the long and one-letter forms of red and blue.
func ParseColor(s string) (Color, bool) {
	switch s {
	case "red", "r":
		return Red, true
	case "blue", "b":
		return Blue, true
	default:
		return None, false
	}
}
