package model

// Color is the side a player moves for
type Color uint8

const (
	ColorNone  Color = 0
	ColorDark  Color = Color(Dark)
	ColorLight Color = Color(Light)
)

// ParseColor converts the wire value (1 or 2) into a Color
func ParseColor(v int) (Color, error) {
	switch v {
	case int(ColorDark), int(ColorLight):
		return Color(v), nil
	default:
		return ColorNone, ErrInvalidColor
	}
}

// Valid reports whether c is Dark or Light
func (c Color) Valid() bool {
	return c == ColorDark || c == ColorLight
}

// Opponent returns the other side. ColorNone maps to itself.
func (c Color) Opponent() Color {
	switch c {
	case ColorDark:
		return ColorLight
	case ColorLight:
		return ColorDark
	default:
		return ColorNone
	}
}

// Cell returns the disc this colour places
func (c Color) Cell() Cell {
	return Cell(c)
}

func (c Color) String() string {
	switch c {
	case ColorDark:
		return "dark"
	case ColorLight:
		return "light"
	default:
		return "none"
	}
}
