package core

// Color is a pixel value on the 1-bit panel.
type Color uint8

// The panel only knows two colors. Off is the background.
const (
	ColorOff Color = iota
	ColorOn
)

// Invert returns the opposite color.
func (c Color) Invert() Color {
	if c == ColorOn {
		return ColorOff
	}
	return ColorOn
}

// String returns "on" or "off".
func (c Color) String() string {
	if c == ColorOn {
		return "on"
	}
	return "off"
}
