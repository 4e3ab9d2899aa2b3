package cubeguess

import (
	"fmt"
	"strings"
)

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Opposite Yellow
	Yellow Color = 1 // Opposite White
	Red    Color = 2 // Opposite Orange
	Orange Color = 3 // Opposite Red
	Blue   Color = 4 // Opposite Green
	Green  Color = 5 // Opposite Blue
)

// NoColor is returned where no face or color applies.
const NoColor Color = 0xff

// NumColors is the size of the palette.
const NumColors = 6

// Palette lists every color in display order.
var Palette = [NumColors]Color{White, Yellow, Red, Orange, Blue, Green}

// ComplementaryPairs are the color pairs that always sit on opposite faces.
var ComplementaryPairs = [3][2]Color{
	{White, Yellow},
	{Red, Orange},
	{Blue, Green},
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	case Orange:
		return "orange"
	case Blue:
		return "blue"
	case Green:
		return "green"
	default:
		return "unknown"
	}
}

// Title returns the capitalized color name, e.g. "Orange".
func (c Color) Title() string {
	s := c.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Valid reports whether c is one of the six palette colors.
func (c Color) Valid() bool {
	return c < NumColors
}

// Opposite returns the color that sits on the opposite face.
func (c Color) Opposite() Color {
	switch c {
	case White:
		return Yellow
	case Yellow:
		return White
	case Red:
		return Orange
	case Orange:
		return Red
	case Blue:
		return Green
	case Green:
		return Blue
	default:
		return c
	}
}

// Hex returns the RGB display value of the color.
func (c Color) Hex() uint32 {
	switch c {
	case White:
		return 0xffffff
	case Yellow:
		return 0xffeb3b
	case Red:
		return 0xf44336
	case Orange:
		return 0xff9800
	case Blue:
		return 0x2196f3
	case Green:
		return 0x4caf50
	default:
		return HiddenHex
	}
}

// CSS returns the color as a "#rrggbb" string.
func (c Color) CSS() string {
	return fmt.Sprintf("#%06x", c.Hex())
}

// HiddenHex is the display value used for faces the player cannot see.
const HiddenHex uint32 = 0x808080

// HiddenCSS is HiddenHex as a CSS string.
const HiddenCSS = "#808080"

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, c)
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses a color name ("red") or its initial ("r"), case-insensitive.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Palette {
		name := c.String()
		if s == name || (len(s) == 1 && s[0] == name[0]) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}
