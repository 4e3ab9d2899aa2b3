package cubeguess

import (
	"fmt"
	"strings"
)

// Face represents one of the six labeled positions on the cube.
type Face int8

const (
	Front Face = 0
	Back  Face = 1
	Left  Face = 2
	Right Face = 3
	Up    Face = 4
	Down  Face = 5
)

// NoFace marks the absence of a face, e.g. before the first round.
const NoFace Face = -1

// NumFaces is the number of cube faces.
const NumFaces = 6

// AllFaces lists every face in index order.
var AllFaces = [NumFaces]Face{Front, Back, Left, Right, Up, Down}

// Axes are the three opposite-face pairs.
var Axes = [3][2]Face{
	{Front, Back},
	{Left, Right},
	{Up, Down},
}

// VisibleFaces are the faces the player can see every round.
var VisibleFaces = [2]Face{Front, Up}

// HiddenFaces are the faces the player is asked about.
var HiddenFaces = [4]Face{Left, Right, Back, Down}

func (f Face) String() string {
	switch f {
	case Front:
		return "front"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "none"
	}
}

// Title returns the capitalized face name, e.g. "Left".
func (f Face) Title() string {
	s := f.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= 0 && f < NumFaces
}

// Opposite returns the face on the other end of the same axis.
func (f Face) Opposite() Face {
	switch f {
	case Front:
		return Back
	case Back:
		return Front
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	default:
		return NoFace
	}
}

// IsHidden reports whether f belongs to the hidden partition.
func (f Face) IsHidden() bool {
	for _, h := range HiddenFaces {
		if h == f {
			return true
		}
	}
	return false
}

// MarshalText implements encoding.TextMarshaler.
func (f Face) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFace, f)
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Face) UnmarshalText(text []byte) error {
	parsed, err := ParseFace(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFace parses a face name such as "left", case-insensitive.
func ParseFace(s string) (Face, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, f := range AllFaces {
		if s == f.String() {
			return f, nil
		}
	}
	return NoFace, fmt.Errorf("%w: %q", ErrUnknownFace, s)
}
