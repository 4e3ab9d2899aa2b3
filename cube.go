package cubeguess

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CubeState maps each face to its color.
// Index with a Face:
//
//	state[Front] == White
//
// A valid state uses every color once and keeps each complementary pair on
// opposite faces.
type CubeState [NumFaces]Color

// Reference returns the standard arrangement every orientation is derived from:
// White in front, Green on top, Red on the right.
func Reference() CubeState {
	var s CubeState
	s[Front] = White
	s[Back] = Yellow
	s[Left] = Orange
	s[Right] = Red
	s[Up] = Green
	s[Down] = Blue
	return s
}

// Color returns the color on face f, or NoColor if f is not a face.
func (s CubeState) Color(f Face) Color {
	if !f.Valid() {
		return NoColor
	}
	return s[f]
}

// FaceOf returns the face showing color c, or NoFace.
func (s CubeState) FaceOf(c Color) Face {
	for _, f := range AllFaces {
		if s[f] == c {
			return f
		}
	}
	return NoFace
}

// Validate checks that every color appears once and that opposite faces
// carry complementary colors.
func (s CubeState) Validate() error {
	var seen [NumColors]bool
	for _, f := range AllFaces {
		c := s[f]
		if !c.Valid() {
			return fmt.Errorf("%w: %s has color %d", ErrInvalidState, f, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: %s appears twice", ErrInvalidState, c)
		}
		seen[c] = true
	}
	for _, axis := range Axes {
		a, b := s[axis[0]], s[axis[1]]
		if a.Opposite() != b {
			return fmt.Errorf("%w: %s/%s are not complementary (%s, %s)",
				ErrInvalidState, axis[0], axis[1], a, b)
		}
	}
	return nil
}

// IsRotation reports whether the state is reachable by rotating the
// reference cube. Mirror images of a valid coloring fail this check.
func (s CubeState) IsRotation() bool {
	for _, o := range orientations {
		if o == s {
			return true
		}
	}
	return false
}

// rotateY turns the whole cube about the vertical axis so the right face
// comes to the front.
func (s CubeState) rotateY() CubeState {
	r := s
	r[Front] = s[Right]
	r[Right] = s[Back]
	r[Back] = s[Left]
	r[Left] = s[Front]
	return r
}

// rotateX turns the whole cube about the left-right axis so the down face
// comes to the front.
func (s CubeState) rotateX() CubeState {
	r := s
	r[Front] = s[Down]
	r[Down] = s[Back]
	r[Back] = s[Up]
	r[Up] = s[Front]
	return r
}

// MarshalJSON encodes the state as {"front":"white",...}.
func (s CubeState) MarshalJSON() ([]byte, error) {
	m := make(map[Face]Color, NumFaces)
	for _, f := range AllFaces {
		m[f] = s[f]
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes the object form produced by MarshalJSON.
func (s *CubeState) UnmarshalJSON(data []byte) error {
	var m map[Face]Color
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	var out CubeState
	for _, f := range AllFaces {
		c, ok := m[f]
		if !ok {
			return fmt.Errorf("%w: missing %s", ErrInvalidState, f)
		}
		out[f] = c
	}
	*s = out
	return nil
}

// String returns an unfolded net of the cube using color initials.
func (s CubeState) String() string {
	initial := func(f Face) string {
		return strings.ToUpper(s[f].String()[:1])
	}

	var b strings.Builder
	b.WriteString("  " + initial(Up) + "\n")
	for _, f := range []Face{Left, Front, Right, Back} {
		b.WriteString(initial(f) + " ")
	}
	b.WriteString("\n")
	b.WriteString("  " + initial(Down) + "\n")
	return b.String()
}
