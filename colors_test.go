package cubeguess

import (
	"errors"
	"testing"
)

func TestOppositeIsInvolution(t *testing.T) {
	for _, c := range Palette {
		if c.Opposite() == c {
			t.Errorf("%s should not be its own opposite", c)
		}
		if c.Opposite().Opposite() != c {
			t.Errorf("Opposite of opposite of %s should be %s", c, c)
		}
	}
}

func TestComplementaryPairsMatchOpposite(t *testing.T) {
	for _, p := range ComplementaryPairs {
		if p[0].Opposite() != p[1] {
			t.Errorf("%s and %s should be opposite", p[0], p[1])
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"white", White},
		{"Yellow", Yellow},
		{" red ", Red},
		{"o", Orange},
		{"B", Blue},
		{"green", Green},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseColor("gray"); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("Expected ErrUnknownColor for gray, got %v", err)
	}
}

func TestColorDisplayValues(t *testing.T) {
	if White.CSS() != "#ffffff" {
		t.Errorf("Unexpected white CSS %s", White.CSS())
	}
	if Orange.CSS() != "#ff9800" {
		t.Errorf("Unexpected orange CSS %s", Orange.CSS())
	}
	if Color(42).Hex() != HiddenHex {
		t.Error("Unknown colors should display as hidden gray")
	}
	if Orange.Title() != "Orange" {
		t.Errorf("Unexpected title %s", Orange.Title())
	}
}

func TestFacePartition(t *testing.T) {
	for _, f := range VisibleFaces {
		if f.IsHidden() {
			t.Errorf("%s should be visible", f)
		}
	}
	for _, f := range HiddenFaces {
		if !f.IsHidden() {
			t.Errorf("%s should be hidden", f)
		}
	}
	if len(VisibleFaces)+len(HiddenFaces) != NumFaces {
		t.Error("Visible and hidden faces should cover the cube")
	}
}

func TestParseFace(t *testing.T) {
	f, err := ParseFace("Left")
	if err != nil || f != Left {
		t.Errorf("ParseFace(Left) = %s, %v", f, err)
	}
	if _, err := ParseFace("top"); !errors.Is(err, ErrUnknownFace) {
		t.Errorf("Expected ErrUnknownFace, got %v", err)
	}
	for _, f := range AllFaces {
		if f.Opposite().Opposite() != f {
			t.Errorf("Opposite of opposite of %s should be %s", f, f)
		}
	}
}
