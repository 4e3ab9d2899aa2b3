package cubeguess

import (
	"testing"
)

func TestGenerateIsValid(t *testing.T) {
	for _, strategy := range []Strategy{StrategyRotation, StrategyAxisShuffle} {
		g := NewGenerator(WithSeed(7), WithStrategy(strategy))
		for i := 0; i < 500; i++ {
			s := g.Generate()
			if err := s.Validate(); err != nil {
				t.Fatalf("%s: generated invalid state: %v\n%s", strategy, err, s)
			}
		}
	}
}

func TestRotationStrategyCoversAllOrientations(t *testing.T) {
	g := NewGenerator(WithSeed(1))
	seen := make(map[CubeState]bool)
	for i := 0; i < 2000; i++ {
		s := g.Generate()
		if !s.IsRotation() {
			t.Fatalf("Rotation strategy produced a non-rotation:\n%s", s)
		}
		seen[s] = true
	}
	if len(seen) != NumOrientations {
		t.Errorf("Expected all %d orientations, saw %d", NumOrientations, len(seen))
	}
}

func TestAxisShuffleProducesMirrorImages(t *testing.T) {
	g := NewGenerator(WithSeed(1), WithStrategy(StrategyAxisShuffle))
	seen := make(map[CubeState]bool)
	mirrors := 0
	for i := 0; i < 2000; i++ {
		s := g.Generate()
		if !seen[s] && !s.IsRotation() {
			mirrors++
		}
		seen[s] = true
	}
	if len(seen) != 2*NumOrientations {
		t.Errorf("Expected %d colorings, saw %d", 2*NumOrientations, len(seen))
	}
	if mirrors != NumOrientations {
		t.Errorf("Expected %d mirror colorings, saw %d", NumOrientations, mirrors)
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a := NewGenerator(WithSeed(99))
	b := NewGenerator(WithSeed(99))
	for i := 0; i < 50; i++ {
		ra, rb := a.StartRound(NoFace), b.StartRound(NoFace)
		if ra.State() != rb.State() || ra.Asked() != rb.Asked() {
			t.Fatalf("Round %d differs between generators with the same seed", i)
		}
	}
}

func TestStartRoundAvoidsPreviousFace(t *testing.T) {
	g := NewGenerator(WithSeed(3))
	previous := NoFace
	for i := 0; i < 1000; i++ {
		r := g.StartRound(previous)
		if r.Asked() == previous {
			t.Fatalf("Round %d repeated asked face %s", i, previous)
		}
		if !r.Asked().IsHidden() {
			t.Fatalf("Asked face %s is not hidden", r.Asked())
		}
		previous = r.Asked()
	}
}

func TestStartRoundFirstRoundUsesAllHiddenFaces(t *testing.T) {
	g := NewGenerator(WithSeed(5))
	seen := make(map[Face]int)
	for i := 0; i < 400; i++ {
		seen[g.StartRound(NoFace).Asked()]++
	}
	for _, f := range HiddenFaces {
		if seen[f] == 0 {
			t.Errorf("Face %s was never asked", f)
		}
	}
	if len(seen) != len(HiddenFaces) {
		t.Errorf("Expected only hidden faces to be asked, got %v", seen)
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
	}{
		{"", StrategyRotation},
		{"rotation", StrategyRotation},
		{"axis-shuffle", StrategyAxisShuffle},
		{"Shuffle", StrategyAxisShuffle},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseStrategy(%q) = %s, %v; want %s", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseStrategy("random"); err == nil {
		t.Error("Expected error for unknown strategy")
	}
}
