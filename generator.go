package cubeguess

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Strategy selects how a Generator produces cube states.
type Strategy int

const (
	// StrategyRotation picks one of the 24 rotations of the reference cube
	// uniformly.
	StrategyRotation Strategy = iota

	// StrategyAxisShuffle assigns the complementary pairs to random axes
	// with random polarity. It covers 48 colorings; half of them are mirror
	// images that no rotation of a real cube produces.
	StrategyAxisShuffle
)

func (s Strategy) String() string {
	switch s {
	case StrategyRotation:
		return "rotation"
	case StrategyAxisShuffle:
		return "axis-shuffle"
	default:
		return "unknown"
	}
}

// ParseStrategy parses "rotation" or "axis-shuffle".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rotation":
		return StrategyRotation, nil
	case "axis-shuffle", "axis_shuffle", "shuffle":
		return StrategyAxisShuffle, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", s)
	}
}

// Generator produces random cube states and rounds.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng      *rand.Rand
	strategy Strategy
}

// NewGenerator creates a generator. Only WithSeed and WithStrategy apply.
func NewGenerator(opts ...Option) *Generator {
	return newGenerator(buildConfig(opts))
}

func newGenerator(cfg *config) *Generator {
	var src *rand.PCG
	if cfg.seeded {
		src = rand.NewPCG(cfg.seed, cfg.seed^0x9e3779b97f4a7c15)
	} else {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{
		rng:      rand.New(src),
		strategy: cfg.strategy,
	}
}

// Strategy returns the generation strategy in use.
func (g *Generator) Strategy() Strategy {
	return g.strategy
}

// Generate returns a new random cube state.
func (g *Generator) Generate() CubeState {
	if g.strategy == StrategyAxisShuffle {
		return g.axisShuffle()
	}
	return orientations[g.rng.IntN(len(orientations))]
}

func (g *Generator) axisShuffle() CubeState {
	pairs := ComplementaryPairs
	g.rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})

	var s CubeState
	for i, axis := range Axes {
		a, b := pairs[i][0], pairs[i][1]
		if g.rng.IntN(2) == 1 {
			a, b = b, a
		}
		s[axis[0]] = a
		s[axis[1]] = b
	}
	return s
}

// StartRound generates a cube and picks the asked face from the hidden
// faces, avoiding previous when another candidate exists. Pass NoFace for
// the first round.
func (g *Generator) StartRound(previous Face) *Round {
	state := g.Generate()

	candidates := make([]Face, 0, len(HiddenFaces))
	for _, f := range HiddenFaces {
		if f != previous {
			candidates = append(candidates, f)
		}
	}
	if len(candidates) == 0 {
		candidates = HiddenFaces[:]
	}

	return NewRound(state, candidates[g.rng.IntN(len(candidates))])
}
