package cubeguess

// Round holds one question: the cube, the face being asked about and the
// player's guesses for the hidden faces.
type Round struct {
	state   CubeState
	asked   Face
	guesses map[Face]Color
}

// Result summarizes the guesses of a round.
type Result struct {
	Correct    []Face
	Incorrect  []Face
	AllCorrect bool
}

// NewRound creates a round over state asking about face asked. A face that
// is not hidden is replaced by NoFace.
func NewRound(state CubeState, asked Face) *Round {
	if !asked.IsHidden() {
		asked = NoFace
	}
	return &Round{
		state:   state,
		asked:   asked,
		guesses: make(map[Face]Color, len(HiddenFaces)),
	}
}

// Clone returns an independent copy of the round.
func (r *Round) Clone() *Round {
	return &Round{state: r.state, asked: r.asked, guesses: r.Guesses()}
}

// State returns the true cube colors.
func (r *Round) State() CubeState {
	return r.state
}

// Asked returns the face the player must name.
func (r *Round) Asked() Face {
	return r.asked
}

// Visible returns the faces shown to the player.
func (r *Round) Visible() []Face {
	return append([]Face(nil), VisibleFaces[:]...)
}

// Hidden returns the faces the player cannot see.
func (r *Round) Hidden() []Face {
	return append([]Face(nil), HiddenFaces[:]...)
}

// VisibleColors returns the colors on the visible faces, keyed by face.
func (r *Round) VisibleColors() map[Face]Color {
	out := make(map[Face]Color, len(VisibleFaces))
	for _, f := range VisibleFaces {
		out[f] = r.state[f]
	}
	return out
}

// SubmitGuess records color as the guess for face. Guesses for faces that
// are not hidden are ignored.
func (r *Round) SubmitGuess(face Face, color Color) {
	if !face.IsHidden() || !color.Valid() {
		return
	}
	r.guesses[face] = color
}

// Guess returns the guess for face, if any.
func (r *Round) Guess(face Face) (Color, bool) {
	c, ok := r.guesses[face]
	return c, ok
}

// Guesses returns a copy of all guesses made so far.
func (r *Round) Guesses() map[Face]Color {
	out := make(map[Face]Color, len(r.guesses))
	for f, c := range r.guesses {
		out[f] = c
	}
	return out
}

// AllGuessed reports whether every hidden face has a guess.
func (r *Round) AllGuessed() bool {
	for _, f := range HiddenFaces {
		if _, ok := r.guesses[f]; !ok {
			return false
		}
	}
	return true
}

// IsCorrect reports whether the guess for face matches its color.
// A face without a guess is never correct.
func (r *Round) IsCorrect(face Face) bool {
	c, ok := r.guesses[face]
	return ok && c == r.state.Color(face)
}

// CorrectColor returns the true color of face, or NoColor for NoFace.
func (r *Round) CorrectColor(face Face) Color {
	return r.state.Color(face)
}

// AvailableColors returns the palette minus the colors on the visible faces.
func (r *Round) AvailableColors() []Color {
	out := make([]Color, 0, NumColors-len(VisibleFaces))
	for _, c := range Palette {
		shown := false
		for _, f := range VisibleFaces {
			if r.state[f] == c {
				shown = true
				break
			}
		}
		if !shown {
			out = append(out, c)
		}
	}
	return out
}

// Validate checks every hidden face against its guess.
func (r *Round) Validate() Result {
	res := Result{AllCorrect: true}
	for _, f := range HiddenFaces {
		if r.IsCorrect(f) {
			res.Correct = append(res.Correct, f)
		} else {
			res.Incorrect = append(res.Incorrect, f)
			res.AllCorrect = false
		}
	}
	return res
}
