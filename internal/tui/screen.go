package tui

import (
	"github.com/SeamusWaldron/cubeguess"
	"github.com/SeamusWaldron/cubeguess/internal/render"
)

type feedback struct {
	correct bool
	color   cubeguess.Color
}

// screen is the Presenter for the terminal. The session writes to it from
// Update and View reads it, both on the event loop.
type screen struct {
	scene    render.Scene
	question cubeguess.Face
	choices  []cubeguess.Color
	feedback *feedback
	current  int
	best     int
}

func newScreen() *screen {
	return &screen{question: cubeguess.NoFace}
}

func (s *screen) Render(state cubeguess.CubeState, hidden []cubeguess.Face) {
	s.scene = render.NewScene(state, hidden)
}

func (s *screen) RevealFace(face cubeguess.Face, color cubeguess.Color) {
	s.scene.Reveal(face, color)
}

func (s *screen) PresentQuestion(face cubeguess.Face, choices []cubeguess.Color) {
	s.question = face
	s.choices = choices
	s.scene.Asked = face
}

func (s *screen) PresentFeedback(correct bool, correctColor cubeguess.Color) {
	s.feedback = &feedback{correct: correct, color: correctColor}
}

func (s *screen) HideFeedback() {
	s.feedback = nil
}

func (s *screen) PresentScore(current, best int) {
	s.current = current
	s.best = best
}

// choice returns the color offered at 1-based position n.
func (s *screen) choice(n int) (cubeguess.Color, bool) {
	if n < 1 || n > len(s.choices) {
		return 0, false
	}
	return s.choices[n-1], true
}

// offered reports whether c is one of the current choices.
func (s *screen) offered(c cubeguess.Color) bool {
	for _, o := range s.choices {
		if o == c {
			return true
		}
	}
	return false
}
