package httpserver

import (
	"sync"

	"github.com/SeamusWaldron/cubeguess"
)

// viewRecorder is the Presenter behind each HTTP session. It keeps only what
// a player may see, so hidden colors never reach the client until revealed.
type viewRecorder struct {
	mu       sync.Mutex
	faces    map[cubeguess.Face]cubeguess.Color
	hidden   []cubeguess.Face
	asked    cubeguess.Face
	choices  []cubeguess.Color
	feedback *feedbackView
	current  int
	best     int
}

type feedbackView struct {
	Correct      bool            `json:"correct"`
	CorrectColor cubeguess.Color `json:"correctColor"`
}

func newViewRecorder() *viewRecorder {
	return &viewRecorder{
		faces: make(map[cubeguess.Face]cubeguess.Color),
		asked: cubeguess.NoFace,
	}
}

func (v *viewRecorder) Render(state cubeguess.CubeState, hidden []cubeguess.Face) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.faces = make(map[cubeguess.Face]cubeguess.Color, len(cubeguess.AllFaces))
	for _, f := range cubeguess.VisibleFaces {
		v.faces[f] = state.Color(f)
	}
	v.hidden = append([]cubeguess.Face(nil), hidden...)
}

func (v *viewRecorder) RevealFace(face cubeguess.Face, color cubeguess.Color) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.faces[face] = color
}

func (v *viewRecorder) PresentQuestion(face cubeguess.Face, choices []cubeguess.Color) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.asked = face
	v.choices = append([]cubeguess.Color(nil), choices...)
}

func (v *viewRecorder) PresentFeedback(correct bool, correctColor cubeguess.Color) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.feedback = &feedbackView{Correct: correct, CorrectColor: correctColor}
}

func (v *viewRecorder) HideFeedback() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.feedback = nil
}

func (v *viewRecorder) PresentScore(current, best int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.current = current
	v.best = best
}

// sessionView is the JSON body returned for a session.
type sessionView struct {
	ID       string                             `json:"id"`
	Phase    cubeguess.Phase                    `json:"phase"`
	Strategy string                             `json:"strategy"`
	Faces    map[cubeguess.Face]cubeguess.Color `json:"faces"`
	Hidden   []cubeguess.Face                   `json:"hidden"`
	Asked    string                             `json:"asked,omitempty"`
	Choices  []cubeguess.Color                  `json:"choices"`
	Feedback *feedbackView                      `json:"feedback,omitempty"`
	Score    scoreView                          `json:"score"`
}

type scoreView struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

// phaseLocked derives the phase from what was presented, so it always
// matches the faces and feedback in the same snapshot.
func (v *viewRecorder) phaseLocked() cubeguess.Phase {
	switch {
	case !v.asked.Valid():
		return cubeguess.PhaseIdle
	case v.feedback != nil:
		return cubeguess.PhaseFeedback
	default:
		return cubeguess.PhaseQuestion
	}
}

func (v *viewRecorder) snapshot(s *cubeguess.Session) sessionView {
	v.mu.Lock()
	defer v.mu.Unlock()

	faces := make(map[cubeguess.Face]cubeguess.Color, len(v.faces))
	for f, c := range v.faces {
		faces[f] = c
	}
	out := sessionView{
		ID:       s.ID(),
		Phase:    v.phaseLocked(),
		Strategy: s.Strategy().String(),
		Faces:    faces,
		Hidden:   append([]cubeguess.Face(nil), v.hidden...),
		Choices:  append([]cubeguess.Color(nil), v.choices...),
		Score:    scoreView{Current: v.current, Best: v.best},
	}
	if v.asked.Valid() {
		out.Asked = v.asked.String()
	}
	if v.feedback != nil {
		fb := *v.feedback
		out.Feedback = &fb
	}
	return out
}
