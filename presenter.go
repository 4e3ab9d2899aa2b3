package cubeguess

// Presenter shows the game to the player. The session calls it while holding
// its lock, so implementations must not call back into the session.
type Presenter interface {
	// Render paints a new cube. Hidden faces are drawn as unknown.
	Render(state CubeState, hidden []Face)

	// RevealFace paints a single face with color.
	RevealFace(face Face, color Color)

	// PresentQuestion asks for the color of face, offering choices.
	PresentQuestion(face Face, choices []Color)

	// PresentFeedback shows the outcome of an answer.
	PresentFeedback(correct bool, correctColor Color)

	// HideFeedback clears the outcome when a new round starts.
	HideFeedback()

	// PresentScore shows the streak counters.
	PresentScore(current, best int)
}

// NopPresenter discards every call.
type NopPresenter struct{}

func (NopPresenter) Render(CubeState, []Face) {}
func (NopPresenter) RevealFace(Face, Color) {}
func (NopPresenter) PresentQuestion(Face, []Color) {}
func (NopPresenter) PresentFeedback(bool, Color) {}
func (NopPresenter) HideFeedback() {}
func (NopPresenter) PresentScore(int, int) {}
