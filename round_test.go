package cubeguess

import (
	"testing"
)

func exampleState() CubeState {
	var s CubeState
	s[Front] = White
	s[Back] = Yellow
	s[Left] = Orange
	s[Right] = Red
	s[Up] = Green
	s[Down] = Blue
	return s
}

func TestRoundExampleScenario(t *testing.T) {
	r := NewRound(exampleState(), Left)

	r.SubmitGuess(Left, Orange)
	if !r.IsCorrect(Left) {
		t.Error("Orange should be correct for left")
	}

	r.SubmitGuess(Left, Red)
	if r.IsCorrect(Left) {
		t.Error("Red should be wrong for left")
	}
	if got := r.CorrectColor(Left); got != Orange {
		t.Errorf("Correct color should be orange, got %s", got)
	}
}

func TestRoundHiddenAndVisible(t *testing.T) {
	r := NewRound(exampleState(), Back)
	want := map[Face]bool{Left: true, Right: true, Back: true, Down: true}
	for _, f := range r.Hidden() {
		if !want[f] {
			t.Errorf("Unexpected hidden face %s", f)
		}
		delete(want, f)
	}
	if len(want) != 0 {
		t.Errorf("Missing hidden faces %v", want)
	}

	vis := r.VisibleColors()
	if len(vis) != 2 || vis[Front] != White || vis[Up] != Green {
		t.Errorf("Unexpected visible colors %v", vis)
	}
}

func TestSubmitGuessIgnoresVisibleFaces(t *testing.T) {
	r := NewRound(exampleState(), Left)
	r.SubmitGuess(Front, White)
	r.SubmitGuess(Up, Green)
	r.SubmitGuess(NoFace, Red)
	if len(r.Guesses()) != 0 {
		t.Errorf("Guesses on non-hidden faces should be ignored, got %v", r.Guesses())
	}
	if _, ok := r.Guess(Front); ok {
		t.Error("Front should have no guess")
	}
}

func TestIsCorrectWithoutGuess(t *testing.T) {
	r := NewRound(exampleState(), Down)
	if r.IsCorrect(Down) {
		t.Error("A face without a guess is never correct")
	}
}

func TestAvailableColorsExcludeVisible(t *testing.T) {
	for _, s := range Orientations() {
		r := NewRound(s, Left)
		avail := r.AvailableColors()
		if len(avail) != 4 {
			t.Fatalf("Expected 4 choices, got %v", avail)
		}
		for _, c := range avail {
			if c == s[Front] || c == s[Up] {
				t.Errorf("Choice %s is visible on the cube:\n%s", c, s)
			}
		}
	}
}

func TestAvailableColorsInPaletteOrder(t *testing.T) {
	r := NewRound(exampleState(), Left)
	want := []Color{Yellow, Red, Orange, Blue}
	got := r.AvailableColors()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
}

func TestValidateAllGuesses(t *testing.T) {
	r := NewRound(exampleState(), Left)
	r.SubmitGuess(Left, Orange)
	r.SubmitGuess(Right, Red)
	r.SubmitGuess(Back, Blue)
	if r.AllGuessed() {
		t.Error("Down has no guess yet")
	}
	r.SubmitGuess(Down, Yellow)
	if !r.AllGuessed() {
		t.Error("All hidden faces have guesses")
	}

	res := r.Validate()
	if res.AllCorrect {
		t.Error("Back and down are wrong")
	}
	if len(res.Correct) != 2 || len(res.Incorrect) != 2 {
		t.Errorf("Expected 2 correct and 2 incorrect, got %v / %v", res.Correct, res.Incorrect)
	}

	r.SubmitGuess(Back, Yellow)
	r.SubmitGuess(Down, Blue)
	if !r.Validate().AllCorrect {
		t.Error("All guesses should now be correct")
	}
}

func TestHiddenAndVisibleReturnCopies(t *testing.T) {
	r := NewRound(exampleState(), Left)

	hidden := r.Hidden()
	hidden[0] = Front
	visible := r.Visible()
	visible[0] = Back

	if HiddenFaces != [4]Face{Left, Right, Back, Down} {
		t.Errorf("HiddenFaces changed through Hidden(): %v", HiddenFaces)
	}
	if VisibleFaces != [2]Face{Front, Up} {
		t.Errorf("VisibleFaces changed through Visible(): %v", VisibleFaces)
	}
	if Front.IsHidden() {
		t.Error("Front should stay visible")
	}
}

func TestNewRoundRejectsVisibleAskedFace(t *testing.T) {
	for _, f := range []Face{Front, Up, NoFace} {
		r := NewRound(exampleState(), f)
		if r.Asked() != NoFace {
			t.Errorf("Asking about %s should give NoFace, got %s", f, r.Asked())
		}
		if got := r.CorrectColor(r.Asked()); got != NoColor {
			t.Errorf("CorrectColor(NoFace) should be NoColor, got %s", got)
		}
	}
}
