// Package cubeguess implements a cube color guessing game.
//
// A six-colored cube is shown with its front and up faces visible. The player
// names the color of one of the four hidden faces, chosen at random each
// round, and a streak counter tracks consecutive correct answers.
//
// # Features
//
//   - Uniform generation over the 24 rotations of the reference cube
//   - An axis-shuffle generator that also produces mirror-image colorings
//   - Round bookkeeping: visible/hidden faces, guesses, answer choices
//   - Streak tracking with a best streak
//   - A Session that serializes round transitions through a cancellable
//     Scheduler
//
// # Quick Start
//
// Play a session with any Presenter:
//
//	s := cubeguess.NewSession(myPresenter, cubeguess.WithSeed(42))
//	if err := s.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
//	fb, err := s.Answer(cubeguess.Orange)
//	if errors.Is(err, cubeguess.ErrAwaitingNextRound) {
//	    // feedback still showing; the next round starts after the delay
//	}
//	fmt.Println("Correct:", fb.Correct, "answer:", fb.CorrectColor)
//
// # Standalone Rounds
//
// The generator can be used without a session:
//
//	gen := cubeguess.NewGenerator()
//	r := gen.StartRound(cubeguess.NoFace)
//
//	fmt.Println("Question:", r.Asked())
//	fmt.Println("Choices:", r.AvailableColors())
//
//	r.SubmitGuess(r.Asked(), cubeguess.Red)
//	fmt.Println("Correct:", r.IsCorrect(r.Asked()))
//
// # Colors
//
// Complementary colors always sit on opposite faces:
//
//	cubeguess.White  // opposite Yellow
//	cubeguess.Red    // opposite Orange
//	cubeguess.Blue   // opposite Green
package cubeguess
