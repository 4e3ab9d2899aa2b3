package cubeguess

// Score tracks the current and best streak of correct answers.
// The zero value is ready to use.
type Score struct {
	current int
	best    int
}

// RecordAnswer extends the streak on a correct answer and breaks it
// otherwise. The best streak only moves up.
func (s *Score) RecordAnswer(correct bool) {
	if !correct {
		s.current = 0
		return
	}
	s.current++
	if s.current > s.best {
		s.best = s.current
	}
}

// Reset zeroes both counters.
func (s *Score) Reset() {
	s.current = 0
	s.best = 0
}

// Current returns the current streak.
func (s *Score) Current() int {
	return s.current
}

// Best returns the best streak since the last reset.
func (s *Score) Best() int {
	return s.best
}
