package cubeguess

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Phase is the state of a game session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseQuestion
	PhaseFeedback
	PhaseClosed
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseQuestion:
		return "question"
	case PhaseFeedback:
		return "feedback"
	case PhaseClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Feedback is the outcome of one answer.
type Feedback struct {
	Face         Face  `json:"face"`
	Guess        Color `json:"guess"`
	Correct      bool  `json:"correct"`
	CorrectColor Color `json:"correctColor"`
}

// Session is one player's game: the current round, the streak and the
// pending transition to the next round. Safe for concurrent use.
type Session struct {
	id        string
	gen       *Generator
	presenter Presenter
	scheduler Scheduler
	delay     time.Duration
	log       zerolog.Logger

	mu         sync.Mutex
	phase      Phase
	round      *Round
	previous   Face
	score      Score
	feedback   *Feedback
	pending    Continuation
	generation uint64
}

// NewSession creates an idle session. Call Start to begin the first round.
func NewSession(p Presenter, opts ...Option) *Session {
	cfg := buildConfig(opts)
	if p == nil {
		p = NopPresenter{}
	}
	id := cfg.id
	if id == "" {
		id = uuid.New().String()
	}
	return &Session{
		id:        id,
		gen:       newGenerator(cfg),
		presenter: p,
		scheduler: cfg.scheduler,
		delay:     cfg.feedbackDelay,
		log:       cfg.logger.With().Str("session", id).Logger(),
		phase:     PhaseIdle,
		previous:  NoFace,
	}
}

// ID returns the session ID.
func (s *Session) ID() string {
	return s.id
}

// Strategy returns the cube generation strategy.
func (s *Session) Strategy() Strategy {
	return s.gen.Strategy()
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Score returns the current and best streak.
func (s *Session) Score() (current, best int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score.Current(), s.score.Best()
}

// Asked returns the face asked this round, or NoFace before Start.
func (s *Session) Asked() Face {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.round == nil {
		return NoFace
	}
	return s.round.Asked()
}

// Round returns a copy of the current round, or nil before Start.
func (s *Session) Round() *Round {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.round == nil {
		return nil
	}
	return s.round.Clone()
}

// CubeState returns the true colors of the current cube.
func (s *Session) CubeState() (CubeState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.round == nil {
		return CubeState{}, false
	}
	return s.round.State(), true
}

// AvailableColors returns the answer choices of the current round.
func (s *Session) AvailableColors() []Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.round == nil {
		return nil
	}
	return s.round.AvailableColors()
}

// LastFeedback returns the outcome of the latest answer in this round.
func (s *Session) LastFeedback() (Feedback, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.feedback == nil {
		return Feedback{}, false
	}
	return *s.feedback, true
}

// Start shows the score and begins the first round. Calling Start on a
// session that already started does nothing.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseClosed:
		return ErrSessionClosed
	case PhaseIdle:
		s.presenter.PresentScore(s.score.Current(), s.score.Best())
		s.startRoundLocked()
	}
	return nil
}

// Answer submits color for the asked face. Input is refused while feedback
// from the previous answer is showing.
func (s *Session) Answer(color Color) (Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseClosed {
		return Feedback{}, ErrSessionClosed
	}
	if !color.Valid() {
		return Feedback{}, ErrUnknownColor
	}
	if s.phase == PhaseIdle {
		return Feedback{}, ErrNotStarted
	}
	if s.phase != PhaseQuestion {
		return Feedback{}, ErrAwaitingNextRound
	}

	face := s.round.Asked()
	s.round.SubmitGuess(face, color)
	correct := s.round.IsCorrect(face)
	correctColor := s.round.CorrectColor(face)

	s.score.RecordAnswer(correct)
	s.presenter.PresentScore(s.score.Current(), s.score.Best())

	s.presenter.RevealFace(face, color)
	s.presenter.PresentFeedback(correct, correctColor)
	if !correct {
		s.presenter.RevealFace(face, correctColor)
	}

	fb := Feedback{Face: face, Guess: color, Correct: correct, CorrectColor: correctColor}
	s.feedback = &fb
	s.phase = PhaseFeedback

	s.log.Debug().
		Stringer("face", face).
		Stringer("guess", color).
		Bool("correct", correct).
		Int("streak", s.score.Current()).
		Int("best", s.score.Best()).
		Msg("answer")

	generation := s.generation
	s.pending = s.scheduler.AfterFunc(s.delay, func() {
		s.advance(generation)
	})

	return fb, nil
}

// Next cancels any pending transition and starts the next round now. On a
// session that has not started it behaves like Start.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseClosed:
		return ErrSessionClosed
	case PhaseIdle:
		s.presenter.PresentScore(s.score.Current(), s.score.Best())
	}
	s.startRoundLocked()
	return nil
}

// Reset zeroes the streaks and starts a fresh round.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseClosed {
		return ErrSessionClosed
	}
	s.score.Reset()
	s.presenter.PresentScore(0, 0)
	s.log.Debug().Msg("reset")
	s.startRoundLocked()
	return nil
}

// Close cancels any pending transition. Later calls return ErrSessionClosed.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelPendingLocked()
	s.phase = PhaseClosed
	return nil
}

// advance runs from the scheduler. A transition that was cancelled or
// superseded by Next or Reset finds a newer generation and does nothing.
func (s *Session) advance(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != generation || s.phase != PhaseFeedback {
		return
	}
	s.pending = nil
	s.startRoundLocked()
}

func (s *Session) startRoundLocked() {
	s.cancelPendingLocked()
	s.generation++

	s.round = s.gen.StartRound(s.previous)
	s.previous = s.round.Asked()
	s.feedback = nil
	s.phase = PhaseQuestion

	s.presenter.Render(s.round.State(), s.round.Hidden())
	s.presenter.PresentQuestion(s.round.Asked(), s.round.AvailableColors())
	s.presenter.HideFeedback()

	s.log.Debug().
		Uint64("round", s.generation).
		Stringer("asked", s.round.Asked()).
		Msg("round started")
}

func (s *Session) cancelPendingLocked() {
	if s.pending != nil {
		s.pending.Cancel()
		s.pending = nil
	}
}
