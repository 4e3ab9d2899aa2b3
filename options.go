package cubeguess

import (
	"time"

	"github.com/rs/zerolog"
)

// DefaultFeedbackDelay is how long feedback stays up before the next round.
const DefaultFeedbackDelay = 600 * time.Millisecond

// Option configures Generator and Session behavior.
type Option func(*config)

type config struct {
	seeded        bool
	seed          uint64
	strategy      Strategy
	feedbackDelay time.Duration
	scheduler     Scheduler
	logger        zerolog.Logger
	id            string
}

func defaultConfig() *config {
	return &config{
		strategy:      StrategyRotation,
		feedbackDelay: DefaultFeedbackDelay,
		logger:        zerolog.Nop(),
	}
}

func buildConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.scheduler == nil {
		cfg.scheduler = TimerScheduler{}
	}
	return cfg
}

// WithSeed makes the random source deterministic.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seeded = true
		c.seed = seed
	}
}

// WithStrategy selects how cube states are generated.
// The default is StrategyRotation.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

// WithFeedbackDelay sets the pause between an answer and the next round.
// A zero delay still goes through the scheduler.
func WithFeedbackDelay(d time.Duration) Option {
	return func(c *config) {
		if d >= 0 {
			c.feedbackDelay = d
		}
	}
}

// WithScheduler replaces the timer-backed scheduler used for round
// transitions. Presentations with their own event loop supply one that
// runs continuations on that loop.
func WithScheduler(s Scheduler) Option {
	return func(c *config) {
		c.scheduler = s
	}
}

// WithLogger sets the logger for session events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(c *config) {
		c.id = id
	}
}
