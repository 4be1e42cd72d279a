package gocube

import (
	"io"
	"log/slog"
	"math/rand/v2"
)

// DefaultScrambleLength is the number of moves Scramble applies when
// asked for a negative count.
const DefaultScrambleLength = 20

// Option configures Engine behavior.
type Option func(*config)

type config struct {
	rng            *rand.Rand
	logger         *slog.Logger
	scrambleLength int
}

func defaultConfig() *config {
	return &config{
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		scrambleLength: DefaultScrambleLength,
	}
}

// WithRand sets the random source used by Scramble.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed makes Scramble deterministic.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithLogger sets the logger. Moves and solver stages are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithScrambleLength sets the default scramble length.
func WithScrambleLength(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.scrambleLength = n
		}
	}
}
