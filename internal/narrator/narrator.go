package narrator

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// fallbackLine is spoken when the narrator gives up after retries. The
// player never sees an error.
const fallbackLine = "The dungeon master shuffles some notes and clears his throat. \"Where were we?\""

// errMusing is the simulated transient failure: the narrator lost his
// train of thought and needs another try.
var errMusing = errors.New("narrator: lost train of thought")

// Response is one narration result.
type Response struct {
	Category Category
	Text     string
}

// Narrator produces canned dungeon-master responses. It stands where a
// real model client would: calls take a context, can fail transiently,
// and are retried with exponential backoff. Failures that survive the
// retries degrade to a stock line instead of reaching the player.
type Narrator struct {
	registry    *Registry
	mu          sync.Mutex
	rng         *rand.Rand
	failureRate float64
	maxTries    uint
	interval    time.Duration
}

// NarratorOption configures a Narrator.
type NarratorOption func(*Narrator)

// WithSeed makes line selection and simulated failures reproducible.
func WithSeed(seed int64) NarratorOption {
	return func(n *Narrator) {
		n.rng = rand.New(rand.NewSource(seed))
	}
}

// WithFailureRate sets the probability in [0, 1] that a single
// narration attempt fails transiently. Default 0.05.
func WithFailureRate(rate float64) NarratorOption {
	return func(n *Narrator) {
		if rate >= 0 && rate <= 1 {
			n.failureRate = rate
		}
	}
}

// WithMaxTries bounds attempts per narration, including the first.
// Default 3.
func WithMaxTries(tries uint) NarratorOption {
	return func(n *Narrator) {
		if tries >= 1 {
			n.maxTries = tries
		}
	}
}

// WithRetryInterval sets the initial backoff interval between attempts.
// Default 10ms; tests shrink it further.
func WithRetryInterval(d time.Duration) NarratorOption {
	return func(n *Narrator) {
		if d > 0 {
			n.interval = d
		}
	}
}

// New creates a narrator over the given registry.
func New(registry *Registry, opts ...NarratorOption) *Narrator {
	n := &Narrator{
		registry:    registry,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		failureRate: 0.05,
		maxTries:    3,
		interval:    10 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Narrate classifies the input and answers with a line from the
// matching pool. It never returns an error: exhausted retries and
// cancelled contexts both fall back to a stock line.
func (n *Narrator) Narrate(ctx context.Context, input string) Response {
	cat := Classify(input)

	operation := func() (string, error) {
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.failureRate > 0 && n.rng.Float64() < n.failureRate {
			return "", errMusing
		}
		return n.registry.Pick(n.rng, cat), nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = n.interval
	bo.MaxInterval = 20 * n.interval

	text, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(n.maxTries),
	)
	if err != nil || text == "" {
		text = fallbackLine
	}

	return Response{Category: cat, Text: text}
}
