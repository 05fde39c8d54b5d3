package circuitbreaker

import (
	"errors"
	"sync"
	"time"

	"github.com/piresc/carpool/internal/pkg/logger"
)

// State of a breaker
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrOpen is returned without calling the guarded function while the breaker is open
var ErrOpen = errors.New("circuit breaker is open")

// Config holds breaker thresholds
type Config struct {
	Name             string
	FailureThreshold uint32        // consecutive failures that open the breaker
	OpenFor          time.Duration // how long to reject before probing again
}

// DefaultConfig returns the thresholds used for event publishing
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		FailureThreshold: 5,
		OpenFor:          30 * time.Second,
	}
}

// Breaker counts consecutive failures and rejects calls for a while once the threshold is hit.
// In half-open state a single probe is let through; its outcome closes or reopens the breaker.
type Breaker struct {
	config Config
	logger *logger.ZapLogger
	now    func() time.Time

	mu       sync.Mutex
	state    State
	failures uint32
	probing  bool
	openedAt time.Time
}

// New creates a closed breaker
func New(config Config, l *logger.ZapLogger) *Breaker {
	if l == nil {
		l = logger.NewNopLogger()
	}
	if config.FailureThreshold == 0 {
		config.FailureThreshold = 1
	}
	return &Breaker{config: config, logger: l, now: time.Now}
}

// Do runs fn unless the breaker is open
func (b *Breaker) Do(fn func() error) error {
	if !b.allow() {
		return ErrOpen
	}
	err := fn()
	b.record(err)
	return err
}

// State returns the current state
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateOpen:
		if b.now().Sub(b.openedAt) < b.config.OpenFor {
			return false
		}
		b.setState(StateHalfOpen)
		b.probing = true
		return true
	case StateHalfOpen:
		if b.probing {
			return false
		}
		b.probing = true
	}
	return true
}

func (b *Breaker) record(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err == nil {
		b.failures = 0
		b.probing = false
		b.setState(StateClosed)
		return
	}

	b.failures++
	b.probing = false
	if b.state == StateHalfOpen || b.failures >= b.config.FailureThreshold {
		b.openedAt = b.now()
		b.setState(StateOpen)
	}
}

func (b *Breaker) setState(state State) {
	if b.state == state {
		return
	}
	prev := b.state
	b.state = state

	b.logger.Info("Circuit breaker state changed",
		logger.String("name", b.config.Name),
		logger.String("from", prev.String()),
		logger.String("to", state.String()),
		logger.Int("consecutive_failures", int(b.failures)))
}
