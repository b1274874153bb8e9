// Package form drives the batch settings form: local validation, a single
// in-flight submission, and the success or error banner that follows.
package form

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/batch-dashboard/internal/client/api"
	"github.com/heartmarshall/batch-dashboard/internal/client/batch"
	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

// SuccessMessage is shown after a batch is accepted.
const SuccessMessage = "Batch started successfully"

// DefaultSuccessDisplay is how long the success banner stays up.
const DefaultSuccessDisplay = 5 * time.Second

// ErrSubmitInFlight is returned by Submit while a submission is pending.
var ErrSubmitInFlight = errors.New("form: submission already in flight")

//go:generate moq -out starter_mock_test.go -pkg form . starter

type starter interface {
	StartBatch(ctx context.Context, settings domain.BatchSettings) (*batch.StartResult, error)
}

type stopper interface {
	Stop() bool
}

// Controller owns the form state. It is safe for concurrent use.
type Controller struct {
	starter starter
	display time.Duration
	log     *slog.Logger

	afterFunc func(time.Duration, func()) stopper

	mu    sync.Mutex
	state State
	gen   uint64
	timer stopper
	subs  []func(State)
}

// Option configures a Controller.
type Option func(*Controller)

// WithSuccessDisplay sets how long the success banner stays up.
func WithSuccessDisplay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.display = d
		}
	}
}

// NewController creates an idle controller.
func NewController(s starter, logger *slog.Logger, opts ...Option) *Controller {
	c := &Controller{
		starter: s,
		display: DefaultSuccessDisplay,
		log:     logger.With("component", "form"),
		state:   Idle{},
		afterFunc: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn to receive every new state. fn runs with the
// controller locked and must not call back into it.
func (c *Controller) Subscribe(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// Submit validates in and, if it is valid, starts a batch. It blocks until
// the server answers and returns the resulting state. While a submission is
// pending further calls fail with ErrSubmitInFlight and change nothing.
func (c *Controller) Submit(ctx context.Context, in Input) (State, error) {
	c.mu.Lock()
	if _, busy := c.state.(Submitting); busy {
		c.mu.Unlock()
		return nil, ErrSubmitInFlight
	}

	settings, fieldErrs := ParseInput(in)
	if fieldErrs != nil {
		st := c.setLocked(Idle{FieldErrors: fieldErrs})
		c.mu.Unlock()
		return st, nil
	}

	c.setLocked(Submitting{})
	c.mu.Unlock()

	result, err := c.starter.StartBatch(ctx, settings)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.log.DebugContext(ctx, "batch start failed", slog.String("error", err.Error()))
		return c.setLocked(ErrorDisplayed{Message: err.Error(), FieldErrors: fieldErrorsOf(err)}), nil
	}

	st := c.setLocked(SuccessDisplayed{Message: SuccessMessage, Result: result})
	gen := c.gen
	c.timer = c.afterFunc(c.display, func() { c.clear(gen) })
	return st, nil
}

// Dismiss returns a displayed banner to Idle.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state.(type) {
	case SuccessDisplayed, ErrorDisplayed:
		c.setLocked(Idle{})
	}
}

// Close stops a pending auto-clear.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimerLocked()
	c.gen++
}

// clear ends the success display started in generation gen. A newer
// transition has bumped the generation and wins.
func (c *Controller) clear(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return
	}
	c.timer = nil
	c.setLocked(Idle{})
}

func (c *Controller) setLocked(st State) State {
	c.stopTimerLocked()
	c.gen++
	c.state = st
	for _, fn := range c.subs {
		fn(st)
	}
	return st
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func fieldErrorsOf(err error) FieldErrors {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || len(apiErr.Fields) == 0 {
		return nil
	}
	out := FieldErrors{}
	for _, fe := range apiErr.Fields {
		if fe.Field == "" {
			continue
		}
		if _, ok := out[fe.Field]; !ok {
			out[fe.Field] = fe.Message
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
