package calculator

import (
	"fmt"
	"time"
)

// Clock returns the current time. Evaluators built without one record
// entries with no timestamp.
type Clock func() time.Time

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithClock stamps every history entry with the time returned by clock.
func WithClock(clock Clock) Option {
	return func(e *Evaluator) {
		e.clock = clock
	}
}

// Evaluator performs arithmetic and keeps an append-only history.
// It is not safe for concurrent use; callers serialize access.
type Evaluator struct {
	history []Entry
	clock   Clock
}

// New creates an evaluator with an empty history.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Add returns a + b.
func (e *Evaluator) Add(a, b float64) float64 {
	return e.record(Add, a, b, a+b)
}

// Subtract returns a - b.
func (e *Evaluator) Subtract(a, b float64) float64 {
	return e.record(Subtract, a, b, a-b)
}

// Multiply returns a * b.
func (e *Evaluator) Multiply(a, b float64) float64 {
	return e.record(Multiply, a, b, a*b)
}

// Divide returns a / b. A zero divisor yields ErrDivisionByZero and
// leaves the history untouched.
func (e *Evaluator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return e.record(Divide, a, b, a/b), nil
}

// Apply dispatches to the operation named by op.
func (e *Evaluator) Apply(op Operator, a, b float64) (float64, error) {
	switch op {
	case Add:
		return e.Add(a, b), nil
	case Subtract:
		return e.Subtract(a, b), nil
	case Multiply:
		return e.Multiply(a, b), nil
	case Divide:
		return e.Divide(a, b)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownOperator, int(op))
	}
}

// History returns a copy of the recorded entries in call order.
func (e *Evaluator) History() []Entry {
	out := make([]Entry, len(e.history))
	copy(out, e.history)
	return out
}

// Len returns the number of recorded entries.
func (e *Evaluator) Len() int {
	return len(e.history)
}

// Last returns the most recent entry, if any.
func (e *Evaluator) Last() (Entry, bool) {
	if len(e.history) == 0 {
		return Entry{}, false
	}
	return e.history[len(e.history)-1], true
}

func (e *Evaluator) record(op Operator, a, b, result float64) float64 {
	entry := Entry{Operator: op, A: a, B: b, Result: result}
	if e.clock != nil {
		ts := e.clock()
		entry.Timestamp = &ts
	}
	e.history = append(e.history, entry)
	return result
}
