// Package fibonacci computes Fibonacci numbers three ways: a plain loop,
// fast doubling, and a memoized recursion with an instance-owned table.
package fibonacci

import (
	"errors"
	"fmt"
)

// MaxN is the largest index whose value fits in a uint64.
const MaxN = 93

var (
	// ErrNegative is returned for a negative index.
	ErrNegative = errors.New("n must be >= 0")
	// ErrOverflow is returned when F(n) does not fit in a uint64.
	ErrOverflow = fmt.Errorf("n must be <= %d", MaxN)
)

func check(n int) error {
	if n < 0 {
		return fmt.Errorf("%w, got %d", ErrNegative, n)
	}
	if n > MaxN {
		return fmt.Errorf("%w, got %d", ErrOverflow, n)
	}
	return nil
}

// Iterative returns F(n) using a linear loop.
func Iterative(n int) (uint64, error) {
	if err := check(n); err != nil {
		return 0, err
	}
	if n < 2 {
		return uint64(n), nil
	}
	var a, b uint64 = 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b, nil
}

// Fast returns F(n) using the fast doubling identities
// F(2k) = F(k)(2F(k+1) - F(k)) and F(2k+1) = F(k)^2 + F(k+1)^2.
func Fast(n int) (uint64, error) {
	if err := check(n); err != nil {
		return 0, err
	}
	f, _ := pair(uint(n))
	return f, nil
}

// pair returns F(n) and F(n+1). Arithmetic wraps modulo 2^64, so F(n)
// is exact whenever it fits.
func pair(n uint) (uint64, uint64) {
	if n == 0 {
		return 0, 1
	}
	a, b := pair(n >> 1)
	c := a * (2*b - a)
	d := a*a + b*b
	if n&1 == 0 {
		return c, d
	}
	return d, c + d
}

// Sequence returns F(0) through F(n) inclusive.
func Sequence(n int) ([]uint64, error) {
	if err := check(n); err != nil {
		return nil, err
	}
	seq := make([]uint64, 0, n+1)
	var a, b uint64 = 0, 1
	for i := 0; i <= n; i++ {
		seq = append(seq, a)
		a, b = b, a+b
	}
	return seq, nil
}

// Memo caches previously computed values. The zero value is ready to use.
// A Memo is not safe for concurrent use.
type Memo struct {
	table map[int]uint64
}

// NewMemo returns an empty memo.
func NewMemo() *Memo {
	return &Memo{table: make(map[int]uint64)}
}

// Get returns F(n), filling the memo as needed.
func (m *Memo) Get(n int) (uint64, error) {
	if err := check(n); err != nil {
		return 0, err
	}
	if m.table == nil {
		m.table = make(map[int]uint64)
	}
	return m.get(n), nil
}

// Len returns the number of cached values.
func (m *Memo) Len() int {
	return len(m.table)
}

func (m *Memo) get(n int) uint64 {
	if n < 2 {
		return uint64(n)
	}
	if v, ok := m.table[n]; ok {
		return v
	}
	v := m.get(n-1) + m.get(n-2)
	m.table[n] = v
	return v
}
