package random

import (
	"errors"
	"sync"
)

// ErrExhausted is returned by Sequence once every value has been drawn.
var ErrExhausted = errors.New("random: sequence exhausted")

// Fixed always returns its own value, whatever the bound.
type Fixed int

// NextUniform implements Provider.
func (f Fixed) NextUniform(bound int) (int, error) {
	return int(f), nil
}

// Sequence returns the given values in order and then fails with ErrExhausted.
type Sequence struct {
	values []int
	next   int
	mutex  sync.Mutex
}

// NewSequence creates a Sequence over values.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// NextUniform implements Provider.
func (s *Sequence) NextUniform(bound int) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.next >= len(s.values) {
		return 0, ErrExhausted
	}
	v := s.values[s.next]
	s.next++
	return v, nil
}

// Draws reports how many values have been handed out.
func (s *Sequence) Draws() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.next
}

// Failing always fails with Err.
type Failing struct {
	Err error
}

// NextUniform implements Provider.
func (f Failing) NextUniform(bound int) (int, error) {
	return 0, f.Err
}
