package random

import (
	"errors"
	"testing"
)

type errReader struct{}

func (errReader) Read(p []byte) (int, error) { return 0, errors.New("entropy source offline") }

func TestCryptoProvider_WithinBounds(t *testing.T) {
	p := NewCryptoProvider()
	for _, bound := range []int{1, 2, 10, 100, 500} {
		for i := 0; i < 200; i++ {
			v, err := p.NextUniform(bound)
			if err != nil {
				t.Fatalf("NextUniform(%d) should not return an error, but got: %v", bound, err)
			}
			if v < 1 || v > bound {
				t.Fatalf("Expected value in [1, %d], got %d", bound, v)
			}
		}
	}
}

func TestCryptoProvider_CoversRange(t *testing.T) {
	p := NewCryptoProvider()
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v, err := p.NextUniform(4)
		if err != nil {
			t.Fatalf("NextUniform should not return an error, but got: %v", err)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Errorf("Expected all 4 values to be drawn over 1000 draws, got %v", seen)
	}
}

func TestCryptoProvider_InvalidBound(t *testing.T) {
	p := NewCryptoProvider()
	for _, bound := range []int{0, -1} {
		if _, err := p.NextUniform(bound); !errors.Is(err, ErrInvalidBound) {
			t.Errorf("Expected ErrInvalidBound for bound %d, got: %v", bound, err)
		}
	}
}

func TestCryptoProvider_ReaderFailure(t *testing.T) {
	p := NewCryptoProviderFromReader(errReader{})
	if _, err := p.NextUniform(100); err == nil {
		t.Fatal("Expected an error when the entropy source fails")
	}
}

func TestSequence(t *testing.T) {
	s := NewSequence(3, 7)

	for _, want := range []int{3, 7} {
		got, err := s.NextUniform(10)
		if err != nil {
			t.Fatalf("NextUniform should not return an error, but got: %v", err)
		}
		if got != want {
			t.Errorf("Expected %d, got %d", want, got)
		}
	}
	if _, err := s.NextUniform(10); !errors.Is(err, ErrExhausted) {
		t.Errorf("Expected ErrExhausted, got: %v", err)
	}
	if s.Draws() != 2 {
		t.Errorf("Expected 2 draws, got %d", s.Draws())
	}
}
