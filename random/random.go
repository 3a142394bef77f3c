// Package random supplies the uniform integer draws used to pick secrets.
//
// Production code uses CryptoProvider, which reads from crypto/rand. Tests
// substitute one of the deterministic providers in stub.go.
package random

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// ErrInvalidBound is returned when a draw is requested for a bound below 1.
var ErrInvalidBound = errors.New("random: bound must be at least 1")

// Provider draws an integer uniformly from [1, bound].
type Provider interface {
	NextUniform(bound int) (int, error)
}

// CryptoProvider draws from a cryptographic entropy source.
type CryptoProvider struct {
	reader io.Reader
}

// NewCryptoProvider returns a provider backed by crypto/rand.Reader.
func NewCryptoProvider() *CryptoProvider {
	return &CryptoProvider{reader: crand.Reader}
}

// NewCryptoProviderFromReader uses r as the entropy source. r must be
// cryptographically strong outside of tests.
func NewCryptoProviderFromReader(r io.Reader) *CryptoProvider {
	return &CryptoProvider{reader: r}
}

// NextUniform implements Provider.
func (p *CryptoProvider) NextUniform(bound int) (int, error) {
	if bound < 1 {
		return 0, ErrInvalidBound
	}

	n, err := crand.Int(p.reader, big.NewInt(int64(bound)))
	if err != nil {
		return 0, fmt.Errorf("read random value: %w", err)
	}
	return int(n.Int64()) + 1, nil
}
