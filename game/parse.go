package game

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	errNotInteger = errors.New("not a finite integer")
	errOverflow   = errors.New("integer does not fit")
)

// parseInteger reads raw the way a numeric input field would: "42", "+42",
// "42.0" and "4.2e1" are the integer 42; "4.5", "NaN" and "Inf" are not
// integers at all.
func parseInteger(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errNotInteger
	}

	n, err := strconv.Atoi(s)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, errOverflow
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, errNotInteger
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		// ParseFloat also reports overflow as ±Inf; "1e999" is an integer
		// literal that simply cannot be represented.
		if err != nil {
			return 0, errOverflow
		}
		return 0, errNotInteger
	}
	if f != math.Trunc(f) {
		return 0, errNotInteger
	}
	if f < float64(math.MinInt) || f >= float64(math.MaxInt) {
		return 0, errOverflow
	}
	return int(f), nil
}

// ParseBound converts host input into a bound, failing with KindInvalidBound.
func ParseBound(raw string) (int, error) {
	n, err := parseInteger(raw)
	if err != nil {
		return 0, newError(KindInvalidBound, fmt.Sprintf("bound %q is not a positive integer", strings.TrimSpace(raw)), nil)
	}
	if err := validateBound(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ParseGuess converts host input into a guess, failing with KindInvalidGuess.
// An integer too large to represent is reported as KindOutOfRange.
func ParseGuess(raw string) (int, error) {
	n, err := parseInteger(raw)
	switch {
	case errors.Is(err, errOverflow):
		return 0, newError(KindOutOfRange, fmt.Sprintf("guess %s is out of range", strings.TrimSpace(raw)), nil)
	case err != nil:
		return 0, newError(KindInvalidGuess, fmt.Sprintf("guess %q is not an integer", strings.TrimSpace(raw)), nil)
	}
	return n, nil
}

func validateBound(bound int) error {
	if bound < 1 {
		return newError(KindInvalidBound, fmt.Sprintf("bound must be at least 1, got %d", bound), nil)
	}
	return nil
}
