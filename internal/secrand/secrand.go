package secrand

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidRange is returned when max is smaller than min.
var ErrInvalidRange = errors.New("secrand: max must be >= min")

// Source draws uniformly distributed integers from a cryptographically
// secure byte stream. The zero-value reader is never used; construct with
// New (or NewFromReader in tests). A Source has no mutable state and is
// safe for concurrent use as long as its reader is.
type Source struct {
	r io.Reader
}

// New returns a Source backed by crypto/rand.Reader.
func New() *Source {
	return &Source{r: rand.Reader}
}

// NewFromReader returns a Source backed by r. Intended for tests that need
// a deterministic byte stream.
func NewFromReader(r io.Reader) *Source {
	return &Source{r: r}
}

// Int returns a uniformly distributed integer in [min, max] inclusive.
//
// It reads the minimum number of bytes k such that 256^k covers the range,
// combines them big-endian into an unsigned value and reduces it modulo the
// range. The reduction carries a bias bounded by range/256^k, which is
// negligible for ranges up to the 94-character password pool.
func (s *Source) Int(min, max int) (int, error) {
	if max < min {
		return 0, ErrInvalidRange
	}

	span := uint64(max-min) + 1

	k := 1
	for limit := uint64(1) << 8; k < 8 && limit < span; limit <<= 8 {
		k++
	}

	buf := make([]byte, k)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return 0, fmt.Errorf("secrand: read random bytes: %w", err)
	}

	var raw uint64
	for _, b := range buf {
		raw = raw<<8 | uint64(b)
	}

	return min + int(raw%span), nil
}
