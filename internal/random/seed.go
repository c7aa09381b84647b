// Package random provides cryptographic seed generation helpers.
//
// It uses crypto/rand to generate high-entropy seeds suitable for
// initializing pseudo-random number generators.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"time"

	apperrors "github.com/louisbranch/dieroller/internal/platform/errors"
)

// entropy is the reader seeds are drawn from. Tests swap it out.
var entropy io.Reader = crand.Reader

// now is the clock used for fallback seeds.
var now = time.Now

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(entropy, b[:]); err != nil {
		return 0, apperrors.Wrap(apperrors.CodeSeedUnavailable, "read random seed: "+err.Error(), err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// SeedOrClock returns a crypto seed, or the current time in nanoseconds when
// the entropy source fails.
func SeedOrClock() int64 {
	seed, err := NewSeed()
	if err != nil {
		return now().UnixNano()
	}
	return seed
}
