package random

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	apperrors "github.com/louisbranch/dieroller/internal/platform/errors"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("no entropy")
}

func swapEntropy(t *testing.T, r io.Reader) {
	t.Helper()
	prev := entropy
	entropy = r
	t.Cleanup(func() { entropy = prev })
}

func TestNewSeedReadsLittleEndian(t *testing.T) {
	swapEntropy(t, bytes.NewReader([]byte{1, 0, 0, 0, 0, 0, 0, 0}))

	seed, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed returned error: %v", err)
	}
	if seed != 1 {
		t.Fatalf("seed = %d, want 1", seed)
	}
}

func TestNewSeedShortRead(t *testing.T) {
	swapEntropy(t, bytes.NewReader([]byte{1, 2, 3}))

	_, err := NewSeed()
	if !errors.Is(err, apperrors.New(apperrors.CodeSeedUnavailable, "")) {
		t.Fatalf("NewSeed error = %v, want seed unavailable", err)
	}
}

func TestNewSeedUsesCryptoReader(t *testing.T) {
	first, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed returned error: %v", err)
	}
	second, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed returned error: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct seeds, got %d twice", first)
	}
}

func TestSeedOrClockFallsBackToClock(t *testing.T) {
	swapEntropy(t, failingReader{})
	prevNow := now
	now = func() time.Time { return time.Unix(0, 777) }
	t.Cleanup(func() { now = prevNow })

	if got := SeedOrClock(); got != 777 {
		t.Fatalf("SeedOrClock() = %d, want 777", got)
	}
}
