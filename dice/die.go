// Package dice implements a single die with a fixed number of sides.
//
// A Die is created once with its side count and may be rolled any number of
// times. Each roll draws uniformly from [1, Sides] and is remembered as the
// die's face-up value.
//
// A Die is not safe for concurrent use. The package-wide source dice fall
// back to is synchronized, so distinct dice may roll from separate goroutines.
package dice

import "strconv"

const (
	// MinSides is the smallest side count a die accepts.
	MinSides = 1
	// MaxSides is the largest side count a die accepts.
	MaxSides = 20
	// DefaultSides is the side count used by NewDefault.
	DefaultSides = 6
)

// Die is a die with a fixed number of sides.
type Die struct {
	sides  int
	face   int
	rolled bool
	source Source
}

type options struct {
	autoRoll bool
	source   Source
}

// Option configures a Die at construction.
type Option func(*options)

// WithAutoRoll rolls the die once during construction.
func WithAutoRoll() Option {
	return func(o *options) {
		o.autoRoll = true
	}
}

// WithSource sets the random source the die rolls from. A nil source keeps
// the package-wide default.
func WithSource(source Source) Option {
	return func(o *options) {
		if source != nil {
			o.source = source
		}
	}
}

// New creates a die with the given number of sides.
//
// sides must be between MinSides and MaxSides inclusive, otherwise an error
// matching ErrInvalidSideCount is returned.
//
// Example:
//
//	d, err := dice.New(20, dice.WithAutoRoll())
//	if err != nil {
//	    return err
//	}
//	face, _ := d.FaceValue()
func New(sides int, opts ...Option) (*Die, error) {
	if sides < MinSides || sides > MaxSides {
		return nil, invalidSideCount(sides)
	}

	o := options{source: defaultSource}
	for _, opt := range opts {
		opt(&o)
	}

	d := &Die{
		sides:  sides,
		source: o.source,
	}
	if o.autoRoll {
		d.Roll()
	}
	return d, nil
}

// NewDefault creates a die with DefaultSides sides.
func NewDefault(opts ...Option) (*Die, error) {
	return New(DefaultSides, opts...)
}

// Sides returns the number of sides.
func (d *Die) Sides() int {
	return d.sides
}

// FaceValue returns the result of the latest roll. ok is false until the die
// has been rolled.
func (d *Die) FaceValue() (value int, ok bool) {
	return d.face, d.rolled
}

// Roll rolls the die, records the result as its face value and returns it.
func (d *Die) Roll() int {
	d.face = d.source.Intn(d.sides) + 1
	d.rolled = true
	return d.face
}

// String returns the die in dice notation, e.g. "d6".
func (d *Die) String() string {
	return "d" + strconv.Itoa(d.sides)
}
