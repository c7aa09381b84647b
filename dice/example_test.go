package dice_test

import (
	"errors"
	"fmt"

	"github.com/louisbranch/dieroller/dice"
)

func ExampleNew() {
	d, err := dice.New(1, dice.WithAutoRoll())
	if err != nil {
		panic(err)
	}
	face, ok := d.FaceValue()
	fmt.Println(d, face, ok)
	// Output: d1 1 true
}

func ExampleNew_invalid() {
	_, err := dice.New(21)
	fmt.Println(errors.Is(err, dice.ErrInvalidSideCount))
	fmt.Println(err)
	// Output:
	// true
	// sides must be between 1 and 20, got 21
}
