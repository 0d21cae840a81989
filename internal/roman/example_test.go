package roman_test

import (
	"errors"
	"fmt"

	"github.com/jpl-au/roman/internal/roman"
)

func ExampleToInt() {
	n, err := roman.ToInt("mcmxcviii", roman.EngineState)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(n)
	// Output: 1998
}

func ExampleFromInt() {
	s, _ := roman.FromInt(3888)
	fmt.Println(s)

	_, err := roman.FromInt(4000)
	fmt.Println(errors.Is(err, roman.ErrOutOfRange))
	// Output:
	// MMMDCCCLXXXVIII
	// true
}
