package superpose_test

import (
	"fmt"

	"github.com/cwbudde/algo-tonal/dsp/signal"
	"github.com/cwbudde/algo-tonal/dsp/superpose"
)

func ExampleCombine() {
	a, _ := signal.Generate(432, 100, 64, 44100)
	b, _ := signal.Generate(864, 50, 64, 44100)

	sum, err := superpose.Combine(a, b)
	if err != nil {
		panic(err)
	}
	fmt.Println(sum.Len(), sum.At(0))

	_, err = superpose.Combine(a, signal.NewBuffer(32))
	fmt.Println(err != nil)

	// Output:
	// 64 {150 0}
	// true
}
