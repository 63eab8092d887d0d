package frame_test

import (
	"fmt"

	"github.com/cwbudde/algo-tonal/viz/frame"
)

func ExampleFrame_StripOffset() {
	f := frame.Frame{X: 0, Y: 0, Width: 640, Height: 200}
	for _, idx := range []int{0, 32, 64} {
		p := f.StripOffset(idx, 64, 1, 1)
		fmt.Printf("(%.0f, %.0f)\n", p.X, p.Y)
	}

	// Output:
	// (0, 150)
	// (320, 150)
	// (640, 150)
}
