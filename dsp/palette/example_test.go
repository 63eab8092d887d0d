package palette_test

import (
	"fmt"

	"github.com/cwbudde/algo-tonal/dsp/palette"
)

func ExampleBlend() {
	c := palette.Blend(palette.Black.RGB(), palette.White.RGB(), 0.5)
	fmt.Printf("%.1f %.1f %.1f\n", c.R, c.G, c.B)

	// Output:
	// 127.5 127.5 127.5
}
