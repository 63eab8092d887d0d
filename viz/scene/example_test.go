package scene_test

import (
	"fmt"

	"github.com/cwbudde/algo-tonal/viz/scene"
)

func ExampleEngine() {
	e, err := scene.New(scene.DefaultConfig())
	if err != nil {
		panic(err)
	}
	e.Step()

	prims, err := e.Primitives()
	if err != nil {
		panic(err)
	}
	counts := map[scene.Panel]int{}
	for _, p := range prims {
		counts[p.Panel]++
	}
	for _, panel := range []scene.Panel{scene.PanelStrip, scene.PanelRadial, scene.PanelBands} {
		fmt.Println(panel, counts[panel])
	}

	// Output:
	// strip 134
	// radial 8
	// bands 16
}
