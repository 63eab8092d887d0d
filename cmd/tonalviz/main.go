// Command tonalviz opens a window showing superposed sine generators in
// three synchronized views: a time strip, a phase/amplitude plot and a
// frequency band histogram.
//
// Usage:
//
//	tonalviz [flags]
//
// Keys:
//
//	R       cycle the band resolution
//	Space   pause or resume playback
//	Esc     quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cwbudde/algo-tonal/viz/scene"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("tonalviz: ")

	configPath := flag.String("config", "", "JSON scene configuration overlaid on the defaults")
	catchUp := flag.Int("catchup", 0, "max samples advanced per frame (0 selects the sample count)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tonalviz [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Visualizes superposed sine generators.\n")
		fmt.Fprintf(os.Stderr, "Keys: R cycles the band resolution, Space pauses, Esc quits.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := scene.DefaultConfig()
	if *configPath != "" {
		loaded, err := scene.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	engine, err := scene.New(cfg)
	if err != nil {
		log.Fatalf("build engine: %v", err)
	}

	limit := *catchUp
	if limit <= 0 {
		limit = cfg.SampleCount
	}
	g := newGame(engine, limit)

	log.Printf("%d generators, %v Hz, %d samples, %v bands",
		len(cfg.Generators), cfg.SampleRate, cfg.SampleCount, cfg.Resolution)

	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("Waveform Visualizer")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
