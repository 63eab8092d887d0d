package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/algo-tonal/dsp/palette"
	"github.com/cwbudde/algo-tonal/viz/raster"
	"github.com/cwbudde/algo-tonal/viz/scene"
)

func writeSnapshot(path string, e *scene.Engine) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := snapshot(f, e); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// snapshot renders the current frame with a legend and encodes it as PNG.
func snapshot(w io.Writer, e *scene.Engine) error {
	prims, err := e.Primitives()
	if err != nil {
		return err
	}
	cfg := e.Config()
	c, err := raster.NewCanvas(int(cfg.Width), int(cfg.Height), palette.Black.RGB())
	if err != nil {
		return err
	}
	c.Draw(prims)
	c.Text(legend(e), 16, 28, palette.White.RGB())
	return raster.EncodePNG(w, c.Image())
}

func legend(e *scene.Engine) string {
	var b strings.Builder
	fmt.Fprintf(&b, "resolution %v  advances %d\n", e.Resolution(), e.Advances())
	for _, l := range e.Legend() {
		fmt.Fprintf(&b, "%8.2f Hz  amp %.1f  %v\n", l.Frequency, l.Amplitude, l.Color)
	}
	return b.String()
}
