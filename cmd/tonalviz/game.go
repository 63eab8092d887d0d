package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/cwbudde/algo-tonal/dsp/palette"
	"github.com/cwbudde/algo-tonal/viz/scene"
)

// game adapts a scene.Engine to ebiten's update/draw loop.
type game struct {
	engine        *scene.Engine
	width, height int
	catchUp       int
	last          time.Time
	paused        bool

	prims []scene.Primitive
	hud   string
}

func newGame(engine *scene.Engine, catchUp int) *game {
	cfg := engine.Config()
	return &game{
		engine:  engine,
		width:   int(cfg.Width),
		height:  int(cfg.Height),
		catchUp: catchUp,
		last:    time.Now(),
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.engine.SetResolution(g.engine.Resolution().Next()); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	now := time.Now()
	delta := now.Sub(g.last).Seconds()
	g.last = now
	if !g.paused {
		// One frame spans many sample periods; drain the carried time up to
		// the catch-up limit.
		for n := 0; n < g.catchUp; n++ {
			if !g.engine.Tick(delta) {
				break
			}
			delta = 0
		}
		// Whatever the limit left over is dropped rather than carried.
		g.engine.DropBacklog()
	}

	prims, err := g.engine.Primitives()
	if err != nil {
		return err
	}
	g.prims = prims
	g.hud = g.status()
	return nil
}

func (g *game) status() string {
	var b strings.Builder
	st := g.engine.Stats()
	fmt.Fprintf(&b, "resolution %v  advances %d  peak %.1f  rms %.1f\n",
		g.engine.Resolution(), g.engine.Advances(), st.PeakRadius, st.Y.RMS)
	if g.paused {
		b.WriteString("paused\n")
	}
	for _, l := range g.engine.Legend() {
		fmt.Fprintf(&b, "%8.2f Hz  amp %.1f  %v\n", l.Frequency, l.Amplitude, l.Color)
	}
	return b.String()
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(palette.Black.RGB().NRGBA())
	for _, p := range g.prims {
		c := p.Color.NRGBA()
		switch p.Kind {
		case scene.KindLine:
			vector.StrokeLine(screen,
				float32(p.From.X), float32(p.From.Y), float32(p.To.X), float32(p.To.Y),
				1, c, false)
		case scene.KindPoint:
			vector.DrawFilledCircle(screen, float32(p.From.X), float32(p.From.Y), float32(p.Radius), c, true)
		case scene.KindRectangle:
			vector.DrawFilledRect(screen,
				float32(p.From.X), float32(p.From.Y),
				float32(p.To.X-p.From.X), float32(p.To.Y-p.From.Y),
				c, false)
		}
	}
	ebitenutil.DebugPrintAt(screen, g.hud, 16, 16)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
