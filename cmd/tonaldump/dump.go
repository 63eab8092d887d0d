package main

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-tonal/viz/scene"
)

type options struct {
	ticks int
	delta float64
	bands bool
}

// rowWriter emits one record per call.
type rowWriter interface {
	Write(record []string) error
	Flush() error
}

type tableWriter struct {
	tw *tabwriter.Writer
}

func (t tableWriter) Write(record []string) error {
	_, err := io.WriteString(t.tw, strings.Join(record, "\t")+"\n")
	return err
}

func (t tableWriter) Flush() error { return t.tw.Flush() }

type csvWriter struct {
	w *csv.Writer
}

func (c csvWriter) Write(record []string) error { return c.w.Write(record) }

func (c csvWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}

func newRowWriter(w io.Writer, table bool) rowWriter {
	if table {
		return tableWriter{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
	}
	return csvWriter{w: csv.NewWriter(w)}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// dump runs the engine and writes three sections: the emitted samples, a
// statistics summary and, optionally, the band levels.
func dump(out rowWriter, e *scene.Engine, opts options) error {
	if err := out.Write([]string{"tick", "advance", "x", "y", "radius"}); err != nil {
		return err
	}
	for i := range opts.ticks {
		if !e.Tick(opts.delta) {
			continue
		}
		s := e.Current()
		row := []string{
			strconv.Itoa(i),
			strconv.FormatUint(e.Advances(), 10),
			formatFloat(s.X),
			formatFloat(s.Y),
			formatFloat(s.Radius()),
		}
		if err := out.Write(row); err != nil {
			return err
		}
	}

	st := e.EmittedStats()
	summary := [][]string{
		{"stat", "value"},
		{"samples", strconv.Itoa(st.Length)},
		{"peak_radius", formatFloat(st.PeakRadius)},
		{"mean_radius", formatFloat(st.MeanRadius)},
		{"rms_y", formatFloat(st.Y.RMS)},
		{"dc_y", formatFloat(st.Y.DC)},
		{"crest_y", formatFloat(st.Y.CrestFactor)},
		{"zero_crossings_y", strconv.Itoa(st.Y.ZeroCrossings)},
	}
	for _, row := range summary {
		if err := out.Write(row); err != nil {
			return err
		}
	}

	if opts.bands {
		if err := dumpBands(out, e); err != nil {
			return err
		}
	}
	return out.Flush()
}

func dumpBands(out rowWriter, e *scene.Engine) error {
	levels, err := e.Levels()
	if err != nil {
		return err
	}
	if err := out.Write([]string{"band", "start_hz", "end_hz", "level"}); err != nil {
		return err
	}
	bands := e.Mapper().Bands()
	for n, level := range levels {
		if !(level > 0) {
			continue
		}
		b := bands[n]
		row := []string{strconv.Itoa(n), formatFloat(b.Start), formatFloat(b.End), formatFloat(level)}
		if err := out.Write(row); err != nil {
			return err
		}
	}
	return nil
}
