package main

import (
	"bytes"
	"encoding/csv"
	"image/png"
	"strings"
	"testing"

	"github.com/cwbudde/algo-tonal/viz/scene"
)

func TestDumpCSV(t *testing.T) {
	e, err := scene.New(scene.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	opts := options{ticks: 4, delta: 1.0 / 44100, bands: true}
	if err := dump(newRowWriter(&buf, false), e, opts); err != nil {
		t.Fatalf("dump() error = %v", err)
	}

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("output is not CSV: %v", err)
	}

	// Header, four samples, stats header plus seven stats, band header plus
	// one band.
	if len(records) != 1+4+8+2 {
		t.Fatalf("got %d records, want 15", len(records))
	}
	if got := strings.Join(records[0], ","); got != "tick,advance,x,y,radius" {
		t.Fatalf("header = %q", got)
	}
	if records[4][1] != "4" || records[4][4] != "100.000000" {
		t.Fatalf("last sample row = %v", records[4])
	}
	if records[6][0] != "samples" || records[6][1] != "4" {
		t.Fatalf("samples row = %v", records[6])
	}
	if records[14][0] != "1" || records[14][3] != "100.000000" {
		t.Fatalf("band row = %v", records[14])
	}
}

func TestDumpTable(t *testing.T) {
	e, err := scene.New(scene.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := dump(newRowWriter(&buf, true), e, options{ticks: 2, delta: 1.0 / 44100}); err != nil {
		t.Fatalf("dump() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1+2+8 {
		t.Fatalf("got %d lines, want 11:\n%s", len(lines), buf.String())
	}
	if got := strings.Join(strings.Fields(lines[0]), ","); got != "tick,advance,x,y,radius" {
		t.Fatalf("header = %q", lines[0])
	}
	if strings.Contains(buf.String(), "\t") {
		t.Fatal("table output contains raw tabs")
	}
}

func TestUseTable(t *testing.T) {
	if table, err := useTable("table"); err != nil || !table {
		t.Fatalf("useTable(table) = %v, %v", table, err)
	}
	if table, err := useTable("csv"); err != nil || table {
		t.Fatalf("useTable(csv) = %v, %v", table, err)
	}
	if _, err := useTable("xml"); err == nil {
		t.Fatal("useTable(xml) succeeded")
	}
}

func TestSnapshot(t *testing.T) {
	cfg := scene.DefaultConfig()
	cfg.Width, cfg.Height = 320, 240
	e, err := scene.New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := snapshot(&buf, e); err != nil {
		t.Fatalf("snapshot() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Fatalf("bounds = %v", b)
	}
	if got := legend(e); !strings.Contains(got, "432.00 Hz") {
		t.Fatalf("legend = %q", got)
	}
}
