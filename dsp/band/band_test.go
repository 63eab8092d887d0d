package band

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-tonal/dsp/core"
	"github.com/cwbudde/algo-tonal/dsp/palette"
)

func TestRangeEndpoints(t *testing.T) {
	for _, level := range Resolutions() {
		t.Run(level.String(), func(t *testing.T) {
			count, err := level.Subdivisions()
			if err != nil {
				t.Fatal(err)
			}
			start, _ := Range(0, count, DefaultMinFrequency, DefaultMaxFrequency)
			if start != DefaultMinFrequency {
				t.Fatalf("band 0 start = %v, want %v", start, DefaultMinFrequency)
			}
			_, end := Range(count-1, count, DefaultMinFrequency, DefaultMaxFrequency)
			if math.Abs(end-DefaultMaxFrequency) > 1e-9 {
				t.Fatalf("band %d end = %v, want %v", count-1, end, DefaultMaxFrequency)
			}
		})
	}
}

func TestRangeLinear(t *testing.T) {
	start, end := Range(3, 10, 100, 200)
	if start != 130 || end != 140 {
		t.Fatalf("Range(3, 10, 100, 200) = (%v, %v), want (130, 140)", start, end)
	}
}

func TestPartitionContiguous(t *testing.T) {
	bands, err := Partition(144, DefaultMinFrequency, DefaultMaxFrequency)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].Start != bands[i-1].End {
			t.Fatalf("gap between band %d and %d: %v != %v", i-1, i, bands[i-1].End, bands[i].Start)
		}
		if bands[i].Index != i {
			t.Fatalf("bands[%d].Index = %d", i, bands[i].Index)
		}
	}
}

func TestPartitionValidation(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		min, max float64
	}{
		{"zero count", 0, 10, 100},
		{"reversed span", 12, 100, 10},
		{"empty span", 12, 100, 100},
		{"negative min", 12, -5, 100},
		{"infinite max", 12, 10, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Partition(tt.count, tt.min, tt.max); !errors.Is(err, core.ErrConfiguration) {
				t.Fatalf("Partition() error = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestColorBlend(t *testing.T) {
	tests := []struct {
		n            int
		octave, note palette.Name
	}{
		{0, palette.Octave1, palette.Octave1},
		{13, palette.Octave2, palette.Octave2},
		{27, palette.Octave3, palette.Octave4},
		{11, palette.Octave1, palette.Black},
		{143, palette.Black, palette.Black},
		{200, palette.Black, palette.Octave9},
	}
	for _, tt := range tests {
		want := palette.Blend(tt.octave.RGB(), tt.note.RGB(), PitchClassMix)
		if got := Color(tt.n); got != want {
			t.Fatalf("Color(%d) = %v, want %v", tt.n, got, want)
		}
	}
}

func TestOctavePitchClass(t *testing.T) {
	if Octave(27) != 2 || PitchClass(27) != 3 {
		t.Fatalf("Octave/PitchClass(27) = %d/%d, want 2/3", Octave(27), PitchClass(27))
	}
}

func TestFind(t *testing.T) {
	bands, err := Partition(10, 0, 100)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		freq  float64
		want  int
		found bool
	}{
		{0, 0, true},
		{9.999, 0, true},
		{10, 1, true},
		{55, 5, true},
		{99.99, 9, true},
		{100, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		got, ok := Find(tt.freq, bands)
		if ok != tt.found || (ok && got != tt.want) {
			t.Fatalf("Find(%v) = (%d, %v), want (%d, %v)", tt.freq, got, ok, tt.want, tt.found)
		}
	}
}

func TestMapperLocateAgreesWithFind(t *testing.T) {
	for _, level := range Resolutions() {
		m, err := NewMapper(level, DefaultMinFrequency, DefaultMaxFrequency)
		if err != nil {
			t.Fatalf("NewMapper(%v) error = %v", level, err)
		}
		bands := m.Bands()
		freqs := []float64{DefaultMinFrequency, 8.5, 27.5, 432, 440, 4186, 20000, 32000, bands[len(bands)/2].Start}
		for _, f := range freqs {
			wantIdx, wantOK := Find(f, bands)
			gotIdx, gotOK := m.Locate(f)
			if gotIdx != wantIdx || gotOK != wantOK {
				t.Fatalf("%v: Locate(%v) = (%d, %v), Find = (%d, %v)", level, f, gotIdx, gotOK, wantIdx, wantOK)
			}
		}
		if _, ok := m.Locate(DefaultMaxFrequency + 1); ok {
			t.Fatalf("%v: Locate above span reported a band", level)
		}
		if _, ok := m.Locate(math.NaN()); ok {
			t.Fatalf("%v: Locate(NaN) reported a band", level)
		}
	}
}

func TestMapperInvalidResolution(t *testing.T) {
	if _, err := NewMapper(Resolution(9), 10, 100); !errors.Is(err, ErrInvalidResolution) {
		t.Fatalf("NewMapper() error = %v, want ErrInvalidResolution", err)
	}
}

func TestMapperLevels(t *testing.T) {
	m, err := NewMapper(Semitone, 0, 1440)
	if err != nil {
		t.Fatal(err)
	}
	levels := m.Levels(nil,
		Tone{Frequency: 432, Amplitude: 100},
		Tone{Frequency: 435, Amplitude: 20},
		Tone{Frequency: 50, Amplitude: 1},
		Tone{Frequency: 5000, Amplitude: 7},
	)
	if len(levels) != 144 {
		t.Fatalf("len = %d, want 144", len(levels))
	}
	if levels[43] != 120 {
		t.Fatalf("levels[43] = %v, want 120", levels[43])
	}
	if levels[5] != 1 {
		t.Fatalf("levels[5] = %v, want 1", levels[5])
	}
	total := 0.0
	for _, v := range levels {
		total += v
	}
	if total != 121 {
		t.Fatalf("total level = %v, want 121", total)
	}

	reused := m.Levels(levels)
	if &reused[0] != &levels[0] {
		t.Fatal("Levels() did not reuse dst")
	}
	if reused[43] != 0 {
		t.Fatal("Levels() did not clear dst")
	}
}
