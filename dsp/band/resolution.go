package band

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidResolution is returned for values outside the Resolution
// enumeration. It is never mapped to zero bands.
var ErrInvalidResolution = errors.New("band: invalid resolution level")

// Resolution sets how finely the spectrum is partitioned.
type Resolution int

// Resolution levels, coarsest first.
const (
	Semitone Resolution = iota // 12 bands per octave, 144 total
	Subtone                    // 5 bands per semitone, 720 total
	Substep                    // 10 bands per semitone, 1440 total
	Cent                       // 100 bands per semitone, 14400 total
)

var subdivisions = [...]int{
	Semitone: 144,
	Subtone:  720,
	Substep:  1440,
	Cent:     14400,
}

var resolutionNames = [...]string{
	Semitone: "semitone",
	Subtone:  "subtone",
	Substep:  "substep",
	Cent:     "cent",
}

// Resolutions returns all levels, coarsest first.
func Resolutions() []Resolution {
	return []Resolution{Semitone, Subtone, Substep, Cent}
}

// Valid reports whether r is a defined level.
func (r Resolution) Valid() bool {
	return r >= Semitone && r <= Cent
}

// Subdivisions returns the number of bands across the full spectrum.
func (r Resolution) Subdivisions() (int, error) {
	if !r.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidResolution, int(r))
	}
	return subdivisions[r], nil
}

// Subdivisions returns the number of bands for level.
func Subdivisions(level Resolution) (int, error) {
	return level.Subdivisions()
}

// Next returns the next finer level, wrapping from Cent to Semitone.
func (r Resolution) Next() Resolution {
	if !r.Valid() {
		return Semitone
	}
	return (r + 1) % (Cent + 1)
}

func (r Resolution) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Resolution(%d)", int(r))
	}
	return resolutionNames[r]
}

// ParseResolution resolves a level name, case-insensitively.
func ParseResolution(s string) (Resolution, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range resolutionNames {
		if n == name {
			return Resolution(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidResolution, s)
}

// MarshalText implements encoding.TextMarshaler.
func (r Resolution) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidResolution, int(r))
	}
	return []byte(resolutionNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Resolution) UnmarshalText(text []byte) error {
	parsed, err := ParseResolution(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
