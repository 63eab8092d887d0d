package superpose

import (
	"testing"

	"github.com/cwbudde/algo-tonal/dsp/signal"
)

func BenchmarkCombine(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"64", 64},
		{"1K", 1024},
		{"16K", 16384},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			bufs := make([]signal.Buffer, 4)
			for i := range bufs {
				bufs[i] = signal.NewBuffer(testCase.size)
				for k := range testCase.size {
					bufs[i].X[k] = float64(k + i)
					bufs[i].Y[k] = float64(k - i)
				}
			}
			dst := signal.NewBuffer(testCase.size)

			b.SetBytes(int64(testCase.size * 16 * len(bufs)))
			b.ResetTimer()

			for range b.N {
				_ = combineInto(dst, bufs)
			}
		})
	}
}
