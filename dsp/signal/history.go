package signal

// History is a fixed-capacity ring of the most recent samples.
type History struct {
	ring  []Sample
	next  int
	count int
}

// NewHistory returns an empty history holding up to capacity samples.
// A non-positive capacity yields a history that records nothing.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	return &History{ring: make([]Sample, capacity)}
}

// Push records s, overwriting the oldest sample when full.
func (h *History) Push(s Sample) {
	if len(h.ring) == 0 {
		return
	}
	h.ring[h.next] = s
	h.next = (h.next + 1) % len(h.ring)
	if h.count < len(h.ring) {
		h.count++
	}
}

// Len returns the number of recorded samples.
func (h *History) Len() int { return h.count }

// Samples returns the recorded samples from oldest to newest.
func (h *History) Samples() []Sample {
	out := make([]Sample, 0, h.count)
	start := h.next - h.count
	if start < 0 {
		start += len(h.ring)
	}
	for i := 0; i < h.count; i++ {
		out = append(out, h.ring[(start+i)%len(h.ring)])
	}
	return out
}

// Reset discards all recorded samples.
func (h *History) Reset() {
	h.next = 0
	h.count = 0
}
