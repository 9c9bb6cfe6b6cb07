package debugui

// history is a fixed-size ring of samples, laid out contiguously so it can be
// handed to ImGui's plot widgets.
type history struct {
	values []float32
	index  int
	filled int
}

func newHistory(size int) *history {
	return &history{values: make([]float32, max(size, 1))}
}

func (h *history) push(v float32) {
	h.values[h.index] = v
	h.index = (h.index + 1) % len(h.values)
	h.filled = min(h.filled+1, len(h.values))
}

func (h *history) average() float32 {
	if h.filled == 0 {
		return 0
	}
	var total float32
	for _, v := range h.values {
		total += v
	}
	return total / float32(h.filled)
}
