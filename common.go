package main

import (
	"time"
)

// FrameTimeHistory keeps last few frame times, oldest get overwritten.
type FrameTimeHistory struct {
	Start  int
	Length int
	Data   []time.Duration
}

func NewFrameTimeHistory(size int) FrameTimeHistory {
	return FrameTimeHistory{
		Data: make([]time.Duration, max(size, 1)),
	}
}

func (h *FrameTimeHistory) IsFull() bool {
	return h.Length >= len(h.Data)
}

func (h *FrameTimeHistory) Push(d time.Duration) {
	end := (h.Start + h.Length) % len(h.Data)
	h.Data[end] = d

	if h.IsFull() {
		h.Start = (h.Start + 1) % len(h.Data)
	} else {
		h.Length++
	}
}

func (h *FrameTimeHistory) At(index int) time.Duration {
	return h.Data[(h.Start+index)%len(h.Data)]
}

func (h *FrameTimeHistory) Average() time.Duration {
	if h.Length <= 0 {
		return 0
	}
	var sum time.Duration
	for i := range h.Length {
		sum += h.At(i)
	}
	return sum / time.Duration(h.Length)
}

func (h *FrameTimeHistory) Worst() time.Duration {
	var worst time.Duration
	for i := range h.Length {
		worst = max(worst, h.At(i))
	}
	return worst
}
