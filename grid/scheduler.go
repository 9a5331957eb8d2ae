package grid

import (
	"time"
)

type FrameFunc func(now time.Duration)

type FrameID uint64

// FrameScheduler runs a callback once on the next display refresh.
type FrameScheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

type pendingFrame struct {
	ID FrameID
	Fn FrameFunc
}

// ManualScheduler is a FrameScheduler that runs frames when told to.
//
// Hosts call Step from their own refresh (ebiten Draw, a ticker, a loop in
// a test). Callbacks requested while a Step is running wait for the next Step.
type ManualScheduler struct {
	nextID  FrameID
	pending []pendingFrame
	running []pendingFrame
}

func NewManualScheduler() *ManualScheduler {
	return new(ManualScheduler)
}

func (s *ManualScheduler) RequestFrame(fn FrameFunc) FrameID {
	s.nextID++
	s.pending = append(s.pending, pendingFrame{ID: s.nextID, Fn: fn})
	return s.nextID
}

func (s *ManualScheduler) CancelFrame(id FrameID) {
	for i, f := range s.pending {
		if f.ID == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
	// might be cancelled by an earlier callback of the same step
	for i, f := range s.running {
		if f.ID == id {
			s.running[i].Fn = nil
			return
		}
	}
}

// Pending returns number of callbacks waiting for next Step.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

// Step runs every callback requested before it was called
// and returns how many ran.
func (s *ManualScheduler) Step(now time.Duration) int {
	s.running, s.pending = s.pending, s.running[:0]

	ran := 0
	for i := 0; i < len(s.running); i++ {
		fn := s.running[i].Fn
		if fn == nil {
			continue
		}
		fn(now)
		ran++
	}

	s.running = s.running[:0]

	return ran
}
