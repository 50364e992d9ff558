package engine

// FrameID identifies a pending frame request.
type FrameID uint64

// FrameScheduler runs a callback once, before the next presented frame.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn func()
}

// LoopScheduler is a FrameScheduler for a main loop that calls RunPending
// once per iteration.
type LoopScheduler struct {
	last    FrameID
	pending []frameRequest
}

// NewLoopScheduler creates an empty scheduler.
func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{}
}

// RequestFrame queues fn for the next RunPending. IDs are never reused.
func (s *LoopScheduler) RequestFrame(fn func()) FrameID {
	s.last++
	s.pending = append(s.pending, frameRequest{id: s.last, fn: fn})
	return s.last
}

// CancelFrame drops a queued request. Unknown or already-run IDs are
// ignored.
func (s *LoopScheduler) CancelFrame(id FrameID) {
	for i, req := range s.pending {
		if req.id == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// RunPending runs every request queued before the call. Requests made by
// the callbacks wait for the next call. Returns how many ran.
func (s *LoopScheduler) RunPending() int {
	batch := s.pending
	s.pending = nil
	for _, req := range batch {
		req.fn()
	}
	return len(batch)
}

// Pending returns the number of queued requests.
func (s *LoopScheduler) Pending() int {
	return len(s.pending)
}
