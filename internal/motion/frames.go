package motion

// FrameCallback receives the frame timestamp in milliseconds.
type FrameCallback func(timestampMs float64)

// Ticket identifies a pending frame request. Zero is never issued.
type Ticket uint64

// FrameQueue is a single-threaded requestAnimationFrame: callbacks requested
// before a Tick run during it, callbacks requested from inside a callback
// wait for the next Tick.
type FrameQueue struct {
	next    Ticket
	pending []frameRequest

	// requests taken out for the Tick in progress, still cancellable
	inFlight  []frameRequest
	cancelled map[Ticket]bool
}

type frameRequest struct {
	ticket Ticket
	cb     FrameCallback
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) Request(cb FrameCallback) Ticket {
	q.next++
	q.pending = append(q.pending, frameRequest{ticket: q.next, cb: cb})
	return q.next
}

// Cancel drops a request that has not run yet. Unknown or already-run
// tickets are ignored.
func (q *FrameQueue) Cancel(ticket Ticket) {
	for i, r := range q.pending {
		if r.ticket == ticket {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for _, r := range q.inFlight {
		if r.ticket == ticket {
			if q.cancelled == nil {
				q.cancelled = make(map[Ticket]bool)
			}
			q.cancelled[ticket] = true
			return
		}
	}
}

// Pending reports the number of callbacks waiting for the next Tick.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

func (q *FrameQueue) Tick(timestampMs float64) {
	q.inFlight = q.pending
	q.pending = nil

	for len(q.inFlight) > 0 {
		r := q.inFlight[0]
		q.inFlight = q.inFlight[1:]
		if q.cancelled[r.ticket] {
			continue
		}
		r.cb(timestampMs)
	}

	q.inFlight = nil
	q.cancelled = nil
}
