package audit

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity is the number of records retained when no capacity
// option is provided.
const DefaultCapacity = 1000

// Recorder is a fixed-capacity, append-only log of evaluation outcomes.
// Once full, appending evicts the oldest record first.
type Recorder struct {
	mu   sync.Mutex
	buf  []Record
	head int // index of the oldest record
	size int
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithCapacity sets the maximum number of retained records.
// Non-positive values fall back to DefaultCapacity.
func WithCapacity(n int) Option {
	return func(r *Recorder) {
		if n > 0 {
			r.buf = make([]Record, n)
		}
	}
}

// NewRecorder creates a recorder with DefaultCapacity unless overridden.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		buf: make([]Record, DefaultCapacity),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record appends one entry, evicting the oldest when the buffer is full.
// A missing ID or timestamp is filled in at append time.
func (r *Recorder) Record(rec Record) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.size < len(r.buf) {
		r.buf[(r.head+r.size)%len(r.buf)] = rec
		r.size++
		return
	}
	r.buf[r.head] = rec
	r.head = (r.head + 1) % len(r.buf)
}

// Export returns a point-in-time copy of the retained records,
// oldest first. Mutating the result does not affect the recorder.
func (r *Recorder) Export() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Record, r.size)
	for i := 0; i < r.size; i++ {
		out[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	return out
}

// Len reports the number of retained records.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}

// Cap reports the maximum number of retained records.
func (r *Recorder) Cap() int {
	return len(r.buf)
}
