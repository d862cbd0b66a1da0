// Package history provides the fixed-capacity rolling sample buffers that
// feed the dashboard charts.
package history

// DefaultCapacity is the number of samples retained per charted channel.
// At the 1s metrics tick this covers the last 30 seconds.
const DefaultCapacity = 30

// Buffer is a FIFO of float64 samples bounded to a fixed capacity.
// Insertion order is chronological order; once full, each Append evicts
// exactly one sample from the front.
//
// A Buffer is not safe for concurrent use. It is owned by the dashboard
// state and mutated only from the tick handler.
type Buffer struct {
	capacity int
	samples  []float64
}

// New creates an empty Buffer holding at most capacity samples.
// A non-positive capacity falls back to DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		capacity: capacity,
		samples:  make([]float64, 0, capacity+1),
	}
}

// Append pushes value to the end of the buffer, evicting the oldest sample
// when the capacity is exceeded.
func (b *Buffer) Append(value float64) {
	b.samples = appendAndTrim(b.samples, value, b.capacity)
}

// Values returns a copy of the retained samples, oldest first.
// Calling it does not modify the buffer.
func (b *Buffer) Values() []float64 {
	out := make([]float64, len(b.samples))
	copy(out, b.samples)
	return out
}

// Len returns the number of retained samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cap returns the maximum number of samples the buffer retains.
func (b *Buffer) Cap() int {
	return b.capacity
}

// Last returns the most recent sample. The second return value is false
// when the buffer is empty.
func (b *Buffer) Last() (float64, bool) {
	if len(b.samples) == 0 {
		return 0, false
	}
	return b.samples[len(b.samples)-1], true
}

// appendAndTrim appends a value to a history slice and drops the front
// element once the slice grows past limit. The backing array is reused so
// steady-state appends do not allocate.
func appendAndTrim(history []float64, value float64, limit int) []float64 {
	history = append(history, value)
	if len(history) > limit {
		copy(history, history[1:])
		history = history[:len(history)-1]
	}
	return history
}
