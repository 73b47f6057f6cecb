package parallel

import "github.com/panjf2000/ants/v2"

// Options configures the fork-join threshold shared by every
// operation in this package.
type Options struct {
	// SeqThreshold bounds the cell count (Rows*Cols) at or below which an
	// operation runs sequentially through package rope rather than
	// forking another goroutine pair. Zero means DefaultSeqThreshold.
	SeqThreshold int
}

// DefaultSeqThreshold is the cell count at or below which forking further is
// assumed not to pay for its own synchronization overhead.
const DefaultSeqThreshold = 4096

// DefaultOptions returns Options{SeqThreshold: DefaultSeqThreshold}.
func DefaultOptions() Options { return Options{SeqThreshold: DefaultSeqThreshold} }

func (o Options) seqThreshold() int {
	if o.SeqThreshold <= 0 {
		return DefaultSeqThreshold
	}
	return o.SeqThreshold
}

// NewPool builds an ants.Pool of the given size. Callers that don't
// want a bounded pool can pass a nil *ants.Pool to any function in
// this package, which forks bare goroutines instead.
func NewPool(size int) (*ants.Pool, error) {
	return ants.NewPool(size, ants.WithNonblocking(true))
}
