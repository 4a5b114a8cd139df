package source

import (
	"context"
	"slices"
	"sync"
)

// FetchStats collects the questions a fetch dropped during validation.
// It is safe for concurrent use.
type FetchStats struct {
	mu       sync.Mutex
	rejected []*ValidationError
	parent   *FetchStats
}

type statsKey struct{}

// WithStats returns a context whose fetches report rejections into the
// returned FetchStats. Stats already on ctx keep receiving them too.
func WithStats(ctx context.Context) (context.Context, *FetchStats) {
	parent, _ := ctx.Value(statsKey{}).(*FetchStats)
	st := &FetchStats{parent: parent}
	return context.WithValue(ctx, statsKey{}, st), st
}

// Rejected returns the rejections recorded so far.
func (s *FetchStats) Rejected() []*ValidationError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.rejected)
}

func (s *FetchStats) add(rejected []*ValidationError) {
	for ; s != nil; s = s.parent {
		s.mu.Lock()
		s.rejected = append(s.rejected, rejected...)
		s.mu.Unlock()
	}
}

// noteRejected records rejections on the FetchStats carried by ctx, if any.
func noteRejected(ctx context.Context, rejected []*ValidationError) {
	if len(rejected) == 0 {
		return
	}
	if st, ok := ctx.Value(statsKey{}).(*FetchStats); ok {
		st.add(rejected)
	}
}
