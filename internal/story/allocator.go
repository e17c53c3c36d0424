package story

import (
	"strconv"
	"sync"
)

// Allocator issues monotonically increasing line identifiers as decimal
// strings. Exactly one allocator exists per loaded document; Seed must run
// once, before any allocation from the newly loaded data.
type Allocator struct {
	mu      sync.Mutex
	counter int64
}

// NewAllocator returns an allocator whose first id is "1".
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Seed resets the counter to the maximum integer id present in the story,
// or zero when the story is empty. Ids that do not parse as integers are
// ignored rather than treated as errors; sparse and hand-edited documents
// are expected.
func (a *Allocator) Seed(s *GfStory) {
	var max int64
	if s != nil {
		for _, line := range s.Lines {
			value, err := strconv.ParseInt(line.LineID(), 10, 64)
			if err != nil {
				continue
			}
			if value > max {
				max = value
			}
		}
	}
	a.mu.Lock()
	a.counter = max
	a.mu.Unlock()
}

// Next increments the counter and returns it as a string. Growth is
// unbounded; ids stay small integers for the lifetime of a session.
func (a *Allocator) Next() string {
	a.mu.Lock()
	a.counter++
	value := a.counter
	a.mu.Unlock()
	return strconv.FormatInt(value, 10)
}
