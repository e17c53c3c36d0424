package media

import "sync"

// Feed is the live list handle for one media type. It holds the latest
// full snapshot and pushes a new one to every subscriber after each write
// to the underlying table. A feed never completes on its own; it is closed
// only when the store is torn down.
type Feed struct {
	mu     sync.Mutex
	latest []Media
	subs   map[chan []Media]struct{}
	closed bool
}

func newFeed() *Feed {
	return &Feed{subs: make(map[chan []Media]struct{})}
}

// Snapshot returns the most recently published record list.
func (f *Feed) Snapshot() []Media {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := make([]Media, len(f.latest))
	copy(cp, f.latest)
	return cp
}

// Subscribe registers a listener and returns its channel plus a cancel
// function. The current snapshot is delivered immediately; afterwards the
// channel coalesces updates, so a slow consumer always sees the newest
// state rather than a backlog. The channel is closed on cancel or when
// the feed shuts down.
func (f *Feed) Subscribe() (<-chan []Media, func()) {
	ch := make(chan []Media, 1)

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	// Deliver the current snapshot before the channel becomes visible to
	// publish or close. The buffer is empty here, so the send cannot
	// block; sending after unlocking would race a publish filling the
	// buffer (blocking this send) or a close of the channel.
	snapshot := make([]Media, len(f.latest))
	copy(snapshot, f.latest)
	ch <- snapshot
	f.subs[ch] = struct{}{}
	f.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			if _, ok := f.subs[ch]; ok {
				delete(f.subs, ch)
				close(ch)
			}
			f.mu.Unlock()
		})
	}
	return ch, cancel
}

func (f *Feed) publish(items []Media) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.latest = items
	for ch := range f.subs {
		// Drop a pending stale snapshot so the send below cannot block.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- items:
		default:
		}
	}
}

func (f *Feed) close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	for ch := range f.subs {
		delete(f.subs, ch)
		close(ch)
	}
}
