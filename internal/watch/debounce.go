package watch

import (
	"sort"
	"sync"
	"time"
)

// Debouncer collects changed paths and signals once no new change has
// arrived for the configured interval. Consumers receive from Ready and then
// call Drain, so every batch is handled on the consumer's goroutine.
type Debouncer struct {
	interval time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	pending  map[string]struct{}
	ready    chan struct{}
	stopped  bool
}

// NewDebouncer creates a new debouncer.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		pending:  make(map[string]struct{}),
		ready:    make(chan struct{}, 1),
	}
}

// Add records a changed path and restarts the quiet period.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.pending[path] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	select {
	case d.ready <- struct{}{}:
	default:
		// a signal is already waiting
	}
}

// Ready delivers a value when a batch of changes has settled.
func (d *Debouncer) Ready() <-chan struct{} {
	return d.ready
}

// Drain returns the pending paths in sorted order and forgets them.
func (d *Debouncer) Drain() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	paths := make([]string, 0, len(d.pending))
	for path := range d.pending {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	clear(d.pending)
	return paths
}

// Stop cancels any pending signal. Later calls to Add are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	clear(d.pending)
}
