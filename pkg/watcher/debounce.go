package watcher

import (
	"sync"
	"time"
)

// debouncer coalesces bursts of triggers per key into a single callback.
type debouncer struct {
	window   time.Duration
	callback func(key string)

	mu      sync.Mutex
	pending map[string]*time.Timer
	stopped bool
	running sync.WaitGroup
}

func newDebouncer(window time.Duration, callback func(key string)) *debouncer {
	return &debouncer{
		window:   window,
		callback: callback,
		pending:  make(map[string]*time.Timer),
	}
}

// add (re)starts the quiet period of key.
func (d *debouncer) add(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if existing, ok := d.pending[key]; ok {
		existing.Stop()
	}
	d.pending[key] = time.AfterFunc(d.window, func() {
		d.fire(key)
	})
}

func (d *debouncer) fire(key string) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	delete(d.pending, key)
	d.running.Add(1)
	d.mu.Unlock()

	defer d.running.Done()
	d.callback(key)
}

// stop cancels pending callbacks and waits for running ones.
func (d *debouncer) stop() {
	d.mu.Lock()
	d.stopped = true
	for key, timer := range d.pending {
		timer.Stop()
		delete(d.pending, key)
	}
	d.mu.Unlock()

	d.running.Wait()
}
