//go:build unit || integration

package watcher

import "sync"

type callRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *callRecorder) record(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, key)
}

func (r *callRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}
