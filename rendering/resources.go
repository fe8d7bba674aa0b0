package rendering

import (
	"log/slog"
)

type resource struct {
	name    string
	release func()
}

// Resources records acquired GPU and window resources and releases them in
// reverse order of acquisition.
type Resources struct {
	logger *slog.Logger
	held   []resource
}

func NewResources(logger *slog.Logger) *Resources {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resources{logger: logger}
}

// Acquire records a resource that has just been created.
func (r *Resources) Acquire(name string, release func()) {
	r.held = append(r.held, resource{name: name, release: release})
	r.logger.Debug("acquired", "resource", name)
}

// Len returns the number of resources still held.
func (r *Resources) Len() int {
	return len(r.held)
}

// Release frees everything still held, newest first. Calling it again is a
// no-op.
func (r *Resources) Release() {
	for len(r.held) > 0 {
		last := r.held[len(r.held)-1]
		r.held = r.held[:len(r.held)-1]
		last.release()
		r.logger.Debug("released", "resource", last.name)
	}
}
