package notifier

import (
	"sync"
)

// Handle is an opaque reference to one open, push-capable connection.
// Push must be bounded: implementations fail fast on a closed or broken
// connection rather than blocking the dispatcher.
type Handle interface {
	Push(payload []byte) error
}

// Registry is the in-memory, concurrency-safe mapping from audience key
// to the set of currently open connections for that audience. A user may
// hold several simultaneous sessions (devices, tabs); each is one handle.
//
// The registry performs no I/O; it is pure bookkeeping shared between
// the per-connection goroutines (registering and unregistering on their
// own lifecycle) and the dispatcher (snapshotting per outbound
// notification).
//
// A Registry is created at service start and passed by reference to the
// components that open, close, or broadcast to connections. It is never
// a package-level global.
type Registry struct {
	mu      sync.RWMutex
	entries map[AudienceKey]map[Handle]struct{}
}

// NewRegistry creates an empty connection registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[AudienceKey]map[Handle]struct{}),
	}
}

// Register adds a handle to the audience's connection set, creating the
// set on first registration. Registering the same (key, handle) pair
// twice is idempotent: the set still holds one member for it.
func (r *Registry) Register(key AudienceKey, handle Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.entries[key]
	if !ok {
		set = make(map[Handle]struct{})
		r.entries[key] = set
	}
	set[handle] = struct{}{}
}

// Unregister removes a handle from the audience's connection set and
// drops the key entirely once its set is empty, so no dangling empty
// entries remain. Unregistering an absent handle is a no-op.
func (r *Registry) Unregister(key AudienceKey, handle Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.entries[key]
	if !ok {
		return
	}

	delete(set, handle)
	if len(set) == 0 {
		delete(r.entries, key)
	}
}

// Snapshot returns a defensive copy of the audience's current handle set.
// Iterating the snapshot is safe while other goroutines mutate the
// registry; member order is unspecified.
func (r *Registry) Snapshot(key AudienceKey) []Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.entries[key]
	handles := make([]Handle, 0, len(set))
	for handle := range set {
		handles = append(handles, handle)
	}
	return handles
}

// IsOnline reports whether the audience has at least one open connection.
// Being offline is an ordinary state, not an error.
func (r *Registry) IsOnline(key AudienceKey) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries[key]) > 0
}

// CountFor returns the number of open connections for the audience.
func (r *Registry) CountFor(key AudienceKey) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries[key])
}

// TotalCount returns the number of open connections across all audiences.
func (r *Registry) TotalCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, set := range r.entries {
		total += len(set)
	}
	return total
}
