package notifier

import (
	"log/slog"
)

// DispatchResult reports the outcome of one broadcast: how many handles
// were attempted and how many accepted the payload. Attempted == 0 means
// the audience was offline, the expected steady state for most
// recipients most of the time.
type DispatchResult struct {
	Attempted int
	Delivered int
}

// Dispatcher pushes serialized payloads to every live connection for an
// audience key. It treats the payload as opaque bytes: composition and
// serialization happen upstream.
type Dispatcher struct {
	registry *Registry
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   logger.With("component", "dispatcher"),
	}
}

// Dispatch pushes the payload to every handle currently registered for
// the key. A failing handle is unregistered and the broadcast continues
// with the remainder: one broken connection never aborts delivery to the
// others. An empty audience is a silent no-op returning {0, 0}.
func (d *Dispatcher) Dispatch(key AudienceKey, payload []byte) DispatchResult {
	handles := d.registry.Snapshot(key)
	if len(handles) == 0 {
		d.logger.Debug("no live connections", "audience", key.String())
		return DispatchResult{}
	}

	result := DispatchResult{Attempted: len(handles)}
	for _, handle := range handles {
		if err := handle.Push(payload); err != nil {
			d.registry.Unregister(key, handle)
			d.logger.Warn("push failed, connection dropped from registry",
				"audience", key.String(), "error", err)
			continue
		}
		result.Delivered++
	}

	d.logger.Debug("dispatched",
		"audience", key.String(), "attempted", result.Attempted, "delivered", result.Delivered)
	return result
}
