// Package observability provides the notification channel for zone events.
//
// This package enables optional instrumentation and event broadcasting
// without adding hard dependencies on specific UI or observability backends.
// Consumers can register hooks at startup to receive events about zone
// adjustments, edit-mode changes, validation warnings, and snapshot-store
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core layout engine testable without a live subscriber
//   - Allows different frontends (CLI, TUI, HTTP API) to observe the same events
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetZoneHooks(&myZoneHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Zones().OnZoneAdjusted(observability.ZoneEvent{
//	    ZoneID: z.ID, Type: z.Type, Height: z.CurrentHeight, Delta: &delta,
//	})
package observability

import (
	"context"
	"sync"
)

// =============================================================================
// Zone Hooks
// =============================================================================

// ZoneEvent is the payload broadcast for zone adjustments and resets.
type ZoneEvent struct {
	ZoneID string  // stable zone identity
	Type   string  // zone type (header, content, footer)
	Height float64 // resulting height in millimeters
	Delta  *float64
	// Delta is the requested adjustment in millimeters for discrete
	// adjustments. It is nil for absolute outcomes (drag end, reset).
}

// ZoneHooks receives events from the zone layout engine and its
// interaction layer. All callbacks run synchronously on the caller's
// goroutine; implementations must not block.
type ZoneHooks interface {
	// OnZoneAdjusted fires after a discrete adjustment or a completed drag.
	OnZoneAdjusted(ev ZoneEvent)

	// OnZoneReset fires after a zone is restored to its type default.
	OnZoneReset(ev ZoneEvent)

	// OnEditModeChanged fires when the process-wide edit mode is toggled.
	OnEditModeChanged(enabled bool)

	// OnValidationWarning fires when a layout audit produces warnings.
	OnValidationWarning(warnings []string)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from snapshot-store operations.
type StoreHooks interface {
	// OnSnapshotSave records a snapshot write.
	OnSnapshotSave(ctx context.Context, backend, name string, zones int, err error)

	// OnSnapshotLoad records a snapshot read.
	OnSnapshotLoad(ctx context.Context, backend, name string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopZoneHooks is a no-op implementation of ZoneHooks.
type NoopZoneHooks struct{}

func (NoopZoneHooks) OnZoneAdjusted(ZoneEvent)     {}
func (NoopZoneHooks) OnZoneReset(ZoneEvent)        {}
func (NoopZoneHooks) OnEditModeChanged(bool)       {}
func (NoopZoneHooks) OnValidationWarning([]string) {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnSnapshotSave(context.Context, string, string, int, error) {}
func (NoopStoreHooks) OnSnapshotLoad(context.Context, string, string, error)      {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	zoneHooks  ZoneHooks  = NoopZoneHooks{}
	storeHooks StoreHooks = NoopStoreHooks{}
	hooksMu    sync.RWMutex
)

// SetZoneHooks registers custom zone hooks.
// This should be called once at application startup before any zone operations.
func SetZoneHooks(h ZoneHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		zoneHooks = h
	}
}

// SetStoreHooks registers custom snapshot-store hooks.
// This should be called once at application startup before any store operations.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Zones returns the registered zone hooks.
func Zones() ZoneHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return zoneHooks
}

// Stores returns the registered snapshot-store hooks.
func Stores() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	zoneHooks = NoopZoneHooks{}
	storeHooks = NoopStoreHooks{}
}
