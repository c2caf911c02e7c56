package cli

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/mlietz/pagezone/pkg/observability"
)

// logHooks surfaces zone events on the CLI logger at debug level, so
// --verbose shows the engine's event traffic without touching normal output.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) logHooks {
	return logHooks{logger: l}
}

func (h logHooks) OnZoneAdjusted(ev observability.ZoneEvent) {
	if ev.Delta != nil {
		h.logger.Debug("zone adjusted", "zone", ev.ZoneID, "type", ev.Type, "mm", ev.Height, "delta", *ev.Delta)
		return
	}
	h.logger.Debug("zone adjusted", "zone", ev.ZoneID, "type", ev.Type, "mm", ev.Height)
}

func (h logHooks) OnZoneReset(ev observability.ZoneEvent) {
	h.logger.Debug("zone reset", "zone", ev.ZoneID, "type", ev.Type, "mm", ev.Height)
}

func (h logHooks) OnEditModeChanged(enabled bool) {
	h.logger.Debug("edit mode changed", "enabled", enabled)
}

func (h logHooks) OnValidationWarning(warnings []string) {
	for _, w := range warnings {
		h.logger.Debug("layout warning", "warning", w)
	}
}

var _ observability.ZoneHooks = logHooks{}

// storeLogHooks surfaces snapshot-store traffic on the CLI logger.
type storeLogHooks struct {
	logger *log.Logger
}

func newStoreLogHooks(l *log.Logger) storeLogHooks {
	return storeLogHooks{logger: l}
}

func (h storeLogHooks) OnSnapshotSave(_ context.Context, backend, name string, zones int, err error) {
	if err != nil {
		h.logger.Debug("snapshot save failed", "backend", backend, "name", name, "err", err)
		return
	}
	h.logger.Debug("snapshot saved", "backend", backend, "name", name, "zones", zones)
}

func (h storeLogHooks) OnSnapshotLoad(_ context.Context, backend, name string, err error) {
	if err != nil {
		h.logger.Debug("snapshot load failed", "backend", backend, "name", name, "err", err)
		return
	}
	h.logger.Debug("snapshot loaded", "backend", backend, "name", name)
}

var _ observability.StoreHooks = storeLogHooks{}
