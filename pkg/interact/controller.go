// Package interact is the interaction layer on top of the zone layout
// engine. It owns the gestures a frontend can perform (discrete
// adjustments, resets, pointer drags) and the process-wide edit-mode
// gate that arms them. All height changes are delegated to the engine's
// resolver; this package decides when a gesture is allowed and which
// events it broadcasts.
package interact

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/mlietz/pagezone/pkg/errors"
	"github.com/mlietz/pagezone/pkg/observability"
	"github.com/mlietz/pagezone/pkg/surface"
	"github.com/mlietz/pagezone/pkg/uistate"
	"github.com/mlietz/pagezone/pkg/zone"
)

// Controller wires a discovered page to interactive gestures. It is safe
// for concurrent use by multiple frontends (TUI and HTTP API share one).
type Controller struct {
	engine *zone.Engine
	states uistate.Store
	logger *log.Logger

	mu    sync.Mutex
	page  *zone.Page
	drags map[string]*DragSession // keyed by zone id, one active per zone
}

// Option configures a Controller.
type Option func(*Controller)

// WithStateStore sets the UI-state store backing the edit-mode flag.
// The default is the package-level uistate store.
func WithStateStore(s uistate.Store) Option {
	return func(c *Controller) { c.states = s }
}

// WithLogger sets the controller's logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// NewController creates a controller over the given engine.
func NewController(eng *zone.Engine, opts ...Option) *Controller {
	c := &Controller{
		engine: eng,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
		drags:  make(map[string]*DragSession),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.states == nil {
		c.states = uistate.Default()
	}
	return c
}

// Initialize runs zone initialization on the engine and arms the
// interaction layer: the resulting page becomes the controller's working
// set and every adjustable zone receives its edit-mode affordance marker.
func (c *Controller) Initialize() (*zone.Page, error) {
	page, err := c.engine.InitializeZones()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = page
	c.applyAffordances(page)
	return page, nil
}

// Page returns the controller's current working set, nil before Initialize.
func (c *Controller) Page() *zone.Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Engine returns the underlying layout engine.
func (c *Controller) Engine() *zone.Engine {
	return c.engine
}

// ============================================================================
// Edit Mode
// ============================================================================

// EditMode reports whether interactive resizing is currently armed.
func (c *Controller) EditMode() bool {
	return c.states.State().EditMode
}

// SetEditMode toggles the process-wide edit mode, refreshes the zones'
// affordance markers, and broadcasts the change. Disabling edit mode
// cancels any drag in flight.
func (c *Controller) SetEditMode(enabled bool) {
	c.states.Update(uistate.Partial{EditMode: uistate.Bool(enabled)})

	c.mu.Lock()
	if !enabled {
		for _, d := range c.drags {
			d.cancelLocked()
		}
		c.drags = make(map[string]*DragSession)
	}
	if c.page != nil {
		c.applyAffordances(c.page)
	}
	c.mu.Unlock()

	c.logger.Debug("edit mode changed", "enabled", enabled)
	observability.Zones().OnEditModeChanged(enabled)
}

// EnableEditMode arms interactive resizing.
func (c *Controller) EnableEditMode() { c.SetEditMode(true) }

// DisableEditMode disarms interactive resizing.
func (c *Controller) DisableEditMode() { c.SetEditMode(false) }

// applyAffordances marks adjustable zones with the editable attribute so
// styling can show resize affordances only while edit mode is on.
// Callers hold c.mu.
func (c *Controller) applyAffordances(page *zone.Page) {
	editing := c.states.State().EditMode
	for _, z := range page.Zones {
		if !z.Constraints.Adjustable {
			continue
		}
		if editing {
			z.Region.SetAttr(surface.AttrEditable, "true")
		} else {
			z.Region.SetAttr(surface.AttrEditable, "false")
		}
	}
}

// ============================================================================
// Discrete Gestures
// ============================================================================

// Adjust applies a relative height change (in millimeters) to one zone.
// The attempt is broadcast whether or not the resolver committed it, so
// subscribers can reflect rejected gestures too; the delta rides along in
// the event. Returns false without broadcasting when edit mode is off or
// the zone is unknown.
func (c *Controller) Adjust(zoneID string, delta float64) bool {
	if !c.EditMode() {
		c.logger.Debug("adjust ignored outside edit mode", "zone", zoneID)
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	z := c.zoneLocked(zoneID)
	if z == nil {
		return false
	}

	ok := c.engine.SetZoneHeight(c.page, z, z.CurrentHeight+delta)
	d := delta
	observability.Zones().OnZoneAdjusted(observability.ZoneEvent{
		ZoneID: z.ID,
		Type:   string(z.Type),
		Height: z.CurrentHeight,
		Delta:  &d,
	})
	return ok
}

// SetHeight applies an absolute height (in millimeters) to one zone. This
// is the programmatic entry point for non-interactive callers (the HTTP
// API, snapshot restore flows): it is not gated by edit mode and does not
// broadcast.
func (c *Controller) SetHeight(zoneID string, heightMM float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	z := c.zoneLocked(zoneID)
	if z == nil {
		return false
	}
	return c.engine.SetZoneHeight(c.page, z, heightMM)
}

// Reset restores one zone to its type-specific default height and
// broadcasts the outcome. Returns false when edit mode is off, the zone is
// unknown, or the zone is not adjustable.
func (c *Controller) Reset(zoneID string) bool {
	if !c.EditMode() {
		c.logger.Debug("reset ignored outside edit mode", "zone", zoneID)
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	z := c.zoneLocked(zoneID)
	if z == nil {
		return false
	}

	if !c.engine.ResetZoneHeight(c.page, z) {
		return false
	}
	observability.Zones().OnZoneReset(observability.ZoneEvent{
		ZoneID: z.ID,
		Type:   string(z.Type),
		Height: z.CurrentHeight,
	})
	return true
}

// ApplySnapshot replays a zone snapshot through the engine and adopts the
// resulting page as the controller's working set. In-flight drags are
// cancelled first, since their zones belong to the replaced page.
func (c *Controller) ApplySnapshot(snap []zone.Data) *zone.Page {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, d := range c.drags {
		d.cancelLocked()
	}
	c.drags = make(map[string]*DragSession)

	page := c.engine.ApplyZoneData(snap)
	c.page = page
	c.applyAffordances(page)
	return page
}

// zoneLocked resolves a zone id against the working set. Callers hold c.mu.
func (c *Controller) zoneLocked(zoneID string) *zone.Zone {
	if c.page == nil {
		c.logger.Error("gesture before initialization", "zone", zoneID)
		return nil
	}
	z := c.page.Zone(zoneID)
	if z == nil {
		c.logger.Warn("gesture against unknown zone", "zone", zoneID)
	}
	return z
}

// ============================================================================
// Drag Protocol
// ============================================================================

// BeginDrag opens a drag session on one zone at the given pointer
// y-position (in pixels). At most one session may be active per zone; the
// session must be closed with End or Cancel.
func (c *Controller) BeginDrag(zoneID string, pointerY float64) (*DragSession, error) {
	if !c.EditMode() {
		return nil, errors.New(errors.ErrCodeNotAdjustable, "edit mode is off")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	z := c.zoneLocked(zoneID)
	if z == nil {
		return nil, errors.New(errors.ErrCodeZoneNotFound, "no zone with id %q", zoneID)
	}
	if !z.Constraints.Adjustable {
		return nil, errors.New(errors.ErrCodeNotAdjustable, "the %s zone is not adjustable", z.Type)
	}
	if _, active := c.drags[z.ID]; active {
		return nil, errors.New(errors.ErrCodeInvalidInput, "a drag is already active on zone %q", z.ID)
	}

	d := &DragSession{
		ctl:         c,
		zone:        z,
		startY:      pointerY,
		startHeight: z.CurrentHeight,
		state:       DragStateDragging,
	}
	c.drags[z.ID] = d
	c.logger.Debug("drag started", "zone", z.ID, "start_mm", z.CurrentHeight)
	return d, nil
}
