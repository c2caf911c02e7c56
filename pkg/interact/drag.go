package interact

import (
	"github.com/mlietz/pagezone/pkg/observability"
	"github.com/mlietz/pagezone/pkg/surface"
	"github.com/mlietz/pagezone/pkg/zone"
)

// DragState is the lifecycle state of a drag session.
type DragState int

const (
	// DragStateIdle is a closed session. Move/End/Cancel are no-ops.
	DragStateIdle DragState = iota

	// DragStateDragging is an open session tracking pointer movement.
	DragStateDragging
)

// DragSession tracks one pointer drag on one zone's resize affordance.
//
// Every Move re-evaluates the height absolutely from the session's start
// height and the total pointer travel, rather than accumulating deltas:
// when the resolver clamps or shrinks an intermediate position, later
// pointer positions still map to the height the user is pointing at.
// A session ends exactly once, through End or Cancel.
type DragSession struct {
	ctl         *Controller
	zone        *zone.Zone
	startY      float64 // pointer y at Begin, px
	startHeight float64 // zone height at Begin, mm
	state       DragState
}

// State returns the session's lifecycle state.
func (d *DragSession) State() DragState {
	d.ctl.mu.Lock()
	defer d.ctl.mu.Unlock()
	return d.state
}

// ZoneID returns the id of the zone being dragged.
func (d *DragSession) ZoneID() string {
	return d.zone.ID
}

// Move tracks the pointer to a new y-position (in pixels) and resolves
// the zone height it implies. Returns whether the resolver committed the
// position. A closed session reports false.
func (d *DragSession) Move(pointerY float64) bool {
	d.ctl.mu.Lock()
	defer d.ctl.mu.Unlock()

	if d.state != DragStateDragging {
		return false
	}
	requested := d.startHeight + surface.PxToMM(pointerY-d.startY)
	return d.ctl.engine.SetZoneHeight(d.ctl.page, d.zone, requested)
}

// End closes the session at a final pointer position and broadcasts the
// zone's resulting height. The outcome is absolute, so the event carries
// no delta. Ending a closed session is a no-op.
func (d *DragSession) End(pointerY float64) {
	d.ctl.mu.Lock()
	defer d.ctl.mu.Unlock()

	if d.state != DragStateDragging {
		return
	}
	requested := d.startHeight + surface.PxToMM(pointerY-d.startY)
	d.ctl.engine.SetZoneHeight(d.ctl.page, d.zone, requested)
	d.closeLocked()

	d.ctl.logger.Debug("drag ended", "zone", d.zone.ID, "mm", d.zone.CurrentHeight)
	observability.Zones().OnZoneAdjusted(observability.ZoneEvent{
		ZoneID: d.zone.ID,
		Type:   string(d.zone.Type),
		Height: d.zone.CurrentHeight,
	})
}

// Cancel closes the session and restores the zone to its height at Begin,
// without broadcasting. Cancelling a closed session is a no-op.
func (d *DragSession) Cancel() {
	d.ctl.mu.Lock()
	defer d.ctl.mu.Unlock()
	d.cancelLocked()
}

// cancelLocked restores the start height and tears the session down.
// Callers hold ctl.mu.
func (d *DragSession) cancelLocked() {
	if d.state != DragStateDragging {
		return
	}
	d.ctl.engine.SetZoneHeight(d.ctl.page, d.zone, d.startHeight)
	d.closeLocked()
	d.ctl.logger.Debug("drag cancelled", "zone", d.zone.ID)
}

// closeLocked transitions to idle and releases the per-zone slot.
// Callers hold ctl.mu.
func (d *DragSession) closeLocked() {
	d.state = DragStateIdle
	delete(d.ctl.drags, d.zone.ID)
}
