package zone

import (
	"fmt"

	"github.com/mlietz/pagezone/pkg/errors"
	"github.com/mlietz/pagezone/pkg/surface"
)

// SetZoneHeight requests a new height in millimeters for one zone of a
// page. It is the single authoritative mutator of CurrentHeight; every
// height change, interactive or programmatic, must pass through it.
//
// The request is first clamped into the zone's bounds. If the resulting
// total page height stays within the page budget the clamped height is
// committed. If it would exceed the budget the zone, never its siblings,
// is shrunk further down to at most its minimum; when even the
// minimum cannot absorb the overflow, the change is rejected with a
// user-facing warning and state is left untouched.
//
// Requests against non-adjustable zones are a no-op from the model's
// perspective and report false.
//
// On success the zone's size presentation attributes are refreshed;
// broadcasting a change notification is the caller's responsibility, since
// only interactive and explicit adjustments should broadcast.
func (e *Engine) SetZoneHeight(page *Page, z *Zone, requested float64) bool {
	if !z.Constraints.Adjustable {
		e.logger.Debug("ignoring resize of non-adjustable zone", "zone", z.ID)
		return false
	}

	clamped := z.Constraints.Clamp(requested)
	total := page.TotalHeight() - z.CurrentHeight + clamped

	if total > PageHeightBudget {
		overflow := total - PageHeightBudget
		adjusted := clamped - overflow
		if adjusted < z.Constraints.MinHeight {
			e.reporter.ShowUserError(
				fmt.Sprintf("resizing the %s zone to %.0fmm would exceed the page boundaries", z.Type, requested),
				errors.SeverityWarning,
			)
			return false
		}
		clamped = adjusted
	}

	z.CurrentHeight = clamped
	e.applySizeHints(z)
	e.logger.Debug("zone height committed", "zone", z.ID, "mm", fmt.Sprintf("%.1f", clamped))
	return true
}

// ResetZoneHeight restores a zone to its type-specific default height
// (flexible zones to their minimum, fixed-role zones to the midpoint of
// their bounds), routed through the resolver like any other change.
func (e *Engine) ResetZoneHeight(page *Page, z *Zone) bool {
	return e.SetZoneHeight(page, z, z.Constraints.DefaultHeight())
}

// applySizeHints pushes the zone's committed height to its region. The
// flexible content role pins its height by setting both bound hints; fixed
// roles take a single height hint. A height readout attribute is refreshed
// either way.
func (e *Engine) applySizeHints(z *Zone) {
	px := surface.MMToPx(z.CurrentHeight)
	if z.Constraints.Role == RoleFlex {
		z.Region.SetMinHeightPx(px)
		z.Region.SetMaxHeightPx(px)
	} else {
		z.Region.SetHeightPx(px)
	}
	z.Region.SetAttr(surface.AttrZoneHeight, fmt.Sprintf("%.1fmm", z.CurrentHeight))
}
