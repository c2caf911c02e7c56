package zone

import (
	"github.com/mlietz/pagezone/pkg/surface"
)

// Zone is a vertically-stacked region of a page with a type, a current
// height, and resize constraints. Zones are materialized fresh on every
// discovery pass from the surface's current state and discarded when the
// caller is done with them; they are never cached across passes.
type Zone struct {
	// ID is the zone's stable string identity: the region's existing id
	// when present, otherwise synthesized during discovery.
	ID string

	// Type is the zone's declared type, resolved against the engine's
	// constraint table.
	Type Type

	// Constraints is the type's constraint profile, shared by all zones of
	// the type.
	Constraints Profile

	// CurrentHeight is the authoritative height of the zone in millimeters.
	// Only the height resolver mutates it.
	CurrentHeight float64

	// Region is the underlying layout surface the zone renders onto. The
	// engine only reads geometry and writes size-related presentation
	// attributes; the region is owned externally.
	Region surface.Region
}

// Top returns the zone's top offset relative to the page, in millimeters.
func (z *Zone) Top() float64 {
	return surface.PxToMM(z.Region.TopPx())
}

// Bottom returns the zone's computed bottom edge (top + height) in
// millimeters.
func (z *Zone) Bottom() float64 {
	return z.Top() + z.CurrentHeight
}

// Page is an ordered sequence of zones discovered from one page container.
// Canonically each of the three built-in types appears at most once, but
// the model does not enforce uniqueness; validation detects duplicates
// without preventing them.
type Page struct {
	// Name is an optional page label used in logs and events.
	Name string

	// Zones are the discovered zones in canonical order.
	Zones []*Zone
}

// Zone returns the zone with the given id, or nil.
func (p *Page) Zone(id string) *Zone {
	for _, z := range p.Zones {
		if z.ID == id {
			return z
		}
	}
	return nil
}

// ZoneByType returns the first zone of the given type, or nil.
func (p *Page) ZoneByType(t Type) *Zone {
	for _, z := range p.Zones {
		if z.Type == t {
			return z
		}
	}
	return nil
}

// TotalHeight returns the sum of all zones' current heights in millimeters.
func (p *Page) TotalHeight() float64 {
	total := 0.0
	for _, z := range p.Zones {
		total += z.CurrentHeight
	}
	return total
}
