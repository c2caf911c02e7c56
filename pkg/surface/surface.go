// Package surface abstracts the rendering substrate a page's zones live on.
//
// The zone layout engine never talks to a concrete rendering environment.
// It operates on the two small interfaces in this package: a Surface that
// enumerates marked zone regions, and a Region that exposes a rendered
// height and position and accepts presentation attributes (ids, classes,
// size hints). A browser DOM, a TUI buffer, or the in-memory implementation
// in this package can all stand behind them.
//
// All geometry crosses the boundary in pixels; the engine itself works in
// millimeters. Conversion uses the fixed 96 DPI device factor, so
// 1mm ≈ 3.78px.
package surface

// PxPerMM is the fixed device conversion factor between pixels and
// millimeters, assuming 96 DPI (96px per inch, 25.4mm per inch).
const PxPerMM = 96.0 / 25.4

// PxToMM converts a pixel measurement to millimeters.
func PxToMM(px float64) float64 { return px / PxPerMM }

// MMToPx converts a millimeter measurement to pixels.
func MMToPx(mm float64) float64 { return mm * PxPerMM }

// Attribute keys and classes the engine writes to regions. External styling
// recognizes zones and their constraint bounds through these markers.
const (
	AttrZoneID     = "data-zone-id"
	AttrZoneType   = "data-zone-type"
	AttrZoneMin    = "data-zone-min"
	AttrZoneMax    = "data-zone-max"
	AttrZoneHeight = "data-zone-height"
	AttrEditable   = "data-zone-editable"

	ClassZone       = "pz-zone"
	ClassZonePrefix = "pz-zone-" // followed by the zone type
)

// Region is one marked zone area on a surface. The engine reads its
// rendered geometry and writes size-related presentation attributes; the
// region itself is owned by the surface.
type Region interface {
	// ID returns the region's stable identity, empty if none is assigned.
	ID() string

	// SetID assigns a stable identity to the region.
	SetID(id string)

	// Kind returns the declared zone type marker (e.g. "header").
	Kind() string

	// HeightPx returns the current rendered height in pixels.
	HeightPx() float64

	// TopPx returns the region's top offset relative to the page, in pixels.
	TopPx() float64

	// SetHeightPx sets a single fixed height hint, for fixed-role zones.
	SetHeightPx(px float64)

	// SetMinHeightPx and SetMaxHeightPx set the bound hints. The flexible
	// content role pins its height by setting both bounds to the same value.
	SetMinHeightPx(px float64)
	SetMaxHeightPx(px float64)

	// Attr returns a presentation attribute, reporting whether it is set.
	Attr(key string) (string, bool)

	// SetAttr writes a presentation attribute. Re-applying the same value
	// must be harmless; discovery relies on idempotent marking.
	SetAttr(key, value string)

	// AddClass adds a style class; adding an existing class is a no-op.
	AddClass(class string)

	// HasClass reports whether a style class is present.
	HasClass(class string) bool
}

// Surface enumerates the marked zone regions of one page container, in
// document order. Canonical zone ordering is the engine's concern, not the
// surface's.
type Surface interface {
	Regions() []Region
}
