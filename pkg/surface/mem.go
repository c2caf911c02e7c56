package surface

// MemSurface is an in-memory Surface implementation. It backs the CLI and
// TUI frontends (via page documents) and all engine tests.
type MemSurface struct {
	regions []*MemRegion
}

// NewMemSurface creates a surface holding the given regions.
func NewMemSurface(regions ...*MemRegion) *MemSurface {
	s := &MemSurface{regions: regions}
	for _, r := range regions {
		r.surf = s
	}
	return s
}

// Regions returns the marked zone regions in document order.
func (s *MemSurface) Regions() []Region {
	out := make([]Region, len(s.regions))
	for i, r := range s.regions {
		out[i] = r
	}
	return out
}

// MemRegions returns the concrete regions for direct manipulation in tests
// and adapters.
func (s *MemSurface) MemRegions() []*MemRegion {
	return s.regions
}

// Add appends a region to the surface.
func (s *MemSurface) Add(r *MemRegion) {
	r.surf = s
	s.regions = append(s.regions, r)
}

// Reflow restacks the regions vertically in their current slice order,
// assigning each region's top offset to the bottom edge of the previous
// one, as a live rendering surface does as part of layout. Height hint
// changes on an attached region trigger a restack automatically; explicit
// calls only matter after repositioning regions with SetTopPx.
func (s *MemSurface) Reflow() {
	top := 0.0
	for _, r := range s.regions {
		r.topPx = top
		top += r.heightPx
	}
}

var _ Surface = (*MemSurface)(nil)

// MemRegion is an in-memory Region. Size hints behave like a rendering
// engine: the rendered height tracks the fixed height hint when set, and is
// clamped into the min/max hints otherwise.
type MemRegion struct {
	id       string
	kind     string
	heightPx float64
	topPx    float64

	minPx, maxPx float64 // 0 means unset
	attrs        map[string]string
	classes      map[string]struct{}

	surf *MemSurface // set when attached to a surface
}

// NewMemRegion creates a region with a declared zone kind and rendered
// height. The top offset is assigned by MemSurface.Reflow or SetTopPx.
func NewMemRegion(kind string, heightPx float64) *MemRegion {
	return &MemRegion{
		kind:     kind,
		heightPx: heightPx,
		attrs:    make(map[string]string),
		classes:  make(map[string]struct{}),
	}
}

// ID returns the region's stable identity, empty if none is assigned.
func (r *MemRegion) ID() string { return r.id }

// SetID assigns a stable identity to the region.
func (r *MemRegion) SetID(id string) { r.id = id }

// Kind returns the declared zone type marker.
func (r *MemRegion) Kind() string { return r.kind }

// HeightPx returns the current rendered height in pixels.
func (r *MemRegion) HeightPx() float64 { return r.heightPx }

// TopPx returns the region's top offset in pixels.
func (r *MemRegion) TopPx() float64 { return r.topPx }

// SetTopPx positions the region explicitly. Tests use this to construct
// overlapping layouts that Reflow would never produce.
func (r *MemRegion) SetTopPx(px float64) { r.topPx = px }

// SetHeightPx sets a fixed height hint and rerenders to it.
func (r *MemRegion) SetHeightPx(px float64) {
	r.heightPx = px
	r.rerender()
}

// SetMinHeightPx sets the minimum height hint.
func (r *MemRegion) SetMinHeightPx(px float64) {
	r.minPx = px
	r.rerender()
}

// SetMaxHeightPx sets the maximum height hint.
func (r *MemRegion) SetMaxHeightPx(px float64) {
	r.maxPx = px
	r.rerender()
}

// rerender keeps the rendered height inside the bound hints, as a
// rendering engine would, and restacks the surface so sibling top
// offsets track the new height.
func (r *MemRegion) rerender() {
	if r.minPx > 0 && r.heightPx < r.minPx {
		r.heightPx = r.minPx
	}
	if r.maxPx > 0 && r.heightPx > r.maxPx {
		r.heightPx = r.maxPx
	}
	if r.surf != nil {
		r.surf.Reflow()
	}
}

// Attr returns a presentation attribute, reporting whether it is set.
func (r *MemRegion) Attr(key string) (string, bool) {
	v, ok := r.attrs[key]
	return v, ok
}

// SetAttr writes a presentation attribute.
func (r *MemRegion) SetAttr(key, value string) {
	r.attrs[key] = value
}

// AddClass adds a style class.
func (r *MemRegion) AddClass(class string) {
	r.classes[class] = struct{}{}
}

// HasClass reports whether a style class is present.
func (r *MemRegion) HasClass(class string) bool {
	_, ok := r.classes[class]
	return ok
}

var _ Region = (*MemRegion)(nil)
