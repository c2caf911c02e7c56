package zone

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/mlietz/pagezone/pkg/errors"
	"github.com/mlietz/pagezone/pkg/surface"
)

// Discover scans the page surface for marked zone regions and materializes
// them as a fresh Page in canonical order (header, content, footer;
// table-added types last, stable otherwise).
//
// Regions declaring a type unknown to the constraint table are reported
// through the error façade and excluded; the scan never aborts on a single
// bad region. Discovery also applies identification and constraint-bound
// markers to each region so later passes and external styling can recognize
// zones. Re-running discovery on an already-initialized page is harmless:
// all markers are idempotent and ids are preserved.
func (e *Engine) Discover() *Page {
	page := &Page{}

	for _, r := range e.surf.Regions() {
		prof, ok := e.table.Profile(Type(r.Kind()))
		if !ok {
			e.reporter.LogError(
				errors.New(errors.ErrCodeUnknownZoneType, "unknown zone type: %q", r.Kind()),
				"zone discovery",
			)
			continue
		}

		h := surface.PxToMM(r.HeightPx())
		if prof.Adjustable {
			h = prof.Clamp(h)
		}

		z := &Zone{
			ID:            e.resolveID(r),
			Type:          Type(r.Kind()),
			Constraints:   prof,
			CurrentHeight: h,
			Region:        r,
		}
		e.mark(z)
		page.Zones = append(page.Zones, z)
	}

	sort.SliceStable(page.Zones, func(i, j int) bool {
		return orderOf(page.Zones[i].Type) < orderOf(page.Zones[j].Type)
	})

	e.logger.Debug("discovered zones", "count", len(page.Zones))
	return page
}

// resolveID returns the region's existing stable identity, synthesizing
// and assigning one when absent. Synthesized ids only need to be unique
// within one page at one time.
func (e *Engine) resolveID(r surface.Region) string {
	if id := r.ID(); id != "" {
		return id
	}
	id := fmt.Sprintf("zone-%s-%s", r.Kind(), uuid.NewString()[:8])
	r.SetID(id)
	return id
}

// mark applies the zone's identification and constraint markers to its
// region. Re-applying identical markers must not corrupt state.
func (e *Engine) mark(z *Zone) {
	r := z.Region
	r.AddClass(surface.ClassZone)
	r.AddClass(surface.ClassZonePrefix + string(z.Type))
	r.SetAttr(surface.AttrZoneID, z.ID)
	r.SetAttr(surface.AttrZoneType, string(z.Type))
	if z.Constraints.Adjustable {
		r.SetAttr(surface.AttrZoneMin, formatMM(z.Constraints.MinHeight))
		r.SetAttr(surface.AttrZoneMax, formatMM(z.Constraints.MaxHeight))
	}
}

// formatMM renders a millimeter value for presentation attributes.
func formatMM(mm float64) string {
	return strconv.FormatFloat(mm, 'f', -1, 64)
}
