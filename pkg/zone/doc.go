// Package zone implements the page zone layout engine.
//
// A page is a fixed-height surface (A4 portrait, 297mm) divided into named
// vertical zones (header, content, footer), each governed by a constraint
// profile. The engine discovers zones on a layout surface, resolves height
// changes against per-zone bounds and the whole-page budget, audits layouts
// for structural problems, and serializes zone state for persistence.
//
// # Components
//
//   - Constraint model: an immutable [Table] mapping zone type to [Profile]
//     (adjustability, min/max bounds, overflow policy, layout role). Engines
//     own their table; alternate tables can be injected for testing or
//     loaded from TOML via [LoadTable].
//   - Discovery: [Engine.Discover] scans the surface for marked regions,
//     resolves each declared type against the table, assigns stable ids,
//     applies idempotent presentation markers, and orders zones canonically
//     (header, content, footer).
//   - Height resolver: [Engine.SetZoneHeight] is the single authoritative
//     mutator of a zone's height. It clamps the request into the zone's
//     bounds, shrinks further if the page budget would be exceeded, and
//     rejects with a user-facing warning when even the zone's minimum
//     cannot fit.
//   - Validation: [Engine.ValidatePageLayout] is a read-only audit that
//     reports missing content zones, budget overflow, and vertical overlap.
//     Warnings are advisory; they never block.
//   - Snapshots: [Engine.GetZoneData] / [Engine.ApplyZoneData] round-trip a
//     flat per-zone snapshot through the resolver.
//
// # Usage
//
//	eng := zone.New(surf, zone.WithLogger(logger))
//	page, err := eng.InitializeZones()
//	if err != nil {
//	    return err
//	}
//	z := page.ZoneByType(zone.TypeContent)
//	eng.SetZoneHeight(page, z, 200) // mm
//
// All engine operations are synchronous and single-threaded by design: the
// resolver's clamp-then-commit sequence is the sole mutation path, so no
// locking is needed around zone state.
package zone
