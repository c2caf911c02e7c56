// Package pkg provides the core libraries for Pagezone page layout management.
//
// # Overview
//
// Pagezone manages the vertical zones of a fixed-height A4 page: a header,
// a content area, and a footer share a 297mm height budget, and each zone
// carries a constraint profile bounding how it may be resized. The pkg
// directory is organized into these areas:
//
//  1. [zone] - Domain logic (discovery, constraint resolution, validation)
//  2. [surface] - Page surface abstraction and the JSON document format
//  3. [interact] - Edit-mode gating, adjust/reset gestures, drag sessions
//  4. [snapshot] - Named zone snapshots (memory, file, redis, mongo stores)
//  5. [render] - SVG rendering of a resolved layout
//  6. [uistate] - Persistent UI flags such as edit mode
//  7. [observability] - Pluggable hooks for zone and store events
//  8. [errors] - Structured errors with stable codes
//
// # Architecture
//
// The typical data flow through Pagezone:
//
//	Page Document (JSON)
//	         ↓
//	    [surface] package (marked regions, px/mm conversion)
//	         ↓
//	    [zone] package (discover zones, resolve heights against constraints)
//	         ↓
//	    [interact] package (gestures, drags, snapshot application)
//	         ↓
//	    SVG output / HTTP API / TUI editor
//
// # Quick Start
//
// Build an engine over a page document and resize a zone:
//
//	doc, _ := surface.ReadDocumentFile("page.json")
//	eng := zone.New(doc.Surface())
//	page, _ := eng.InitializeZones()
//	eng.SetZoneHeight(page, page.ZoneByType(zone.TypeContent), 200)
//
// See the package documentation of each subpackage for details.
package pkg
