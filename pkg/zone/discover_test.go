package zone

import (
	"strings"
	"testing"

	"github.com/mlietz/pagezone/pkg/errors"
	"github.com/mlietz/pagezone/pkg/surface"
)

func TestDiscoverOrdersCanonically(t *testing.T) {
	// Document order is footer, header, content; canonical order is not.
	s := testSurface(
		regionSpec{"footer", 40},
		regionSpec{"header", 60},
		regionSpec{"content", 180},
	)
	page := New(s).Discover()

	want := []Type{TypeHeader, TypeContent, TypeFooter}
	if len(page.Zones) != len(want) {
		t.Fatalf("zones = %d, want %d", len(page.Zones), len(want))
	}
	for i, z := range page.Zones {
		if z.Type != want[i] {
			t.Errorf("zone %d type = %s, want %s", i, z.Type, want[i])
		}
	}
}

func TestDiscoverSkipsUnknownType(t *testing.T) {
	s := testSurface(
		regionSpec{"header", 60},
		regionSpec{"sidebar", 100},
		regionSpec{"content", 180},
	)
	rep := &recordingReporter{}
	page := New(s, WithReporter(rep)).Discover()

	if len(page.Zones) != 2 {
		t.Fatalf("zones = %d, want 2 (sidebar excluded)", len(page.Zones))
	}
	if len(rep.faults) != 1 {
		t.Fatalf("faults = %d, want 1", len(rep.faults))
	}
	if !errors.Is(rep.faults[0], errors.ErrCodeUnknownZoneType) {
		t.Errorf("fault = %v, want UNKNOWN_ZONE_TYPE", rep.faults[0])
	}
	if rep.contexts[0] != "zone discovery" {
		t.Errorf("fault context = %q, want zone discovery", rep.contexts[0])
	}
}

func TestDiscoverAssignsIDs(t *testing.T) {
	s := standardSurface()
	s.MemRegions()[0].SetID("masthead")

	page := New(s).Discover()

	if page.Zones[0].ID != "masthead" {
		t.Errorf("existing id should be kept, got %q", page.Zones[0].ID)
	}
	if !strings.HasPrefix(page.Zones[1].ID, "zone-content-") {
		t.Errorf("synthesized id = %q, want zone-content- prefix", page.Zones[1].ID)
	}

	// Synthesized ids are unique within the page.
	seen := map[string]bool{}
	for _, z := range page.Zones {
		if seen[z.ID] {
			t.Errorf("duplicate zone id %q", z.ID)
		}
		seen[z.ID] = true
	}
}

func TestDiscoverIdempotent(t *testing.T) {
	s := standardSurface()
	eng := New(s)

	first := eng.Discover()
	second := eng.Discover()

	if len(first.Zones) != len(second.Zones) {
		t.Fatalf("zone count drifted: %d then %d", len(first.Zones), len(second.Zones))
	}
	for i := range first.Zones {
		a, b := first.Zones[i], second.Zones[i]
		if a.ID != b.ID {
			t.Errorf("zone %d id drifted: %q then %q", i, a.ID, b.ID)
		}
		if a.Type != b.Type {
			t.Errorf("zone %d type drifted: %s then %s", i, a.Type, b.Type)
		}
		if !approx(a.CurrentHeight, b.CurrentHeight) {
			t.Errorf("zone %d height drifted: %v then %v", i, a.CurrentHeight, b.CurrentHeight)
		}
	}
}

func TestDiscoverClampsAdjustableHeights(t *testing.T) {
	// Content renders at 100mm on the surface, below its 150mm minimum.
	s := testSurface(
		regionSpec{"header", 60},
		regionSpec{"content", 100},
	)
	page := New(s).Discover()

	content := page.ZoneByType(TypeContent)
	if !approx(content.CurrentHeight, 150) {
		t.Errorf("content height = %v, want clamped to 150", content.CurrentHeight)
	}

	// Non-adjustable zones keep their rendered height as-is.
	header := page.ZoneByType(TypeHeader)
	if !approx(header.CurrentHeight, 60) {
		t.Errorf("header height = %v, want 60", header.CurrentHeight)
	}
}

func TestDiscoverMarksRegions(t *testing.T) {
	s := standardSurface()
	page := New(s).Discover()

	content := page.ZoneByType(TypeContent)
	r := content.Region

	if !r.HasClass(surface.ClassZone) || !r.HasClass(surface.ClassZonePrefix+"content") {
		t.Error("content region should carry zone classes")
	}
	if v, _ := r.Attr(surface.AttrZoneType); v != "content" {
		t.Errorf("type attr = %q, want content", v)
	}
	if v, _ := r.Attr(surface.AttrZoneID); v != content.ID {
		t.Errorf("id attr = %q, want %q", v, content.ID)
	}
	if v, _ := r.Attr(surface.AttrZoneMin); v != "150" {
		t.Errorf("min attr = %q, want 150", v)
	}
	if v, _ := r.Attr(surface.AttrZoneMax); v != "220" {
		t.Errorf("max attr = %q, want 220", v)
	}

	// Non-adjustable zones carry no bound markers.
	header := page.ZoneByType(TypeHeader)
	if _, ok := header.Region.Attr(surface.AttrZoneMin); ok {
		t.Error("header region should not carry bound markers")
	}
}

func TestDiscoverWithCustomTable(t *testing.T) {
	table := DefaultTable()
	table["sidebar"] = Profile{Adjustable: true, MinHeight: 10, MaxHeight: 50, Overflow: OverflowHidden, Role: RoleFixed}

	s := testSurface(
		regionSpec{"sidebar", 30},
		regionSpec{"header", 60},
	)
	page := New(s, WithTable(table)).Discover()

	if len(page.Zones) != 2 {
		t.Fatalf("zones = %d, want 2", len(page.Zones))
	}
	// Table-added types sort after the built-in roles.
	if page.Zones[0].Type != TypeHeader || page.Zones[1].Type != "sidebar" {
		t.Errorf("order = %s, %s; want header, sidebar", page.Zones[0].Type, page.Zones[1].Type)
	}
}
