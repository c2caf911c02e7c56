package zone

import (
	"strings"
	"testing"

	"github.com/mlietz/pagezone/pkg/errors"
	"github.com/mlietz/pagezone/pkg/surface"
)

func TestSetZoneHeightWithinBudget(t *testing.T) {
	eng := New(standardSurface())
	page := eng.Discover()
	content := page.ZoneByType(TypeContent)

	if !eng.SetZoneHeight(page, content, 190) {
		t.Fatal("resize within bounds and budget should succeed")
	}
	if !approx(content.CurrentHeight, 190) {
		t.Errorf("height = %v, want 190", content.CurrentHeight)
	}
	if !approx(page.TotalHeight(), 290) {
		t.Errorf("total = %v, want 290", page.TotalHeight())
	}
}

func TestSetZoneHeightClampsToBounds(t *testing.T) {
	tests := []struct {
		name      string
		contentMM float64
		zoneType  Type
		requested float64
		want      float64
	}{
		{"ContentBelowMin", 180, TypeContent, 50, 150},
		{"FooterAboveMaxWithinBudget", 150, TypeFooter, 120, 80},
		{"FooterBelowMin", 180, TypeFooter, 5, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := New(testSurface(
				regionSpec{"header", 60},
				regionSpec{"content", tt.contentMM},
				regionSpec{"footer", 40},
			))
			page := eng.Discover()
			z := page.ZoneByType(tt.zoneType)
			if !eng.SetZoneHeight(page, z, tt.requested) {
				t.Fatalf("SetZoneHeight(%v) should succeed", tt.requested)
			}
			if !approx(z.CurrentHeight, tt.want) {
				t.Errorf("height = %v, want %v", z.CurrentHeight, tt.want)
			}
			if z.CurrentHeight < z.Constraints.MinHeight || z.CurrentHeight > z.Constraints.MaxHeight {
				t.Errorf("height %v escaped bounds [%v, %v]",
					z.CurrentHeight, z.Constraints.MinHeight, z.Constraints.MaxHeight)
			}
		})
	}
}

// Header 60 + content 180 + footer 40 = 280. Requesting content 250 clamps
// to 220, which would total 320; the 23mm overflow shrinks the content zone
// itself to 197, still above its 150 minimum.
func TestSetZoneHeightShrinksForBudget(t *testing.T) {
	eng := New(standardSurface())
	page := eng.Discover()
	content := page.ZoneByType(TypeContent)

	if !eng.SetZoneHeight(page, content, 250) {
		t.Fatal("resize should succeed by shrinking to fit the budget")
	}
	if !approx(content.CurrentHeight, 197) {
		t.Errorf("height = %v, want 197 (220 clamped minus 23 overflow)", content.CurrentHeight)
	}
	if page.TotalHeight() > PageHeightBudget+1e-9 {
		t.Errorf("total = %v, exceeds budget", page.TotalHeight())
	}
}

// With a 120mm header and a 60mm footer, the other zones occupy 180mm;
// even at its 150mm minimum the content zone cannot fit a request of 260,
// so the call fails, state is unchanged, and a user warning is issued.
func TestSetZoneHeightRejectsBelowMin(t *testing.T) {
	s := testSurface(
		regionSpec{"header", 120},
		regionSpec{"content", 150},
		regionSpec{"footer", 60},
	)
	rep := &recordingReporter{}
	eng := New(s, WithReporter(rep))
	page := eng.Discover()

	content := page.ZoneByType(TypeContent)
	before := content.CurrentHeight

	if eng.SetZoneHeight(page, content, 260) {
		t.Fatal("resize that cannot fit even at minimum should fail")
	}
	if !approx(content.CurrentHeight, before) {
		t.Errorf("height = %v, want unchanged %v", content.CurrentHeight, before)
	}
	if len(rep.messages) != 1 {
		t.Fatalf("user messages = %d, want 1", len(rep.messages))
	}
	if !strings.Contains(rep.messages[0], "exceed the page boundaries") {
		t.Errorf("message = %q, want page-boundary wording", rep.messages[0])
	}
	if rep.severities[0] != errors.SeverityWarning {
		t.Errorf("severity = %v, want warning", rep.severities[0])
	}
}

func TestSetZoneHeightNonAdjustable(t *testing.T) {
	rep := &recordingReporter{}
	eng := New(standardSurface(), WithReporter(rep))
	page := eng.Discover()
	header := page.ZoneByType(TypeHeader)

	if eng.SetZoneHeight(page, header, 120) {
		t.Fatal("resizing a non-adjustable zone should report false")
	}
	if !approx(header.CurrentHeight, 60) {
		t.Errorf("height = %v, want unchanged 60", header.CurrentHeight)
	}
	// A no-op is not a constraint violation: no user warning.
	if len(rep.messages) != 0 {
		t.Errorf("user messages = %v, want none", rep.messages)
	}
}

func TestSetZoneHeightRefreshesPresentation(t *testing.T) {
	s := standardSurface()
	eng := New(s)
	page := eng.Discover()

	// Flexible content pins both bound hints to the committed height.
	content := page.ZoneByType(TypeContent)
	eng.SetZoneHeight(page, content, 190)
	cr := content.Region.(*surface.MemRegion)
	if !approx(cr.HeightPx(), surface.MMToPx(190)) {
		t.Errorf("content rendered height = %v px, want %v px", cr.HeightPx(), surface.MMToPx(190))
	}
	if v, _ := cr.Attr(surface.AttrZoneHeight); v != "190.0mm" {
		t.Errorf("height readout = %q, want 190.0mm", v)
	}

	// Fixed-role footer takes a single height hint.
	footer := page.ZoneByType(TypeFooter)
	eng.SetZoneHeight(page, footer, 45)
	fr := footer.Region.(*surface.MemRegion)
	if !approx(fr.HeightPx(), surface.MMToPx(45)) {
		t.Errorf("footer rendered height = %v px, want %v px", fr.HeightPx(), surface.MMToPx(45))
	}
}

func TestResetZoneHeight(t *testing.T) {
	eng := New(standardSurface())
	page := eng.Discover()

	// Fixed-role footer resets to the midpoint of [20, 80].
	footer := page.ZoneByType(TypeFooter)
	if !eng.ResetZoneHeight(page, footer) {
		t.Fatal("footer reset should succeed")
	}
	if !approx(footer.CurrentHeight, 50) {
		t.Errorf("footer height = %v, want 50", footer.CurrentHeight)
	}

	// Flexible content resets to its minimum.
	content := page.ZoneByType(TypeContent)
	if !eng.ResetZoneHeight(page, content) {
		t.Fatal("content reset should succeed")
	}
	if !approx(content.CurrentHeight, 150) {
		t.Errorf("content height = %v, want 150", content.CurrentHeight)
	}
}

// After any sequence of resolver calls, every adjustable zone stays inside
// its bounds and the page total stays inside the budget.
func TestResolverInvariantsUnderSequence(t *testing.T) {
	eng := New(standardSurface())
	page := eng.Discover()
	content := page.ZoneByType(TypeContent)
	footer := page.ZoneByType(TypeFooter)

	requests := []struct {
		zone *Zone
		mm   float64
	}{
		{content, 250}, {footer, 90}, {content, 10}, {footer, -5},
		{content, 220}, {footer, 80}, {content, 500}, {footer, 30},
		{content, 151.5}, {footer, 79.9},
	}

	for i, req := range requests {
		before := req.zone.CurrentHeight
		ok := eng.SetZoneHeight(page, req.zone, req.mm)
		if !ok && !approx(req.zone.CurrentHeight, before) {
			t.Fatalf("request %d: failed call mutated height %v -> %v", i, before, req.zone.CurrentHeight)
		}
		for _, z := range page.Zones {
			if !z.Constraints.Adjustable {
				continue
			}
			if z.CurrentHeight < z.Constraints.MinHeight-1e-9 || z.CurrentHeight > z.Constraints.MaxHeight+1e-9 {
				t.Fatalf("request %d: zone %s height %v escaped bounds", i, z.Type, z.CurrentHeight)
			}
		}
		if page.TotalHeight() > PageHeightBudget+1e-9 {
			t.Fatalf("request %d: total %v exceeds budget", i, page.TotalHeight())
		}
	}
}
