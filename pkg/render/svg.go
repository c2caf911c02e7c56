package render

import (
	"bytes"
	"fmt"

	"github.com/mlietz/pagezone/pkg/zone"
)

// PageWidthMM is the A4 portrait page width the renderer draws.
const PageWidthMM = 210.0

// zoneFills maps zone types to fill colors; unknown types fall back to grey.
var zoneFills = map[zone.Type]string{
	zone.TypeHeader:  "#dbeafe",
	zone.TypeContent: "#ffffff",
	zone.TypeFooter:  "#fee2e2",
}

const fallbackFill = "#e5e7eb"

// SVGOption configures the SVG renderer.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title      string
	showBounds bool
	scale      float64 // output px per mm
}

// WithTitle sets a title annotation above the page frame.
func WithTitle(title string) SVGOption {
	return func(r *svgRenderer) { r.title = title }
}

// WithBounds annotates adjustable zones with their constraint bounds.
func WithBounds() SVGOption {
	return func(r *svgRenderer) { r.showBounds = true }
}

// WithScale sets the output pixel density per millimeter. The default of
// 2 yields a 420x594 image; the viewBox stays in millimeters regardless.
func WithScale(pxPerMM float64) SVGOption {
	return func(r *svgRenderer) {
		if pxPerMM > 0 {
			r.scale = pxPerMM
		}
	}
}

// SVG renders the page's zones as a standalone SVG document.
func SVG(page *zone.Page, opts ...SVGOption) []byte {
	r := svgRenderer{scale: 2}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		PageWidthMM, zone.PageHeightBudget, PageWidthMM*r.scale, zone.PageHeightBudget*r.scale)

	// Page frame.
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.0f" height="%.0f" fill="#fafafa" stroke="#111827" stroke-width="0.5"/>`+"\n",
		PageWidthMM, zone.PageHeightBudget)

	if r.title != "" {
		fmt.Fprintf(&buf, `  <title>%s</title>`+"\n", escapeText(r.title))
	}

	for _, z := range page.Zones {
		renderZone(&buf, &r, z)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderZone(buf *bytes.Buffer, r *svgRenderer, z *zone.Zone) {
	fill, ok := zoneFills[z.Type]
	if !ok {
		fill = fallbackFill
	}

	fmt.Fprintf(buf, `  <rect id="zone-rect-%s" x="0" y="%.2f" width="%.0f" height="%.2f" fill="%s" stroke="#6b7280" stroke-width="0.3"/>`+"\n",
		escapeText(z.ID), z.Top(), PageWidthMM, z.CurrentHeight, fill)

	label := fmt.Sprintf("%s %.1fmm", z.Type, z.CurrentHeight)
	if r.showBounds && z.Constraints.Adjustable {
		label = fmt.Sprintf("%s [%.0f-%.0f]", label, z.Constraints.MinHeight, z.Constraints.MaxHeight)
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.2f" font-family="sans-serif" font-size="5" text-anchor="middle" fill="#111827">%s</text>`+"\n",
		PageWidthMM/2, z.Top()+z.CurrentHeight/2, escapeText(label))
}

// escapeText escapes the XML special characters in labels.
func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
