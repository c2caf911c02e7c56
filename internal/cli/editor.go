package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mlietz/pagezone/pkg/interact"
	"github.com/mlietz/pagezone/pkg/surface"
	"github.com/mlietz/pagezone/pkg/zone"
)

// Editor geometry: one terminal row represents rowMM millimeters of page,
// so the default A4 page spans about 30 rows.
const (
	rowMM      = 10.0
	adjustStep = 5.0 // keyboard resize step in millimeters
	headerRows = 3   // title, key help, blank line above the page area
)

// Editor styles
var (
	editorZoneStyle     = lipgloss.NewStyle().Foreground(colorWhite)
	editorSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	editorFixedStyle    = lipgloss.NewStyle().Foreground(colorDim)
	editorHandleStyle   = lipgloss.NewStyle().Foreground(colorGray)
	editorDragStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
)

// zoneSpan maps one zone to its row span in the page area.
type zoneSpan struct {
	id         string
	rows       int // rendered rows, >= 1
	adjustable bool
}

// editorModel is the bubbletea model for the interactive zone editor.
type editorModel struct {
	ctl     *interact.Controller
	surf    *surface.MemSurface
	outPath string

	cursor   int
	spans    []zoneSpan
	status   string
	warnings []string
	saved    bool
	drag     *interact.DragSession
}

// newEditorModel builds the editor over an initialized controller.
func newEditorModel(ctl *interact.Controller, surf *surface.MemSurface, outPath string) editorModel {
	m := editorModel{ctl: ctl, surf: surf, outPath: outPath}
	m.rebuildSpans()
	return m
}

func (m *editorModel) rebuildSpans() {
	page := m.ctl.Page()
	m.spans = m.spans[:0]
	for _, z := range page.Zones {
		rows := int(math.Round(z.CurrentHeight / rowMM))
		if rows < 1 {
			rows = 1
		}
		m.spans = append(m.spans, zoneSpan{
			id:         z.ID,
			rows:       rows,
			adjustable: z.Constraints.Adjustable,
		})
	}
	if m.cursor >= len(m.spans) {
		m.cursor = len(m.spans) - 1
	}
}

// zoneAtRow resolves a page-area row to the zone span covering it. The
// second result reports whether the row is the zone's lower edge (the drag
// handle).
func (m *editorModel) zoneAtRow(row int) (*zoneSpan, bool) {
	offset := 0
	for i := range m.spans {
		s := &m.spans[i]
		if row < offset+s.rows {
			return s, row == offset+s.rows-1
		}
		offset += s.rows
	}
	return nil, false
}

// rowToPx converts a terminal row to the drag protocol's pixel coordinate.
func rowToPx(row int) float64 {
	return surface.MMToPx(float64(row) * rowMM)
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m editorModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		if m.drag != nil {
			m.drag.Cancel()
			m.drag = nil
		}
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.spans)-1 {
			m.cursor++
		}

	case "e":
		m.ctl.SetEditMode(!m.ctl.EditMode())
		m.status = "edit mode off"
		if m.ctl.EditMode() {
			m.status = "edit mode on"
		}

	case "+", "=":
		m.adjust(adjustStep)

	case "-", "_":
		m.adjust(-adjustStep)

	case "r":
		if z := m.selectedZone(); z != nil {
			if m.ctl.Reset(z.ID) {
				m.status = fmt.Sprintf("%s reset to %.1fmm", z.Type, z.CurrentHeight)
			} else {
				m.status = m.rejectionReason(z)
			}
			m.rebuildSpans()
		}

	case "v":
		res := m.ctl.Engine().ValidatePageLayout()
		m.warnings = res.Warnings
		m.status = "layout is valid"
		if !res.Valid {
			m.status = fmt.Sprintf("%d layout warning(s)", len(res.Warnings))
		}

	case "s":
		doc := m.surf.Snapshot("")
		if err := surface.WriteDocumentFile(doc, m.outPath); err != nil {
			m.status = "save failed: " + err.Error()
		} else {
			m.saved = true
			m.status = "saved " + m.outPath
		}
	}
	return m, nil
}

func (m editorModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	row := msg.Y - headerRows

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.drag != nil {
			return m, nil
		}
		span, onHandle := m.zoneAtRow(row)
		if span == nil || !onHandle || !span.adjustable {
			return m, nil
		}
		d, err := m.ctl.BeginDrag(span.id, rowToPx(msg.Y))
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.drag = d
		m.status = "dragging " + span.id

	case tea.MouseActionMotion:
		if m.drag != nil {
			m.drag.Move(rowToPx(msg.Y))
			m.rebuildSpans()
		}

	case tea.MouseActionRelease:
		if m.drag != nil {
			id := m.drag.ZoneID()
			m.drag.End(rowToPx(msg.Y))
			m.drag = nil
			m.rebuildSpans()
			if z := m.ctl.Page().Zone(id); z != nil {
				m.status = fmt.Sprintf("%s committed at %.1fmm", z.Type, z.CurrentHeight)
			}
		}
	}
	return m, nil
}

// adjust applies a keyboard resize to the selected zone.
func (m *editorModel) adjust(delta float64) {
	z := m.selectedZone()
	if z == nil {
		return
	}
	if m.ctl.Adjust(z.ID, delta) {
		m.status = fmt.Sprintf("%s at %.1fmm", z.Type, z.CurrentHeight)
	} else {
		m.status = m.rejectionReason(z)
	}
	m.rebuildSpans()
}

func (m *editorModel) selectedZone() *zone.Zone {
	if m.cursor < 0 || m.cursor >= len(m.spans) {
		return nil
	}
	return m.ctl.Page().Zone(m.spans[m.cursor].id)
}

// rejectionReason explains why a gesture on the zone did not commit.
func (m *editorModel) rejectionReason(z *zone.Zone) string {
	switch {
	case !m.ctl.EditMode():
		return "edit mode is off (press e)"
	case !z.Constraints.Adjustable:
		return fmt.Sprintf("the %s zone is not adjustable", z.Type)
	default:
		return "change rejected: page budget exceeded"
	}
}

func (m editorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Page Zone Editor"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ select  +/- resize  r reset  e edit mode  v validate  s save  q quit"))
	b.WriteString("\n\n")

	page := m.ctl.Page()
	for i, z := range page.Zones {
		span := m.spans[i]
		m.renderZoneBlock(&b, z, span, i == m.cursor)
	}

	b.WriteString("\n")
	m.renderStatus(&b, page)
	return b.String()
}

// renderZoneBlock writes one zone's row span: a label row, filler rows,
// and a drag handle on the lower edge of adjustable zones.
func (m editorModel) renderZoneBlock(b *strings.Builder, z *zone.Zone, span zoneSpan, selected bool) {
	style := editorZoneStyle
	switch {
	case m.drag != nil && m.drag.ZoneID() == z.ID:
		style = editorDragStyle
	case selected:
		style = editorSelectedStyle
	case !z.Constraints.Adjustable:
		style = editorFixedStyle
	}

	label := fmt.Sprintf("▌ %-8s %7.1fmm", z.Type, z.CurrentHeight)
	if z.Constraints.Adjustable {
		label += fmt.Sprintf("  [%.0f-%.0f]", z.Constraints.MinHeight, z.Constraints.MaxHeight)
	}
	if selected {
		label += "  ◀"
	}
	b.WriteString(style.Render(label))
	b.WriteString("\n")

	for r := 1; r < span.rows-1; r++ {
		b.WriteString(style.Render("▌"))
		b.WriteString("\n")
	}

	if span.rows > 1 {
		if z.Constraints.Adjustable {
			b.WriteString(editorHandleStyle.Render("▌╌╌╌ drag ╌╌╌"))
		} else {
			b.WriteString(style.Render("▌"))
		}
		b.WriteString("\n")
	}
}

func (m editorModel) renderStatus(b *strings.Builder, page *zone.Page) {
	mode := StyleDim.Render("edit mode off")
	if m.ctl.EditMode() {
		mode = StyleSuccess.Render("edit mode on")
	}
	total := fmt.Sprintf("%.1f / %.0fmm", page.TotalHeight(), zone.PageHeightBudget)

	b.WriteString(mode)
	b.WriteString(StyleDim.Render("  ·  "))
	b.WriteString(StyleValue.Render(total))
	b.WriteString("\n")

	for _, w := range m.warnings {
		b.WriteString(StyleWarning.Render(iconWarning + " " + w))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(StyleDim.Render(m.status))
		b.WriteString("\n")
	}
}
