package zone

import (
	"fmt"

	"github.com/mlietz/pagezone/pkg/observability"
)

// ValidationResult is the outcome of a page layout audit.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Warnings []string `json:"warnings,omitempty"`
}

// overlapTolerance absorbs float noise from the px/mm conversions so a
// zone whose top computes a hair under the previous bottom is not flagged.
const overlapTolerance = 1e-6

// ValidatePageLayout audits the page's zones for structural problems: a
// missing content zone, total height exceeding the page budget, and
// vertical overlap between consecutive zones in canonical order.
//
// The audit is read-only and runs on a fresh discovery pass, so it is safe
// to call at any time regardless of resolver state. Warnings are advisory:
// they are broadcast on the notification channel when present, but they
// never block rendering or subsequent operations.
func (e *Engine) ValidatePageLayout() ValidationResult {
	page := e.Discover()
	var warnings []string

	if page.ZoneByType(TypeContent) == nil {
		warnings = append(warnings, "page has no content zone")
	}

	if total := page.TotalHeight(); total > PageHeightBudget {
		warnings = append(warnings,
			fmt.Sprintf("zones occupy %.1fmm of the %.0fmm page height budget", total, PageHeightBudget))
	}

	for i := 1; i < len(page.Zones); i++ {
		prev, next := page.Zones[i-1], page.Zones[i]
		if next.Top()+overlapTolerance < prev.Bottom() {
			warnings = append(warnings,
				fmt.Sprintf("the %s zone (top %.1fmm) overlaps the %s zone (bottom %.1fmm)",
					next.Type, next.Top(), prev.Type, prev.Bottom()))
		}
	}

	if len(warnings) > 0 {
		observability.Zones().OnValidationWarning(warnings)
	}

	return ValidationResult{Valid: len(warnings) == 0, Warnings: warnings}
}
