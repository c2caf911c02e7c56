package errors

// Severity classifies user-facing messages emitted through the reporting
// façade. Constraint violations during interactive resizing are warnings:
// they are expected, recoverable input, not faults.
type Severity int

const (
	// SeverityInfo is for informational user messages.
	SeverityInfo Severity = iota

	// SeverityWarning is for recoverable, user-correctable conditions
	// (e.g. a resize that would exceed the page boundaries).
	SeverityWarning

	// SeverityError is for conditions that abort the requested operation.
	SeverityError
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}
