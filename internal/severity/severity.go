// Package severity provides the severity levels attached to generation
// issues.
//
// The levels are ordered from least to most severe:
// Info < Warning < Critical
//
// Only Critical issues are fatal; the generator records Info and Warning
// issues and carries on.
package severity

// Severity indicates how serious a generation issue is.
type Severity int

const (
	// SeverityInfo indicates informational messages about processing choices,
	// such as a document without definitions.
	SeverityInfo Severity = iota

	// SeverityWarning indicates a recoverable problem: the offending
	// parameter, response type or operation is skipped or defaulted.
	SeverityWarning

	// SeverityCritical indicates a problem that stops generation.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so severities serialize by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
