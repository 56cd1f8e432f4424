// Package issues provides the issue record collected while generating code.
package issues

import (
	"fmt"

	"github.com/oasgen/genapi/internal/severity"
)

// Issue represents a single problem found during generation.
type Issue struct {
	// Path locates the problem in the document (e.g., "paths./pets.get")
	Path string `json:"path"`
	// Message is a human-readable description of the issue
	Message string `json:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity"`
	// Operation is the operationId involved, when there is one
	Operation string `json:"operation,omitempty"`
	// Ref is the offending $ref value, when there is one
	Ref string `json:"ref,omitempty"`
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	location := i.Path
	if i.Operation != "" {
		location = fmt.Sprintf("%s (operation: %s)", location, i.Operation)
	}
	result := fmt.Sprintf("%s %s: %s", symbol, location, i.Message)
	if i.Ref != "" {
		result += fmt.Sprintf("\n    Ref: %s", i.Ref)
	}
	return result
}
