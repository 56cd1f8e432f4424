package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oasgen/genapi/internal/severity"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		want  string
	}{
		{
			name:  "info",
			issue: Issue{Path: "definitions", Message: "no definitions found", Severity: severity.SeverityInfo},
			want:  "ℹ definitions: no definitions found",
		},
		{
			name: "warning with operation and ref",
			issue: Issue{
				Path:      "paths./pets.get",
				Message:   "unrecognized ref type",
				Severity:  severity.SeverityWarning,
				Operation: "listPets",
				Ref:       "#/foo/bar",
			},
			want: "⚠ paths./pets.get (operation: listPets): unrecognized ref type\n    Ref: #/foo/bar",
		},
		{
			name:  "critical",
			issue: Issue{Path: "$", Message: "unrecognized specification", Severity: severity.SeverityCritical},
			want:  "✗ $: unrecognized specification",
		},
		{
			name:  "unknown severity",
			issue: Issue{Path: "x", Message: "y", Severity: severity.Severity(9)},
			want:  "? x: y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.issue.String())
		})
	}
}
