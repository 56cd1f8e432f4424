// Package refs classifies local JSON references found in OpenAPI documents.
//
// Only the three-segment shapes the generator understands are recognized:
//
//	#/definitions/Pet             (OAS 2.0)
//	#/parameters/Limit            (OAS 2.0)
//	#/components/schemas/Pet      (OAS 3.x)
//	#/components/parameters/Limit (OAS 3.x)
//	#/components/requestBodies/X  (OAS 3.x)
//
// The "components" segment of OAS 3.x refs is dropped before matching, so
// both dialects map onto the same kinds.
package refs

import "strings"

// Kind categorizes what a reference points at.
type Kind int

const (
	// KindOther is a well-formed reference into a section the generator
	// does not resolve (securitySchemes, examples, ...).
	KindOther Kind = iota
	// KindDefinition points at a schema definition.
	KindDefinition
	// KindParameter points at a shared parameter.
	KindParameter
	// KindResponse points at a shared response.
	KindResponse
	// KindRequestBody points at a shared OAS 3.x request body.
	KindRequestBody
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindDefinition:
		return "definition"
	case KindParameter:
		return "parameter"
	case KindResponse:
		return "response"
	case KindRequestBody:
		return "requestBody"
	default:
		return "other"
	}
}

// Ref is a classified reference.
type Ref struct {
	Kind Kind
	// Name is the last path segment, taken verbatim.
	Name string
}

// Parse classifies ref. It reports false when the reference does not have
// exactly three segments once a leading "components" segment is dropped;
// it never panics.
func Parse(ref string) (Ref, bool) {
	parts := strings.Split(ref, "/")
	if len(parts) > 1 && parts[1] == "components" {
		parts = append(parts[:1], parts[2:]...)
	}
	if len(parts) != 3 {
		return Ref{}, false
	}

	r := Ref{Name: parts[2]}
	switch parts[1] {
	case "definitions", "schemas":
		r.Kind = KindDefinition
	case "parameters":
		r.Kind = KindParameter
	case "responses":
		r.Kind = KindResponse
	case "requestBodies":
		r.Kind = KindRequestBody
	default:
		r.Kind = KindOther
	}
	return r, true
}

// DefinitionName returns the definition a reference points at, if any.
func DefinitionName(ref string) (string, bool) {
	r, ok := Parse(ref)
	if !ok || r.Kind != KindDefinition {
		return "", false
	}
	return r.Name, true
}
