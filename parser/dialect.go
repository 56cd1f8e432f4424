package parser

// Dialect identifies which of the two supported specification families a
// document belongs to.
type Dialect int

const (
	// DialectUnknown is reported for documents carrying neither a swagger
	// nor an openapi marker.
	DialectUnknown Dialect = iota
	// DialectV2 is OpenAPI 2.0 (Swagger), marked by a root "swagger" key.
	DialectV2
	// DialectV3 is OpenAPI 3.x, marked by a root "openapi" key.
	DialectV3
)

// String returns a human readable dialect name.
func (d Dialect) String() string {
	switch d {
	case DialectV2:
		return "Swagger"
	case DialectV3:
		return "OpenAPI"
	default:
		return "unknown"
	}
}

// Schema ref prefixes per dialect
const (
	SchemasPathV2 = "#/definitions/"
	SchemasPathV3 = "#/components/schemas/"
)

// Document is a parsed specification. It has exactly two implementations,
// *V2Document and *V3Document, chosen once when the document is decoded.
type Document interface {
	Dialect() Dialect
	SpecVersion() string
	Title() string
	PathItems() *OrderedMap[*PathItem]
	RootSecurity() []SecurityRequirement
}

var (
	_ Document = (*V2Document)(nil)
	_ Document = (*V3Document)(nil)
)

// DialectView is the uniform projection of a Document that generation code
// works against. It is computed once per document and must be treated as
// read-only.
type DialectView struct {
	Dialect Dialect
	// Version is the raw value of the swagger/openapi marker, or "" when
	// the dialect could not be detected.
	Version string
	// SchemasPath is the ref prefix under which definitions live.
	SchemasPath         string
	Definitions         *OrderedMap[*Schema]
	Parameters          *OrderedMap[*Parameter]
	Responses           *OrderedMap[*Response]
	RequestBodies       *OrderedMap[*RequestBody]
	SecurityDefinitions *OrderedMap[*SecurityScheme]
}

// Recognized reports whether the view was built from a known dialect.
func (v DialectView) Recognized() bool {
	return v.Dialect != DialectUnknown && v.Version != ""
}

// Detect builds the DialectView of doc. A nil document yields an empty view
// whose Version is "".
func Detect(doc Document) DialectView {
	switch d := doc.(type) {
	case *V2Document:
		if d == nil {
			return DialectView{}
		}
		return DialectView{
			Dialect:             DialectV2,
			Version:             d.Swagger,
			SchemasPath:         SchemasPathV2,
			Definitions:         d.Definitions,
			Parameters:          d.Parameters,
			Responses:           d.Responses,
			SecurityDefinitions: d.SecurityDefinitions,
		}
	case *V3Document:
		if d == nil {
			return DialectView{}
		}
		view := DialectView{
			Dialect:     DialectV3,
			Version:     d.OpenAPI,
			SchemasPath: SchemasPathV3,
		}
		if c := d.Components; c != nil {
			view.Definitions = c.Schemas
			view.Parameters = c.Parameters
			view.Responses = c.Responses
			view.RequestBodies = c.RequestBodies
			view.SecurityDefinitions = c.SecuritySchemes
		}
		return view
	default:
		return DialectView{}
	}
}
