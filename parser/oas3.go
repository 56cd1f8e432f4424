package parser

// V3Document represents an OpenAPI Specification 3.x document
// Reference: https://spec.openapis.org/oas/v3.0.3.html
type V3Document struct {
	OpenAPI    string                 `yaml:"openapi"`
	Info       *Info                  `yaml:"info"`
	Paths      *OrderedMap[*PathItem] `yaml:"paths"`
	Components *Components            `yaml:"components,omitempty"`
	Security   []SecurityRequirement  `yaml:"security,omitempty"`
}

// Components holds the reusable objects of an OAS 3.x document.
type Components struct {
	Schemas         *OrderedMap[*Schema]         `yaml:"schemas,omitempty"`
	Parameters      *OrderedMap[*Parameter]      `yaml:"parameters,omitempty"`
	Responses       *OrderedMap[*Response]       `yaml:"responses,omitempty"`
	RequestBodies   *OrderedMap[*RequestBody]    `yaml:"requestBodies,omitempty"`
	SecuritySchemes *OrderedMap[*SecurityScheme] `yaml:"securitySchemes,omitempty"`
}

// Dialect implements Document.
func (*V3Document) Dialect() Dialect { return DialectV3 }

// SpecVersion implements Document.
func (d *V3Document) SpecVersion() string { return d.OpenAPI }

// PathItems implements Document.
func (d *V3Document) PathItems() *OrderedMap[*PathItem] { return d.Paths }

// RootSecurity implements Document.
func (d *V3Document) RootSecurity() []SecurityRequirement { return d.Security }

// Title implements Document.
func (d *V3Document) Title() string {
	if d.Info == nil {
		return ""
	}
	return d.Info.Title
}
