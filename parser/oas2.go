package parser

// V2Document represents an OpenAPI Specification 2.0 (Swagger) document
// Reference: https://spec.openapis.org/oas/v2.0.html
type V2Document struct {
	Swagger             string                       `yaml:"swagger"`
	Info                *Info                        `yaml:"info"`
	Paths               *OrderedMap[*PathItem]       `yaml:"paths"`
	Definitions         *OrderedMap[*Schema]         `yaml:"definitions,omitempty"`
	Parameters          *OrderedMap[*Parameter]      `yaml:"parameters,omitempty"`
	Responses           *OrderedMap[*Response]       `yaml:"responses,omitempty"`
	SecurityDefinitions *OrderedMap[*SecurityScheme] `yaml:"securityDefinitions,omitempty"`
	Security            []SecurityRequirement        `yaml:"security,omitempty"`
}

// Dialect implements Document.
func (*V2Document) Dialect() Dialect { return DialectV2 }

// SpecVersion implements Document.
func (d *V2Document) SpecVersion() string { return d.Swagger }

// PathItems implements Document.
func (d *V2Document) PathItems() *OrderedMap[*PathItem] { return d.Paths }

// RootSecurity implements Document.
func (d *V2Document) RootSecurity() []SecurityRequirement { return d.Security }

// Title implements Document.
func (d *V2Document) Title() string {
	if d.Info == nil {
		return ""
	}
	return d.Info.Title
}
