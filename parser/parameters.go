package parser

// Parameter describes a single operation parameter. OAS 2.0 parameters
// carry Type directly; OAS 3.x parameters carry it under Schema. Body
// parameters (OAS 2.0) reference their payload through Schema.
type Parameter struct {
	Ref         string  `yaml:"$ref,omitempty"`
	Name        string  `yaml:"name,omitempty"`
	In          string  `yaml:"in,omitempty"` // "query", "header", "path", "cookie", "formData", "body"
	Description string  `yaml:"description,omitempty"`
	Required    bool    `yaml:"required,omitempty"`
	Type        string  `yaml:"type,omitempty"`   // OAS 2.0
	Format      string  `yaml:"format,omitempty"` // OAS 2.0
	Items       *Schema `yaml:"items,omitempty"`  // OAS 2.0
	Schema      *Schema `yaml:"schema,omitempty"`
}

// ParamInBody is the location of an OAS 2.0 body parameter.
const ParamInBody = "body"

// PrimitiveType returns the declared primitive type of the parameter,
// preferring the OAS 2.0 type field over schema.type. The schema of a body
// parameter describes the payload, not a primitive, and is never consulted.
func (p *Parameter) PrimitiveType() string {
	if p == nil {
		return ""
	}
	if p.Type != "" {
		return p.Type
	}
	if p.In != ParamInBody && p.Schema != nil && p.Schema.Ref == "" {
		return p.Schema.Type
	}
	return ""
}

// RefTarget returns the $ref carried by the parameter itself or, failing
// that, by its schema.
func (p *Parameter) RefTarget() string {
	if p == nil {
		return ""
	}
	if p.Ref != "" {
		return p.Ref
	}
	if p.Schema != nil {
		return p.Schema.Ref
	}
	return ""
}
