package generator

import (
	"bytes"
	"fmt"

	"github.com/oasgen/genapi/parser"
)

// modelProperty is one property of an object definition, in source order.
type modelProperty struct {
	Name   string
	Schema *parser.Schema
}

// modelData is the input of the model template.
type modelData struct {
	Name       string
	Schema     *parser.Schema
	Strict     bool
	IsObject   bool
	Properties []modelProperty
}

// renderDefinition renders the io-ts model file of one definition.
func renderDefinition(name string, schema *parser.Schema, strict bool) ([]byte, []renderWarning, error) {
	if schema == nil {
		schema = &parser.Schema{}
	}
	data := modelData{
		Name:     name,
		Schema:   schema,
		Strict:   strict,
		IsObject: isObjectSchema(schema),
	}
	for propName, prop := range schema.Properties.All() {
		if prop == nil {
			prop = &parser.Schema{}
		}
		data.Properties = append(data.Properties, modelProperty{Name: propName, Schema: prop})
	}

	state := newRenderState(name)
	tmpl, err := state.bind()
	if err != nil {
		return nil, nil, fmt.Errorf("binding templates for %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "model", data); err != nil {
		return nil, nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	return formatTS(buf.Bytes()), state.warnings, nil
}

// isObjectSchema reports whether a definition renders as a pair of
// required/optional interfaces rather than a single codec expression.
func isObjectSchema(schema *parser.Schema) bool {
	if schema.Ref != "" || len(schema.AllOf) > 0 || len(schema.OneOf) > 0 || len(schema.AnyOf) > 0 {
		return false
	}
	if schema.Properties.Len() > 0 {
		return true
	}
	return getSchemaType(schema) == "object" && schema.AdditionalProperties == nil
}
