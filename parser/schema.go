package parser

import (
	"fmt"
	"strconv"

	"go.yaml.in/yaml/v4"
)

// Schema represents a Schema Object (definitions in OAS 2.0,
// components.schemas in OAS 3.x). Only the keywords the generator consumes
// are decoded; everything else is retained in the source node for the
// ordered JSON export.
type Schema struct {
	Ref         string `yaml:"$ref,omitempty"`
	Type        string `yaml:"type,omitempty"`
	Format      string `yaml:"format,omitempty"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`

	// Object keywords
	Properties           *OrderedMap[*Schema]  `yaml:"properties,omitempty"`
	Required             []string              `yaml:"required,omitempty"`
	AdditionalProperties *AdditionalProperties `yaml:"additionalProperties,omitempty"`

	// Array keywords
	Items *Schema `yaml:"items,omitempty"`

	// Composition
	AllOf []*Schema `yaml:"allOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty"`

	// Validation keywords
	Enum             []string `yaml:"enum,omitempty"`
	Pattern          string   `yaml:"pattern,omitempty"`
	MinLength        *int     `yaml:"minLength,omitempty"`
	MaxLength        *int     `yaml:"maxLength,omitempty"`
	Minimum          *float64 `yaml:"minimum,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty"`
	ExclusiveMinimum bool     `yaml:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum bool     `yaml:"exclusiveMaximum,omitempty"`

	Default  any  `yaml:"default,omitempty"`
	Nullable bool `yaml:"nullable,omitempty"`
}

// UnmarshalYAML decodes a schema after normalizing the keywords whose shape
// changed across OAS versions:
//   - a 3.1 type array keeps its first non-null entry, and a "null" entry
//     marks the schema nullable;
//   - a 3.1 numeric exclusiveMinimum/exclusiveMaximum becomes the bound plus
//     the 2.0/3.0 boolean flag;
//   - a non-list "required" (a common 2.0 mistake on properties) is ignored.
//
// The source node is left untouched.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	type plain Schema
	if node.Kind != yaml.MappingNode {
		// 3.1 boolean schemas and tuple-style items constrain nothing the
		// generator models.
		return nil
	}

	normalized := *node
	normalized.Content = make([]*yaml.Node, 0, len(node.Content))
	var nullable bool
	var exclusiveMin, exclusiveMax *float64

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], deref(node.Content[i+1])
		switch key.Value {
		case "type":
			if val.Kind == yaml.SequenceNode {
				var t string
				t, nullable = firstNonNullType(val)
				if t == "" {
					continue
				}
				val = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t}
			}
		case "required":
			if val.Kind != yaml.SequenceNode {
				continue
			}
		case "exclusiveMinimum", "exclusiveMaximum":
			if val.Kind == yaml.ScalarNode && val.Tag != "!!bool" {
				bound, err := strconv.ParseFloat(val.Value, 64)
				if err != nil {
					return fmt.Errorf("%s: %w", key.Value, err)
				}
				if key.Value == "exclusiveMinimum" {
					exclusiveMin = &bound
				} else {
					exclusiveMax = &bound
				}
				continue
			}
		}
		normalized.Content = append(normalized.Content, key, val)
	}

	if err := normalized.Decode((*plain)(s)); err != nil {
		return err
	}
	if nullable {
		s.Nullable = true
	}
	if exclusiveMin != nil {
		s.Minimum, s.ExclusiveMinimum = exclusiveMin, true
	}
	if exclusiveMax != nil {
		s.Maximum, s.ExclusiveMaximum = exclusiveMax, true
	}
	return nil
}

// firstNonNullType picks the first non-null entry of a type array and
// reports whether "null" was listed.
func firstNonNullType(seq *yaml.Node) (string, bool) {
	var t string
	var nullable bool
	for _, item := range seq.Content {
		item = deref(item)
		switch {
		case item.Value == "null":
			nullable = true
		case t == "":
			t = item.Value
		}
	}
	return t, nullable
}

// AdditionalProperties models the boolean-or-schema form of the
// additionalProperties keyword.
type AdditionalProperties struct {
	// Allowed is false only for an explicit "additionalProperties: false".
	Allowed bool
	// Schema is set when a schema constrains the additional values.
	Schema *Schema
}

// UnmarshalYAML accepts either a boolean or a schema.
func (a *AdditionalProperties) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&a.Allowed)
	}
	a.Allowed = true
	a.Schema = &Schema{}
	return node.Decode(a.Schema)
}

// IsRequired reports whether name appears in the schema's required list.
func (s *Schema) IsRequired(name string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}
