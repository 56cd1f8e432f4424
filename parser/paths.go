package parser

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"
)

// MediaTypeJSON is the content type whose schema is used for typed bodies.
const MediaTypeJSON = "application/json"

// PathItem describes the operations available on a single path.
type PathItem struct {
	Ref        string       `yaml:"$ref,omitempty"`
	Parameters []*Parameter `yaml:"parameters,omitempty"`
	// Operations maps lower-case HTTP method keys to their operation, in
	// the order the keys appear in the source document.
	Operations *OrderedMap[*Operation] `yaml:"-"`
}

// UnmarshalYAML decodes the fixed fields, then collects every HTTP method
// key (in any case) as an operation in source order.
func (p *PathItem) UnmarshalYAML(node *yaml.Node) error {
	type plain PathItem
	if err := node.Decode((*plain)(p)); err != nil {
		return err
	}
	p.Operations = NewOrderedMap[*Operation]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		method := strings.ToLower(node.Content[i].Value)
		if !isHTTPMethod(method) {
			continue
		}
		op := &Operation{}
		if err := node.Content[i+1].Decode(op); err != nil {
			return fmt.Errorf("%s operation: %w", method, err)
		}
		p.Operations.Set(method, op)
	}
	return nil
}

// Operation describes a single API operation on a path.
type Operation struct {
	OperationID string                 `yaml:"operationId,omitempty"`
	Summary     string                 `yaml:"summary,omitempty"`
	Description string                 `yaml:"description,omitempty"`
	Parameters  []*Parameter           `yaml:"parameters,omitempty"`
	RequestBody *RequestBody           `yaml:"requestBody,omitempty"` // OAS 3.x
	Responses   *OrderedMap[*Response] `yaml:"responses"`
	Security    []SecurityRequirement  `yaml:"security,omitempty"`
}

// RequestBody describes a single request body (OAS 3.x).
type RequestBody struct {
	Ref         string                  `yaml:"$ref,omitempty"`
	Description string                  `yaml:"description,omitempty"`
	Required    bool                    `yaml:"required,omitempty"`
	Content     *OrderedMap[*MediaType] `yaml:"content,omitempty"`
}

// Response describes a single response from an API operation. Status keys
// are kept as written ("200", "default", "2XX").
type Response struct {
	Ref         string                  `yaml:"$ref,omitempty"`
	Description string                  `yaml:"description,omitempty"`
	Schema      *Schema                 `yaml:"schema,omitempty"`  // OAS 2.0
	Content     *OrderedMap[*MediaType] `yaml:"content,omitempty"` // OAS 3.x
}

// MediaType provides the schema for one content type (OAS 3.x).
type MediaType struct {
	Schema *Schema `yaml:"schema,omitempty"`
}

// JSONSchema returns the application/json schema of the content map, or nil.
func JSONSchema(content *OrderedMap[*MediaType]) *Schema {
	mt, ok := content.Get(MediaTypeJSON)
	if !ok || mt == nil {
		return nil
	}
	return mt.Schema
}
