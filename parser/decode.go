package parser

import (
	"errors"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// maxDecodeDepth bounds recursion through aliases and nested nodes.
const maxDecodeDepth = 256

var (
	// ErrEmptyDocument is returned when the source holds no YAML/JSON document.
	ErrEmptyDocument = errors.New("parser: empty document")
	// ErrNotAnObject is returned when the document root is not a mapping.
	ErrNotAnObject = errors.New("parser: document root is not an object")
)

// rootMapping unwraps the document node and returns the root mapping.
func rootMapping(node *yaml.Node) (*yaml.Node, error) {
	if node == nil || node.Kind == 0 {
		return nil, ErrEmptyDocument
	}
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, ErrEmptyDocument
		}
		node = node.Content[0]
	}
	node = deref(node)
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w (got %s)", ErrNotAnObject, describeKind(node))
	}
	return node, nil
}

// classify decodes the root mapping into the variant selected by its marker
// key. The swagger marker is checked first, so a document carrying both is
// treated as OAS 2.0. A document with neither marker yields a nil Document.
//
// The marker keeps its literal text: `swagger: 2.0` is "2.0", not a float.
func classify(root *yaml.Node) (Document, error) {
	if v, ok := lookup(root, "swagger"); ok {
		doc := &V2Document{}
		if err := root.Decode(doc); err != nil {
			return nil, fmt.Errorf("parser: failed to decode OAS 2.0 document: %w", err)
		}
		doc.Swagger = scalarString(v)
		return doc, nil
	}
	if v, ok := lookup(root, "openapi"); ok {
		doc := &V3Document{}
		if err := root.Decode(doc); err != nil {
			return nil, fmt.Errorf("parser: failed to decode OAS 3.x document: %w", err)
		}
		doc.OpenAPI = scalarString(v)
		return doc, nil
	}
	return nil, nil
}

// pairs iterates over the key/value pairs of a mapping node in source order.
// Non-mapping nodes yield nothing.
func pairs(n *yaml.Node) func(yield func(string, *yaml.Node) bool) {
	return func(yield func(string, *yaml.Node) bool) {
		n = deref(n)
		if n == nil || n.Kind != yaml.MappingNode {
			return
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			if !yield(n.Content[i].Value, deref(n.Content[i+1])) {
				return
			}
		}
	}
}

// lookup finds the value node stored under key in a mapping node.
func lookup(n *yaml.Node, key string) (*yaml.Node, bool) {
	for k, v := range pairs(n) {
		if k == key {
			return v, true
		}
	}
	return nil, false
}

// deref follows alias nodes to their anchor.
func deref(n *yaml.Node) *yaml.Node {
	for i := 0; n != nil && n.Kind == yaml.AliasNode && n.Alias != nil && i < maxDecodeDepth; i++ {
		n = n.Alias
	}
	return n
}

func scalarString(n *yaml.Node) string {
	n = deref(n)
	if n == nil || n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return ""
	}
	return n.Value
}

// describeKind names a node kind for error messages.
func describeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("kind %d", n.Kind)
	}
}
