package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// errNoSourceNode is returned by the ordered marshalers when the result was
// not produced by this package's parse functions.
var errNoSourceNode = errors.New("parser: result carries no source document")

// MarshalOrderedJSON marshals the parsed document to compact JSON with
// fields in the same order as the source document. Every key of the source
// is emitted, including those the typed model does not decode.
func (pr *ParseResult) MarshalOrderedJSON() ([]byte, error) {
	if pr == nil || pr.root == nil {
		return nil, errNoSourceNode
	}
	var buf bytes.Buffer
	if err := marshalNodeAsJSON(&buf, pr.root, 0); err != nil {
		return nil, fmt.Errorf("parser: ordered json: %w", err)
	}
	return buf.Bytes(), nil
}

// marshalNodeAsJSON writes node to buf as JSON, walking mappings in key order.
func marshalNodeAsJSON(buf *bytes.Buffer, node *yaml.Node, depth int) error {
	if depth > maxDecodeDepth {
		return fmt.Errorf("document nesting exceeds %d levels", maxDecodeDepth)
	}
	node = deref(node)
	if node == nil {
		buf.WriteString("null")
		return nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return marshalNodeAsJSON(buf, node.Content[0], depth)

	case yaml.MappingNode:
		buf.WriteByte('{')
		first := true
		for key, val := range pairs(node) {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err := writeJSON(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := marshalNodeAsJSON(buf, val, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := marshalNodeAsJSON(buf, item, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		return writeJSON(buf, v)

	default:
		return fmt.Errorf("line %d: unsupported node %s", node.Line, describeKind(node))
	}
}

// writeJSON marshals a value to JSON and writes it to the buffer.
func writeJSON(buf *bytes.Buffer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}
