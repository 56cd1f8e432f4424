// This file implements OpenAPI type to TypeScript type mapping.

package generator

import "github.com/oasgen/genapi/parser"

// fileType is the TypeScript shape of a multipart file parameter.
const fileType = "{ uri: string; name: string; type: string }"

// SpecTypeToTS maps a primitive OpenAPI type name to the TypeScript type
// used in request parameter objects. "integer" becomes "number", "file"
// becomes an upload descriptor, and every other name passes through.
func SpecTypeToTS(t string) string {
	switch t {
	case "integer":
		return "number"
	case "file":
		return fileType
	default:
		return t
	}
}

// getSchemaType extracts the type of a schema, inferring it from other
// keywords when no explicit type is set.
func getSchemaType(schema *parser.Schema) string {
	if schema == nil {
		return ""
	}
	if schema.Type != "" {
		return schema.Type
	}

	switch {
	case schema.Properties.Len() > 0, schema.AdditionalProperties != nil:
		return "object"
	case schema.Items != nil:
		return "array"
	case len(schema.Enum) > 0:
		return "string"
	default:
		return ""
	}
}
