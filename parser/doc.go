// Package parser loads OpenAPI Specification documents for code generation.
//
// The parser accepts OAS 2.0 (Swagger) and OAS 3.x documents in YAML or JSON.
// A document is classified exactly once, at load time, by its root marker
// key: "swagger" selects [V2Document], "openapi" selects [V3Document]. A
// document carrying neither marker still parses; its Document is nil and
// [Detect] returns an empty [DialectView] so callers can report it.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	view := parser.Detect(result.Document)
//	for name := range view.Definitions.All() {
//		fmt.Println(name)
//	}
//
// # Key Order
//
// Every mapping that drives generation order (definitions, properties,
// paths, operations, responses, security schemes) is decoded into an
// [OrderedMap] following the source document. [ParseResult.MarshalOrderedJSON]
// re-serializes the whole source, unknown keys included, in that same order.
//
// # References
//
// $ref values are kept exactly as written. External files and URLs are not
// fetched; local references are looked up by the generator in the
// document's own tables.
package parser
