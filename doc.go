// Package genapi generates TypeScript io-ts models and typed request
// descriptors from OpenAPI Specification documents.
//
// Both specification dialects are supported:
//   - OAS 2.0 (Swagger): https://spec.openapis.org/oas/v2.0.html
//   - OAS 3.x: https://spec.openapis.org/oas/v3.0.3.html
//
// # Overview
//
// The library consists of three packages:
//
//   - parser: load a document, classify its dialect and expose a uniform view
//   - refs: classify local $ref pointers
//   - generator: render one model per definition and the aggregate request types
//
// # Quick Start
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("openapi.yaml"),
//		generator.WithRequestTypes(true),
//		generator.WithDefaultErrorType("ProblemJson"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("./generated"); err != nil {
//		log.Fatal(err)
//	}
//
// Every file produced follows the key order of the source document, so two
// runs over the same document produce byte-identical output.
//
// # Command line
//
// The genapi command wraps the generator:
//
//	genapi generate --api-spec api.yaml --out-dir ./generated --request-types
//	genapi inspect api.yaml
//	genapi mcp
package genapi
