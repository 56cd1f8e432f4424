// Package generator produces TypeScript io-ts models and request types from
// OpenAPI Specification documents.
//
// The generator reads OAS 2.0 and OAS 3.x documents through the parser
// package and emits one model module per schema definition plus, on
// request, an aggregate requestTypes.ts module describing every operation
// for the italia-ts-commons request helpers.
//
// # Quick Start
//
// Generate models and request types using functional options:
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
// Or use a reusable Generator instance:
//
//	g := generator.New()
//	g.GenerateResponseDecoders = true
//	result, _ := g.Generate("openapi.yaml")
//	result.WriteFiles("./generated")
//
// # Models
//
// Each definition becomes <Name>.ts exporting an io-ts codec and its static
// type. Object definitions are split into required and optional attribute
// codecs; with StrictInterfaces the combination is wrapped in t.exact.
// Schema types map to codecs as follows:
//   - string → t.string, PatternString, WithinRangeString or an enumType
//   - integer → t.Integer or WithinRangeInteger
//   - number → t.number or WithinRangeNumber
//   - boolean → t.boolean
//   - array → t.readonlyArray
//   - object → t.interface/t.partial or t.dictionary
//
// # Request Types
//
// Only get, post, put and delete operations are described. Parameters,
// header-transported credentials and responses of each operation are
// combined into an r.I<Method>ApiRequestType declaration; see
// SynthesizeOperation for the merge order. Responses whose schema does not
// reference a definition use DefaultSuccessType for "200" and
// DefaultErrorType for every other status.
//
// Problems that only affect one item, such as an unresolvable $ref or a
// missing operationId, are reported as GenerateIssue values and generation
// continues. A document without a swagger or openapi marker fails with
// ErrUnrecognizedSpec.
package generator
