package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oasgen/genapi/generator"
)

type inspectInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The OAS document to inspect"`
	Offset int       `json:"offset,omitempty" jsonschema:"Number of operations to skip"`
	Limit  int       `json:"limit,omitempty"  jsonschema:"Maximum number of operations to return (default from GENAPI_INSPECT_LIMIT)"`
}

type operationSummary struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	OperationID string `json:"operation_id,omitempty"`
	// RequestType is false for operations the generator skips.
	RequestType bool `json:"request_type"`
}

type inspectOutput struct {
	Dialect         string             `json:"dialect"`
	Version         string             `json:"version"`
	Title           string             `json:"title,omitempty"`
	SchemasPath     string             `json:"schemas_path"`
	Definitions     []string           `json:"definitions,omitempty"`
	SecuritySchemes []string           `json:"security_schemes,omitempty"`
	PathCount       int                `json:"path_count"`
	OperationCount  int                `json:"operation_count"`
	Returned        int                `json:"returned"`
	Operations      []operationSummary `json:"operations,omitempty"`
}

func handleInspect(_ context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	view := parseResult.View()
	if !view.Recognized() {
		return errResult(generator.ErrUnrecognizedSpec), inspectOutput{}, nil
	}

	output := inspectOutput{
		Dialect:         view.Dialect.String(),
		Version:         view.Version,
		Title:           parseResult.Document.Title(),
		SchemasPath:     view.SchemasPath,
		Definitions:     view.Definitions.Keys(),
		SecuritySchemes: view.SecurityDefinitions.Keys(),
	}

	var all []operationSummary
	paths := parseResult.Document.PathItems()
	output.PathCount = paths.Len()
	for path, item := range paths.All() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations.All() {
			summary := operationSummary{Method: method, Path: path}
			if op != nil {
				summary.OperationID = op.OperationID
			}
			summary.RequestType = generator.SupportsMethod(method) && summary.OperationID != ""
			all = append(all, summary)
		}
	}
	output.OperationCount = len(all)

	page := paginate(all, input.Offset, input.Limit)
	output.Returned = len(page)
	output.Operations = makeSlice[operationSummary](len(page))
	output.Operations = append(output.Operations, page...)

	return nil, output, nil
}
