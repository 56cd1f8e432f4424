package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oasgen/genapi/generator"
)

type generateInput struct {
	Spec               specInput `json:"spec"                           jsonschema:"The OAS document to generate code from"`
	OutputDir          string    `json:"output_dir"                     jsonschema:"Directory to write generated files to"`
	RequestTypes       bool      `json:"request_types,omitempty"        jsonschema:"Generate requestTypes.ts"`
	ResponseDecoders   bool      `json:"response_decoders,omitempty"    jsonschema:"Generate response decoders (implies request_types)"`
	Strict             *bool     `json:"strict,omitempty"               jsonschema:"Wrap object models in t.exact (default from GENAPI_STRICT_INTERFACES)"`
	DefaultSuccessType string    `json:"default_success_type,omitempty" jsonschema:"Type of 200 responses without a definition reference"`
	DefaultErrorType   string    `json:"default_error_type,omitempty"   jsonschema:"Type of other responses without a definition reference"`
	SpecFile           string    `json:"spec_file,omitempty"            jsonschema:"Path to write the embedded specification module to"`
}

type generatedFileInfo struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type generateIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
	Ref      string `json:"ref,omitempty"`
}

type generateOutput struct {
	Success             bool                `json:"success"`
	OutputDir           string              `json:"output_dir"`
	Dialect             string              `json:"dialect"`
	FileCount           int                 `json:"file_count"`
	Files               []generatedFileInfo `json:"files"`
	SpecFile            string              `json:"spec_file,omitempty"`
	GeneratedTypes      int                 `json:"generated_types"`
	GeneratedOperations int                 `json:"generated_operations"`
	WarningCount        int                 `json:"warning_count"`
	CriticalCount       int                 `json:"critical_count"`
	Issues              []generateIssue     `json:"issues,omitempty"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	if input.OutputDir == "" {
		return errResult(fmt.Errorf("output_dir is required")), generateOutput{}, nil
	}

	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	strict := cfg.StrictInterfaces
	if input.Strict != nil {
		strict = *input.Strict
	}
	successType := cfg.DefaultSuccessType
	if input.DefaultSuccessType != "" {
		successType = input.DefaultSuccessType
	}
	errorType := cfg.DefaultErrorType
	if input.DefaultErrorType != "" {
		errorType = input.DefaultErrorType
	}

	opts := []generator.Option{
		generator.WithParsed(*parseResult),
		generator.WithStrictInterfaces(strict),
		generator.WithRequestTypes(input.RequestTypes),
		generator.WithResponseDecoders(input.ResponseDecoders),
		generator.WithDefaultSuccessType(successType),
		generator.WithDefaultErrorType(errorType),
		generator.WithIncludeInfo(false),
	}
	if input.SpecFile != "" {
		opts = append(opts, generator.WithSpecFile(input.SpecFile))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	if err := result.WriteFiles(input.OutputDir); err != nil {
		return errResult(fmt.Errorf("failed to write generated files: %w", err)), generateOutput{}, nil
	}
	if result.SpecFile != nil {
		if err := result.SpecFile.WriteFile(result.SpecFile.Name); err != nil {
			return errResult(fmt.Errorf("failed to write spec file: %w", err)), generateOutput{}, nil
		}
	}

	output := generateOutput{
		Success:             result.Success,
		OutputDir:           input.OutputDir,
		Dialect:             result.Dialect.String(),
		FileCount:           len(result.Files),
		SpecFile:            input.SpecFile,
		GeneratedTypes:      result.GeneratedTypes,
		GeneratedOperations: result.GeneratedOperations,
		WarningCount:        result.WarningCount,
		CriticalCount:       result.CriticalCount,
	}

	output.Files = makeSlice[generatedFileInfo](len(result.Files))
	for _, f := range result.Files {
		output.Files = append(output.Files, generatedFileInfo{
			Name: f.Name,
			Size: len(f.Content),
		})
	}

	output.Issues = makeSlice[generateIssue](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, generateIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
			Ref:      issue.Ref,
		})
	}

	return nil, output, nil
}
