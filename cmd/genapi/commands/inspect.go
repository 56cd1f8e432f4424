package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/oasgen/genapi/generator"
	"github.com/oasgen/genapi/internal/cliutil"
	"github.com/oasgen/genapi/parser"
)

// InspectFlags contains flags for the inspect command
type InspectFlags struct {
	Format string
}

// InspectSummary describes what the generator will see in a specification.
type InspectSummary struct {
	Source          string   `json:"source"                     yaml:"source"`
	Dialect         string   `json:"dialect"                    yaml:"dialect"`
	Version         string   `json:"version"                    yaml:"version"`
	Title           string   `json:"title,omitempty"            yaml:"title,omitempty"`
	Definitions     []string `json:"definitions,omitempty"      yaml:"definitions,omitempty"`
	SecuritySchemes []string `json:"security_schemes,omitempty" yaml:"security_schemes,omitempty"`
	PathCount       int      `json:"path_count"                 yaml:"path_count"`
	OperationCount  int      `json:"operation_count"            yaml:"operation_count"`
	// RequestTypeCount counts operations that get a request type.
	RequestTypeCount int `json:"request_type_count" yaml:"request_type_count"`
}

// SetupInspectFlags creates and configures a FlagSet for the inspect command.
func SetupInspectFlags() (*flag.FlagSet, *InspectFlags) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	flags := &InspectFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: genapi inspect [flags] <file>\n\n")
		cliutil.Writef(fs.Output(), "Summarize the dialect, definitions and operations of a specification.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  genapi inspect api.yaml\n")
		cliutil.Writef(fs.Output(), "  genapi inspect --format yaml api.yaml\n")
	}

	return fs, flags
}

// HandleInspect executes the inspect command
func HandleInspect(args []string) error {
	return runInspect(args, os.Stdout, os.Stderr)
}

func runInspect(args []string, stdout, stderr io.Writer) error {
	fs, flags := SetupInspectFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("inspect command requires exactly one file path")
	}

	result, err := parser.New().Parse(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("parsing file: %w", err)
	}

	summary, err := Inspect(result)
	if err != nil {
		return err
	}

	if flags.Format != FormatText {
		return OutputStructured(stdout, summary, flags.Format)
	}

	cliutil.Writef(stdout, "Specification: %s\n", summary.Source)
	cliutil.Writef(stdout, "Dialect: %s %s\n", summary.Dialect, summary.Version)
	if summary.Title != "" {
		cliutil.Writef(stdout, "Title: %s\n", summary.Title)
	}
	cliutil.Writef(stdout, "Definitions: %d\n", len(summary.Definitions))
	for _, name := range summary.Definitions {
		cliutil.Writef(stdout, "  - %s\n", name)
	}
	cliutil.Writef(stdout, "Security Schemes: %d\n", len(summary.SecuritySchemes))
	cliutil.Writef(stdout, "Paths: %d\n", summary.PathCount)
	cliutil.Writef(stdout, "Operations: %d (%d with request types)\n", summary.OperationCount, summary.RequestTypeCount)
	return nil
}

// Inspect summarizes a parsed specification. It fails with
// generator.ErrUnrecognizedSpec when the dialect cannot be detected.
func Inspect(result *parser.ParseResult) (InspectSummary, error) {
	view := result.View()
	if !view.Recognized() {
		return InspectSummary{}, generator.ErrUnrecognizedSpec
	}

	summary := InspectSummary{
		Source:          result.SourcePath,
		Dialect:         view.Dialect.String(),
		Version:         view.Version,
		Title:           result.Document.Title(),
		Definitions:     view.Definitions.Keys(),
		SecuritySchemes: view.SecurityDefinitions.Keys(),
	}

	paths := result.Document.PathItems()
	summary.PathCount = paths.Len()
	for _, item := range paths.All() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations.All() {
			summary.OperationCount++
			if generator.SupportsMethod(method) && op != nil && op.OperationID != "" {
				summary.RequestTypeCount++
			}
		}
	}
	return summary, nil
}
