package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/oasgen/genapi/generator"
	"github.com/oasgen/genapi/internal/cliutil"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	APISpec            string
	OutDir             string
	Strict             bool
	SpecFile           string
	RequestTypes       bool
	ResponseDecoders   bool
	DefaultSuccessType string
	DefaultErrorType   string
	Verbose            bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.APISpec, "api-spec", "", "path to the OpenAPI or Swagger specification (required)")
	fs.StringVar(&flags.OutDir, "out-dir", "", "output directory for generated files (required)")
	fs.BoolVar(&flags.Strict, "strict", true, "wrap object models in t.exact")
	fs.StringVar(&flags.SpecFile, "ts-spec-file", "", "also write the specification as a TypeScript module to this path")
	fs.BoolVar(&flags.RequestTypes, "request-types", false, "generate "+generator.RequestTypesFile)
	fs.BoolVar(&flags.ResponseDecoders, "response-decoders", false, "generate response decoders (implies --request-types)")
	fs.StringVar(&flags.DefaultSuccessType, "default-success-type", generator.DefaultSuccessType, "type of 200 responses without a definition reference")
	fs.StringVar(&flags.DefaultErrorType, "default-error-type", generator.DefaultErrorType, "type of other responses without a definition reference")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log debug details to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: genapi generate --api-spec <file> --out-dir <dir> [flags]\n\n")
		cliutil.Writef(fs.Output(), "Generate io-ts models and request types from an OpenAPI specification.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  genapi generate --api-spec api.yaml --out-dir ./generated\n")
		cliutil.Writef(fs.Output(), "  genapi generate --api-spec api.yaml --out-dir ./generated --request-types\n")
		cliutil.Writef(fs.Output(), "  genapi generate --api-spec api.yaml --out-dir ./generated --response-decoders --default-error-type ProblemJson\n")
		cliutil.Writef(fs.Output(), "  genapi generate --api-spec api.yaml --out-dir ./generated --strict=false --ts-spec-file ./generated/specs.ts\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	return runGenerate(args, os.Stdout, os.Stderr)
}

func runGenerate(args []string, stdout, stderr io.Writer) error {
	fs, flags := SetupGenerateFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.APISpec == "" {
		fs.Usage()
		return fmt.Errorf("specification path is required (use --api-spec)")
	}
	if flags.OutDir == "" {
		fs.Usage()
		return fmt.Errorf("output directory is required (use --out-dir)")
	}

	logger := NewLogger(stderr, flags.Verbose)

	opts := []generator.Option{
		generator.WithFilePath(flags.APISpec),
		generator.WithStrictInterfaces(flags.Strict),
		generator.WithRequestTypes(flags.RequestTypes),
		generator.WithResponseDecoders(flags.ResponseDecoders),
		generator.WithDefaultSuccessType(flags.DefaultSuccessType),
		generator.WithDefaultErrorType(flags.DefaultErrorType),
		generator.WithIncludeInfo(flags.Verbose),
		generator.WithLogger(logger),
	}
	if flags.SpecFile != "" {
		opts = append(opts, generator.WithSpecFile(flags.SpecFile))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return err
	}

	if err := result.WriteFiles(flags.OutDir); err != nil {
		return fmt.Errorf("writing files: %w", err)
	}
	for _, file := range result.Files {
		logger.Info("wrote file", "file", file.Name, "bytes", len(file.Content))
	}

	if result.SpecFile != nil {
		if err := result.SpecFile.WriteFile(result.SpecFile.Name); err != nil {
			return fmt.Errorf("writing spec file: %w", err)
		}
		logger.Info("wrote file", "file", result.SpecFile.Name, "bytes", len(result.SpecFile.Content))
	}

	cliutil.Writef(stdout, "done\n")
	return nil
}
