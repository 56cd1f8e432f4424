package generator

import (
	"errors"
	"fmt"
	"time"

	"github.com/oasgen/genapi/internal/issues"
	"github.com/oasgen/genapi/internal/options"
	"github.com/oasgen/genapi/internal/severity"
	"github.com/oasgen/genapi/parser"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates an item that was skipped or defaulted
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical indicates a problem that stopped generation
	SeverityCritical = severity.SeverityCritical
)

// GenerateIssue represents a single generation issue or limitation
type GenerateIssue = issues.Issue

// ErrUnrecognizedSpec is returned when the document carries neither a
// swagger nor an openapi marker.
var ErrUnrecognizedSpec = errors.New("generator: unrecognized specification: no swagger or openapi marker")

// RequestTypesFile is the name of the aggregate request types module.
const RequestTypesFile = "requestTypes.ts"

// Default values of the generation options.
const (
	DefaultSuccessType = TypeUndefined
	DefaultErrorType   = TypeUndefined
)

// supportedMethods are the path item keys request types are generated for.
var supportedMethods = map[string]bool{
	parser.MethodGet:    true,
	parser.MethodPost:   true,
	parser.MethodPut:    true,
	parser.MethodDelete: true,
}

// SupportsMethod reports whether request types are generated for the
// lowercase path item key method.
func SupportsMethod(method string) bool {
	return supportedMethods[method]
}

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "Pet.ts", "requestTypes.ts")
	Name string
	// Content is the generated TypeScript source
	Content []byte
}

// GenerateResult contains the results of generating code from an OpenAPI specification
type GenerateResult struct {
	// Files contains the model files followed by the request types module,
	// in generation order
	Files []GeneratedFile
	// SpecFile is the debug artifact embedding the source document, when
	// requested. Its Name is the path it should be written to.
	SpecFile *GeneratedFile
	// SourcePath is the path or name of the source document
	SourcePath string
	// SourceVersion is the raw swagger/openapi marker value
	SourceVersion string
	// Dialect is the detected specification dialect
	Dialect parser.Dialect
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat parser.SourceFormat
	// Issues contains all generation issues
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if generation completed without critical issues
	Success bool
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// GenerateTime is the time taken to generate code
	GenerateTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// GeneratedTypes is the count of model files generated
	GeneratedTypes int
	// GeneratedOperations is the count of request types generated
	GeneratedOperations int
}

// HasCriticalIssues returns true if there are any critical issues
func (r *GenerateResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator turns OpenAPI specifications into io-ts models and request types
type Generator struct {
	// StrictInterfaces makes object models reject unknown properties.
	// Default: true
	StrictInterfaces bool

	// GenerateRequestTypes enables the requestTypes.ts module.
	GenerateRequestTypes bool

	// GenerateResponseDecoders adds response decoders to requestTypes.ts
	// and implies GenerateRequestTypes.
	GenerateResponseDecoders bool

	// DefaultSuccessType is the type of a "200" response without a
	// definition reference. Default: "undefined"
	DefaultSuccessType string

	// DefaultErrorType is the type of any other response without a
	// definition reference. Default: "undefined"
	DefaultErrorType string

	// SpecFilePath, when set, requests the debug artifact that embeds the
	// source document as a TypeScript constant.
	SpecFilePath string

	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool

	// Logger is the structured logger. If nil, logging is disabled.
	Logger parser.Logger
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		StrictInterfaces:   true,
		DefaultSuccessType: DefaultSuccessType,
		DefaultErrorType:   DefaultErrorType,
		IncludeInfo:        true,
	}
}

func (g *Generator) log() parser.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return parser.NopLogger{}
}

// Generate generates code from an OpenAPI specification file
func (g *Generator) Generate(specPath string) (*GenerateResult, error) {
	p := parser.New()
	p.Logger = g.Logger
	parseResult, err := p.Parse(specPath)
	if err != nil {
		return nil, fmt.Errorf("generator: failed to parse specification: %w", err)
	}
	return g.GenerateParsed(*parseResult)
}

// GenerateParsed generates code from an already-parsed OpenAPI specification
func (g *Generator) GenerateParsed(parseResult parser.ParseResult) (*GenerateResult, error) {
	startTime := time.Now()
	log := g.log()

	view := parser.Detect(parseResult.Document)
	if !view.Recognized() {
		return nil, ErrUnrecognizedSpec
	}
	log.Info("detected specification", "dialect", view.Dialect.String(), "version", view.Version)

	result := &GenerateResult{
		Files:         make([]GeneratedFile, 0),
		SourcePath:    parseResult.SourcePath,
		SourceVersion: view.Version,
		Dialect:       view.Dialect,
		SourceFormat:  parseResult.SourceFormat,
		Issues:        make([]GenerateIssue, 0),
		LoadTime:      parseResult.LoadTime,
		SourceSize:    parseResult.SourceSize,
	}

	if g.SpecFilePath != "" {
		if err := g.generateSpecFile(&parseResult, result); err != nil {
			return nil, err
		}
	}

	if err := g.generateModels(view, result); err != nil {
		return nil, err
	}

	if g.GenerateRequestTypes || g.GenerateResponseDecoders {
		if err := g.generateRequestTypes(parseResult.Document, view, result); err != nil {
			return nil, err
		}
	}

	result.GenerateTime = time.Since(startTime)
	g.updateCounts(result)
	result.Success = result.CriticalCount == 0

	// Filter info messages if not included
	if !g.IncludeInfo {
		filtered := make([]GenerateIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	return result, nil
}

// specsData is the input of the specs template.
type specsData struct {
	Source string
	JSON   string
}

func (g *Generator) generateSpecFile(pr *parser.ParseResult, result *GenerateResult) error {
	data, err := pr.MarshalOrderedJSON()
	if err != nil {
		return fmt.Errorf("generator: failed to serialize specification: %w", err)
	}
	content, err := executeTemplate("specs", specsData{Source: pr.SourcePath, JSON: string(data)})
	if err != nil {
		return fmt.Errorf("generator: failed to render specification file: %w", err)
	}
	result.SpecFile = &GeneratedFile{Name: g.SpecFilePath, Content: content}
	g.log().Info("generated specification file", "file", g.SpecFilePath)
	return nil
}

// generateModels renders one file per definition, in definition order.
func (g *Generator) generateModels(view parser.DialectView, result *GenerateResult) error {
	log := g.log()
	if view.Definitions.Len() == 0 {
		log.Info("no definitions found, skipping generation of model code")
		g.addIssue(result, "definitions", "no definitions found, skipping generation of model code", SeverityInfo)
		return nil
	}

	for name, schema := range view.Definitions.All() {
		content, warnings, err := renderDefinition(name, schema, g.StrictInterfaces)
		if err != nil {
			return fmt.Errorf("generator: %w", err)
		}
		for _, w := range warnings {
			log.Warn(w.Message, "definition", name, "ref", w.Ref)
			result.Issues = append(result.Issues, GenerateIssue{
				Path:     "definitions." + name,
				Message:  w.Message,
				Severity: SeverityWarning,
				Ref:      w.Ref,
			})
		}

		fileName := name + ".ts"
		result.Files = append(result.Files, GeneratedFile{Name: fileName, Content: content})
		result.GeneratedTypes++
		log.Info("generated model", "definition", name, "file", fileName)
	}
	return nil
}

// requestTypesData is the input of the request_types template.
type requestTypesData struct {
	Decoders   bool
	Imports    []string
	Operations []string
}

// generateRequestTypes synthesizes every supported operation into the
// aggregate request types module.
func (g *Generator) generateRequestTypes(doc parser.Document, view parser.DialectView, result *GenerateResult) error {
	log := g.log()

	globalAuth := requiredAuth(view.SecurityDefinitions, doc.RootSecurity())
	globalHeaders := headerNames(globalAuth)

	imports := NewImportSet()
	var operations []string

	for path, item := range doc.PathItems().All() {
		if item == nil {
			continue
		}
		if item.Ref != "" {
			log.Warn("skipping path item reference", "path", path, "ref", item.Ref)
			result.Issues = append(result.Issues, GenerateIssue{
				Path:     "paths." + path,
				Message:  "path item references are not resolved",
				Severity: SeverityWarning,
				Ref:      item.Ref,
			})
		}

		pathFields, pathImports, pathIssues := pathParameters(path, item, view, log)
		result.Issues = append(result.Issues, pathIssues...)
		imports.AddAll(pathImports)
		extra := pathFields.Clone()
		authFields(extra, globalAuth)

		for method, op := range item.Operations.All() {
			if !supportedMethods[method] {
				log.Debug("skipping unsupported method", "path", path, "method", method)
				g.addIssue(result, "paths."+path+"."+method, "unsupported method, no request type generated", SeverityInfo)
				continue
			}

			opHeaders, opExtra := globalHeaders, extra
			if op != nil && optsOutOfAuth(op.Security) {
				opHeaders, opExtra = nil, pathFields
			}

			desc, err := SynthesizeOperation(OperationInput{
				Method:             method,
				Path:               path,
				Operation:          op,
				View:               view,
				ExtraHeaders:       opHeaders,
				ExtraParams:        opExtra,
				DefaultSuccessType: g.DefaultSuccessType,
				DefaultErrorType:   g.DefaultErrorType,
				GenerateDecoders:   g.GenerateResponseDecoders,
				Logger:             log,
			})
			if errors.Is(err, ErrMissingOperationID) {
				log.Warn("skipping method with missing operationId", "path", path, "method", method)
				g.addIssue(result, "paths."+path+"."+method, "missing operationId, operation skipped", SeverityWarning)
				continue
			}
			if err != nil {
				return fmt.Errorf("generator: %s %s: %w", method, path, err)
			}

			result.Issues = append(result.Issues, desc.Issues...)
			imports.AddAll(desc.Imports)
			operations = append(operations, desc.Code)
			result.GeneratedOperations++
		}
	}

	content, err := executeTemplate("request_types", requestTypesData{
		Decoders:   g.GenerateResponseDecoders,
		Imports:    imports.Sorted(),
		Operations: operations,
	})
	if err != nil {
		return fmt.Errorf("generator: failed to render request types: %w", err)
	}
	result.Files = append(result.Files, GeneratedFile{Name: RequestTypesFile, Content: content})
	log.Info("generated request types", "file", RequestTypesFile, "operations", result.GeneratedOperations)
	return nil
}

// addIssue adds a generation issue
func (g *Generator) addIssue(result *GenerateResult, path, message string, severity Severity) {
	result.Issues = append(result.Issues, GenerateIssue{
		Path:     path,
		Message:  message,
		Severity: severity,
	})
}

// updateCounts updates the issue counts in the result
func (g *Generator) updateCounts(result *GenerateResult) {
	result.InfoCount = 0
	result.WarningCount = 0
	result.CriticalCount = 0

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		case SeverityCritical:
			result.CriticalCount++
		}
	}
}

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult

	strictInterfaces   bool
	requestTypes       bool
	responseDecoders   bool
	defaultSuccessType string
	defaultErrorType   string
	specFilePath       string
	includeInfo        bool
	logger             parser.Logger
}

// GenerateWithOptions generates code from an OpenAPI specification using functional options.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("openapi.yaml"),
//	    generator.WithResponseDecoders(true),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	g := &Generator{
		StrictInterfaces:         cfg.strictInterfaces,
		GenerateRequestTypes:     cfg.requestTypes,
		GenerateResponseDecoders: cfg.responseDecoders,
		DefaultSuccessType:       cfg.defaultSuccessType,
		DefaultErrorType:         cfg.defaultErrorType,
		SpecFilePath:             cfg.specFilePath,
		IncludeInfo:              cfg.includeInfo,
		Logger:                   cfg.logger,
	}

	if cfg.filePath != nil {
		return g.Generate(*cfg.filePath)
	}
	return g.GenerateParsed(*cfg.parsed)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		strictInterfaces:   true,
		defaultSuccessType: DefaultSuccessType,
		defaultErrorType:   DefaultErrorType,
		includeInfo:        true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.RequireSingleSource("generator", "WithFilePath or WithParsed",
		cfg.filePath != nil, cfg.parsed != nil,
	); err != nil {
		return nil, err
	}

	// Decoders live in the request types module
	if cfg.responseDecoders {
		cfg.requestTypes = true
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies a parsed ParseResult as the input source
func WithParsed(result parser.ParseResult) Option {
	return func(cfg *generateConfig) error {
		cfg.parsed = &result
		return nil
	}
}

// WithStrictInterfaces enables or disables exact object codecs
// Default: true
func WithStrictInterfaces(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.strictInterfaces = enabled
		return nil
	}
}

// WithRequestTypes enables or disables the request types module
// Default: false
func WithRequestTypes(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.requestTypes = enabled
		return nil
	}
}

// WithResponseDecoders enables or disables response decoders. Enabling
// them also enables request types.
// Default: false
func WithResponseDecoders(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.responseDecoders = enabled
		return nil
	}
}

// WithDefaultSuccessType sets the type of "200" responses that reference
// no definition
// Default: "undefined"
func WithDefaultSuccessType(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return fmt.Errorf("generator: default success type cannot be empty")
		}
		cfg.defaultSuccessType = name
		return nil
	}
}

// WithDefaultErrorType sets the type of non-"200" responses that reference
// no definition
// Default: "undefined"
func WithDefaultErrorType(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return fmt.Errorf("generator: default error type cannot be empty")
		}
		cfg.defaultErrorType = name
		return nil
	}
}

// WithSpecFile requests the debug artifact embedding the source document,
// to be written at path
func WithSpecFile(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.specFilePath = path
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithLogger sets the structured logger
func WithLogger(l parser.Logger) Option {
	return func(cfg *generateConfig) error {
		cfg.logger = l
		return nil
	}
}
