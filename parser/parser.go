package parser

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v4"
)

// Parser loads OpenAPI 2.0 and 3.x specifications from YAML or JSON.
//
// External references are not bundled: local "#/..." refs are kept as
// written and resolved by the generator against the document's own tables.
type Parser struct {
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// ParseResult contains the parsed specification and load metadata.
// Callers should treat it as read-only.
type ParseResult struct {
	// SourcePath is the path the document was read from. For byte and reader
	// input it is "ParseBytes.<ext>" or "ParseReader.<ext>" unless a source
	// name was supplied.
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML).
	SourceFormat SourceFormat
	// Version is the raw value of the swagger/openapi marker, or "" when
	// the document carries neither.
	Version string
	// Document is the decoded document: *V2Document, *V3Document, or nil
	// when the dialect could not be recognized.
	Document Document
	// SourceSize is the size of the input in bytes.
	SourceSize int64
	// LoadTime is the time spent reading the input.
	LoadTime time.Duration

	// root keeps the decoded mapping node for ordered re-serialization.
	root *yaml.Node
}

// Dialect returns the dialect of the parsed document.
func (pr *ParseResult) Dialect() Dialect {
	if pr == nil || pr.Document == nil {
		return DialectUnknown
	}
	return pr.Document.Dialect()
}

// View returns the DialectView of the parsed document.
func (pr *ParseResult) View() DialectView {
	if pr == nil {
		return DialectView{}
	}
	return Detect(pr.Document)
}

// Parse parses a specification file.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(specPath)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}

	res, err := p.parse(data)
	if err != nil {
		return nil, fmt.Errorf("parser: %s: %w", specPath, err)
	}
	res.SourcePath = specPath
	res.LoadTime = loadTime
	if format := detectFormatFromPath(specPath); format != SourceFormatUnknown {
		res.SourceFormat = format
	}
	return res, nil
}

// ParseReader parses a specification from an io.Reader.
// SourcePath is set to ParseReader.yaml or ParseReader.json.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.parse(data)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	res.SourcePath = "ParseReader." + string(res.SourceFormat)
	return res, nil
}

// ParseBytes parses a specification from a byte slice.
// SourcePath is set to ParseBytes.yaml or ParseBytes.json.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parse(data)
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseBytes." + string(res.SourceFormat)
	return res, nil
}

// parse decodes data into a yaml.Node tree and classifies the root. A
// document without a dialect marker is not a parse error: Document is left
// nil and the caller decides.
func (p *Parser) parse(data []byte) (*ParseResult, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parser: failed to decode document: %w", err)
	}
	root, err := rootMapping(&node)
	if err != nil {
		return nil, err
	}

	format := detectFormatFromContent(data)
	if format == SourceFormatUnknown {
		format = SourceFormatYAML
	}

	doc, err := classify(root)
	if err != nil {
		return nil, err
	}
	res := &ParseResult{
		SourceFormat: format,
		Document:     doc,
		SourceSize:   int64(len(data)),
		root:         root,
	}
	if doc != nil {
		res.Version = doc.SpecVersion()
		p.log().Debug("decoded document",
			"dialect", doc.Dialect().String(),
			"version", res.Version,
			"paths", doc.PathItems().Len(),
		)
	} else {
		p.log().Debug("document carries neither a swagger nor an openapi marker")
	}
	return res, nil
}
