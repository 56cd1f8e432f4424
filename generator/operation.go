package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oasgen/genapi/internal/naming"
	"github.com/oasgen/genapi/parser"
	"github.com/oasgen/genapi/refs"
)

// ErrMissingOperationID is returned by SynthesizeOperation for operations
// that declare no operationId. Such operations are skipped.
var ErrMissingOperationID = errors.New("generator: operation has no operationId")

// Markers a response type may carry instead of a definition name.
const (
	// TypeUndefined marks a response without a body.
	TypeUndefined = "undefined"
	// TypeError marks a response decoded as a basic error.
	TypeError = "Error"
)

// OperationInput is everything SynthesizeOperation needs to describe one
// operation.
type OperationInput struct {
	// Method is the lower-case HTTP method key of the path item.
	Method    string
	Path      string
	Operation *parser.Operation
	// View supplies the shared parameter, response and security tables.
	View parser.DialectView

	// ExtraHeaders are appended after the operation's own headers.
	ExtraHeaders []string
	// ExtraParams are placed first in the field map; later sources win.
	ExtraParams *FieldMap

	DefaultSuccessType string
	DefaultErrorType   string
	GenerateDecoders   bool

	Logger parser.Logger
}

// OperationDescriptor is the synthesized description of one operation.
type OperationDescriptor struct {
	OperationID string
	Method      string
	Path        string
	// RequestTypeName is the exported request type, e.g. "GetPetT".
	RequestTypeName string

	Fields    *FieldMap
	Headers   []string
	Responses []ResponseEntry
	// Success is the first 2xx response, or nil.
	Success *ResponseEntry
	// Imports lists the definitions the code refers to.
	Imports *ImportSet

	// Code is the TypeScript source of the request type and decoders.
	Code string
	// Issues holds the recoverable problems met while synthesizing.
	Issues []GenerateIssue
}

// synthesizer carries per-operation state while building a descriptor.
type synthesizer struct {
	in   OperationInput
	desc *OperationDescriptor
	log  parser.Logger
}

// SynthesizeOperation builds the request type, response union and optional
// response decoders of one operation.
//
// Fields come from three sources in increasing precedence: in.ExtraParams,
// one required string per header auth scheme of the operation, and the
// declared parameters. A later source replaces an earlier field of the same
// name without moving it.
func SynthesizeOperation(in OperationInput) (*OperationDescriptor, error) {
	if in.Operation == nil || in.Operation.OperationID == "" {
		return nil, ErrMissingOperationID
	}
	log := in.Logger
	if log == nil {
		log = parser.NopLogger{}
	}
	opID := in.Operation.OperationID

	s := &synthesizer{
		in:  in,
		log: log.With("operation", opID),
		desc: &OperationDescriptor{
			OperationID:     opID,
			Method:          in.Method,
			Path:            in.Path,
			RequestTypeName: naming.Capitalize(opID) + "T",
			Imports:         NewImportSet(),
		},
	}

	declared := NewFieldMap()
	for _, p := range in.Operation.Parameters {
		if f, ok := s.resolveParameter(p); ok {
			declared.Set(f)
		}
	}
	if f, ok := s.resolveRequestBody(in.Operation.RequestBody); ok {
		declared.Set(f)
	}

	auth := requiredAuth(in.View.SecurityDefinitions, in.Operation.Security)

	fields := NewFieldMap()
	fields.Merge(in.ExtraParams)
	authFields(fields, auth)
	fields.Merge(declared)
	s.desc.Fields = fields

	var headers []string
	if (in.Method == parser.MethodPost || in.Method == parser.MethodPut) && declared.Len() > 0 {
		headers = append(headers, "Content-Type")
	}
	headers = append(headers, headerNames(auth)...)
	headers = append(headers, in.ExtraHeaders...)
	s.desc.Headers = dedupe(headers)

	s.collectResponses()
	s.desc.Code = s.render()
	return s.desc, nil
}

// pathParameters resolves the parameters declared on a path item, which
// every operation of the path receives as extra fields.
func pathParameters(path string, item *parser.PathItem, view parser.DialectView, log parser.Logger) (*FieldMap, *ImportSet, []GenerateIssue) {
	s := &synthesizer{
		in:   OperationInput{Path: path, View: view},
		log:  log.With("path", path),
		desc: &OperationDescriptor{Path: path, Imports: NewImportSet()},
	}
	fields := NewFieldMap()
	for _, p := range item.Parameters {
		if f, ok := s.resolveParameter(p); ok {
			fields.Set(f)
		}
	}
	return fields, s.desc.Imports, s.desc.Issues
}

// resolveParameter turns one declared parameter into a field. Definition
// references register an import.
func (s *synthesizer) resolveParameter(p *parser.Parameter) (FieldEntry, bool) {
	if p == nil {
		return FieldEntry{}, false
	}
	if p.Ref == "" && p.Name != "" {
		if t := p.PrimitiveType(); t != "" {
			return FieldEntry{Name: p.Name, Type: SpecTypeToTS(t), Required: p.Required}, true
		}
	}

	ref := p.RefTarget()
	if ref == "" && p.In == parser.ParamInBody {
		s.issue("skipping body parameter with inline schema", "", "param", p.Name)
		return FieldEntry{}, false
	}
	if ref == "" {
		s.issue("skipping parameter without type or reference", "", "param", p.Name)
		return FieldEntry{}, false
	}
	r, ok := refs.Parse(ref)
	if !ok {
		s.issue("cannot extract type from reference", ref)
		return FieldEntry{}, false
	}

	switch r.Kind {
	case refs.KindDefinition:
		s.desc.Imports.Add(r.Name)
		return FieldEntry{Name: r.Name, Type: r.Name, Required: p.Required}, true
	case refs.KindParameter:
		shared, found := s.in.View.Parameters.Get(r.Name)
		if !found || shared == nil {
			s.issue("cannot resolve parameter", ref)
			return FieldEntry{}, false
		}
		t := shared.PrimitiveType()
		if t == "" {
			s.issue("referenced parameter has no primitive type", ref)
			return FieldEntry{}, false
		}
		return FieldEntry{
			Name:     naming.Uncapitalize(r.Name),
			Type:     SpecTypeToTS(t),
			Required: shared.Required,
		}, true
	default:
		s.issue("unrecognized reference type", ref)
		return FieldEntry{}, false
	}
}

// resolveRequestBody turns an OAS 3.x JSON request body that references a
// definition into a field named after the definition.
func (s *synthesizer) resolveRequestBody(body *parser.RequestBody) (FieldEntry, bool) {
	if body == nil {
		return FieldEntry{}, false
	}
	if body.Ref != "" {
		r, ok := refs.Parse(body.Ref)
		shared, found := s.in.View.RequestBodies.Get(r.Name)
		if !ok || r.Kind != refs.KindRequestBody || !found || shared == nil {
			s.issue("cannot resolve request body", body.Ref)
			return FieldEntry{}, false
		}
		body = shared
	}

	schema := parser.JSONSchema(body.Content)
	if schema == nil {
		return FieldEntry{}, false
	}
	name, ok := refs.DefinitionName(schema.Ref)
	if !ok {
		s.issue("request body is not a definition reference", schema.Ref)
		return FieldEntry{}, false
	}
	s.desc.Imports.Add(name)
	return FieldEntry{Name: name, Type: name, Required: body.Required}, true
}

// collectResponses fills Responses in source order and picks the success
// entry.
func (s *synthesizer) collectResponses() {
	for status, resp := range s.in.Operation.Responses.All() {
		typ := s.responseType(status, resp)
		s.desc.Responses = append(s.desc.Responses, ResponseEntry{Status: status, Type: typ})
	}
	for i := range s.desc.Responses {
		if s.desc.Responses[i].isSuccess() {
			s.desc.Success = &s.desc.Responses[i]
			break
		}
	}
}

func (s *synthesizer) responseType(status string, resp *parser.Response) string {
	fallback := s.in.DefaultErrorType
	if status == "200" {
		fallback = s.in.DefaultSuccessType
	}
	if resp == nil {
		return fallback
	}

	if resp.Ref != "" {
		r, ok := refs.Parse(resp.Ref)
		shared, found := s.in.View.Responses.Get(r.Name)
		if !ok || r.Kind != refs.KindResponse || !found || shared == nil {
			s.issue("cannot resolve response", resp.Ref, "status", status)
			return fallback
		}
		resp = shared
	}

	schema := resp.Schema
	if schema == nil {
		schema = parser.JSONSchema(resp.Content)
	}
	if schema == nil || schema.Ref == "" {
		return fallback
	}
	name, ok := refs.DefinitionName(schema.Ref)
	if !ok {
		s.issue("response schema is not a definition reference", schema.Ref, "status", status)
		return fallback
	}
	s.desc.Imports.Add(name)
	return name
}

// issue logs a recoverable problem and records it on the descriptor.
func (s *synthesizer) issue(message, ref string, attrs ...any) {
	if ref != "" {
		attrs = append(attrs, "ref", ref)
	}
	s.log.Warn(message, attrs...)
	path := "paths." + s.in.Path
	if s.in.Method != "" {
		path += "." + s.in.Method
	}
	s.desc.Issues = append(s.desc.Issues, GenerateIssue{
		Path:      path,
		Message:   message,
		Severity:  SeverityWarning,
		Operation: s.desc.OperationID,
		Ref:       ref,
	})
}

// render produces the TypeScript code of the operation.
func (s *synthesizer) render() string {
	d := s.desc
	var b strings.Builder

	fmt.Fprintf(&b, "/****************************************************************\n * %s\n */\n\n", d.OperationID)
	b.WriteString("// Request type definition\n")
	fmt.Fprintf(&b, "export type %s = r.I%sApiRequestType<%s, %s, never, %s>;\n",
		d.RequestTypeName, naming.Capitalize(d.Method), d.Fields.TypeLiteral(), headersType(d.Headers), responsesType(d.Responses))

	if s.in.GenerateDecoders && d.Success != nil {
		b.WriteString("\n// Decodes the success response with a custom success type\n")
		fmt.Fprintf(&b, "export function %sDecoder<A, O>(type: t.Type<A, O>) {\n  return %s;\n}\n",
			d.OperationID, composeDecoders(d.Responses, d.Success.Status))

		success := d.Success.Type
		if success == TypeUndefined {
			success = "t.undefined"
		}
		b.WriteString("\n// Decodes the success response with the type defined in the specs\n")
		fmt.Fprintf(&b, "export const %sDefaultDecoder = () => %sDecoder(%s);\n", d.OperationID, d.OperationID, success)
	}
	return b.String()
}

// headersType renders header names as a string literal union, or never.
func headersType(headers []string) string {
	if len(headers) == 0 {
		return "never"
	}
	quoted := make([]string, len(headers))
	for i, h := range headers {
		quoted[i] = `"` + h + `"`
	}
	return strings.Join(quoted, " | ")
}

func responsesType(responses []ResponseEntry) string {
	if len(responses) == 0 {
		return "never"
	}
	parts := make([]string, len(responses))
	for i, r := range responses {
		parts[i] = "r.IResponseType<" + r.Status + ", " + r.Type + ">"
	}
	return strings.Join(parts, " | ")
}

// composeDecoders folds the per-status decoders left to right. The success
// status decodes with the caller-supplied type.
func composeDecoders(responses []ResponseEntry, successStatus string) string {
	acc := ""
	for _, r := range responses {
		typ := r.Type
		if r.Status == successStatus {
			typ = "type"
		}
		d := responseDecoder(r.Status, typ)
		if acc == "" {
			acc = d
		} else {
			acc = "r.composeResponseDecoders(" + acc + ", " + d + ")"
		}
	}
	return acc
}

// responseDecoder returns the decoder expression of one status.
func responseDecoder(status, typ string) string {
	switch typ {
	case TypeUndefined:
		return fmt.Sprintf("r.constantResponseDecoder<undefined, %s>(%s, undefined)", status, status)
	case TypeError:
		return fmt.Sprintf("r.basicErrorResponseDecoder<%s>(%s)", status, status)
	default:
		return fmt.Sprintf(`r.ioResponseDecoder<%s, (typeof %s)["_A"], (typeof %s)["_O"]>(%s, %s)`, status, typ, typ, status, typ)
	}
}

// dedupe removes repeated strings, keeping first occurrences.
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
