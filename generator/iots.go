// This file renders schemas as io-ts codec expressions.

package generator

import (
	"strconv"
	"strings"

	"github.com/oasgen/genapi/internal/naming"
	"github.com/oasgen/genapi/parser"
	"github.com/oasgen/genapi/refs"
)

// Runtime helper imports used by generated models.
const (
	importEnumType           = `import { enumType } from "italia-ts-commons/lib/types";`
	importPatternString      = `import { PatternString } from "italia-ts-commons/lib/strings";`
	importWithinRangeString  = `import { WithinRangeString } from "italia-ts-commons/lib/strings";`
	importWithinRangeNumber  = `import { WithinRangeNumber } from "italia-ts-commons/lib/numbers";`
	importWithinRangeInteger = `import { WithinRangeInteger } from "italia-ts-commons/lib/numbers";`
)

// maxSchemaDepth bounds recursion through nested inline schemas.
const maxSchemaDepth = 64

// definitionImport is the import line for a sibling model file.
func definitionImport(name string) string {
	return `import { ` + name + ` } from "./` + name + `";`
}

// renderWarning is a recoverable problem met while rendering one model.
type renderWarning struct {
	Message string
	Ref     string
}

// renderState accumulates the imports and type aliases a single model file
// needs. A fresh state is created for every definition, so nothing recorded
// while rendering one file can reach another.
type renderState struct {
	definition string

	imports    []string
	importSeen map[string]struct{}
	aliases    []string
	aliasSeen  map[string]struct{}
	enums      map[string]string
	warnings   []renderWarning
}

func newRenderState(definition string) *renderState {
	return &renderState{
		definition: definition,
		importSeen: make(map[string]struct{}),
		aliasSeen:  make(map[string]struct{}),
		enums:      make(map[string]string),
	}
}

// addImport records an import line. It returns "" so templates can call it
// for its side effect.
func (s *renderState) addImport(line string) string {
	if _, ok := s.importSeen[line]; !ok {
		s.importSeen[line] = struct{}{}
		s.imports = append(s.imports, line)
	}
	return ""
}

func (s *renderState) getImports() string {
	return strings.Join(s.imports, "\n")
}

// addTypeAlias records a type declaration emitted ahead of the codecs.
func (s *renderState) addTypeAlias(code string) string {
	if _, ok := s.aliasSeen[code]; !ok {
		s.aliasSeen[code] = struct{}{}
		s.aliases = append(s.aliases, code)
	}
	return ""
}

func (s *renderState) getTypeAliases() string {
	return strings.Join(s.aliases, "\n\n")
}

func (s *renderState) warn(message, ref string) {
	s.warnings = append(s.warnings, renderWarning{Message: message, Ref: ref})
}

// ioType returns the io-ts expression for schema. name is the property (or
// definition) the schema belongs to and names any enum alias it needs.
func (s *renderState) ioType(schema *parser.Schema, name string) string {
	return s.ioTypeAt(schema, name, 0)
}

func (s *renderState) ioTypeAt(schema *parser.Schema, name string, depth int) string {
	if schema == nil || depth > maxSchemaDepth {
		return "t.unknown"
	}
	expr := s.baseType(schema, name, depth)
	if schema.Nullable {
		return "t.union([" + expr + ", t.null])"
	}
	return expr
}

func (s *renderState) baseType(schema *parser.Schema, name string, depth int) string {
	if schema.Ref != "" {
		return s.refType(schema.Ref)
	}
	if len(schema.AllOf) > 0 {
		return s.combine("t.intersection", schema.AllOf, name, depth)
	}
	if len(schema.OneOf) > 0 {
		return s.combine("t.union", schema.OneOf, name, depth)
	}
	if len(schema.AnyOf) > 0 {
		return s.combine("t.union", schema.AnyOf, name, depth)
	}

	switch getSchemaType(schema) {
	case "string":
		if len(schema.Enum) > 0 {
			return s.enumType(schema, name)
		}
		return s.stringType(schema)
	case "integer":
		if len(schema.Enum) > 0 {
			return literalUnion(schema.Enum)
		}
		return s.integerType(schema)
	case "number":
		if len(schema.Enum) > 0 {
			return literalUnion(schema.Enum)
		}
		return s.numberType(schema)
	case "boolean":
		return "t.boolean"
	case "array":
		return "t.readonlyArray(" + s.ioTypeAt(schema.Items, name, depth+1) + ")"
	case "object":
		return s.objectType(schema, depth)
	default:
		return "t.unknown"
	}
}

// refType imports the referenced definition and names it. A definition
// never imports itself.
func (s *renderState) refType(ref string) string {
	r, ok := refs.Parse(ref)
	if !ok || r.Kind != refs.KindDefinition {
		s.warn("unsupported schema reference, rendered as t.unknown", ref)
		return "t.unknown"
	}
	if r.Name != s.definition {
		s.addImport(definitionImport(r.Name))
	}
	return r.Name
}

func (s *renderState) combine(fn string, schemas []*parser.Schema, name string, depth int) string {
	parts := make([]string, 0, len(schemas))
	for _, sub := range schemas {
		parts = append(parts, s.ioTypeAt(sub, name, depth+1))
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return fn + "([" + strings.Join(parts, ", ") + "])"
}

// enumType declares a TypeScript enum named after the property and returns
// the codec validating against it. Enum names are unique within a model
// file: a name already declared with other values gets a numeric suffix.
func (s *renderState) enumType(schema *parser.Schema, name string) string {
	if name == "" {
		name = s.definition
	}
	base := naming.Capitalize(naming.SnakeToCamel(name)) + "Enum"

	alias := base
	for n := 2; ; n++ {
		decl := enumDeclaration(alias, schema.Enum)
		prev, taken := s.enums[alias]
		if !taken {
			s.enums[alias] = decl
			s.addTypeAlias(decl)
			break
		}
		if prev == decl {
			break
		}
		alias = base + strconv.Itoa(n)
	}

	s.addImport(importEnumType)
	return "enumType<" + alias + ">(" + alias + ", " + strconv.Quote(name) + ")"
}

func enumDeclaration(alias string, values []string) string {
	var b strings.Builder
	b.WriteString("export enum " + alias + " {\n")
	for _, v := range values {
		q := strconv.Quote(v)
		b.WriteString("  " + q + " = " + q + ",\n")
	}
	b.WriteString("}")
	return b.String()
}

func literalUnion(values []string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, "t.literal("+v+")")
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "t.union([" + strings.Join(parts, ", ") + "])"
}

func (s *renderState) stringType(schema *parser.Schema) string {
	if schema.Pattern != "" {
		s.addImport(importPatternString)
		return "PatternString(" + strconv.Quote(schema.Pattern) + ")"
	}
	if schema.MinLength != nil || schema.MaxLength != nil {
		lo, hi := "0", "Infinity"
		if schema.MinLength != nil {
			lo = strconv.Itoa(*schema.MinLength)
		}
		if schema.MaxLength != nil {
			hi = strconv.Itoa(*schema.MaxLength + 1)
		}
		s.addImport(importWithinRangeString)
		return "WithinRangeString(" + lo + ", " + hi + ")"
	}
	return "t.string"
}

// integerType renders bounded integers with an exclusive upper bound.
func (s *renderState) integerType(schema *parser.Schema) string {
	if schema.Minimum == nil && schema.Maximum == nil {
		return "t.Integer"
	}
	lo, hi := "-Infinity", "Infinity"
	if schema.Minimum != nil {
		m := *schema.Minimum
		if schema.ExclusiveMinimum {
			m++
		}
		lo = formatNumber(m)
	}
	if schema.Maximum != nil {
		m := *schema.Maximum
		if !schema.ExclusiveMaximum {
			m++
		}
		hi = formatNumber(m)
	}
	s.addImport(importWithinRangeInteger)
	return "WithinRangeInteger(" + lo + ", " + hi + ")"
}

func (s *renderState) numberType(schema *parser.Schema) string {
	if schema.Minimum == nil && schema.Maximum == nil {
		return "t.number"
	}
	lo, hi := "-Infinity", "Infinity"
	if schema.Minimum != nil {
		lo = formatNumber(*schema.Minimum)
	}
	if schema.Maximum != nil {
		hi = formatNumber(*schema.Maximum)
	}
	s.addImport(importWithinRangeNumber)
	return "WithinRangeNumber(" + lo + ", " + hi + ")"
}

// objectType renders an inline object schema.
func (s *renderState) objectType(schema *parser.Schema, depth int) string {
	if schema.Properties.Len() == 0 {
		if ap := schema.AdditionalProperties; ap != nil && ap.Schema != nil {
			return "t.dictionary(t.string, " + s.ioTypeAt(ap.Schema, "", depth+1) + ")"
		}
		return "t.dictionary(t.string, t.unknown)"
	}

	var required, optional []string
	for name, prop := range schema.Properties.All() {
		field := propertyName(name) + ": " + s.ioTypeAt(prop, name, depth+1)
		if schema.IsRequired(name) {
			required = append(required, field)
		} else {
			optional = append(optional, field)
		}
	}

	req := "t.interface({ " + strings.Join(required, ", ") + " })"
	opt := "t.partial({ " + strings.Join(optional, ", ") + " })"
	switch {
	case len(optional) == 0:
		return req
	case len(required) == 0:
		return opt
	default:
		return "t.intersection([" + req + ", " + opt + "])"
	}
}

// propertyName quotes names that are not valid identifiers.
func propertyName(name string) string {
	if naming.IsIdentifier(name) {
		return name
	}
	return strconv.Quote(name)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
