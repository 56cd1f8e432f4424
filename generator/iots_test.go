package generator

import (
	"testing"

	"github.com/oasgen/genapi/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestIOType_Primitives(t *testing.T) {
	tests := []struct {
		name       string
		schema     *parser.Schema
		want       string
		wantImport string
	}{
		{"nil", nil, "t.unknown", ""},
		{"string", &parser.Schema{Type: "string"}, "t.string", ""},
		{"boolean", &parser.Schema{Type: "boolean"}, "t.boolean", ""},
		{"integer", &parser.Schema{Type: "integer"}, "t.Integer", ""},
		{"number", &parser.Schema{Type: "number"}, "t.number", ""},
		{"untyped", &parser.Schema{}, "t.unknown", ""},
		{
			"pattern",
			&parser.Schema{Type: "string", Pattern: `^\d+$`},
			`PatternString("^\\d+$")`,
			importPatternString,
		},
		{
			"string length",
			&parser.Schema{Type: "string", MinLength: intPtr(1), MaxLength: intPtr(10)},
			"WithinRangeString(1, 11)",
			importWithinRangeString,
		},
		{
			"string max only",
			&parser.Schema{Type: "string", MaxLength: intPtr(5)},
			"WithinRangeString(0, 6)",
			importWithinRangeString,
		},
		{
			"integer range",
			&parser.Schema{Type: "integer", Minimum: floatPtr(100), Maximum: floatPtr(600)},
			"WithinRangeInteger(100, 601)",
			importWithinRangeInteger,
		},
		{
			"integer exclusive range",
			&parser.Schema{Type: "integer", Minimum: floatPtr(0), Maximum: floatPtr(10), ExclusiveMinimum: true, ExclusiveMaximum: true},
			"WithinRangeInteger(1, 10)",
			importWithinRangeInteger,
		},
		{
			"number range",
			&parser.Schema{Type: "number", Minimum: floatPtr(0.5)},
			"WithinRangeNumber(0.5, Infinity)",
			importWithinRangeNumber,
		},
		{
			"integer enum",
			&parser.Schema{Type: "integer", Enum: []string{"1", "2"}},
			"t.union([t.literal(1), t.literal(2)])",
			"",
		},
		{
			"nullable",
			&parser.Schema{Type: "string", Nullable: true},
			"t.union([t.string, t.null])",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRenderState("Model")
			assert.Equal(t, tt.want, s.ioType(tt.schema, "field"))
			assert.Equal(t, tt.wantImport, s.getImports())
		})
	}
}

func TestIOType_References(t *testing.T) {
	s := newRenderState("Pet")

	assert.Equal(t, "Category", s.ioType(&parser.Schema{Ref: "#/definitions/Category"}, "category"))
	assert.Equal(t, "Tag", s.ioType(&parser.Schema{Ref: "#/components/schemas/Tag"}, "tag"))
	assert.Equal(t, "Pet", s.ioType(&parser.Schema{Ref: "#/definitions/Pet"}, "parent"))
	assert.Equal(t, "t.unknown", s.ioType(&parser.Schema{Ref: "#/parameters/Limit"}, "limit"))

	assert.Equal(t,
		"import { Category } from \"./Category\";\nimport { Tag } from \"./Tag\";",
		s.getImports())
	require.Len(t, s.warnings, 1)
	assert.Equal(t, "#/parameters/Limit", s.warnings[0].Ref)
}

func TestIOType_Composition(t *testing.T) {
	s := newRenderState("Model")

	assert.Equal(t, "t.readonlyArray(A)",
		s.ioType(&parser.Schema{Type: "array", Items: &parser.Schema{Ref: "#/definitions/A"}}, "list"))
	assert.Equal(t, "t.intersection([A, B])",
		s.ioType(&parser.Schema{AllOf: []*parser.Schema{{Ref: "#/definitions/A"}, {Ref: "#/definitions/B"}}}, "x"))
	assert.Equal(t, "t.union([A, t.string])",
		s.ioType(&parser.Schema{OneOf: []*parser.Schema{{Ref: "#/definitions/A"}, {Type: "string"}}}, "x"))
	assert.Equal(t, "B",
		s.ioType(&parser.Schema{AnyOf: []*parser.Schema{{Ref: "#/definitions/B"}}}, "x"))
}

func TestIOType_Objects(t *testing.T) {
	s := newRenderState("Model")

	assert.Equal(t, "t.dictionary(t.string, t.unknown)", s.ioType(&parser.Schema{Type: "object"}, "x"))
	assert.Equal(t, "t.dictionary(t.string, t.Integer)", s.ioType(&parser.Schema{
		Type:                 "object",
		AdditionalProperties: &parser.AdditionalProperties{Allowed: true, Schema: &parser.Schema{Type: "integer"}},
	}, "x"))

	props := parser.NewOrderedMap[*parser.Schema]()
	props.Set("id", &parser.Schema{Type: "integer"})
	props.Set("first-name", &parser.Schema{Type: "string"})
	assert.Equal(t,
		`t.intersection([t.interface({ id: t.Integer }), t.partial({ "first-name": t.string })])`,
		s.ioType(&parser.Schema{Type: "object", Properties: props, Required: []string{"id"}}, "x"))
	assert.Equal(t,
		`t.partial({ id: t.Integer, "first-name": t.string })`,
		s.ioType(&parser.Schema{Type: "object", Properties: props}, "x"))
	assert.Equal(t,
		`t.interface({ id: t.Integer, "first-name": t.string })`,
		s.ioType(&parser.Schema{Type: "object", Properties: props, Required: []string{"id", "first-name"}}, "x"))
}

func TestIOType_StringEnum(t *testing.T) {
	s := newRenderState("Pet")

	got := s.ioType(&parser.Schema{Type: "string", Enum: []string{"available", "sold"}}, "pet_status")
	assert.Equal(t, `enumType<PetStatusEnum>(PetStatusEnum, "pet_status")`, got)
	assert.Equal(t, importEnumType, s.getImports())
	assert.Equal(t,
		"export enum PetStatusEnum {\n  \"available\" = \"available\",\n  \"sold\" = \"sold\",\n}",
		s.getTypeAliases())

	// the same enum twice is declared once
	s.ioType(&parser.Schema{Type: "string", Enum: []string{"available", "sold"}}, "pet_status")
	assert.Len(t, s.aliases, 1)
}

func TestIOType_EnumNameClash(t *testing.T) {
	s := newRenderState("Order")

	outer := s.ioType(&parser.Schema{Type: "string", Enum: []string{"placed", "delivered"}}, "status")
	inner := s.ioType(&parser.Schema{Type: "string", Enum: []string{"open", "closed"}}, "status")
	again := s.ioType(&parser.Schema{Type: "string", Enum: []string{"open", "closed"}}, "status")

	assert.Equal(t, `enumType<StatusEnum>(StatusEnum, "status")`, outer)
	assert.Equal(t, `enumType<StatusEnum2>(StatusEnum2, "status")`, inner)
	assert.Equal(t, inner, again)
	require.Len(t, s.aliases, 2)
	assert.Equal(t, "export enum StatusEnum2 {\n  \"open\" = \"open\",\n  \"closed\" = \"closed\",\n}", s.aliases[1])
}

func TestIOType_EnumFallsBackToDefinitionName(t *testing.T) {
	s := newRenderState("Color")
	assert.Equal(t, `enumType<ColorEnum>(ColorEnum, "Color")`,
		s.ioType(&parser.Schema{Enum: []string{"red"}}, ""))
}

func TestIOType_DepthLimit(t *testing.T) {
	schema := &parser.Schema{Type: "array"}
	schema.Items = schema
	s := newRenderState("Loop")

	got := s.ioType(schema, "loop")
	assert.Contains(t, got, "t.unknown")
}

func TestPropertyName(t *testing.T) {
	assert.Equal(t, "name", propertyName("name"))
	assert.Equal(t, "_id", propertyName("_id"))
	assert.Equal(t, `"first-name"`, propertyName("first-name"))
	assert.Equal(t, `"1st"`, propertyName("1st"))
}

func TestRenderState_Isolation(t *testing.T) {
	first := newRenderState("A")
	first.ioType(&parser.Schema{Ref: "#/definitions/B"}, "b")
	first.ioType(&parser.Schema{Type: "string", Enum: []string{"x"}}, "kind")

	second := newRenderState("C")
	second.ioType(&parser.Schema{Type: "string"}, "name")

	assert.NotEmpty(t, first.getImports())
	assert.Empty(t, second.getImports())
	assert.Empty(t, second.getTypeAliases())
}
