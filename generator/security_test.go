package generator

import (
	"testing"

	"github.com/oasgen/genapi/parser"
	"github.com/stretchr/testify/assert"
)

func testSchemes() *parser.OrderedMap[*parser.SecurityScheme] {
	defs := parser.NewOrderedMap[*parser.SecurityScheme]()
	defs.Set("Bearer", &parser.SecurityScheme{Type: "apiKey", In: parser.SecurityInHeader, Name: "Authorization"})
	defs.Set("ApiKeyQuery", &parser.SecurityScheme{Type: "apiKey", In: "query", Name: "api_key"})
	defs.Set("apiKey", &parser.SecurityScheme{Type: "apiKey", In: parser.SecurityInHeader, Name: "X-Api-Key"})
	return defs
}

func TestAuthHeaders(t *testing.T) {
	tests := []struct {
		name  string
		defs  *parser.OrderedMap[*parser.SecurityScheme]
		names []string
		want  []AuthHeader
	}{
		{
			name: "no definitions and no names",
			want: []AuthHeader{},
		},
		{
			name:  "no definitions with names",
			names: []string{"Bearer"},
			want:  []AuthHeader{},
		},
		{
			name: "all header schemes when no names",
			defs: testSchemes(),
			want: []AuthHeader{
				{SchemeName: "Bearer", HeaderName: "Authorization"},
				{SchemeName: "apiKey", HeaderName: "X-Api-Key"},
			},
		},
		{
			name:  "explicit names follow name order",
			defs:  testSchemes(),
			names: []string{"apiKey", "Bearer"},
			want: []AuthHeader{
				{SchemeName: "apiKey", HeaderName: "X-Api-Key"},
				{SchemeName: "Bearer", HeaderName: "Authorization"},
			},
		},
		{
			name:  "unknown names are dropped",
			defs:  testSchemes(),
			names: []string{"Missing", "apiKey"},
			want:  []AuthHeader{{SchemeName: "apiKey", HeaderName: "X-Api-Key"}},
		},
		{
			name:  "query schemes are dropped",
			defs:  testSchemes(),
			names: []string{"ApiKeyQuery"},
			want:  []AuthHeader{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AuthHeaders(tt.defs, tt.names))
		})
	}
}

func TestRequirementNames(t *testing.T) {
	first := parser.NewOrderedMap[[]string]()
	first.Set("Bearer", nil)
	first.Set("apiKey", []string{"read"})
	second := parser.NewOrderedMap[[]string]()
	second.Set("apiKey", nil)
	second.Set("Cookie", nil)

	assert.Equal(t, []string{"Bearer", "apiKey", "Cookie"},
		RequirementNames([]parser.SecurityRequirement{first, second}))
	assert.Empty(t, RequirementNames([]parser.SecurityRequirement{}))
}

func TestAuthFields(t *testing.T) {
	fields := NewFieldMap()
	authFields(fields, []AuthHeader{{SchemeName: "Bearer", HeaderName: "Authorization"}})

	assert.Equal(t, "{ readonly Bearer: string }", fields.TypeLiteral())
	assert.Equal(t, []string{"Authorization"}, headerNames([]AuthHeader{{SchemeName: "Bearer", HeaderName: "Authorization"}}))
	assert.Empty(t, headerNames(nil))
}

func TestRequiredAuth(t *testing.T) {
	named := parser.NewOrderedMap[[]string]()
	named.Set("apiKey", nil)
	anonymous := parser.NewOrderedMap[[]string]()

	assert.Empty(t, requiredAuth(testSchemes(), nil), "absent key")
	assert.Empty(t, requiredAuth(testSchemes(), []parser.SecurityRequirement{}), "security: []")
	assert.Empty(t, requiredAuth(testSchemes(), []parser.SecurityRequirement{anonymous}), "security: [{}]")
	assert.Equal(t, []AuthHeader{{SchemeName: "apiKey", HeaderName: "X-Api-Key"}},
		requiredAuth(testSchemes(), []parser.SecurityRequirement{named}))
}

func TestOptsOutOfAuth(t *testing.T) {
	named := parser.NewOrderedMap[[]string]()
	named.Set("Bearer", nil)

	assert.False(t, optsOutOfAuth(nil))
	assert.True(t, optsOutOfAuth([]parser.SecurityRequirement{}))
	assert.True(t, optsOutOfAuth([]parser.SecurityRequirement{parser.NewOrderedMap[[]string]()}))
	assert.False(t, optsOutOfAuth([]parser.SecurityRequirement{named}))
}
