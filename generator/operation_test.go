package generator

import (
	"testing"

	"github.com/oasgen/genapi/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadDocument parses an inline specification.
func loadDocument(t *testing.T, src string) (parser.Document, parser.DialectView) {
	t.Helper()
	pr, err := parser.New().ParseBytes([]byte(src))
	require.NoError(t, err)
	require.NotNil(t, pr.Document)
	return pr.Document, pr.View()
}

// operationAt returns the operation for method on path.
func operationAt(t *testing.T, doc parser.Document, path, method string) *parser.Operation {
	t.Helper()
	item, ok := doc.PathItems().Get(path)
	require.True(t, ok, "path %s", path)
	op, ok := item.Operations.Get(method)
	require.True(t, ok, "%s %s", method, path)
	return op
}

const getPetSpec = `
swagger: "2.0"
info: {title: Pets, version: "1.0"}
securityDefinitions:
  apiKey: {type: apiKey, in: header, name: X-Api-Key}
paths:
  /pets/{id}:
    get:
      operationId: getPet
      parameters:
        - {name: id, in: path, type: integer, required: true}
      responses:
        "200": {description: ok, schema: {$ref: "#/definitions/Pet"}}
        "404": {description: not found}
    put:
      operationId: updatePet
      security:
        - apiKey: []
      parameters:
        - {name: id, in: path, type: integer, required: true}
        - {name: apiKey, in: query, type: integer}
      responses:
        "200": {description: ok}
definitions:
  Pet:
    type: object
    required: [name]
    properties:
      name: {type: string}
`

func TestSynthesizeOperation_RequiredPathParameter(t *testing.T) {
	doc, view := loadDocument(t, getPetSpec)

	desc, err := SynthesizeOperation(OperationInput{
		Method:             parser.MethodGet,
		Path:               "/pets/{id}",
		Operation:          operationAt(t, doc, "/pets/{id}", parser.MethodGet),
		View:               view,
		DefaultSuccessType: TypeUndefined,
		DefaultErrorType:   "ApiError",
	})
	require.NoError(t, err)

	id, ok := desc.Fields.Get("id")
	require.True(t, ok)
	assert.Equal(t, FieldEntry{Name: "id", Type: "number", Required: true}, id)
	assert.True(t, desc.Imports.Has("Pet"))
	assert.Equal(t, "GetPetT", desc.RequestTypeName)
	assert.Empty(t, desc.Headers)
	assert.Equal(t, []ResponseEntry{{Status: "200", Type: "Pet"}, {Status: "404", Type: "ApiError"}}, desc.Responses)
	assert.Contains(t, desc.Code,
		"export type GetPetT = r.IGetApiRequestType<{ readonly id: number }, never, never, r.IResponseType<200, Pet> | r.IResponseType<404, ApiError>>;")
	assert.NotContains(t, desc.Code, "Decoder")
}

func TestSynthesizeOperation_HeaderSecurity(t *testing.T) {
	doc, view := loadDocument(t, getPetSpec)
	op := operationAt(t, doc, "/pets/{id}", parser.MethodGet)
	req := parser.NewOrderedMap[[]string]()
	req.Set("apiKey", nil)
	op.Security = []parser.SecurityRequirement{req}

	desc, err := SynthesizeOperation(OperationInput{
		Method:           parser.MethodGet,
		Path:             "/pets/{id}",
		Operation:        op,
		View:             view,
		DefaultErrorType: "ApiError",
	})
	require.NoError(t, err)

	apiKey, ok := desc.Fields.Get("apiKey")
	require.True(t, ok)
	assert.Equal(t, FieldEntry{Name: "apiKey", Type: "string", Required: true}, apiKey)
	assert.Equal(t, []string{"X-Api-Key"}, desc.Headers)
	assert.Contains(t, desc.Code, `{ readonly apiKey: string; readonly id: number }, "X-Api-Key", never,`)
}

func TestSynthesizeOperation_EmptySecurityRequiresNoAuth(t *testing.T) {
	doc, view := loadDocument(t, `
swagger: "2.0"
info: {title: T, version: "1"}
securityDefinitions:
  apiKey: {type: apiKey, in: header, name: X-Api-Key}
paths:
  /login:
    post:
      operationId: login
      security: []
      responses:
        "204": {description: done}
`)

	desc, err := SynthesizeOperation(OperationInput{
		Method:    parser.MethodPost,
		Path:      "/login",
		Operation: operationAt(t, doc, "/login", parser.MethodPost),
		View:      view,
	})
	require.NoError(t, err)

	assert.Zero(t, desc.Fields.Len())
	assert.Empty(t, desc.Headers)
	assert.Contains(t, desc.Code, "export type LoginT = r.IPostApiRequestType<{}, never, never,")
}

func TestSynthesizeOperation_DeclaredParameterWinsOverAuth(t *testing.T) {
	doc, view := loadDocument(t, getPetSpec)

	extra := NewFieldMap()
	extra.Set(FieldEntry{Name: "id", Type: "string", Required: true})

	desc, err := SynthesizeOperation(OperationInput{
		Method:      parser.MethodPut,
		Path:        "/pets/{id}",
		Operation:   operationAt(t, doc, "/pets/{id}", parser.MethodPut),
		View:        view,
		ExtraParams: extra,
	})
	require.NoError(t, err)

	// extra first, then auth, then declared; a later source replaces the
	// entry but keeps its position
	assert.Equal(t, []FieldEntry{
		{Name: "id", Type: "number", Required: true},
		{Name: "apiKey", Type: "number"},
	}, desc.Fields.Entries())
	assert.Equal(t, []string{"Content-Type", "X-Api-Key"}, desc.Headers)
	assert.Equal(t, 1, extra.Len())
}

func TestSynthesizeOperation_MissingOperationID(t *testing.T) {
	_, err := SynthesizeOperation(OperationInput{Method: parser.MethodGet, Operation: &parser.Operation{}})
	assert.ErrorIs(t, err, ErrMissingOperationID)

	_, err = SynthesizeOperation(OperationInput{Method: parser.MethodGet})
	assert.ErrorIs(t, err, ErrMissingOperationID)
}

func TestSynthesizeOperation_SuccessIsPositional(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     string
	}{
		{"200 first", []string{"200", "201", "default"}, "200"},
		{"201 first", []string{"201", "200", "default"}, "201"},
		{"default first", []string{"default", "204"}, "204"},
		{"no success", []string{"default", "404"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responses := parser.NewOrderedMap[*parser.Response]()
			for _, s := range tt.statuses {
				responses.Set(s, &parser.Response{})
			}
			desc, err := SynthesizeOperation(OperationInput{
				Method:             parser.MethodGet,
				Path:               "/x",
				Operation:          &parser.Operation{OperationID: "x", Responses: responses},
				DefaultSuccessType: TypeUndefined,
				DefaultErrorType:   TypeError,
			})
			require.NoError(t, err)
			if tt.want == "" {
				assert.Nil(t, desc.Success)
				return
			}
			require.NotNil(t, desc.Success)
			assert.Equal(t, tt.want, desc.Success.Status)
		})
	}
}

func TestSynthesizeOperation_Decoders(t *testing.T) {
	doc, view := loadDocument(t, getPetSpec)

	desc, err := SynthesizeOperation(OperationInput{
		Method:             parser.MethodGet,
		Path:               "/pets/{id}",
		Operation:          operationAt(t, doc, "/pets/{id}", parser.MethodGet),
		View:               view,
		DefaultSuccessType: TypeUndefined,
		DefaultErrorType:   TypeError,
		GenerateDecoders:   true,
	})
	require.NoError(t, err)

	assert.Contains(t, desc.Code,
		"export function getPetDecoder<A, O>(type: t.Type<A, O>) {\n"+
			`  return r.composeResponseDecoders(r.ioResponseDecoder<200, (typeof type)["_A"], (typeof type)["_O"]>(200, type), r.basicErrorResponseDecoder<404>(404));`+"\n}\n")
	assert.Contains(t, desc.Code, "export const getPetDefaultDecoder = () => getPetDecoder(Pet);\n")
}

func TestSynthesizeOperation_DecoderForUndefinedSuccess(t *testing.T) {
	doc, view := loadDocument(t, getPetSpec)

	desc, err := SynthesizeOperation(OperationInput{
		Method:             parser.MethodPut,
		Path:               "/pets/{id}",
		Operation:          operationAt(t, doc, "/pets/{id}", parser.MethodPut),
		View:               view,
		DefaultSuccessType: TypeUndefined,
		DefaultErrorType:   TypeError,
		GenerateDecoders:   true,
	})
	require.NoError(t, err)

	assert.Contains(t, desc.Code, "export const updatePetDefaultDecoder = () => updatePetDecoder(t.undefined);")
}

func TestSynthesizeOperation_UnresolvableReferences(t *testing.T) {
	doc, view := loadDocument(t, `
swagger: "2.0"
info: {title: T, version: "1"}
paths:
  /things:
    post:
      operationId: createThing
      parameters:
        - $ref: "#/parameters/Missing"
        - $ref: "#/securityDefinitions/Bearer"
        - $ref: "not-a-ref"
        - {name: untyped, in: query}
        - {name: limit, in: query, type: integer}
      responses:
        "201": {description: created, schema: {$ref: "#/parameters/Oops"}}
`)

	desc, err := SynthesizeOperation(OperationInput{
		Method:             parser.MethodPost,
		Path:               "/things",
		Operation:          operationAt(t, doc, "/things", parser.MethodPost),
		View:               view,
		DefaultSuccessType: TypeUndefined,
		DefaultErrorType:   TypeUndefined,
	})
	require.NoError(t, err)

	assert.Equal(t, []FieldEntry{{Name: "limit", Type: "number"}}, desc.Fields.Entries())
	assert.Equal(t, "undefined", desc.Responses[0].Type)
	require.Len(t, desc.Issues, 5)
	for _, issue := range desc.Issues {
		assert.Equal(t, SeverityWarning, issue.Severity)
		assert.Equal(t, "paths./things.post", issue.Path)
		assert.Equal(t, "createThing", issue.Operation)
	}
	assert.Equal(t, "#/parameters/Missing", desc.Issues[0].Ref)
}

func TestSynthesizeOperation_ReferencedParameter(t *testing.T) {
	doc, view := loadDocument(t, `
swagger: "2.0"
info: {title: T, version: "1"}
parameters:
  PageSize: {name: page_size, in: query, type: integer, required: true}
paths:
  /things:
    get:
      operationId: listThings
      parameters:
        - $ref: "#/parameters/PageSize"
      responses:
        "200": {description: ok}
`)

	desc, err := SynthesizeOperation(OperationInput{
		Method:    parser.MethodGet,
		Path:      "/things",
		Operation: operationAt(t, doc, "/things", parser.MethodGet),
		View:      view,
	})
	require.NoError(t, err)

	assert.Equal(t, []FieldEntry{{Name: "pageSize", Type: "number", Required: true}}, desc.Fields.Entries())
}

func TestPathParameters(t *testing.T) {
	doc, view := loadDocument(t, `
swagger: "2.0"
info: {title: T, version: "1"}
paths:
  /owners/{ownerId}/pets:
    parameters:
      - {name: ownerId, in: path, type: string, required: true}
      - {name: body, in: body, schema: {$ref: "#/definitions/Owner"}}
      - $ref: "#/responses/Nope"
    get:
      operationId: listOwnerPets
      responses:
        "200": {description: ok}
`)
	item, ok := doc.PathItems().Get("/owners/{ownerId}/pets")
	require.True(t, ok)

	fields, imports, issues := pathParameters("/owners/{ownerId}/pets", item, view, parser.NopLogger{})

	assert.Equal(t, "{ readonly ownerId: string; readonly Owner?: Owner }", fields.TypeLiteral())
	assert.Equal(t, []string{"Owner"}, imports.Ordered())
	require.Len(t, issues, 1)
	assert.Equal(t, "paths./owners/{ownerId}/pets", issues[0].Path)
}

func TestResponsesTypeAndHeadersType(t *testing.T) {
	assert.Equal(t, "never", responsesType(nil))
	assert.Equal(t, "never", headersType(nil))
	assert.Equal(t, `"Content-Type" | "Authorization"`, headersType([]string{"Content-Type", "Authorization"}))
	assert.Equal(t, "r.IResponseType<200, Pet> | r.IResponseType<default, undefined>",
		responsesType([]ResponseEntry{{Status: "200", Type: "Pet"}, {Status: "default", Type: "undefined"}}))
}

func TestComposeDecoders(t *testing.T) {
	got := composeDecoders([]ResponseEntry{
		{Status: "201", Type: "Pet"},
		{Status: "400", Type: "ProblemJson"},
		{Status: "404", Type: TypeUndefined},
		{Status: "500", Type: TypeError},
	}, "201")

	want := "r.composeResponseDecoders(" +
		"r.composeResponseDecoders(" +
		"r.composeResponseDecoders(" +
		`r.ioResponseDecoder<201, (typeof type)["_A"], (typeof type)["_O"]>(201, type), ` +
		`r.ioResponseDecoder<400, (typeof ProblemJson)["_A"], (typeof ProblemJson)["_O"]>(400, ProblemJson)), ` +
		"r.constantResponseDecoder<undefined, 404>(404, undefined)), " +
		"r.basicErrorResponseDecoder<500>(500))"
	assert.Equal(t, want, got)
}

func TestSynthesizeOperation_InlineBodySchemaIsSkipped(t *testing.T) {
	doc, view := loadDocument(t, `
swagger: "2.0"
info: {title: T, version: "1"}
paths:
  /pets:
    post:
      operationId: addPets
      parameters:
        - name: body
          in: body
          schema:
            type: array
            items: {$ref: "#/definitions/Pet"}
        - {name: tags, in: formData, type: array, items: {type: string}}
      responses:
        "204": {description: added}
definitions:
  Pet: {type: object}
`)

	desc, err := SynthesizeOperation(OperationInput{
		Method:    parser.MethodPost,
		Path:      "/pets",
		Operation: operationAt(t, doc, "/pets", parser.MethodPost),
		View:      view,
	})
	require.NoError(t, err)

	_, hasBody := desc.Fields.Get("body")
	assert.False(t, hasBody)
	_, hasTags := desc.Fields.Get("tags")
	assert.True(t, hasTags)
	assert.NotContains(t, desc.Code, "readonly body")
	require.Len(t, desc.Issues, 1)
	assert.Equal(t, "skipping body parameter with inline schema", desc.Issues[0].Message)
	assert.Equal(t, SeverityWarning, desc.Issues[0].Severity)
}

func TestSynthesizeOperation_RequestBodyRefMustTargetRequestBodies(t *testing.T) {
	doc, view := loadDocument(t, `
openapi: 3.0.0
info: {title: T, version: "1"}
paths:
  /pets:
    post:
      operationId: addPet
      requestBody: {$ref: "#/components/schemas/Pet"}
      responses:
        "204": {description: added}
    put:
      operationId: replacePet
      requestBody: {$ref: "#/components/requestBodies/Pet"}
      responses:
        "204": {description: replaced}
components:
  schemas:
    Pet: {type: object}
  requestBodies:
    Pet:
      required: true
      content:
        application/json:
          schema: {$ref: "#/components/schemas/Pet"}
`)

	desc, err := SynthesizeOperation(OperationInput{
		Method:    parser.MethodPost,
		Path:      "/pets",
		Operation: operationAt(t, doc, "/pets", parser.MethodPost),
		View:      view,
	})
	require.NoError(t, err)
	assert.Zero(t, desc.Fields.Len())
	require.Len(t, desc.Issues, 1)
	assert.Equal(t, "cannot resolve request body", desc.Issues[0].Message)
	assert.Equal(t, "#/components/schemas/Pet", desc.Issues[0].Ref)

	desc, err = SynthesizeOperation(OperationInput{
		Method:    parser.MethodPut,
		Path:      "/pets",
		Operation: operationAt(t, doc, "/pets", parser.MethodPut),
		View:      view,
	})
	require.NoError(t, err)
	pet, ok := desc.Fields.Get("Pet")
	require.True(t, ok)
	assert.Equal(t, FieldEntry{Name: "Pet", Type: "Pet", Required: true}, pet)
	assert.Empty(t, desc.Issues)
}
