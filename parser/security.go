package parser

// SecurityRequirement lists the required security schemes to execute an
// operation, mapping scheme names to scopes. Key order is preserved.
type SecurityRequirement = *OrderedMap[[]string]

// SecurityScheme defines a security scheme that can be used by the operations
type SecurityScheme struct {
	Ref         string `yaml:"$ref,omitempty"`
	Type        string `yaml:"type"` // "apiKey", "http", "oauth2", "openIdConnect", "basic"
	Description string `yaml:"description,omitempty"`

	// Type: apiKey
	Name string `yaml:"name,omitempty"` // Header, query, or cookie parameter name
	In   string `yaml:"in,omitempty"`   // "query", "header", "cookie"

	// Type: http (OAS 3.0+)
	Scheme       string `yaml:"scheme,omitempty"`
	BearerFormat string `yaml:"bearerFormat,omitempty"`
}

// SecurityInHeader is the location of header-transported credentials, the
// only ones that become request headers.
const SecurityInHeader = "header"
