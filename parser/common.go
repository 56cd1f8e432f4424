package parser

// Info provides metadata about the API
// Common across both dialects
type Info struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Version     string `yaml:"version"`
}

// HTTP methods that may appear as keys of a Path Item Object, lower-case as
// they are written in a specification.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// isHTTPMethod reports whether a path item key names an operation.
func isHTTPMethod(key string) bool {
	switch key {
	case MethodGet, MethodPut, MethodPost, MethodDelete,
		MethodOptions, MethodHead, MethodPatch, MethodTrace:
		return true
	default:
		return false
	}
}
