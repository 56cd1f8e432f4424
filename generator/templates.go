package generator

import (
	"bytes"
	"embed"
	"errors"
	"slices"
	"strings"
	"text/template"

	"github.com/oasgen/genapi/internal/naming"
	"github.com/oasgen/genapi/parser"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates *template.Template

func init() {
	templates = template.Must(template.New("").
		Funcs(templateFuncs).
		Funcs(unboundStateFuncs).
		ParseFS(templateFS, "templates/*.tmpl"))
}

// templateFuncs provides the stateless helpers available to every template.
var templateFuncs = template.FuncMap{
	"contains":        containsString,
	"startsWith":      strings.HasPrefix,
	"capitalizeFirst": naming.Capitalize,
	"camelCase":       naming.SnakeToCamel,
	"comment":         docComment,
	"indent":          indent,
	"propertyName":    propertyName,
}

var errUnboundState = errors.New("template helper called outside a model render")

// unboundStateFuncs declares the per-render helpers at parse time. Each
// render replaces them with closures over its own renderState.
var unboundStateFuncs = template.FuncMap{
	"addImport":      func(string) (string, error) { return "", errUnboundState },
	"getImports":     func() (string, error) { return "", errUnboundState },
	"addTypeAlias":   func(string) (string, error) { return "", errUnboundState },
	"getTypeAliases": func() (string, error) { return "", errUnboundState },
	"ioType":         func(*parser.Schema, string) (string, error) { return "", errUnboundState },
	"render":         func(string, any) (string, error) { return "", errUnboundState },
}

// bind returns a clone of the parsed templates whose state helpers write to s.
func (s *renderState) bind() (*template.Template, error) {
	tmpl, err := templates.Clone()
	if err != nil {
		return nil, err
	}
	tmpl.Funcs(template.FuncMap{
		"addImport":      s.addImport,
		"getImports":     s.getImports,
		"addTypeAlias":   s.addTypeAlias,
		"getTypeAliases": s.getTypeAliases,
		"ioType":         s.ioType,
		"render": func(name string, data any) (string, error) {
			var buf bytes.Buffer
			if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
				return "", err
			}
			return buf.String(), nil
		},
	})
	return tmpl, nil
}

// executeTemplate executes a stateless template by name and returns the
// formatted output.
func executeTemplate(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return formatTS(buf.Bytes()), nil
}

func containsString(list []string, item string) bool {
	return slices.Contains(list, item)
}

// docComment renders text as a JSDoc block.
func docComment(text string) string {
	text = strings.TrimRight(text, "\n")
	text = strings.ReplaceAll(text, "*/", `*\/`)
	return "/**\n * " + strings.Join(strings.Split(text, "\n"), "\n * ") + "\n */"
}

// indent prefixes every non-empty line of s with n spaces.
func indent(n int, s string) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}

// formatTS normalizes generated TypeScript: trailing whitespace is removed,
// runs of blank lines collapse to one, and the file ends with one newline.
func formatTS(src []byte) []byte {
	lines := strings.Split(string(src), "\n")
	var out bytes.Buffer
	blank := true
	for _, l := range lines {
		l = strings.TrimRight(l, " \t\r")
		if l == "" {
			if blank {
				continue
			}
			blank = true
			out.WriteByte('\n')
			continue
		}
		blank = false
		out.WriteString(l)
		out.WriteByte('\n')
	}
	b := bytes.TrimRight(out.Bytes(), "\n")
	return append(b, '\n')
}
