package generator

import "github.com/oasgen/genapi/parser"

// AuthHeader pairs a security scheme name with the HTTP header that
// carries its credential.
type AuthHeader struct {
	SchemeName string
	HeaderName string
}

// AuthHeaders resolves the header-transported credentials for a list of
// required scheme names.
//
// With explicit names only those schemes are considered, in name order.
// With no names every defined scheme is considered, in definition order.
// Names without a definition and schemes not sent in a header are dropped.
func AuthHeaders(defs *parser.OrderedMap[*parser.SecurityScheme], names []string) []AuthHeader {
	if defs.Len() == 0 {
		return []AuthHeader{}
	}
	if len(names) == 0 {
		names = defs.Keys()
	}

	out := make([]AuthHeader, 0, len(names))
	for _, name := range names {
		scheme, ok := defs.Get(name)
		if !ok || scheme == nil || scheme.In != parser.SecurityInHeader {
			continue
		}
		out = append(out, AuthHeader{SchemeName: name, HeaderName: scheme.Name})
	}
	return out
}

// requiredAuth resolves the auth headers of a security key. An absent key,
// "security: []" and requirements naming no scheme all require no auth.
func requiredAuth(defs *parser.OrderedMap[*parser.SecurityScheme], reqs []parser.SecurityRequirement) []AuthHeader {
	names := RequirementNames(reqs)
	if len(names) == 0 {
		return nil
	}
	return AuthHeaders(defs, names)
}

// optsOutOfAuth reports whether an operation's security key is present but
// names no scheme, which drops the document-level auth for that operation.
func optsOutOfAuth(reqs []parser.SecurityRequirement) bool {
	return reqs != nil && len(RequirementNames(reqs)) == 0
}

// RequirementNames flattens security requirement objects into the list of
// scheme names they mention, in order and without duplicates.
func RequirementNames(reqs []parser.SecurityRequirement) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, req := range reqs {
		for name := range req.All() {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// authFields adds a required string field per auth scheme to fields.
func authFields(fields *FieldMap, headers []AuthHeader) {
	for _, h := range headers {
		fields.Set(FieldEntry{Name: h.SchemeName, Type: "string", Required: true})
	}
}

// headerNames extracts the header names of headers.
func headerNames(headers []AuthHeader) []string {
	out := make([]string, 0, len(headers))
	for _, h := range headers {
		out = append(out, h.HeaderName)
	}
	return out
}
