package generator

import (
	"slices"
	"strings"
)

// FieldEntry is one property of a request parameter object.
type FieldEntry struct {
	Name     string
	Type     string
	Required bool
}

// render writes the entry as a readonly TypeScript property.
func (f FieldEntry) render() string {
	opt := "?"
	if f.Required {
		opt = ""
	}
	return "readonly " + f.Name + opt + ": " + f.Type
}

// FieldMap is an insertion-ordered set of request fields keyed by name.
// Setting a name that is already present replaces its entry in place, so
// the last writer decides type and optionality while the first writer
// decides position.
type FieldMap struct {
	names   []string
	entries map[string]FieldEntry
}

// NewFieldMap creates an empty FieldMap.
func NewFieldMap() *FieldMap {
	return &FieldMap{entries: make(map[string]FieldEntry)}
}

// Set stores e under e.Name.
func (m *FieldMap) Set(e FieldEntry) {
	if m.entries == nil {
		m.entries = make(map[string]FieldEntry)
	}
	if _, ok := m.entries[e.Name]; !ok {
		m.names = append(m.names, e.Name)
	}
	m.entries[e.Name] = e
}

// Get returns the entry stored under name.
func (m *FieldMap) Get(name string) (FieldEntry, bool) {
	if m == nil {
		return FieldEntry{}, false
	}
	e, ok := m.entries[name]
	return e, ok
}

// Len returns the number of fields.
func (m *FieldMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Entries returns the fields in insertion order.
func (m *FieldMap) Entries() []FieldEntry {
	if m == nil {
		return nil
	}
	out := make([]FieldEntry, 0, len(m.names))
	for _, n := range m.names {
		out = append(out, m.entries[n])
	}
	return out
}

// Merge copies every entry of other into m, in other's order.
func (m *FieldMap) Merge(other *FieldMap) {
	for _, e := range other.Entries() {
		m.Set(e)
	}
}

// Clone returns an independent copy of m.
func (m *FieldMap) Clone() *FieldMap {
	c := NewFieldMap()
	c.Merge(m)
	return c
}

// TypeLiteral renders the fields as a TypeScript object type literal:
// "{ readonly id: number; readonly tag?: string }", or "{}" when empty.
func (m *FieldMap) TypeLiteral() string {
	if m.Len() == 0 {
		return "{}"
	}
	parts := make([]string, 0, m.Len())
	for _, e := range m.Entries() {
		parts = append(parts, e.render())
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// ResponseEntry pairs a response status key, kept verbatim, with the
// TypeScript type name of its body.
type ResponseEntry struct {
	Status string
	Type   string
}

// isSuccess reports whether the status is a three character 2xx code.
func (r ResponseEntry) isSuccess() bool {
	return len(r.Status) == 3 && r.Status[0] == '2'
}

// ImportSet collects definition names to import, without duplicates.
type ImportSet struct {
	names []string
	seen  map[string]struct{}
}

// NewImportSet creates an empty ImportSet.
func NewImportSet() *ImportSet {
	return &ImportSet{seen: make(map[string]struct{})}
}

// Add records name if it is not already present.
func (s *ImportSet) Add(name string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[name]; ok {
		return
	}
	s.seen[name] = struct{}{}
	s.names = append(s.names, name)
}

// AddAll records every name of other.
func (s *ImportSet) AddAll(other *ImportSet) {
	if other == nil {
		return
	}
	for _, n := range other.names {
		s.Add(n)
	}
}

// Has reports whether name was added.
func (s *ImportSet) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.seen[name]
	return ok
}

// Len returns the number of names.
func (s *ImportSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Ordered returns the names in the order they were first added.
func (s *ImportSet) Ordered() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.names)
}

// Sorted returns the names sorted lexicographically.
func (s *ImportSet) Sorted() []string {
	out := s.Ordered()
	slices.Sort(out)
	return out
}
