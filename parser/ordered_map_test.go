package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestOrderedMap_PreservesInsertionOrder(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("zebra", 1)
	m.Set("apple", 2)
	m.Set("mango", 3)

	assert.Equal(t, []string{"zebra", "apple", "mango"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestOrderedMap_SetExistingKeepsPosition(t *testing.T) {
	m := NewOrderedMap[string]()
	m.Set("a", "first")
	m.Set("b", "second")
	m.Set("a", "replaced")

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "replaced", v)
}

func TestOrderedMap_NilIsEmpty(t *testing.T) {
	var m *OrderedMap[string]

	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())
	assert.False(t, m.Has("x"))
	for range m.All() {
		t.Fatal("nil map should not yield")
	}
}

func TestOrderedMap_ZeroValueUsable(t *testing.T) {
	var m OrderedMap[int]
	m.Set("one", 1)

	got := make(map[string]int)
	for k, v := range m.All() {
		got[k] = v
	}
	assert.Equal(t, map[string]int{"one": 1}, got)
}

func TestOrderedMap_UnmarshalYAML(t *testing.T) {
	var doc struct {
		Items *OrderedMap[*Schema]  `yaml:"items"`
		Tags  *OrderedMap[[]string] `yaml:"tags"`
	}
	src := "items:\n  zz: {type: string}\n  aa:\n  mm: {type: integer}\ntags:\n  b: [x]\n  a:\n"
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	assert.Equal(t, []string{"zz", "aa", "mm"}, doc.Items.Keys())
	aa, ok := doc.Items.Get("aa")
	require.True(t, ok)
	require.NotNil(t, aa, "empty entries decode as empty objects")
	mm, _ := doc.Items.Get("mm")
	assert.Equal(t, "integer", mm.Type)

	assert.Equal(t, []string{"b", "a"}, doc.Tags.Keys())
	a, _ := doc.Tags.Get("a")
	assert.Nil(t, a)
}

func TestOrderedMap_UnmarshalYAMLRejectsSequence(t *testing.T) {
	var m OrderedMap[string]
	err := yaml.Unmarshal([]byte("- a\n- b\n"), &m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a mapping")
}
