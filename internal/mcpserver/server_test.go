package mcpserver

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	ops := []operationSummary{
		{Method: "get", Path: "/pets", OperationID: "listPets"},
		{Method: "post", Path: "/pets", OperationID: "createPet"},
		{Method: "get", Path: "/pets/{petId}", OperationID: "getPet"},
		{Method: "patch", Path: "/pets/{petId}", OperationID: "patchPet"},
		{Method: "delete", Path: "/pets/{petId}", OperationID: "deletePet"},
	}
	ids := func(page []operationSummary) []string {
		if page == nil {
			return nil
		}
		out := make([]string, 0, len(page))
		for _, op := range page {
			out = append(out, op.OperationID)
		}
		return out
	}

	tests := []struct {
		name          string
		items         []operationSummary
		offset, limit int
		want          []string
	}{
		{"default limit", ops, 0, 0, []string{"listPets", "createPet", "getPet", "patchPet", "deletePet"}},
		{"negative limit uses default", ops, 0, -1, []string{"listPets", "createPet", "getPet", "patchPet", "deletePet"}},
		{"explicit limit", ops, 0, 2, []string{"listPets", "createPet"}},
		{"offset only", ops, 3, 0, []string{"patchPet", "deletePet"}},
		{"offset and limit", ops, 1, 2, []string{"createPet", "getPet"}},
		{"limit past end", ops, 4, 10, []string{"deletePet"}},
		{"offset past end", ops, 5, 2, nil},
		{"negative offset", ops, -1, 2, nil},
		{"no operations", nil, 0, 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(paginate(tt.items, tt.offset, tt.limit)))
		})
	}
}

func TestPaginate_Limits(t *testing.T) {
	items := make([]int, 1500)
	for i := range items {
		items[i] = i
	}

	assert.Len(t, paginate(items, 0, 0), cfg.InspectLimit)
	assert.Len(t, paginate(items, 0, 1500), cfg.MaxLimit)
	assert.Equal(t, []int{1498, 1499}, paginate(items, 1498, math.MaxInt), "offset+limit overflow")
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"absolute path", fmt.Errorf("generator: failed to parse specification: open /home/dev/api/pets.yaml: no such file or directory"),
			"generator: failed to parse specification: open <path>: no such file or directory"},
		{"no path", fmt.Errorf("generator: unrecognized specification"), "generator: unrecognized specification"},
		{"two paths", fmt.Errorf("cannot write /tmp/out/Pet.ts over /tmp/out/Pet.ts.bak"), "cannot write <path> over <path>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}
