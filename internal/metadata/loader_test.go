package metadata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"metadata/a.json": {Data: []byte(`{"types":{"input":{
			"Status":{"kind":"enum","type":"Status","values":["OLD"]},
			"String":{"kind":"scalar","type":"String"}}}}`)},
		"metadata/nested/b.yaml": {Data: []byte("types:\n  input:\n    Status:\n      kind: enum\n      values: [NEW]\n")},
		"metadata/readme.md":     {Data: []byte("# not metadata")},
		"node_modules/pkg/c.json": {Data: []byte(`{"types":{"input":{
			"Ignored":{"kind":"scalar","type":"Ignored"}}}}`)},
	}

	table, err := NewLoader(fsys, nil).Load([]string{"./metadata/**/*", "**/*.json"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Status", "String"}, table.Names())
	status, err := table.Lookup("Status")
	require.NoError(t, err)
	assert.Equal(t, []string{"NEW"}, status.(EnumType).Values, "later files override earlier ones")
}

func TestLoaderErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.json": {Data: []byte(`{"types":{"input":{"X":{"kind":"enum","type":"X"}}}}`)},
	}

	tests := []struct {
		name     string
		patterns []string
		target   error
	}{
		{name: "no patterns", patterns: nil, target: ErrConfiguration},
		{name: "no matches", patterns: []string{"missing/*.json"}, target: ErrConfiguration},
		{name: "bad pattern", patterns: []string{"[.json"}, target: ErrConfiguration},
		{name: "invalid file", patterns: []string{"*.json"}, target: ErrInvalidMetadata},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(fsys, nil).Load(tt.patterns)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}
