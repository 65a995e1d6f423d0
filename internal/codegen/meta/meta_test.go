package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		name string
		ref  TypeRef
		want string
	}{
		{"named", NamedType{Name: "ID"}, "ID"},
		{"non null", NonNullType{Of: NamedType{Name: "ID"}}, "ID!"},
		{"list", ListType{Of: NamedType{Name: "Tag"}}, "[Tag]"},
		{"non null list of non null", NonNullType{Of: ListType{Of: NonNullType{Of: NamedType{Name: "Tag"}}}}, "[Tag!]!"},
		{"nested", ListType{Of: ListType{Of: NamedType{Name: "Int"}}}, "[[Int]]"},
		{"nil", nil, "<nil>"},
		{"dangling", ListType{}, "[<nil>]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeString(tt.ref))
		})
	}
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "query Search (docs/search.graphql)", Operation{Name: "Search", Kind: Query, Source: "docs/search.graphql"}.String())
	assert.Equal(t, "mutation <anonymous>", Operation{Kind: Mutation}.String())
}

func TestDocumentNames(t *testing.T) {
	md := &Metadata{Operations: []OperationDescriptor{
		{Name: "Search", Document: DocumentName("Search")},
		{Name: "Update", Document: DocumentName("Update")},
	}}
	assert.Equal(t, []string{"SearchDocument", "UpdateDocument"}, md.DocumentNames())
}

func TestListParameterTypeName(t *testing.T) {
	p := ListParameter{ParameterBase: ParameterBase{Name: "ids"}, ItemType: "ID", ItemKind: "scalar"}
	assert.Equal(t, "ID", p.TypeName())
	assert.Equal(t, "list", string(p.Kind()))
	assert.False(t, p.IsRequired())
}
