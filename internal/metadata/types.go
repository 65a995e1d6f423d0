// Package metadata models the declared shape of GraphQL input types and the
// merged lookup table the code generator reads them from.
package metadata

// Kind classifies an input type, field or parameter.
type Kind string

const (
	KindScalar Kind = "scalar"
	KindEnum   Kind = "enum"
	KindObject Kind = "object"
	KindList   Kind = "list"
)

// ParseKind validates a kind label read from a metadata file.
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(s); k {
	case KindScalar, KindEnum, KindObject, KindList:
		return k, true
	}
	return "", false
}

// InputType is one of ScalarType, EnumType or ObjectType.
type InputType interface {
	TypeName() string
	Kind() Kind
	Describe() string
	inputType()
}

type ScalarType struct {
	Name        string
	Description string
}

type EnumType struct {
	Name        string
	Description string
	Values      []string
}

// ObjectType is an input object. Field order is preserved into generated output.
type ObjectType struct {
	Name        string
	Description string
	Fields      []Field
}

func (t ScalarType) TypeName() string { return t.Name }
func (t ScalarType) Kind() Kind       { return KindScalar }
func (t ScalarType) Describe() string { return t.Description }
func (ScalarType) inputType()         {}

func (t EnumType) TypeName() string { return t.Name }
func (t EnumType) Kind() Kind       { return KindEnum }
func (t EnumType) Describe() string { return t.Description }
func (EnumType) inputType()         {}

func (t ObjectType) TypeName() string { return t.Name }
func (t ObjectType) Kind() Kind       { return KindObject }
func (t ObjectType) Describe() string { return t.Description }
func (ObjectType) inputType()         {}

// ValidationRule is carried through to generated code verbatim and never evaluated.
type ValidationRule struct {
	Type        string `json:"type" yaml:"type"`
	Constraints []any  `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Each        bool   `json:"each,omitempty" yaml:"each,omitempty"`
	Context     any    `json:"context,omitempty" yaml:"context,omitempty"`
	Options     any    `json:"options,omitempty" yaml:"options,omitempty"`
}

// Field is one of ScalarField, EnumField, ObjectField or ListField.
type Field interface {
	FieldName() string
	Kind() Kind
	// TypeName is the referenced type, or the item type for lists.
	TypeName() string
	IsRequired() bool
	Rules() []ValidationRule
	field()
}

// FieldBase holds what every field variant shares.
type FieldBase struct {
	Name       string
	Required   bool
	Validation []ValidationRule
}

func (f FieldBase) FieldName() string       { return f.Name }
func (f FieldBase) IsRequired() bool        { return f.Required }
func (f FieldBase) Rules() []ValidationRule { return f.Validation }

type ScalarField struct {
	FieldBase
	Type string
}

type EnumField struct {
	FieldBase
	Type string
}

type ObjectField struct {
	FieldBase
	Type string
}

// ListField is a list of ItemType. ItemKind may be empty when the source did
// not state it; the resolver fills it in from the table.
type ListField struct {
	FieldBase
	ItemType    string
	ItemKind    Kind
	AllowsEmpty bool
}

func (f ScalarField) Kind() Kind       { return KindScalar }
func (f ScalarField) TypeName() string { return f.Type }
func (ScalarField) field()             {}

func (f EnumField) Kind() Kind       { return KindEnum }
func (f EnumField) TypeName() string { return f.Type }
func (EnumField) field()             {}

func (f ObjectField) Kind() Kind       { return KindObject }
func (f ObjectField) TypeName() string { return f.Type }
func (ObjectField) field()             {}

func (f ListField) Kind() Kind       { return KindList }
func (f ListField) TypeName() string { return f.ItemType }
func (ListField) field()             {}
