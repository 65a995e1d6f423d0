package meta

import "github.com/kamsheffield/graphql-code-generator-community/internal/metadata"

// OperationDescriptor is the analyzed form of one operation with variables.
type OperationDescriptor struct {
	Name       string
	Kind       OperationKind
	Document   string // identifier of the operation's document, <Name>Document
	Parameters []Parameter
}

// DocumentName returns the document identifier for an operation name.
func DocumentName(operation string) string { return operation + "Document" }

// Parameter is one of ScalarParameter, EnumParameter, ObjectParameter or ListParameter.
type Parameter interface {
	ParameterName() string
	IsRequired() bool
	Kind() metadata.Kind
	// TypeName is the referenced type, or the item type for lists.
	TypeName() string
	DirectiveNames() []string
	parameter()
}

// ParameterBase holds what every parameter variant shares.
type ParameterBase struct {
	Name       string
	Required   bool
	Directives []string
}

func (p ParameterBase) ParameterName() string    { return p.Name }
func (p ParameterBase) IsRequired() bool         { return p.Required }
func (p ParameterBase) DirectiveNames() []string { return p.Directives }

type ScalarParameter struct {
	ParameterBase
	Type string
}

type EnumParameter struct {
	ParameterBase
	Type string
}

type ObjectParameter struct {
	ParameterBase
	Type string
}

// ListParameter describes a list variable.
//
// ListRequiresItems holds the negation of whether the item type was declared
// non-null ([T!] gives false, [T] gives true) and is emitted as allowsEmpty.
type ListParameter struct {
	ParameterBase
	ItemType          string
	ItemKind          metadata.Kind
	ListRequiresItems bool
}

func (p ScalarParameter) Kind() metadata.Kind { return metadata.KindScalar }
func (p ScalarParameter) TypeName() string    { return p.Type }
func (ScalarParameter) parameter()            {}

func (p EnumParameter) Kind() metadata.Kind { return metadata.KindEnum }
func (p EnumParameter) TypeName() string    { return p.Type }
func (EnumParameter) parameter()            {}

func (p ObjectParameter) Kind() metadata.Kind { return metadata.KindObject }
func (p ObjectParameter) TypeName() string    { return p.Type }
func (ObjectParameter) parameter()            {}

func (p ListParameter) Kind() metadata.Kind { return metadata.KindList }
func (p ListParameter) TypeName() string    { return p.ItemType }
func (ListParameter) parameter()            {}
