package meta

import "fmt"

// OperationKind is the GraphQL operation type.
type OperationKind string

const (
	Query        OperationKind = "query"
	Mutation     OperationKind = "mutation"
	Subscription OperationKind = "subscription"
)

// Operation is a parsed operation definition reduced to what the analyzer needs.
type Operation struct {
	Name      string
	Kind      OperationKind
	Variables []Variable
	Source    string // file the operation was read from, for diagnostics
}

func (o Operation) String() string {
	name := o.Name
	if name == "" {
		name = "<anonymous>"
	}
	if o.Source == "" {
		return fmt.Sprintf("%s %s", o.Kind, name)
	}
	return fmt.Sprintf("%s %s (%s)", o.Kind, name, o.Source)
}

// Variable is a declared operation variable.
type Variable struct {
	Name       string
	Type       TypeRef
	Directives []string
}

// TypeRef is a variable type expression: NamedType, NonNullType or ListType.
type TypeRef interface {
	String() string
	typeRef()
}

type NamedType struct {
	Name string
}

type NonNullType struct {
	Of TypeRef
}

type ListType struct {
	Of TypeRef
}

func (t NamedType) String() string { return t.Name }
func (NamedType) typeRef()         {}

func (t NonNullType) String() string { return refString(t.Of) + "!" }
func (NonNullType) typeRef()         {}

func (t ListType) String() string { return "[" + refString(t.Of) + "]" }
func (ListType) typeRef()         {}

func refString(t TypeRef) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// TypeString renders t, tolerating nil.
func TypeString(t TypeRef) string { return refString(t) }
