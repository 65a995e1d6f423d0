package resolver

import (
	"fmt"

	"github.com/kamsheffield/graphql-code-generator-community/internal/metadata"
)

// Order selects how Registry.Declarations sequences the registered types.
type Order string

const (
	// OrderDependency emits a type after everything it references,
	// except where a reference cycle makes that impossible.
	OrderDependency Order = "dependency"
	// OrderInsertion emits types in reverse registration order.
	OrderInsertion Order = "insertion"
)

func ParseOrder(s string) (Order, error) {
	switch o := Order(s); o {
	case OrderDependency, OrderInsertion:
		return o, nil
	case "":
		return OrderDependency, nil
	}
	return "", fmt.Errorf("%w: unknown declaration order %q", metadata.ErrConfiguration, s)
}

// Registry holds one declaration per type name. The first registration of a
// name wins; later ones are ignored.
type Registry struct {
	decls    map[string]metadata.InputType
	inserted []string
	done     []string
}

func NewRegistry() *Registry {
	return &Registry{decls: map[string]metadata.InputType{}}
}

// Register stores it unless its name is already present and reports whether
// it was stored.
func (r *Registry) Register(it metadata.InputType) bool {
	name := it.TypeName()
	if _, ok := r.decls[name]; ok {
		return false
	}
	r.decls[name] = it
	r.inserted = append(r.inserted, name)
	return true
}

// complete marks name as fully resolved, building the post-order sequence.
func (r *Registry) complete(name string) {
	r.done = append(r.done, name)
}

func (r *Registry) Has(name string) bool {
	_, ok := r.decls[name]
	return ok
}

func (r *Registry) Get(name string) (metadata.InputType, bool) {
	it, ok := r.decls[name]
	return it, ok
}

func (r *Registry) Len() int { return len(r.decls) }

// Declarations returns the registered types in the requested order.
func (r *Registry) Declarations(order Order) []metadata.InputType {
	out := make([]metadata.InputType, 0, len(r.inserted))
	switch order {
	case OrderInsertion:
		for i := len(r.inserted) - 1; i >= 0; i-- {
			out = append(out, r.decls[r.inserted[i]])
		}
	default:
		for _, name := range r.done {
			out = append(out, r.decls[name])
		}
	}
	return out
}
