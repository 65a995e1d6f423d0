package metadata

import "sort"

// Table maps input type names to their metadata. It is built by a Loader and
// only read afterwards.
type Table struct {
	types map[string]InputType
}

func NewTable(types ...InputType) *Table {
	t := &Table{types: make(map[string]InputType, len(types))}
	for _, it := range types {
		t.Set(it)
	}
	return t
}

// Set stores it under its name, replacing any previous entry.
func (t *Table) Set(it InputType) {
	if t.types == nil {
		t.types = map[string]InputType{}
	}
	t.types[it.TypeName()] = it
}

// Merge copies every entry of other into t. Entries of other win on collision.
func (t *Table) Merge(other *Table) {
	if other == nil {
		return
	}
	for _, it := range other.types {
		t.Set(it)
	}
}

// Lookup returns the type registered under name or a *TypeNotFoundError.
func (t *Table) Lookup(name string) (InputType, error) {
	if t != nil {
		if it, ok := t.types[name]; ok {
			return it, nil
		}
	}
	return nil, &TypeNotFoundError{Name: name}
}

// KindOf is Lookup reduced to the kind of the type.
func (t *Table) KindOf(name string) (Kind, error) {
	it, err := t.Lookup(name)
	if err != nil {
		return "", err
	}
	return it.Kind(), nil
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.types)
}

// Names returns all type names in sorted order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.types))
	for n := range t.types {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
