package metadata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the on-disk layout of a metadata file:
//
//	{"types": {"input": {"Name": {"kind": "object", "type": "Name", "fields": [...]}}}}
type document struct {
	Types struct {
		Input map[string]typeDocument `json:"input" yaml:"input"`
	} `json:"types" yaml:"types"`
}

type typeDocument struct {
	Kind        string          `json:"kind" yaml:"kind"`
	Type        string          `json:"type" yaml:"type"`
	Description string          `json:"description" yaml:"description"`
	Values      []string        `json:"values" yaml:"values"`
	Fields      []fieldDocument `json:"fields" yaml:"fields"`
}

type fieldDocument struct {
	Name        string           `json:"name" yaml:"name"`
	Kind        string           `json:"kind" yaml:"kind"`
	Type        string           `json:"type" yaml:"type"`
	ItemKind    string           `json:"itemKind" yaml:"itemKind"`
	Required    bool             `json:"required" yaml:"required"`
	AllowsEmpty *bool            `json:"allowsEmpty" yaml:"allowsEmpty"`
	Validation  []ValidationRule `json:"validation" yaml:"validation"`
}

// DecodeJSON reads a JSON metadata document. Numbers inside validation
// constraints keep their literal form.
func DecodeJSON(r io.Reader) (*Table, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode json: %v", ErrInvalidMetadata, err)
	}
	return doc.table()
}

// DecodeYAML reads a YAML metadata document with the same layout as the JSON form.
func DecodeYAML(r io.Reader) (*Table, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewTable(), nil
		}
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidMetadata, err)
	}
	return doc.table()
}

func (d document) table() (*Table, error) {
	t := NewTable()
	for name, td := range d.Types.Input {
		it, err := td.inputType(name)
		if err != nil {
			return nil, err
		}
		t.Set(it)
	}
	return t, nil
}

func (td typeDocument) inputType(name string) (InputType, error) {
	if td.Type != "" && td.Type != name {
		return nil, fmt.Errorf("%w: type %s is declared under key %s", ErrInvalidMetadata, td.Type, name)
	}
	switch td.Kind {
	case string(KindScalar):
		return ScalarType{Name: name, Description: td.Description}, nil
	case string(KindEnum):
		if len(td.Values) == 0 {
			return nil, fmt.Errorf("%w: enum %s has no values", ErrInvalidMetadata, name)
		}
		return EnumType{Name: name, Description: td.Description, Values: td.Values}, nil
	case string(KindObject):
		fields := make([]Field, 0, len(td.Fields))
		for i, fd := range td.Fields {
			f, err := fd.field()
			if err != nil {
				return nil, fmt.Errorf("type %s field %d: %w", name, i, err)
			}
			fields = append(fields, f)
		}
		return ObjectType{Name: name, Description: td.Description, Fields: fields}, nil
	default:
		return nil, fmt.Errorf("%w: type %s has unknown kind %q", ErrInvalidMetadata, name, td.Kind)
	}
}

func (fd fieldDocument) field() (Field, error) {
	if fd.Name == "" {
		return nil, fmt.Errorf("%w: field without name", ErrInvalidMetadata)
	}
	if fd.Type == "" {
		return nil, fmt.Errorf("%w: field %s has no type", ErrInvalidMetadata, fd.Name)
	}
	base := FieldBase{Name: fd.Name, Required: fd.Required, Validation: fd.Validation}
	switch fd.Kind {
	case string(KindScalar):
		return ScalarField{FieldBase: base, Type: fd.Type}, nil
	case string(KindEnum):
		return EnumField{FieldBase: base, Type: fd.Type}, nil
	case string(KindObject):
		return ObjectField{FieldBase: base, Type: fd.Type}, nil
	case string(KindList):
		var itemKind Kind
		if fd.ItemKind != "" {
			k, ok := ParseKind(fd.ItemKind)
			if !ok || k == KindList {
				return nil, fmt.Errorf("%w: field %s has invalid item kind %q", ErrInvalidMetadata, fd.Name, fd.ItemKind)
			}
			itemKind = k
		}
		allowsEmpty := true
		if fd.AllowsEmpty != nil {
			allowsEmpty = *fd.AllowsEmpty
		}
		return ListField{FieldBase: base, ItemType: fd.Type, ItemKind: itemKind, AllowsEmpty: allowsEmpty}, nil
	default:
		return nil, fmt.Errorf("%w: field %s has unknown kind %q", ErrInvalidMetadata, fd.Name, fd.Kind)
	}
}
