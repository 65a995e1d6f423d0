package metadata

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration   = errors.New("configuration error")
	ErrTypeNotFound    = errors.New("type not found")
	ErrUnsupportedType = errors.New("unsupported type")
	ErrInvalidMetadata = errors.New("invalid metadata")
)

// TypeNotFoundError reports a type name missing from the table.
type TypeNotFoundError struct {
	Name string
}

func (e *TypeNotFoundError) Error() string {
	return fmt.Sprintf("type %s not found in schema metadata", e.Name)
}

func (e *TypeNotFoundError) Is(target error) bool { return target == ErrTypeNotFound }

// UnsupportedTypeError reports a type expression shape the generator cannot describe,
// such as a list of lists.
type UnsupportedTypeError struct {
	Shape  string
	Reason string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("unsupported type %s", e.Shape)
	}
	return fmt.Sprintf("unsupported type %s: %s", e.Shape, e.Reason)
}

func (e *UnsupportedTypeError) Is(target error) bool { return target == ErrUnsupportedType }
