package element

import (
	"errors"
	"fmt"
)

// Configuration errors. They report programmer mistakes and are returned
// wrapped in a *ConfigError.
var (
	ErrNestedSection = errors.New("element: sections cannot contain sections")
	ErrDuplicateName = errors.New("element: name already exists")
	ErrNotFound      = errors.New("element: no element with that name")
	ErrPosition      = errors.New("element: position out of range")
	ErrNilElement    = errors.New("element: nil element")
	ErrNoModel       = errors.New("element: element is not bound to a model")
	ErrNoContainer   = errors.New("element: nil container")
	ErrNoFactory     = errors.New("element: container has no view factory")
	ErrNilView       = errors.New("element: view factory returned no view")
	ErrOutOfRange    = errors.New("element: selection out of range")
)

// ConfigError records the operation and element name of a configuration
// failure.
type ConfigError struct {
	// Op is the operation that failed, e.g. "add element".
	Op string
	// Name is the element (or section) the operation targeted.
	Name string
	// Err is the underlying sentinel or cause.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Name, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configError(op, name string, err error) error {
	return &ConfigError{Op: op, Name: name, Err: err}
}
