package validator

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-formbuilder/pkg/resources"
)

// Field is the view of an input element a validator needs.
type Field interface {
	Name() string
	Label() string
}

// InputError describes one failed rule for one field. It is immutable once
// constructed.
type InputError struct {
	name    string
	label   string
	code    string
	message resources.Text
	params  map[string]any
}

// NewInputError builds an error for field. params are exposed to the message
// template next to `label` and `field`.
func NewInputError(field Field, code string, message resources.Text, params map[string]any) *InputError {
	err := &InputError{code: code, message: message}
	if field != nil {
		err.name = field.Name()
		err.label = field.Label()
	}
	if len(params) > 0 {
		err.params = make(map[string]any, len(params))
		for key, value := range params {
			err.params[key] = value
		}
	}
	return err
}

// Errorf builds an error carrying a literal formatted message.
func Errorf(field Field, code, format string, args ...any) *InputError {
	return NewInputError(field, code, resources.Literal(fmt.Sprintf(format, args...)), nil)
}

// Name returns the name of the field that failed.
func (e *InputError) Name() string { return e.name }

// Label returns the field label captured when the error was produced.
func (e *InputError) Label() string { return e.label }

// Code identifies the failed rule, e.g. "required".
func (e *InputError) Code() string { return e.code }

// Text returns the unrendered message text.
func (e *InputError) Text() resources.Text { return e.message }

// Param returns a template parameter.
func (e *InputError) Param(key string) (any, bool) {
	value, ok := e.params[key]
	return value, ok
}

// Message renders the display message. Resource ids resolve against res and
// then the built-in catalog.
func (e *InputError) Message(res resources.Resources) string {
	data := make(map[string]any, len(e.params)+2)
	for key, value := range e.params {
		data[key] = value
	}
	data["label"] = e.label
	data["field"] = e.name
	return resources.Message(resources.WithDefaults(res), e.message, data)
}

func (e *InputError) String() string {
	if len(e.params) == 0 {
		return fmt.Sprintf("%s: %s", e.name, e.code)
	}
	keys := make([]string, 0, len(e.params))
	for key := range e.params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := fmt.Sprintf("%s: %s", e.name, e.code)
	for _, key := range keys {
		out += fmt.Sprintf(" %s=%v", key, e.params[key])
	}
	return out
}
