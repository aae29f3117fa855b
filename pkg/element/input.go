package element

import (
	"github.com/goliatone/go-formbuilder/pkg/formmodel"
	"github.com/goliatone/go-formbuilder/pkg/validator"
)

// TextStyle mirrors the label and value emphasis a host may apply.
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleBold
	StyleItalic
	StyleBoldItalic
)

func (s TextStyle) String() string {
	switch s {
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleBoldItalic:
		return "bold-italic"
	default:
		return "normal"
	}
}

// InputElement is implemented by the elements that take user input and are
// validated.
type InputElement interface {
	Element
	validator.Field

	// Value returns the current model value, None when absent or unbound.
	Value() formmodel.Value
	IsRequired() bool
	SetRequired(required bool)
	AddValidator(vs ...validator.Validator)
	RemoveValidator(v validator.Validator)
	// Validators lists the active rules in evaluation order, Required
	// first when set.
	Validators() []validator.Validator
	// ValidateInput runs every rule and returns all failures.
	ValidateInput() []*validator.InputError
	// Layout returns the label and error presentation options.
	Layout() Layout

	state() *input
}

// Layout carries presentation hints shared by input elements.
type Layout struct {
	VerticalLabel bool
	LabelStyle    TextStyle
	// NativeError requests the field's own error slot instead of a separate
	// message line, where the host has one.
	NativeError bool
}

type input struct {
	label      string
	required   bool
	validators validator.Set
	layout     Layout
}

func newInput(label string) input {
	return input{label: label, layout: Layout{NativeError: true}}
}

func (in *input) state() *input { return in }

func (in *input) Label() string { return in.label }

func (in *input) IsRequired() bool { return in.required }

func (in *input) Layout() Layout { return in.layout }

func (in *input) Validators() []validator.Validator {
	list := in.validators.List()
	if in.required {
		list = append([]validator.Validator{validator.Required}, list...)
	}
	return list
}

// SetRequired toggles the Required rule without touching other validators.
func (in *input) SetRequired(required bool) {
	in.required = required
}

// AddValidator appends rules in order. Passing validator.Required sets the
// required flag instead.
func (in *input) AddValidator(vs ...validator.Validator) {
	for _, v := range vs {
		if validator.Same(v, validator.Required) {
			in.required = true
			continue
		}
		in.validators.Add(v)
	}
}

// RemoveValidator removes a rule by identity. Passing validator.Required
// clears the required flag.
func (in *input) RemoveValidator(v validator.Validator) {
	if validator.Same(v, validator.Required) {
		in.required = false
		return
	}
	in.validators.Remove(v)
}

func validateInput(el InputElement) []*validator.InputError {
	in := el.state()
	value := el.Value()
	var errs []*validator.InputError
	if in.required {
		if err := validator.Required.Validate(value, el); err != nil {
			errs = append(errs, err)
		}
	}
	return append(errs, in.validators.Validate(value, el)...)
}

// InputOption configures the shared input settings at construction.
type InputOption func(*input)

// Required marks the element as required.
func Required() InputOption {
	return func(in *input) {
		in.required = true
	}
}

// WithValidators appends validators in order.
func WithValidators(vs ...validator.Validator) InputOption {
	return func(in *input) {
		in.AddValidator(vs...)
	}
}

// WithLayout overrides the label and error presentation.
func WithLayout(layout Layout) InputOption {
	return func(in *input) {
		in.layout = layout
	}
}

// VerticalLabel places the label above the field.
func VerticalLabel() InputOption {
	return func(in *input) {
		in.layout.VerticalLabel = true
	}
}

// LabelStyle sets the label emphasis.
func LabelStyle(style TextStyle) InputOption {
	return func(in *input) {
		in.layout.LabelStyle = style
	}
}

func newInputWith(label string, opts []InputOption) input {
	in := newInput(label)
	for _, opt := range opts {
		if opt != nil {
			opt(&in)
		}
	}
	return in
}
