package form

import (
	"github.com/goliatone/go-formbuilder/pkg/display"
	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/formmodel"
	"github.com/goliatone/go-formbuilder/pkg/resources"
	"github.com/goliatone/go-formbuilder/pkg/validator"
)

// Form is a built element tree bound to one model.
type Form struct {
	sections []*element.Section
	byName   map[string]*element.Section
	model    *formmodel.Model
	res      resources.Resources
	display  display.ErrorDisplay

	title      string
	submitText string
	cancelText string

	lastErrors []*validator.InputError
}

var _ display.Target = (*Form)(nil)

// Sections returns the sections in order.
func (f *Form) Sections() []*element.Section {
	return append([]*element.Section(nil), f.sections...)
}

// Section returns the named section.
func (f *Form) Section(name string) (*element.Section, bool) {
	s, ok := f.byName[name]
	return s, ok
}

// LastSection returns the final section, or nil.
func (f *Form) LastSection() *element.Section {
	if len(f.sections) == 0 {
		return nil
	}
	return f.sections[len(f.sections)-1]
}

// Element finds an element by name, searching sections in order.
func (f *Form) Element(name string) (element.Element, bool) {
	for _, s := range f.sections {
		if el, ok := s.Element(name); ok {
			return el, true
		}
	}
	return nil, false
}

// Inputs returns every input element in display order.
func (f *Form) Inputs() []element.InputElement {
	var out []element.InputElement
	for _, s := range f.sections {
		for _, el := range s.Elements() {
			if in, ok := el.(element.InputElement); ok {
				out = append(out, in)
			}
		}
	}
	return out
}

// Model returns the bound model.
func (f *Form) Model() *formmodel.Model { return f.model }

// Resources returns the lookup texts and messages resolve against.
func (f *Form) Resources() resources.Resources { return f.res }

// Title returns the resolved heading.
func (f *Form) Title() string { return f.title }

// SubmitText returns the resolved affirmative action text.
func (f *Form) SubmitText() string { return f.submitText }

// CancelText returns the resolved negative action text.
func (f *Form) CancelText() string { return f.cancelText }

// Rebind swaps in m and rebinds the whole tree. Elements with views refresh
// from m. A nil m binds a fresh model.
func (f *Form) Rebind(m *formmodel.Model) {
	if m == nil {
		m = formmodel.New()
	}
	f.model = m
	for _, s := range f.sections {
		s.SetModel(m)
	}
}

// MakeView clears c and attaches every section view to it.
func (f *Form) MakeView(c element.Container) error {
	if c == nil {
		return &element.ConfigError{Op: "make form view", Err: element.ErrNoContainer}
	}
	c.Clear()
	for _, s := range f.sections {
		s.SetModel(f.model)
		if err := s.MakeView(c); err != nil {
			return err
		}
	}
	return nil
}

// Validate clears previous errors, validates every section in order and
// hands failures to the error display. The error result reports failures of
// the display itself, such as errors it could not route.
func (f *Form) Validate() (bool, error) {
	f.ClearValidateError()
	var errs []*validator.InputError
	for _, s := range f.sections {
		errs = s.Validate(errs)
	}
	f.lastErrors = errs
	if len(errs) == 0 {
		return true, nil
	}
	return false, f.display.Show(f, errs)
}

// ClearValidateError forgets the last errors and clears every element. It is
// safe to call at any time.
func (f *Form) ClearValidateError() {
	f.lastErrors = nil
	f.display.Clear(f)
}

// LastErrors returns the errors of the latest Validate, nil after a clear.
func (f *Form) LastErrors() []*validator.InputError {
	if f.lastErrors == nil {
		return nil
	}
	return append([]*validator.InputError(nil), f.lastErrors...)
}

// Values copies the model contents.
func (f *Form) Values() map[string]formmodel.Value {
	return f.model.Snapshot()
}
