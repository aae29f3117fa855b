// Package display routes validation errors back onto the elements that
// produced them.
package display

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/resources"
	"github.com/goliatone/go-formbuilder/pkg/validator"
)

// ErrUnroutable reports an error whose field the form does not contain.
var ErrUnroutable = errors.New("display: error references an unknown element")

// Target is the form an ErrorDisplay works on.
type Target interface {
	// Element finds an element by name across sections, first match wins.
	Element(name string) (element.Element, bool)
	Sections() []*element.Section
	Resources() resources.Resources
}

// ErrorDisplay presents a batch of validation errors and clears them.
type ErrorDisplay interface {
	Show(target Target, errs []*validator.InputError) error
	Clear(target Target)
}

// Option configures an ElementDisplay.
type Option func(*ElementDisplay)

// WithFormatter replaces the rendering applied to each message before it
// reaches SetError. The default strips markup with resources.Plain.
func WithFormatter(format func(string) string) Option {
	return func(d *ElementDisplay) {
		if format != nil {
			d.format = format
		}
	}
}

// ElementDisplay shows every error on its own element.
type ElementDisplay struct {
	format func(string) string
}

// NewElementDisplay returns the default display.
func NewElementDisplay(opts ...Option) *ElementDisplay {
	d := &ElementDisplay{format: resources.Plain}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// MessageSeparator joins the messages of an element that failed more than
// one validator.
const MessageSeparator = "; "

// Show routes each error by name. An element with several errors gets their
// messages joined in order. Errors naming elements the target does not
// contain are skipped and reported together once the rest are shown.
func (d *ElementDisplay) Show(target Target, errs []*validator.InputError) error {
	if target == nil {
		return errors.New("display: nil target")
	}
	res := target.Resources()
	var (
		failures []error
		order    []element.Element
		messages = make(map[string][]string)
	)
	for _, inputErr := range errs {
		if inputErr == nil {
			continue
		}
		el, ok := target.Element(inputErr.Name())
		if !ok {
			failures = append(failures, fmt.Errorf("%w: %q", ErrUnroutable, inputErr.Name()))
			continue
		}
		if _, seen := messages[el.Name()]; !seen {
			order = append(order, el)
		}
		messages[el.Name()] = append(messages[el.Name()], d.format(inputErr.Message(res)))
	}
	for _, el := range order {
		el.SetError(strings.Join(messages[el.Name()], MessageSeparator))
	}
	return errors.Join(failures...)
}

// Clear removes messages from every section and every element in them.
func (d *ElementDisplay) Clear(target Target) {
	if target == nil {
		return
	}
	for _, section := range target.Sections() {
		section.ClearErrors()
	}
}

// Funcs adapts functions into an ErrorDisplay. Nil fields do nothing.
type Funcs struct {
	ShowFunc  func(target Target, errs []*validator.InputError) error
	ClearFunc func(target Target)
}

// Show calls ShowFunc.
func (f Funcs) Show(target Target, errs []*validator.InputError) error {
	if f.ShowFunc == nil {
		return nil
	}
	return f.ShowFunc(target, errs)
}

// Clear calls ClearFunc.
func (f Funcs) Clear(target Target) {
	if f.ClearFunc != nil {
		f.ClearFunc(target)
	}
}

// Multi fans out to several displays in order.
type Multi []ErrorDisplay

// Show calls every display and joins their errors.
func (m Multi) Show(target Target, errs []*validator.InputError) error {
	var failures []error
	for _, d := range m {
		if d == nil {
			continue
		}
		if err := d.Show(target, errs); err != nil {
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}

// Clear calls every display.
func (m Multi) Clear(target Target) {
	for _, d := range m {
		if d != nil {
			d.Clear(target)
		}
	}
}
