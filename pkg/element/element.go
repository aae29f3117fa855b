package element

import (
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-formbuilder/pkg/formmodel"
)

// Element is a node of the form tree. The implementations are *Section,
// *TextInput, *ComboBox, *DatePicker, *TimePicker and *StaticText.
type Element interface {
	// Name is the element's identity within a form.
	Name() string
	// Model returns the bound model, or nil.
	Model() *formmodel.Model
	// SetModel rebinds the element. When the view exists it refreshes from
	// the new model.
	SetModel(m *formmodel.Model)
	// MakeView creates the view on first use and attaches it to c.
	MakeView(c Container) error
	// View returns the cached view, or nil before MakeView.
	View() View
	// SetError shows message on the element; empty clears.
	SetError(message string)
	// Error returns the message last passed to SetError.
	Error() string

	node() *base
}

type base struct {
	name  string
	model *formmodel.Model
	stop  func()
	view  View
	err   string
}

func newBase(name string) base {
	name = strings.TrimSpace(name)
	if name == "" {
		name = uuid.NewString()
	}
	return base{name: name}
}

func (b *base) Name() string { return b.name }

func (b *base) Model() *formmodel.Model { return b.model }

func (b *base) View() View { return b.view }

// HasView reports whether the view has been created.
func (b *base) HasView() bool { return b.view != nil }

func (b *base) Error() string { return b.err }

func (b *base) SetError(message string) {
	b.err = message
	if b.view != nil {
		b.view.SetError(message)
	}
}

// ModelChanged refreshes the view when the element's own key changes.
func (b *base) ModelChanged(_ *formmodel.Model, key string) {
	if key == b.name && b.view != nil {
		b.view.Refresh()
	}
}

func (b *base) node() *base { return b }

func (b *base) refresh() {
	if b.view != nil {
		b.view.Refresh()
	}
}

func (b *base) value() formmodel.Value {
	v, _ := b.model.Get(b.name)
	return v
}

// seed writes v unless the model already holds a value for the element.
func (b *base) seed(v formmodel.Value) {
	if b.model == nil || v.IsNone() {
		return
	}
	if _, ok := b.model.Get(b.name); ok {
		return
	}
	b.model.Set(b.name, v)
}

func (b *base) write(op string, v formmodel.Value) error {
	if b.model == nil {
		return configError(op, b.name, ErrNoModel)
	}
	b.model.Set(b.name, v)
	return nil
}
