package testsupport

import (
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/formmodel"
)

// View records what the element tree asks of it. Each Refresh captures the
// value the element's model holds at that moment.
type View struct {
	Element   element.Element
	Refreshes int
	Shown     []formmodel.Value
	Errors    []string
}

// Refresh implements element.View.
func (v *View) Refresh() {
	v.Refreshes++
	value, _ := v.Element.Model().Get(v.Element.Name())
	v.Shown = append(v.Shown, value)
}

// SetError implements element.View.
func (v *View) SetError(message string) {
	v.Errors = append(v.Errors, message)
}

// LastError returns the most recent message, empty when none was set.
func (v *View) LastError() string {
	if len(v.Errors) == 0 {
		return ""
	}
	return v.Errors[len(v.Errors)-1]
}

// LastShown returns the value observed by the most recent Refresh.
func (v *View) LastShown() formmodel.Value {
	if len(v.Shown) == 0 {
		return formmodel.None()
	}
	return v.Shown[len(v.Shown)-1]
}

// SectionView is the composite view created for sections.
type SectionView struct {
	*View
	body *Container
}

// Body implements element.Composite.
func (s *SectionView) Body() element.Container { return s.body }

// BodyContainer exposes the concrete body.
func (s *SectionView) BodyContainer() *Container { return s.body }

// Container records attached views.
type Container struct {
	factory  *Factory
	Attached []element.View
	Clears   int
}

// Factory implements element.Container.
func (c *Container) Factory() element.ViewFactory {
	if c.factory == nil {
		return nil
	}
	return c.factory
}

// Attach implements element.Container.
func (c *Container) Attach(v element.View) {
	c.Attached = append(c.Attached, v)
}

// Clear implements element.Container.
func (c *Container) Clear() {
	c.Attached = nil
	c.Clears++
}

// Factory creates recording views and remembers them by element name.
type Factory struct {
	views   map[string]*View
	Created []string
	// Flat makes section views plain, so children attach next to them.
	Flat bool
	// Fail lists element names whose view creation fails.
	Fail map[string]bool
}

// NewFactory returns an empty factory.
func NewFactory() *Factory {
	return &Factory{views: make(map[string]*View)}
}

// Container returns a root container backed by f.
func (f *Factory) Container() *Container {
	return &Container{factory: f}
}

// CreateView implements element.ViewFactory.
func (f *Factory) CreateView(el element.Element) (element.View, error) {
	if f.Fail[el.Name()] {
		return nil, fmt.Errorf("testsupport: view for %q failed", el.Name())
	}
	f.Created = append(f.Created, el.Name())
	view := &View{Element: el}
	f.views[el.Name()] = view
	if _, ok := el.(*element.Section); ok && !f.Flat {
		return &SectionView{View: view, body: &Container{factory: f}}, nil
	}
	return view, nil
}

// View returns the recording view of the named element.
func (f *Factory) View(name string) *View {
	return f.views[name]
}
