package element

import (
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/formmodel"
)

func setModel(el Element, m *formmodel.Model) {
	b := el.node()
	if b.stop != nil {
		b.stop()
		b.stop = nil
	}
	b.model = m
	onSetModel(el, m)
	if b.view != nil {
		onModelUpdate(el)
	}
}

func makeView(el Element, c Container) error {
	b := el.node()
	if c == nil {
		return configError("make view", b.name, ErrNoContainer)
	}
	if b.view == nil {
		factory := c.Factory()
		if factory == nil {
			return configError("make view", b.name, ErrNoFactory)
		}
		v, err := factory.CreateView(el)
		if err != nil {
			return fmt.Errorf("element: create view for %q: %w", b.name, err)
		}
		if v == nil {
			return configError("make view", b.name, ErrNilView)
		}
		b.view = v
		onCreateView(el)
	}
	c.Attach(b.view)
	return onViewMake(el, c)
}

// onSetModel runs on every bind.
func onSetModel(el Element, m *formmodel.Model) {
	switch e := el.(type) {
	case *Section:
		for _, child := range e.children {
			child.SetModel(m)
		}
	case *TextInput, *ComboBox, *DatePicker, *TimePicker, *StaticText:
		if m != nil {
			b := el.node()
			b.stop = m.Subscribe(b)
		}
	default:
		panic(fmt.Sprintf("element: unknown element type %T", el))
	}
}

// onModelUpdate runs after a bind once the view exists.
func onModelUpdate(el Element) {
	switch el.(type) {
	case *Section:
		// children refresh through their own SetModel
	case *TextInput, *ComboBox, *DatePicker, *TimePicker, *StaticText:
		el.node().refresh()
	default:
		panic(fmt.Sprintf("element: unknown element type %T", el))
	}
}

// onCreateView seeds initial values and replays a pending error.
func onCreateView(el Element) {
	b := el.node()
	switch e := el.(type) {
	case *Section:
	case *TextInput:
		if e.text != "" {
			b.seed(formmodel.String(e.text))
		}
	case *ComboBox:
		if len(e.options) > 0 {
			b.seed(formmodel.Index(e.start))
		}
	case *DatePicker:
		if !e.initial.IsZero() {
			b.seed(formmodel.Date(e.initial))
		}
	case *TimePicker:
		if !e.initial.IsZero() {
			b.seed(formmodel.Time(e.initial))
		}
	case *StaticText:
	default:
		panic(fmt.Sprintf("element: unknown element type %T", el))
	}
	if b.err != "" {
		b.view.SetError(b.err)
	}
	b.view.Refresh()
}

// onViewMake runs after every attach.
func onViewMake(el Element, c Container) error {
	switch e := el.(type) {
	case *Section:
		body := c
		if composite, ok := e.view.(Composite); ok && composite.Body() != nil {
			body = composite.Body()
			body.Clear()
		}
		for _, child := range e.children {
			if err := child.MakeView(body); err != nil {
				return err
			}
		}
		return nil
	case *TextInput, *ComboBox, *DatePicker, *TimePicker, *StaticText:
		return nil
	default:
		return fmt.Errorf("element: unknown element type %T", el)
	}
}

// Walk calls fn for el and, for sections, every child in order.
func Walk(el Element, fn func(Element)) {
	fn(el)
	if s, ok := el.(*Section); ok {
		for _, child := range s.children {
			fn(child)
		}
	}
}

// Clear removes the error message from el and any children.
func Clear(el Element) {
	Walk(el, func(e Element) { e.SetError("") })
}
