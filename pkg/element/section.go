package element

import (
	"github.com/goliatone/go-formbuilder/pkg/formmodel"
	"github.com/goliatone/go-formbuilder/pkg/validator"
)

// Section is a named, optionally titled group of elements. Sections cannot
// be nested and child names are unique within a section.
type Section struct {
	base
	title    string
	children []Element
	byName   map[string]Element
}

// NewSection returns an empty section. An empty name is replaced by a random
// one.
func NewSection(name, title string) *Section {
	return &Section{
		base:   newBase(name),
		title:  title,
		byName: make(map[string]Element),
	}
}

// Title returns the heading, possibly empty.
func (s *Section) Title() string { return s.title }

// AddElement appends el.
func (s *Section) AddElement(el Element) error {
	return s.AddElementAt(el, len(s.children))
}

// AddElements appends each element, stopping at the first failure.
func (s *Section) AddElements(els ...Element) error {
	for _, el := range els {
		if err := s.AddElement(el); err != nil {
			return err
		}
	}
	return nil
}

// AddElementAt inserts el at pos and binds it to the section's model.
func (s *Section) AddElementAt(el Element, pos int) error {
	if el == nil {
		return configError("add element", s.name, ErrNilElement)
	}
	if _, ok := el.(*Section); ok {
		return configError("add element", el.Name(), ErrNestedSection)
	}
	if _, exists := s.byName[el.Name()]; exists {
		return configError("add element", el.Name(), ErrDuplicateName)
	}
	if pos < 0 || pos > len(s.children) {
		return configError("add element", el.Name(), ErrPosition)
	}
	el.SetModel(s.model)
	s.children = append(s.children, nil)
	copy(s.children[pos+1:], s.children[pos:])
	s.children[pos] = el
	s.byName[el.Name()] = el
	return nil
}

// RemoveElement detaches the named element and unbinds it.
func (s *Section) RemoveElement(name string) (Element, error) {
	el, ok := s.byName[name]
	if !ok {
		return nil, configError("remove element", name, ErrNotFound)
	}
	delete(s.byName, name)
	for i, child := range s.children {
		if child == el {
			s.children = append(s.children[:i], s.children[i+1:]...)
			break
		}
	}
	el.SetModel(nil)
	return el, nil
}

// Element returns the named child.
func (s *Section) Element(name string) (Element, bool) {
	el, ok := s.byName[name]
	return el, ok
}

// ElementAt returns the child at position i.
func (s *Section) ElementAt(i int) (Element, bool) {
	if i < 0 || i >= len(s.children) {
		return nil, false
	}
	return s.children[i], true
}

// Elements returns the children in order.
func (s *Section) Elements() []Element {
	return append([]Element(nil), s.children...)
}

// Len returns the number of children.
func (s *Section) Len() int { return len(s.children) }

// Validate appends the errors of every input child to acc, in child order.
func (s *Section) Validate(acc []*validator.InputError) []*validator.InputError {
	for _, child := range s.children {
		switch el := child.(type) {
		case *TextInput:
			acc = append(acc, el.ValidateInput()...)
		case *ComboBox:
			acc = append(acc, el.ValidateInput()...)
		case *DatePicker:
			acc = append(acc, el.ValidateInput()...)
		case *TimePicker:
			acc = append(acc, el.ValidateInput()...)
		case *StaticText, *Section:
		}
	}
	return acc
}

// ClearErrors clears the message of the section and every child.
func (s *Section) ClearErrors() {
	Clear(s)
}

func (s *Section) SetModel(m *formmodel.Model) { setModel(s, m) }

func (s *Section) MakeView(c Container) error { return makeView(s, c) }
