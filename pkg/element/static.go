package element

import "github.com/goliatone/go-formbuilder/pkg/formmodel"

// StaticText displays a label and the model value stored under its name. It
// is never validated.
type StaticText struct {
	base
	label       string
	fallback    string
	placeholder string
	labelStyle  TextStyle
	valueStyle  TextStyle
}

// NewStaticText returns a display element.
func NewStaticText(name, label string) *StaticText {
	return &StaticText{base: newBase(name), label: label}
}

// Label returns the caption.
func (s *StaticText) Label() string { return s.label }

// SetValue sets the text shown while the model holds nothing for the name.
func (s *StaticText) SetValue(value string) *StaticText {
	s.fallback = value
	s.refresh()
	return s
}

// SetPlaceholder sets the hint shown when there is no text at all.
func (s *StaticText) SetPlaceholder(placeholder string) *StaticText {
	s.placeholder = placeholder
	s.refresh()
	return s
}

// Placeholder returns the empty hint.
func (s *StaticText) Placeholder() string { return s.placeholder }

// SetStyles sets the label and value emphasis.
func (s *StaticText) SetStyles(label, value TextStyle) *StaticText {
	s.labelStyle, s.valueStyle = label, value
	s.refresh()
	return s
}

// Styles returns the label and value emphasis.
func (s *StaticText) Styles() (label, value TextStyle) {
	return s.labelStyle, s.valueStyle
}

// Text returns the model value as text, or the fallback value.
func (s *StaticText) Text() string {
	v, ok := s.model.Get(s.name)
	if !ok || v.IsNone() {
		return s.fallback
	}
	if text, ok := v.Str(); ok {
		return text
	}
	return v.String()
}

func (s *StaticText) SetModel(m *formmodel.Model) { setModel(s, m) }

func (s *StaticText) MakeView(c Container) error { return makeView(s, c) }
