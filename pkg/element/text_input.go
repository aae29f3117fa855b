package element

import (
	"github.com/goliatone/go-formbuilder/pkg/formmodel"
	"github.com/goliatone/go-formbuilder/pkg/validator"
)

// InputType is a bit set describing a text field.
type InputType uint32

// Input type bits.
const (
	TypeClassText     InputType = 0x00000001
	VariationPassword InputType = 0x00000080
	FlagMultiLine     InputType = 0x00020000
)

// Has reports whether every bit of mask is set.
func (t InputType) Has(mask InputType) bool {
	return mask != 0 && t&mask == mask
}

// With returns t with mask set or cleared.
func (t InputType) With(mask InputType, on bool) InputType {
	if on {
		return t | mask
	}
	return t &^ mask
}

// TextInput is a free-text field storing a String value.
type TextInput struct {
	base
	input
	text        string
	placeholder string
	inputType   InputType
}

// NewTextInput returns a single-line text field. An empty name is replaced
// by a random one.
func NewTextInput(name, label string, opts ...InputOption) *TextInput {
	return &TextInput{
		base:      newBase(name),
		input:     newInputWith(label, opts),
		inputType: TypeClassText,
	}
}

// SetText sets the initial text. Once the view exists the text is written to
// the model right away. Before that the model stays untouched, so validating
// a form that never made its views ignores the initial text.
func (t *TextInput) SetText(text string) *TextInput {
	t.text = text
	if t.view != nil && t.model != nil {
		t.model.Set(t.name, formmodel.String(text))
	}
	return t
}

// InitialText returns the text set with SetText.
func (t *TextInput) InitialText() string { return t.text }

// SetPlaceholder sets the hint shown while the field is empty.
func (t *TextInput) SetPlaceholder(placeholder string) *TextInput {
	t.placeholder = placeholder
	t.refresh()
	return t
}

// Placeholder returns the empty-field hint.
func (t *TextInput) Placeholder() string { return t.placeholder }

// SetInputTypeMask sets or clears mask on the input type.
func (t *TextInput) SetInputTypeMask(mask InputType, on bool) *TextInput {
	t.inputType = t.inputType.With(mask, on)
	t.refresh()
	return t
}

// SetMultiLine toggles multi-line editing.
func (t *TextInput) SetMultiLine(on bool) *TextInput {
	return t.SetInputTypeMask(FlagMultiLine, on)
}

// SetPassword toggles masked input.
func (t *TextInput) SetPassword(on bool) *TextInput {
	return t.SetInputTypeMask(VariationPassword, on)
}

// InputType returns the current flags.
func (t *TextInput) InputType() InputType { return t.inputType }

// IsMultiLine reports whether the multi-line flag is set.
func (t *TextInput) IsMultiLine() bool { return t.inputType.Has(FlagMultiLine) }

// IsPassword reports whether the password variation is set.
func (t *TextInput) IsPassword() bool { return t.inputType.Has(VariationPassword) }

// Text returns the current model text.
func (t *TextInput) Text() string {
	return t.model.String(t.name, "")
}

// Input writes text typed by the user into the model.
func (t *TextInput) Input(text string) error {
	return t.write("input", formmodel.String(text))
}

func (t *TextInput) Value() formmodel.Value { return t.value() }

func (t *TextInput) ValidateInput() []*validator.InputError { return validateInput(t) }

func (t *TextInput) SetModel(m *formmodel.Model) { setModel(t, m) }

func (t *TextInput) MakeView(c Container) error { return makeView(t, c) }
