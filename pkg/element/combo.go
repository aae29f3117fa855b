package element

import (
	"github.com/goliatone/go-formbuilder/pkg/formmodel"
	"github.com/goliatone/go-formbuilder/pkg/validator"
)

// ComboBox is a choice among fixed options, stored as an Index value.
type ComboBox struct {
	base
	input
	options []string
	start   int
	prompt  string
}

// NewComboBox returns a choice element over options.
func NewComboBox(name, label string, options []string, opts ...InputOption) *ComboBox {
	return &ComboBox{
		base:    newBase(name),
		input:   newInputWith(label, opts),
		options: append([]string(nil), options...),
		prompt:  label,
	}
}

// SetStartIndex sets the initial selection. It is clamped into range and
// written to the model when the view is created.
func (c *ComboBox) SetStartIndex(i int) *ComboBox {
	c.start = clampIndex(i, len(c.options))
	if c.view != nil && c.model != nil && len(c.options) > 0 {
		c.model.Set(c.name, formmodel.Index(c.start))
	}
	return c
}

// StartIndex returns the initial selection.
func (c *ComboBox) StartIndex() int { return c.start }

// SetPrompt sets the title of the choice list. It defaults to the label.
func (c *ComboBox) SetPrompt(prompt string) *ComboBox {
	c.prompt = prompt
	return c
}

// Prompt returns the choice list title.
func (c *ComboBox) Prompt() string { return c.prompt }

// Options returns a copy of the choices.
func (c *ComboBox) Options() []string {
	return append([]string(nil), c.options...)
}

// Select writes the chosen position into the model.
func (c *ComboBox) Select(i int) error {
	if i < 0 || i >= len(c.options) {
		return configError("select", c.name, ErrOutOfRange)
	}
	return c.write("select", formmodel.Index(i))
}

// Selected returns the selected position, or the start index when the model
// holds none.
func (c *ComboBox) Selected() int {
	return clampIndex(c.model.Index(c.name, c.start), len(c.options))
}

// SelectedOption returns the text of the selected option.
func (c *ComboBox) SelectedOption() (string, bool) {
	if len(c.options) == 0 {
		return "", false
	}
	return c.options[c.Selected()], true
}

func (c *ComboBox) Value() formmodel.Value { return c.value() }

func (c *ComboBox) ValidateInput() []*validator.InputError { return validateInput(c) }

func (c *ComboBox) SetModel(m *formmodel.Model) { setModel(c, m) }

func (c *ComboBox) MakeView(container Container) error { return makeView(c, container) }

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
