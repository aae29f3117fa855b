package definition

import (
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-formbuilder/internal/labels"
	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/resources"
	"github.com/goliatone/go-formbuilder/pkg/validator"
)

// Builder turns the definition into a form builder. Element errors name the
// form, section and element they come from.
func (d Definition) Builder() (*form.Builder, error) {
	b := form.NewBuilder().
		Title(text(d.Title, d.TitleKey)).
		SubmitButton(text(d.Submit, d.SubmitKey)).
		CancelButton(text(d.Cancel, d.CancelKey))

	for i, sec := range d.Sections {
		section := element.NewSection(sec.Name, sec.Title)
		for j, def := range sec.Elements {
			el, err := def.Element()
			if err != nil {
				return nil, fmt.Errorf("definition: form %q section %d element %d: %w", d.ID, i, j, err)
			}
			if err := section.AddElement(el); err != nil {
				return nil, fmt.Errorf("definition: form %q section %d: %w", d.ID, i, err)
			}
		}
		if err := b.AddSection(section); err != nil {
			return nil, fmt.Errorf("definition: form %q: %w", d.ID, err)
		}
	}
	return b, nil
}

// Element builds the described element. A missing label is derived from the
// name.
func (e Element) Element() (element.Element, error) {
	if e.Label == "" && e.Name != "" {
		e.Label = labels.FromName(e.Name)
	}
	kind := strings.ToLower(strings.TrimSpace(e.Type))
	if kind == "" {
		kind = TypeText
	}
	if kind == TypeStatic {
		return element.NewStaticText(e.Name, e.Label).
			SetValue(e.Value).
			SetPlaceholder(e.Placeholder), nil
	}

	opts, err := e.inputOptions()
	if err != nil {
		return nil, err
	}
	switch kind {
	case TypeText, TypeTextarea, TypePassword:
		input := element.NewTextInput(e.Name, e.Label, opts...).
			SetText(e.Value).
			SetPlaceholder(e.Placeholder).
			SetMultiLine(kind == TypeTextarea).
			SetPassword(kind == TypePassword)
		return input, nil
	case TypeCombo:
		if len(e.Options) == 0 {
			return nil, fmt.Errorf("combo %q has no options", e.Name)
		}
		combo := element.NewComboBox(e.Name, e.Label, e.Options, opts...).SetStartIndex(e.StartIndex)
		if e.Prompt != "" {
			combo.SetPrompt(e.Prompt)
		}
		return combo, nil
	case TypeDate:
		picker := element.NewDatePicker(e.Name, e.Label, opts...).SetDisplayLayout(e.Layout)
		if e.Location != "" {
			loc, err := time.LoadLocation(e.Location)
			if err != nil {
				return nil, fmt.Errorf("date %q: %w", e.Name, err)
			}
			picker.SetLocation(loc)
		}
		if e.Value != "" {
			at, err := time.ParseInLocation(time.DateOnly, e.Value, picker.Location())
			if err != nil {
				return nil, fmt.Errorf("date %q: %w", e.Name, err)
			}
			picker.SetDate(at)
		}
		return picker, nil
	case TypeTime:
		picker := element.NewTimePicker(e.Name, e.Label, opts...).Set24Hour(e.Hour24).SetDisplayLayout(e.Layout)
		if e.Value != "" {
			clock, err := time.Parse("15:04", e.Value)
			if err != nil {
				return nil, fmt.Errorf("time %q: %w", e.Name, err)
			}
			now := time.Now()
			picker.SetTime(time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local))
		}
		return picker, nil
	default:
		return nil, fmt.Errorf("element %q has unknown type %q", e.Name, e.Type)
	}
}

func (e Element) inputOptions() ([]element.InputOption, error) {
	var opts []element.InputOption
	if e.Required {
		opts = append(opts, element.Required())
	}
	var rules []validator.Validator
	if e.MinLength != nil {
		rules = append(rules, validator.MinLength(*e.MinLength))
	}
	if e.MaxLength != nil {
		rules = append(rules, validator.MaxLength(*e.MaxLength))
	}
	if e.Pattern != "" {
		rule, err := validator.Pattern(e.Pattern)
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", e.Name, err)
		}
		rules = append(rules, rule)
	}
	if len(rules) > 0 {
		opts = append(opts, element.WithValidators(rules...))
	}
	if e.VerticalLabel {
		opts = append(opts, element.VerticalLabel())
	}
	if e.LabelStyle != "" {
		style, err := parseStyle(e.LabelStyle)
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", e.Name, err)
		}
		opts = append(opts, element.LabelStyle(style))
	}
	return opts, nil
}

func parseStyle(raw string) (element.TextStyle, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "normal":
		return element.StyleNormal, nil
	case "bold":
		return element.StyleBold, nil
	case "italic":
		return element.StyleItalic, nil
	case "bold-italic", "bolditalic":
		return element.StyleBoldItalic, nil
	default:
		return element.StyleNormal, fmt.Errorf("unknown label style %q", raw)
	}
}

func text(literal, key string) resources.Text {
	if key = strings.TrimSpace(key); key != "" {
		return resources.ID(key)
	}
	return resources.Literal(literal)
}
