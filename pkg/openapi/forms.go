package openapi

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goliatone/go-formbuilder/internal/labels"
	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/resources"
	"github.com/goliatone/go-formbuilder/pkg/validator"
)

const (
	integerPattern = `^-?[0-9]+$`
	numberPattern  = `^-?[0-9]+(\.[0-9]+)?$`
	maxDepth       = 8
)

// BooleanOptions are the combo entries used for boolean properties. Index 1
// means true.
var BooleanOptions = []string{"No", "Yes"}

// FormOptions configures Builder.
type FormOptions struct {
	Labeler      func(name string) string
	SectionTitle string
}

// FormOption mutates FormOptions.
type FormOption func(*FormOptions)

// WithLabeler overrides how labels are derived for properties without a
// title.
func WithLabeler(fn func(name string) string) FormOption {
	return func(opts *FormOptions) {
		if fn != nil {
			opts.Labeler = fn
		}
	}
}

// WithSectionTitle sets the title of the top-level section. It defaults to the
// schema title.
func WithSectionTitle(title string) FormOption {
	return func(opts *FormOptions) {
		opts.SectionTitle = title
	}
}

// Result is a form builder plus the properties that had no element mapping.
type Result struct {
	Builder *form.Builder
	Skipped []string
}

// Builder maps the operation's request body onto a form builder. Scalar
// properties land in the first section; every nested object gets a section
// of its own with dotted element names.
func Builder(op Operation, options ...FormOption) (Result, error) {
	if !op.HasForm() {
		return Result{}, fmt.Errorf("openapi: operation %q has no request body properties", op.ID)
	}
	cfg := FormOptions{Labeler: labels.FromName}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	title := op.Summary
	if title == "" {
		title = labels.FromName(op.ID)
	}
	b := form.NewBuilder().Title(resources.Literal(title))

	c := &converter{cfg: cfg, builder: b}
	sectionTitle := cfg.SectionTitle
	if sectionTitle == "" {
		sectionTitle = op.RequestBody.Title
	}
	if err := c.object("", sectionTitle, op.RequestBody, 0); err != nil {
		return Result{}, fmt.Errorf("openapi: operation %q: %w", op.ID, err)
	}
	return Result{Builder: b, Skipped: c.skipped}, nil
}

type converter struct {
	cfg     FormOptions
	builder *form.Builder
	skipped []string
	names   map[string]bool
}

func (c *converter) object(prefix, title string, schema Schema, depth int) error {
	if depth > maxDepth {
		c.skipped = append(c.skipped, prefix)
		return nil
	}
	var (
		elements []element.Element
		nested   []string
	)
	for _, name := range schema.PropertyNames() {
		property := schema.Properties[name]
		path := joinPath(prefix, name)
		if property.Type == "object" || (property.Type == "" && len(property.Properties) > 0) {
			nested = append(nested, name)
			continue
		}
		el, ok, err := c.element(c.claim(path), name, property, schema.IsRequired(name))
		if err != nil {
			return err
		}
		if !ok {
			c.skipped = append(c.skipped, path)
			continue
		}
		elements = append(elements, el)
	}
	if len(elements) > 0 {
		section := element.NewSection(c.claim(sectionName(prefix)), title)
		if err := section.AddElements(elements...); err != nil {
			return err
		}
		if err := c.builder.AddSection(section); err != nil {
			return err
		}
	}
	for _, name := range nested {
		property := schema.Properties[name]
		if err := c.object(joinPath(prefix, name), c.label(name, property), property, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// claim reserves name for the form, suffixing it when a property path or a
// section already took it.
func (c *converter) claim(name string) string {
	if c.names == nil {
		c.names = make(map[string]bool)
	}
	unique := name
	for n := 2; c.names[unique]; n++ {
		unique = name + "_" + strconv.Itoa(n)
	}
	c.names[unique] = true
	return unique
}

func (c *converter) element(path, name string, property Schema, required bool) (element.Element, bool, error) {
	label := c.label(name, property)
	if property.ReadOnly {
		return element.NewStaticText(path, label).
			SetValue(defaultString(property.Default)).
			SetPlaceholder(property.Description), true, nil
	}

	opts, err := inputOptions(property, required)
	if err != nil {
		return nil, false, fmt.Errorf("property %q: %w", path, err)
	}

	switch {
	case len(property.Enum) > 0:
		options := enumOptions(property.Enum)
		combo := element.NewComboBox(path, label, options, opts...).
			SetStartIndex(indexOf(options, defaultString(property.Default)))
		return combo, true, nil
	case property.Type == "boolean":
		start := 0
		if value, ok := property.Default.(bool); ok && value {
			start = 1
		}
		return element.NewComboBox(path, label, BooleanOptions, opts...).SetStartIndex(start), true, nil
	case property.Type == "string" && (property.Format == "date" || property.Format == "date-time"):
		picker := element.NewDatePicker(path, label, opts...)
		if at, ok := parseDefault(property.Default, time.DateOnly, time.RFC3339); ok {
			picker.SetDate(at)
		}
		return picker, true, nil
	case property.Type == "string" && property.Format == "time":
		picker := element.NewTimePicker(path, label, opts...)
		if at, ok := parseDefault(property.Default, time.TimeOnly, "15:04"); ok {
			picker.SetTime(at)
		}
		return picker, true, nil
	case property.Type == "string", property.Type == "integer", property.Type == "number":
		input := element.NewTextInput(path, label, opts...).
			SetText(defaultString(property.Default)).
			SetPlaceholder(property.Description).
			SetPassword(property.Format == "password").
			SetMultiLine(property.Widget == "textarea")
		return input, true, nil
	default:
		return nil, false, nil
	}
}

func (c *converter) label(name string, property Schema) string {
	if property.Title != "" {
		return property.Title
	}
	return c.cfg.Labeler(name)
}

func inputOptions(property Schema, required bool) ([]element.InputOption, error) {
	var opts []element.InputOption
	if required {
		opts = append(opts, element.Required())
	}
	var vs []validator.Validator
	if property.MinLength != nil && *property.MinLength > 0 {
		vs = append(vs, validator.MinLength(*property.MinLength))
	}
	if property.MaxLength != nil {
		vs = append(vs, validator.MaxLength(*property.MaxLength))
	}
	expr := property.Pattern
	if expr == "" && len(property.Enum) == 0 {
		switch property.Type {
		case "integer":
			expr = integerPattern
		case "number":
			expr = numberPattern
		}
	}
	if expr != "" {
		v, err := validator.Pattern(expr)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	if len(vs) > 0 {
		opts = append(opts, element.WithValidators(vs...))
	}
	return opts, nil
}

func enumOptions(values []any) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, defaultString(value))
	}
	return out
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return 0
}

func defaultString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprint(v)
	}
}

func parseDefault(value any, layouts ...string) (time.Time, bool) {
	raw, ok := value.(string)
	if !ok || raw == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if at, err := time.Parse(layout, raw); err == nil {
			return at, true
		}
	}
	return time.Time{}, false
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func sectionName(prefix string) string {
	if prefix == "" {
		return "body"
	}
	return prefix
}
