package form

import (
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/display"
	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/formmodel"
	"github.com/goliatone/go-formbuilder/pkg/resources"
)

// Builder collects the sections and texts of a form.
type Builder struct {
	title   resources.Text
	submit  resources.Text
	cancel  resources.Text
	display display.ErrorDisplay

	sections []*element.Section
	byName   map[string]*element.Section
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{byName: make(map[string]*element.Section)}
}

// Title sets the form heading.
func (b *Builder) Title(text resources.Text) *Builder {
	b.title = text
	return b
}

// SubmitButton sets the affirmative action text. It defaults to the
// form_submit resource ("Submit").
func (b *Builder) SubmitButton(text resources.Text) *Builder {
	b.submit = text
	return b
}

// CancelButton sets the negative action text. It defaults to the
// form_cancel resource ("Cancel").
func (b *Builder) CancelButton(text resources.Text) *Builder {
	b.cancel = text
	return b
}

// ErrorDisplay replaces the default element-routing display.
func (b *Builder) ErrorDisplay(d display.ErrorDisplay) *Builder {
	b.display = d
	return b
}

// AddSection appends s.
func (b *Builder) AddSection(s *element.Section) error {
	return b.AddSectionAt(s, len(b.sections))
}

// AddSectionAt inserts s at pos. Section names are unique within a form.
func (b *Builder) AddSectionAt(s *element.Section, pos int) error {
	if s == nil {
		return &element.ConfigError{Op: "add section", Err: element.ErrNilElement}
	}
	if _, exists := b.byName[s.Name()]; exists {
		return &element.ConfigError{Op: "add section", Name: s.Name(), Err: element.ErrDuplicateName}
	}
	if pos < 0 || pos > len(b.sections) {
		return &element.ConfigError{Op: "add section", Name: s.Name(), Err: element.ErrPosition}
	}
	b.sections = append(b.sections, nil)
	copy(b.sections[pos+1:], b.sections[pos:])
	b.sections[pos] = s
	b.byName[s.Name()] = s
	return nil
}

// AddElement appends el to the last section, creating an untitled section
// first when there is none. Sections passed here are added as sections.
func (b *Builder) AddElement(el element.Element) error {
	if s, ok := el.(*element.Section); ok {
		return b.AddSection(s)
	}
	if len(b.sections) == 0 {
		if err := b.AddSection(element.NewSection("", "")); err != nil {
			return err
		}
	}
	return b.sections[len(b.sections)-1].AddElement(el)
}

// Sections returns the sections collected so far.
func (b *Builder) Sections() []*element.Section {
	return append([]*element.Section(nil), b.sections...)
}

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	model *formmodel.Model
}

// WithModel binds m instead of a fresh model, e.g. one kept in a
// formmodel.Retainer across rebuilds.
func WithModel(m *formmodel.Model) Option {
	return func(cfg *buildConfig) {
		cfg.model = m
	}
}

// WithRetained binds the model retained under tag, creating it on first use.
func WithRetained(r *formmodel.Retainer, tag string) Option {
	return func(cfg *buildConfig) {
		if r != nil {
			cfg.model = r.Model(tag)
		}
	}
}

// Build snapshots the sections, binds a model and resolves the texts against
// res and the built-in catalog.
func (b *Builder) Build(res resources.Resources, opts ...Option) (*Form, error) {
	cfg := buildConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := checkUniqueNames(b.sections); err != nil {
		return nil, err
	}
	lookup := resources.WithDefaults(res)

	title, err := b.title.Resolve(lookup)
	if err != nil {
		return nil, fmt.Errorf("form: resolve title: %w", err)
	}
	submit, err := orDefault(b.submit, resources.SubmitButton).Resolve(lookup)
	if err != nil {
		return nil, fmt.Errorf("form: resolve submit button: %w", err)
	}
	cancel, err := orDefault(b.cancel, resources.CancelButton).Resolve(lookup)
	if err != nil {
		return nil, fmt.Errorf("form: resolve cancel button: %w", err)
	}

	f := &Form{
		sections:   append([]*element.Section(nil), b.sections...),
		byName:     make(map[string]*element.Section, len(b.sections)),
		res:        lookup,
		display:    b.display,
		title:      title,
		submitText: submit,
		cancelText: cancel,
	}
	for _, s := range f.sections {
		f.byName[s.Name()] = s
	}
	if f.display == nil {
		f.display = display.NewElementDisplay()
	}
	model := cfg.model
	if model == nil {
		model = formmodel.New()
	}
	f.Rebind(model)
	return f, nil
}

// checkUniqueNames rejects element names used in more than one section.
func checkUniqueNames(sections []*element.Section) error {
	owner := make(map[string]string)
	for _, s := range sections {
		for _, el := range s.Elements() {
			if prev, ok := owner[el.Name()]; ok {
				return &element.ConfigError{
					Op:   "build",
					Name: el.Name(),
					Err:  fmt.Errorf("%w (sections %q and %q)", element.ErrDuplicateName, prev, s.Name()),
				}
			}
			owner[el.Name()] = s.Name()
		}
	}
	return nil
}

func orDefault(text resources.Text, id string) resources.Text {
	if text.IsZero() {
		return resources.ID(id)
	}
	return text
}
