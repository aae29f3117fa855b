// Package formbuilder assembles forms from typed elements grouped into
// sections, keeps their values in a shared model, validates on submit and
// routes per-field errors back to the elements.
//
// The root package re-exports the common types and wires the declarative
// sources (definitions and OpenAPI operations) to a built form:
//
//	store, _ := definition.LoadFS(fsys)
//	f, _ := formbuilder.FromDefinition(store, "contact", catalog)
//	ok, _ := f.Validate()
package formbuilder

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/definition"
	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/formmodel"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/resources"
)

// Form aliases form.Form.
type Form = form.Form

// Builder aliases form.Builder.
type Builder = form.Builder

// Model aliases formmodel.Model.
type Model = formmodel.Model

// Value aliases formmodel.Value.
type Value = formmodel.Value

// Resources aliases resources.Resources.
type Resources = resources.Resources

// NewBuilder returns an empty form builder.
func NewBuilder() *Builder {
	return form.NewBuilder()
}

// NewModel returns an empty model.
func NewModel() *Model {
	return formmodel.New()
}

// FromDefinition builds the form registered under id in store.
func FromDefinition(store *definition.Store, id string, res Resources, opts ...form.Option) (*Form, error) {
	def, ok := store.Definition(id)
	if !ok {
		return nil, fmt.Errorf("formbuilder: unknown form %q", id)
	}
	b, err := def.Builder()
	if err != nil {
		return nil, err
	}
	return b.Build(res, opts...)
}

// FromOperation builds a form from an operation's request body. It also
// returns the properties that had no element mapping.
func FromOperation(doc *openapi.Document, id string, res Resources, opts ...form.Option) (*Form, []string, error) {
	op, ok := doc.Operation(id)
	if !ok {
		return nil, nil, fmt.Errorf("formbuilder: unknown operation %q", id)
	}
	result, err := openapi.Builder(op)
	if err != nil {
		return nil, nil, err
	}
	f, err := result.Builder.Build(res, opts...)
	if err != nil {
		return nil, nil, err
	}
	return f, result.Skipped, nil
}

// FromOpenAPI loads data and builds the form for operation id.
func FromOpenAPI(ctx context.Context, data []byte, id string, res Resources, opts ...form.Option) (*Form, []string, error) {
	doc, err := openapi.Load(ctx, data)
	if err != nil {
		return nil, nil, err
	}
	return FromOperation(doc, id, res, opts...)
}
