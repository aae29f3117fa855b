package openapi

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	orderExtensionKey  = "x-order"
	widgetExtensionKey = "x-widget"
)

// LoaderOptions configures Load.
type LoaderOptions struct {
	// Validate runs kin-openapi document validation after loading.
	Validate bool
	// AllowExternalRefs lets $ref point outside the document.
	AllowExternalRefs bool
}

// LoaderOption mutates LoaderOptions.
type LoaderOption func(*LoaderOptions)

// WithValidation toggles document validation.
func WithValidation(enabled bool) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.Validate = enabled
	}
}

// WithExternalRefs allows references to other documents.
func WithExternalRefs() LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowExternalRefs = true
	}
}

// Load parses a JSON or YAML OpenAPI 3 document.
func Load(ctx context.Context, data []byte, options ...LoaderOption) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: cfg.AllowExternalRefs,
	}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if cfg.Validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	doc := &Document{operations: make(map[string]Operation)}
	if spec.Info != nil {
		doc.Title = spec.Info.Title
		doc.Version = spec.Info.Version
	}
	if spec.Paths != nil {
		for path, item := range spec.Paths.Map() {
			if item == nil {
				continue
			}
			for method, operation := range item.Operations() {
				collectOperation(doc.operations, method, path, operation)
			}
		}
	}
	return doc, nil
}

// LoadFile reads and parses a document from disk.
func LoadFile(ctx context.Context, path string, options ...LoaderOption) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: read %s: %w", path, err)
	}
	return Load(ctx, data, options...)
}

// LoadFS reads and parses a document from fsys.
func LoadFS(ctx context.Context, fsys fs.FS, name string, options ...LoaderOption) (*Document, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("openapi: read %s: %w", name, err)
	}
	return Load(ctx, data, options...)
}

func collectOperation(target map[string]Operation, method, path string, operation *openapi3.Operation) {
	if operation == nil {
		return
	}
	method = strings.ToUpper(method)
	id := operation.OperationID
	if id == "" {
		id = strings.ToLower(method) + ":" + path
	}
	target[id] = Operation{
		ID:          id,
		Method:      method,
		Path:        path,
		Summary:     operation.Summary,
		Description: operation.Description,
		RequestBody: extractRequestSchema(operation.RequestBody),
	}
}

func extractRequestSchema(requestBody *openapi3.RequestBodyRef) Schema {
	if requestBody == nil {
		return Schema{}
	}
	if requestBody.Value == nil {
		return Schema{Ref: requestBody.Ref}
	}
	content := requestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt != nil {
			return convertSchema(mt.Schema, nil)
		}
	}
	for _, mt := range content {
		if mt != nil {
			return convertSchema(mt.Schema, nil)
		}
	}
	return Schema{}
}

// convertSchema copies the parts of a kin-openapi schema forms use. Schemas
// already on the conversion path keep only their $ref, which stops cycles.
func convertSchema(ref *openapi3.SchemaRef, path map[*openapi3.Schema]bool) Schema {
	if ref == nil {
		return Schema{}
	}
	if ref.Value == nil || path[ref.Value] {
		return Schema{Ref: ref.Ref}
	}
	src := ref.Value
	schema := Schema{
		Ref:         ref.Ref,
		Type:        firstSchemaType(src.Type),
		Format:      src.Format,
		Title:       src.Title,
		Description: src.Description,
		Default:     src.Default,
		Pattern:     src.Pattern,
		ReadOnly:    src.ReadOnly,
	}
	if len(src.Required) > 0 {
		schema.Required = append([]string(nil), src.Required...)
	}
	if len(src.Enum) > 0 {
		schema.Enum = append([]any(nil), src.Enum...)
	}
	if src.MinLength != 0 {
		value := int(src.MinLength)
		schema.MinLength = &value
	}
	if src.MaxLength != nil {
		value := int(*src.MaxLength)
		schema.MaxLength = &value
	}
	schema.Order = stringList(src.Extensions[orderExtensionKey])
	if widget, ok := src.Extensions[widgetExtensionKey].(string); ok {
		schema.Widget = widget
	}

	if len(src.Properties) > 0 || src.Items != nil {
		inner := make(map[*openapi3.Schema]bool, len(path)+1)
		for k := range path {
			inner[k] = true
		}
		inner[src] = true
		if len(src.Properties) > 0 {
			schema.Properties = make(map[string]Schema, len(src.Properties))
			for name, property := range src.Properties {
				schema.Properties[name] = convertSchema(property, inner)
			}
		}
		if src.Items != nil {
			items := convertSchema(src.Items, inner)
			schema.Items = &items
		}
	}
	return schema
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		for _, value := range values {
			if value != "null" {
				return value
			}
		}
		return values[0]
	}
}

func stringList(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
