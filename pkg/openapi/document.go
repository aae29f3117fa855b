package openapi

import (
	"fmt"
	"sort"
)

// Document holds the operations extracted from an OpenAPI document.
type Document struct {
	Title      string
	Version    string
	operations map[string]Operation
}

// Operation returns the operation with the given id.
func (d *Document) Operation(id string) (Operation, bool) {
	if d == nil {
		return Operation{}, false
	}
	op, ok := d.operations[id]
	return op, ok
}

// Operations returns every operation sorted by id.
func (d *Document) Operations() []Operation {
	if d == nil {
		return nil
	}
	out := make([]Operation, 0, len(d.operations))
	for _, op := range d.operations {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Operation is the subset of OpenAPI operation metadata needed to build a
// form.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	RequestBody Schema
}

// HasForm reports whether the operation's request body has properties.
func (op Operation) HasForm() bool {
	return len(op.RequestBody.Properties) > 0
}

// Schema is a simplified JSON schema node.
type Schema struct {
	Ref         string
	Type        string
	Format      string
	Title       string
	Description string
	Default     any
	Enum        []any
	Required    []string
	Properties  map[string]Schema
	// Order lists property names from the x-order extension.
	Order     []string
	Items     *Schema
	MinLength *int
	MaxLength *int
	Pattern   string
	ReadOnly  bool
	// Widget comes from the x-widget extension, e.g. "textarea".
	Widget string
}

// IsRequired reports whether name is listed in Required.
func (s Schema) IsRequired(name string) bool {
	for _, candidate := range s.Required {
		if candidate == name {
			return true
		}
	}
	return false
}

// PropertyNames returns property names in x-order order first, then the rest
// alphabetically.
func (s Schema) PropertyNames() []string {
	seen := make(map[string]bool, len(s.Properties))
	names := make([]string, 0, len(s.Properties))
	for _, name := range s.Order {
		if _, ok := s.Properties[name]; ok && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	var rest []string
	for name := range s.Properties {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// DebugString summarises the schema for diagnostics.
func (s Schema) DebugString() string {
	summary := fmt.Sprintf("type=%s", s.Type)
	if s.Ref != "" {
		summary += fmt.Sprintf(",ref=%s", s.Ref)
	}
	if s.Format != "" {
		summary += fmt.Sprintf(",format=%s", s.Format)
	}
	if len(s.Required) > 0 {
		summary += fmt.Sprintf(",required=%d", len(s.Required))
	}
	if len(s.Properties) > 0 {
		summary += fmt.Sprintf(",properties=%d", len(s.Properties))
	}
	return summary
}
