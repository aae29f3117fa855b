package resources

import (
	"errors"
	"fmt"
)

// ErrMissingResource reports a resource id that no catalog defines.
var ErrMissingResource = errors.New("resources: missing resource")

// Text is either a literal string or a resource id resolved later against a
// Resources lookup. The zero value is an empty literal.
type Text struct {
	literal string
	id      string
}

// Literal wraps a ready-to-display string.
func Literal(s string) Text {
	return Text{literal: s}
}

// ID refers to a resource resolved at build time.
func ID(id string) Text {
	return Text{id: id}
}

// IsZero reports whether t carries neither a literal nor an id.
func (t Text) IsZero() bool {
	return t.literal == "" && t.id == ""
}

// ResourceID returns the id when t is a resource reference.
func (t Text) ResourceID() (string, bool) {
	return t.id, t.id != ""
}

// Resolve returns the literal, or looks the id up in res.
func (t Text) Resolve(res Resources) (string, error) {
	if t.id == "" {
		return t.literal, nil
	}
	if res != nil {
		if value, ok := res.Lookup(t.id); ok {
			return value, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrMissingResource, t.id)
}

// ResolveOr is Resolve that falls back to the id itself, so a missing entry
// still shows something.
func (t Text) ResolveOr(res Resources) string {
	value, err := t.Resolve(res)
	if err != nil {
		return t.id
	}
	return value
}

func (t Text) String() string {
	if t.id != "" {
		return "@" + t.id
	}
	return t.literal
}
