package validator

import (
	"github.com/goliatone/go-formbuilder/pkg/formmodel"
)

// Set is an insertion-ordered collection of validators without duplicates.
type Set struct {
	items []Validator
}

// Add appends v unless the same instance is already present.
func (s *Set) Add(v Validator) bool {
	if v == nil || s.Contains(v) {
		return false
	}
	s.items = append(s.items, v)
	return true
}

// Remove deletes v by identity.
func (s *Set) Remove(v Validator) bool {
	for i, item := range s.items {
		if Same(item, v) {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v Validator) bool {
	for _, item := range s.items {
		if Same(item, v) {
			return true
		}
	}
	return false
}

// Len returns the number of validators.
func (s *Set) Len() int { return len(s.items) }

// List copies the validators in insertion order.
func (s *Set) List() []Validator {
	return append([]Validator(nil), s.items...)
}

// Validate runs every validator in order and collects all failures.
func (s *Set) Validate(value formmodel.Value, field Field) []*InputError {
	var errs []*InputError
	for _, v := range s.items {
		if err := v.Validate(value, field); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
