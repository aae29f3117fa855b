// Package validator defines the per-field validation rules of a form and the
// InputError values they produce.
//
// A Validator inspects the current model value of one field and returns nil
// when the value passes or an *InputError describing the failure. Errors are
// plain values produced fresh on every pass; they are not Go errors and are
// never returned through error channels.
package validator
