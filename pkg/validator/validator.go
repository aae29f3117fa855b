package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"unicode/utf8"

	"github.com/goliatone/go-formbuilder/pkg/formmodel"
	"github.com/goliatone/go-formbuilder/pkg/resources"
)

// Rule codes of the built-in validators.
const (
	CodeRequired  = "required"
	CodeMinLength = "minLength"
	CodeMaxLength = "maxLength"
	CodePattern   = "pattern"
)

// Validator checks the value of one field.
type Validator interface {
	Validate(value formmodel.Value, field Field) *InputError
}

// Func adapts a function into a Validator. Func values are not comparable;
// keep a pointer to one when it must be removed later.
type Func func(value formmodel.Value, field Field) *InputError

// Validate calls fn.
func (fn Func) Validate(value formmodel.Value, field Field) *InputError {
	return fn(value, field)
}

type required struct{}

// Required fails when the value is None or an empty string.
var Required Validator = required{}

func (required) Validate(value formmodel.Value, field Field) *InputError {
	if !value.IsEmpty() {
		return nil
	}
	message := resources.ID(resources.RequiredMessage)
	if field == nil || field.Label() == "" {
		message = resources.ID(resources.RequiredWithoutNameMsg)
	}
	return NewInputError(field, CodeRequired, message, nil)
}

type minLength struct{ n int }

// MinLength fails when a non-empty string has fewer than n runes.
func MinLength(n int) Validator {
	return minLength{n: n}
}

func (v minLength) Validate(value formmodel.Value, field Field) *InputError {
	text, ok := value.Str()
	if !ok || text == "" || utf8.RuneCountInString(text) >= v.n {
		return nil
	}
	return NewInputError(field, CodeMinLength, resources.ID(resources.MinLengthMessage), map[string]any{"min": v.n})
}

type maxLength struct{ n int }

// MaxLength fails when a string has more than n runes.
func MaxLength(n int) Validator {
	return maxLength{n: n}
}

func (v maxLength) Validate(value formmodel.Value, field Field) *InputError {
	text, ok := value.Str()
	if !ok || utf8.RuneCountInString(text) <= v.n {
		return nil
	}
	return NewInputError(field, CodeMaxLength, resources.ID(resources.MaxLengthMessage), map[string]any{"max": v.n})
}

type pattern struct{ re *regexp.Regexp }

// Pattern fails when a non-empty string does not match expr.
func Pattern(expr string) (Validator, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("validator: invalid pattern %q: %w", expr, err)
	}
	return pattern{re: re}, nil
}

// MustPattern is Pattern that panics on an invalid expression.
func MustPattern(expr string) Validator {
	v, err := Pattern(expr)
	if err != nil {
		panic(err)
	}
	return v
}

func (v pattern) Validate(value formmodel.Value, field Field) *InputError {
	text, ok := value.Str()
	if !ok || text == "" || v.re.MatchString(text) {
		return nil
	}
	return NewInputError(field, CodePattern, resources.ID(resources.PatternMessage), map[string]any{"pattern": v.re.String()})
}

// Same reports whether a and b are the same validator instance. Values of
// non-comparable types, such as Func, are never the same. Neither is a
// comparable struct that holds a non-comparable value in an interface field.
func Same(a, b Validator) (same bool) {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == nil || ta != tb || !ta.Comparable() {
		return false
	}
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
