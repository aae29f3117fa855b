package formmodel

import (
	"fmt"
	"time"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	// KindNone marks an absent or cleared value.
	KindNone Kind = iota
	// KindString holds free text.
	KindString
	// KindIndex holds a zero-based choice index (combo boxes).
	KindIndex
	// KindDate holds a calendar date.
	KindDate
	// KindTime holds a time of day.
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindIndex:
		return "index"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	default:
		return "none"
	}
}

// Value is the tagged union stored in a Model. The zero value is None.
type Value struct {
	kind  Kind
	text  string
	index int
	at    time.Time
}

// None returns the empty value.
func None() Value { return Value{} }

// String wraps free text.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Index wraps a choice index.
func Index(i int) Value { return Value{kind: KindIndex, index: i} }

// Date wraps a calendar date.
func Date(t time.Time) Value { return Value{kind: KindDate, at: t} }

// Time wraps a time of day. The date part of t is kept so pickers can
// round-trip it.
func Time(t time.Time) Value { return Value{kind: KindTime, at: t} }

// Kind reports the variant.
func (v Value) Kind() Kind { return v.kind }

// IsNone reports whether v holds nothing.
func (v Value) IsNone() bool { return v.kind == KindNone }

// IsEmpty reports whether v is None or an empty string.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindNone:
		return true
	case KindString:
		return v.text == ""
	default:
		return false
	}
}

// Str returns the text when v is a String.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.text, true
}

// Idx returns the index when v is an Index.
func (v Value) Idx() (int, bool) {
	if v.kind != KindIndex {
		return 0, false
	}
	return v.index, true
}

// Moment returns the instant when v is a Date or a Time.
func (v Value) Moment() (time.Time, bool) {
	if v.kind != KindDate && v.kind != KindTime {
		return time.Time{}, false
	}
	return v.at, true
}

// Equal compares by value. Instants compare with time.Time.Equal so the
// same moment in different locations is equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNone:
		return true
	case KindString:
		return v.text == other.text
	case KindIndex:
		return v.index == other.index
	default:
		return v.at.Equal(other.at)
	}
}

// Interface converts v into a plain Go value for serialisation: nil,
// string, int or time.Time.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.text
	case KindIndex:
		return v.index
	case KindDate, KindTime:
		return v.at
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindNone:
		return "<none>"
	case KindString:
		return fmt.Sprintf("%q", v.text)
	case KindIndex:
		return fmt.Sprintf("#%d", v.index)
	case KindDate:
		return v.at.Format(time.DateOnly)
	default:
		return v.at.Format(time.TimeOnly)
	}
}
