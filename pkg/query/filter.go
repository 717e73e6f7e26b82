package query

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter is a named predicate over records of type T.
type Filter[T any] struct {
	name       string
	def        string
	hasDefault bool
	match      func(rec T, value string) bool
}

// Name returns the query parameter that activates the filter.
func (f Filter[T]) Name() string { return f.name }

// WithDefault returns a copy of the filter that applies value when the
// parameter is absent or empty.
func (f Filter[T]) WithDefault(value string) Filter[T] {
	f.def = value
	f.hasDefault = true
	return f
}

// value resolves the effective filter value. ok is false when the filter
// does not apply.
func (f Filter[T]) value(params map[string]string) (string, bool) {
	if v := params[f.name]; v != "" {
		return v, true
	}
	if f.hasDefault {
		return f.def, true
	}
	return "", false
}

// Contains matches records whose field contains value, ignoring case.
// Both sides are Unicode case-folded.
func Contains[T any](name string, field func(T) string) Filter[T] {
	return Filter[T]{
		name: name,
		match: func(rec T, value string) bool {
			// A Caser is stateful and must not be shared across goroutines.
			fold := cases.Fold()
			return strings.Contains(fold.String(field(rec)), fold.String(value))
		},
	}
}

// Substring matches records whose field contains value exactly as given.
// Used for digit strings such as phone numbers and ABNs.
func Substring[T any](name string, field func(T) string) Filter[T] {
	return Filter[T]{
		name: name,
		match: func(rec T, value string) bool {
			return strings.Contains(field(rec), value)
		},
	}
}

// Equals matches records whose field equals value.
func Equals[T any](name string, field func(T) string) Filter[T] {
	return Filter[T]{
		name: name,
		match: func(rec T, value string) bool {
			return field(rec) == value
		},
	}
}

// Flag matches records whose boolean field equals (value == "true").
// Any value other than "true" selects records where the field is false.
func Flag[T any](name string, field func(T) bool) Filter[T] {
	return Filter[T]{
		name: name,
		match: func(rec T, value string) bool {
			return field(rec) == (value == "true")
		},
	}
}
