package kdp

import (
	"fmt"
	"strings"
)

// RangeError reports a numeric input outside its documented legal range.
// The calculators fail fast with this error; they never clamp silently.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("kdp: %s must be between %g and %g, got %g", e.Field, e.Min, e.Max, e.Value)
}

// UnknownEnumError reports a paper or binding type that matches no known
// variant. The calculators never guess a default.
type UnknownEnumError struct {
	Field string
	Value string
	Valid []string
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("kdp: unknown %s %q, must be one of: %s", e.Field, e.Value, strings.Join(e.Valid, ", "))
}

// pageCountError builds the RangeError for an out-of-bounds page count.
func pageCountError(pageCount int) error {
	return &RangeError{
		Field: "page count",
		Value: float64(pageCount),
		Min:   MinPageCount,
		Max:   MaxPageCount,
	}
}

// paperTypeError builds the UnknownEnumError for an invalid paper type.
func paperTypeError(paper PaperType) error {
	valid := make([]string, len(PaperTypes))
	for i, p := range PaperTypes {
		valid[i] = string(p)
	}
	return &UnknownEnumError{Field: "paper type", Value: string(paper), Valid: valid}
}

// bindingTypeError builds the UnknownEnumError for an invalid binding type.
func bindingTypeError(binding BindingType) error {
	valid := make([]string, len(BindingTypes))
	for i, b := range BindingTypes {
		valid[i] = string(b)
	}
	return &UnknownEnumError{Field: "binding type", Value: string(binding), Valid: valid}
}
