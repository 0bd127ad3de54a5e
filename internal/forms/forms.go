// Package forms models the console's dynamic repeating sub-forms (tariffs,
// recipe lines, stock deltas) as plain value types: an ordered group of lines
// with add/remove/reset, per-line shape validation and whole-array rules that
// fail with named errors so the UI can show a specific message instead of a
// generic invalid-form state.
package forms

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// LineError reports which line failed shape validation and why.
type LineError struct {
	Index  int
	Field  string
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("linea %d: campo %s invalido (%s)", e.Index+1, e.Field, e.Reason)
}

// GroupRule is a whole-array validator. It returns a named error when the
// array as a whole is invalid.
type GroupRule[T any] func(lines []T) error

// Group is a mutable ordered list of form lines.
type Group[T any] struct {
	lines []T
	rules []GroupRule[T]
}

// NewGroup builds an empty group with the given array-level rules.
func NewGroup[T any](rules ...GroupRule[T]) *Group[T] {
	return &Group[T]{rules: rules}
}

func (g *Group[T]) Add(line T) {
	g.lines = append(g.lines, line)
}

func (g *Group[T]) Remove(index int) error {
	if index < 0 || index >= len(g.lines) {
		return fmt.Errorf("forms: indice %d fuera de rango", index)
	}
	g.lines = append(g.lines[:index], g.lines[index+1:]...)
	return nil
}

// Reset drops every line, leaving the rules in place.
func (g *Group[T]) Reset() {
	g.lines = nil
}

func (g *Group[T]) Len() int { return len(g.lines) }

// Lines returns a copy so callers cannot bypass Add/Remove.
func (g *Group[T]) Lines() []T {
	out := make([]T, len(g.lines))
	copy(out, g.lines)
	return out
}

// Validate runs per-line shape validation first, then the array-level rules.
// The first failure wins, matching how the source surfaced one message at a
// time.
func (g *Group[T]) Validate() error {
	for i, line := range g.lines {
		if err := validate.Struct(line); err != nil {
			ve, ok := err.(validator.ValidationErrors)
			if !ok || len(ve) == 0 {
				return err
			}
			return &LineError{Index: i, Field: ve[0].Field(), Reason: ve[0].Tag()}
		}
	}
	for _, rule := range g.rules {
		if err := rule(g.lines); err != nil {
			return err
		}
	}
	return nil
}
