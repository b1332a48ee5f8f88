// Package calcerr defines the error taxonomy of the calculation engine.
//
// Configuration and input-validation failures are returned as *Error and
// fail the request. Numeric degeneracies are never errors: they are
// recovered locally and recorded as Flag values on the result.
package calcerr

import (
	"errors"
	"fmt"
	"math"
)

// Kind classifies a fatal engine error.
type Kind string

const (
	KindConfiguration   Kind = "configuration"
	KindInputValidation Kind = "input_validation"
)

// Error is a fatal engine error.
type Error struct {
	Kind    Kind
	Field   string // offending input field, empty for configuration errors
	Message string
}

// Sentinels for errors.Is matching by kind.
var (
	ErrConfiguration   = &Error{Kind: KindConfiguration}
	ErrInputValidation = &Error{Kind: KindInputValidation}
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Configuration returns a configuration error (unknown mode, missing main
// character, bad reference data).
func Configuration(format string, args ...any) *Error {
	return &Error{Kind: KindConfiguration, Message: fmt.Sprintf(format, args...)}
}

// InvalidInput returns an input validation error naming the offending field.
func InvalidInput(field, format string, args ...any) *Error {
	return &Error{Kind: KindInputValidation, Field: field, Message: fmt.Sprintf(format, args...)}
}

// FieldOf returns the offending field of err, or "" if err is not an
// input validation error.
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// Flag records a numeric degeneracy that was recovered locally.
type Flag struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Reasons used by the engine.
const (
	ReasonNonFinite    = "non_finite_replaced_with_zero"
	ReasonZeroBase     = "zero_base_damage"
	ReasonZeroCritRate = "zero_crit_rate"
)

// Flags accumulates degeneracy flags during one calculation.
// The zero value is ready to use; it is not safe for concurrent use.
type Flags struct {
	list []Flag
}

// Add records a flag.
func (f *Flags) Add(field, reason string) {
	f.list = append(f.list, Flag{Field: field, Reason: reason})
}

// Finite returns v, or 0 with a flag when v is NaN or ±Inf.
func (f *Flags) Finite(field string, v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		f.Add(field, ReasonNonFinite)
		return 0
	}
	return v
}

// List returns the recorded flags, nil when there are none.
func (f *Flags) List() []Flag {
	if len(f.list) == 0 {
		return nil
	}
	out := make([]Flag, len(f.list))
	copy(out, f.list)
	return out
}
