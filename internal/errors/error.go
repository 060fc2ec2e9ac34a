package errors

import "fmt"

// Category represents the type of diagnostic.
type Category string

const (
	CategoryUsage   Category = "usage"   // API misuse; operation substitutes a safe default
	CategoryHook    Category = "hook"    // Error thrown from a lifecycle/vnode hook
	CategoryMount   Category = "mount"   // Mount/unmount lifecycle problems
	CategoryRuntime Category = "runtime" // Internal runtime problems
)

// VuegoError is a structured diagnostic with a stable code and suggestion.
// Diagnostics are reported through the warn channel and never thrown; the
// error type exists so handlers can switch on codes.
type VuegoError struct {
	// Code is a unique diagnostic identifier (e.g., "W001").
	Code string

	// Category is the diagnostic type.
	Category Category

	// Message is a short description.
	Message string

	// Detail is a longer explanation.
	Detail string

	// Suggestion is a hint on how to fix the problem.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *VuegoError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *VuegoError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation.
func (e *VuegoError) WithDetail(d string) *VuegoError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion.
func (e *VuegoError) WithSuggestion(s string) *VuegoError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *VuegoError) Wrap(err error) *VuegoError {
	e.Wrapped = err
	return e
}

// New creates a VuegoError from a registered diagnostic code.
func New(code string) *VuegoError {
	template, ok := registry[code]
	if !ok {
		return &VuegoError{
			Code:    code,
			Message: "Unknown diagnostic",
		}
	}
	return &VuegoError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a VuegoError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *VuegoError {
	return &VuegoError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a VuegoError.
func FromError(err error, code string) *VuegoError {
	if err == nil {
		return nil
	}
	if ve, ok := err.(*VuegoError); ok {
		return ve
	}
	return New(code).Wrap(err)
}
