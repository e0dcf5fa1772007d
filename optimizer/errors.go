package optimizer

import (
	"fmt"
)

// ErrorType classifies optimizer errors.
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeTemplateNotFound
	ErrorTypeMissingValue
)

// OptimizerError represents an error raised while rendering a template.
// The optimizer has exactly two failure modes: a template name that is
// not registered, and a placeholder with no supplied substitution value.
// Every other operation is total over its input domain.
type OptimizerError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *OptimizerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.TypeString(), e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.TypeString(), e.Message)
}

func (e *OptimizerError) Unwrap() error {
	return e.Err
}

func (e *OptimizerError) TypeString() string {
	switch e.Type {
	case ErrorTypeTemplateNotFound:
		return "TemplateNotFoundError"
	case ErrorTypeMissingValue:
		return "MissingValueError"
	default:
		return "UnknownError"
	}
}

// NewOptimizerError creates a new OptimizerError.
func NewOptimizerError(errType ErrorType, message string, err error) *OptimizerError {
	return &OptimizerError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}
