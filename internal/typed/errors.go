package typed

import (
	"fmt"

	"github.com/funvibe/moniker/internal/binder"
)

// UnboundVariableError indicates a free variable with no context entry.
type UnboundVariableError struct {
	Var binder.Var
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("variable `%s` is not in scope", e.Var)
}

func NewUnboundVariableError(v binder.Var) *UnboundVariableError {
	return &UnboundVariableError{Var: v}
}

// AnnotationRequiredError indicates a lambda parameter whose type can
// neither be read off an annotation nor pushed in from an expected type.
type AnnotationRequiredError struct {
	Name string
}

func (e *AnnotationRequiredError) Error() string {
	return fmt.Sprintf("type annotation needed for argument `%s`", e.Name)
}

func NewAnnotationRequiredError(name string) *AnnotationRequiredError {
	return &AnnotationRequiredError{Name: name}
}

// TypeMismatchError indicates a type that is not alpha-equivalent to the
// one required at its position.
type TypeMismatchError struct {
	Expected Type
	Found    Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: found `%s` but expected `%s`", e.Found, e.Expected)
}

func NewTypeMismatchError(expected, found Type) *TypeMismatchError {
	return &TypeMismatchError{Expected: expected, Found: found}
}

// NotAFunctionError indicates an application whose head is not an arrow.
type NotAFunctionError struct {
	Found Type
}

func (e *NotAFunctionError) Error() string {
	return fmt.Sprintf("`%s` is not a function type", e.Found)
}

func NewNotAFunctionError(found Type) *NotAFunctionError {
	return &NotAFunctionError{Found: found}
}
