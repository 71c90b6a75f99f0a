package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCategory   = errors.New("invalid category")
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidValue      = errors.New("invalid value")
	ErrUnknownField      = errors.New("unknown field")
	ErrNotReady          = errors.New("industry and company size must be selected")
	ErrSessionComputed   = errors.New("session already computed, reset it first")
	ErrZeroCurrentReturn = errors.New("current return is zero, improvement is undefined")
	ErrNotFound          = errors.New("not found")
)

// InvalidCategoryError reports a value outside one of the fixed category sets.
type InvalidCategoryError struct {
	Field string
	Value string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid category %q for %s", e.Value, e.Field)
}

func (e *InvalidCategoryError) Is(target error) bool {
	return target == ErrInvalidCategory
}
