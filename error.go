package enumfield

import (
	"errors"
	"fmt"
)

var (
	ErrBadConfig  = errors.New("bad config")
	ErrNotValid   = errors.New("invalid")
	ErrUnexpected = errors.New("unexpected")
)

const (
	// CodeCannotResolveItem marks a raw value that is not a member of the enum.
	CodeCannotResolveItem = "cannot_resolve_item"

	// CodeDoesNotBelong marks an Item whose parent values differ from the enum's.
	CodeDoesNotBelong = "does_not_belong"
)

// A ValidationError is a value that cannot be coerced into an Item of a Field's Enum.
//
// Code is one of CodeCannotResolveItem or CodeDoesNotBelong.
type ValidationError struct {
	Code    string
	Message string
	Value   any
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap lets callers match any ValidationError with errors.Is(err, ErrNotValid).
func (*ValidationError) Unwrap() error { return ErrNotValid }

func cannotResolve(value any) *ValidationError {
	return &ValidationError{
		Code:    CodeCannotResolveItem,
		Message: fmt.Sprintf("%s must be a value in the enum", quote(value)),
		Value:   value,
	}
}

func doesNotBelong(item Item) *ValidationError {
	return &ValidationError{
		Code:    CodeDoesNotBelong,
		Message: fmt.Sprintf("Enum item %s does not belong to this enum", item.GoString()),
		Value:   item,
	}
}

// quote renders strings single-quoted and everything else with %#v.
func quote(value any) string {
	switch v := value.(type) {
	case string:
		return "'" + v + "'"
	case []byte:
		return "'" + string(v) + "'"
	default:
		return fmt.Sprintf("%#v", v)
	}
}
