package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrCorruptRecord      = errors.New("corrupt record")
)

// ValidationError reports a spec or pricing field outside its allowed range.
// It never blocks local editing, only the transition to submitted.
type ValidationError struct {
	WindowID string `json:"window_id,omitempty"`
	Field    string `json:"field"`
	Value    any    `json:"value"`
	Reason   string `json:"reason"`
}

func (e ValidationError) Error() string {
	if e.WindowID != "" {
		return fmt.Sprintf("validation failed: window %s: %s: %s (got %v)", e.WindowID, e.Field, e.Reason, e.Value)
	}
	return fmt.Sprintf("validation failed: %s: %s (got %v)", e.Field, e.Reason, e.Value)
}

func (e ValidationError) Is(target error) bool { return target == ErrValidation }

// ValidationErrors groups every failing field of one validation pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return strings.Join(msgs, "; ")
}

func (e ValidationErrors) Is(target error) bool { return target == ErrValidation }

// Fields lists the offending field names in report order.
func (e ValidationErrors) Fields() []string {
	out := make([]string, 0, len(e))
	for _, v := range e {
		out = append(out, v.Field)
	}
	return out
}

// ErrOrNil returns nil for an empty set so callers can `return errs.ErrOrNil()`.
func (e ValidationErrors) ErrOrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// InvariantViolation blocks a single requested operation that would break a
// structural invariant (e.g. removing the last window).
type InvariantViolation struct {
	Operation string `json:"operation"`
	Reason    string `json:"reason"`
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: %s: %s", e.Operation, e.Reason)
}

func (e *InvariantViolation) Is(target error) bool { return target == ErrInvariantViolation }

// CorruptRecordError is raised when a storage record is not a well-formed
// object/array shape at all.
type CorruptRecordError struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

func (e *CorruptRecordError) Error() string {
	if e.Path == "" {
		return "corrupt record: " + e.Reason
	}
	return fmt.Sprintf("corrupt record: %s: %s", e.Path, e.Reason)
}

func (e *CorruptRecordError) Is(target error) bool { return target == ErrCorruptRecord }
