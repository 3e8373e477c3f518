package pricing

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports a parameter value outside the accepted
// vocabulary. It names the invalid value and enumerates the valid set
// so callers can surface an actionable message without string parsing.
type ValidationError struct {
	Field string
	Value string
	Valid []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q, valid options: %s",
		e.Field, e.Value, strings.Join(e.Valid, ", "))
}

// newValidationError builds a ValidationError with a sorted copy of the
// valid set for deterministic messages.
func newValidationError(field, value string, valid []string) *ValidationError {
	cp := make([]string, len(valid))
	copy(cp, valid)
	sort.Strings(cp)
	return &ValidationError{Field: field, Value: value, Valid: cp}
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
