package validator

import (
	"fmt"
	"strings"
)

// RequiredString fails when value is empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: "is required"},
	}
}

func RequiredSlice[T any](field string, value []T) Rule {
	return Rule{
		Check: func() bool { return len(value) > 0 },
		Error: ValidationError{Field: field, Message: "is required"},
	}
}

// MinNum fails when value is below minimum.
func MinNum[T Numeric](field string, value, minimum T) Rule {
	return Rule{
		Check: func() bool { return value >= minimum },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at least %v", minimum)},
	}
}

// InListCaseInsensitive fails unless the trimmed value equals one of allowed
// under Unicode case folding.
func InListCaseInsensitive(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			value := strings.TrimSpace(value)
			for _, a := range allowed {
				if strings.EqualFold(value, a) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be one of: " + strings.Join(allowed, ", "),
		},
	}
}
