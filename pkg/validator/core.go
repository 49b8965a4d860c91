package validator

import (
	"errors"
	"strings"
)

// Numeric is the constraint accepted by the numeric rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError describes one failed check.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors collects failures in the order rules were applied.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, 0, len(e))
	for _, err := range e {
		parts = append(parts, err.Field+": "+err.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e ValidationErrors) Unwrap() error { return ErrValidationFailed }

func (e *ValidationErrors) Add(err ValidationError) {
	*e = append(*e, err)
}

func (e ValidationErrors) Has(field string) bool {
	for _, err := range e {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field.
func (e ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range e {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the failed field names without duplicates, in first-seen order.
func (e ValidationErrors) Fields() []string {
	seen := make(map[string]struct{}, len(e))
	fields := make([]string, 0, len(e))
	for _, err := range e {
		if _, ok := seen[err.Field]; ok {
			continue
		}
		seen[err.Field] = struct{}{}
		fields = append(fields, err.Field)
	}
	return fields
}

// Map groups the messages by field.
func (e ValidationErrors) Map() map[string][]string {
	out := make(map[string][]string, len(e))
	for _, err := range e {
		out[err.Field] = append(out[err.Field], err.Message)
	}
	return out
}

// Rule is a single check and the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs every rule and returns ValidationErrors if any failed, nil otherwise.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs.Add(rule.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ExtractValidationErrors returns the ValidationErrors carried by err, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var errs ValidationErrors
	if errors.As(err, &errs) {
		return errs
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
