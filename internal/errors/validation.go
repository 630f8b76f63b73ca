package errors

import (
	"fmt"
	"strings"
)

// MetaFields is the metadata key holding per-field messages of a validation error
const MetaFields = "fields"

type fieldError struct {
	field   string
	message string
}

// ValidationBuilder collects field problems and turns them into one
// InvalidArgument error. Fields are reported in the order they were added.
type ValidationBuilder struct {
	problems []fieldError
}

// NewValidationBuilder returns an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{}
}

// Field records message against field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.problems = append(vb.problems, fieldError{field: field, message: message})
	return vb
}

// RequiredField records a missing field
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField records a field with a bad value
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Field(field, "is invalid: "+reason)
}

// HasErrors reports whether anything was recorded
func (vb *ValidationBuilder) HasErrors() bool {
	return len(vb.problems) > 0
}

// Build returns nil when nothing was recorded
func (vb *ValidationBuilder) Build() error {
	if !vb.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(vb.problems))
	fields := make(map[string][]string, len(vb.problems))
	for _, p := range vb.problems {
		parts = append(parts, fmt.Sprintf("%s %s", p.field, p.message))
		fields[p.field] = append(fields[p.field], p.message)
	}

	return InvalidArgument("validation failed: "+strings.Join(parts, "; ")).
		WithMeta(MetaFields, fields)
}

// ValidateRequired records field as missing when value is blank
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}
