package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "sourceDir" -> "source directory")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"sourceDir": "source directory",
		"name":      "name",
		"rulesPath": "rules file path",
	}
	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}
