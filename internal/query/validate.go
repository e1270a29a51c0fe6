package query

import "strings"

// ValidationResult reports whether a free-text query passed the syntactic
// sanity check, with a reason when it did not.
type ValidationResult struct {
	Valid bool
	Error string
}

// Validate performs a shallow syntactic check on a free-text query:
// balanced parentheses, an even number of double quotes, and non-blank
// input. It does not verify the expression against the store's grammar;
// a query that passes here can still be rejected server-side.
func Validate(text string) ValidationResult {
	if strings.TrimSpace(text) == "" {
		return ValidationResult{Error: "empty query"}
	}

	open := strings.Count(text, "(")
	closed := strings.Count(text, ")")
	if open != closed {
		return ValidationResult{Error: "mismatched parentheses"}
	}

	if strings.Count(text, `"`)%2 != 0 {
		return ValidationResult{Error: "mismatched quotes"}
	}

	return ValidationResult{Valid: true}
}
