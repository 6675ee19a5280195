package db

import "strings"

// IsUniqueViolation reports whether the provided error is a unique violation.
// When constraintName is provided the helper prefers a match on the constraint
// text, but still accepts a generic unique violation: SQLite phrases the error
// by column rather than by index name.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if constraintName != "" && strings.Contains(msg, constraintName) {
		return true
	}
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint failed")
}
