package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateTaskID validates a task identifier for safety and correctness.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters or null bytes
//   - No surrounding whitespace
//   - Maximum length of 256 characters
//
// Identifiers are otherwise opaque; generated ids are UUIDs but imported
// schedules may use any stable string.
func ValidateTaskID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidTaskID, "task id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidTaskID, "task id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTaskID, "task id contains invalid control characters")
		}
	}

	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidTaskID, "task id has leading or trailing whitespace: %q", id)
	}

	return nil
}

// ValidatePath validates a schedule file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// hexColorRegex matches #rgb, #rrggbb and #rrggbbaa colors.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ValidateColor validates an optional display color.
// An empty color is valid and means "use the theme default".
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidInput, "invalid color %q (want #rgb, #rrggbb or #rrggbbaa)", color)
	}
	return nil
}
