package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxNameLength bounds ordering names so they stay usable as file names and
// document keys.
const maxNameLength = 128

// nameRegex matches valid ordering names.
var nameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateName validates the name of a stored ordering.
// Names double as file names in the file store, so the rules reject
// anything that could escape the store directory:
//   - No empty names
//   - No control characters or path separators
//   - No path traversal sequences (..)
//   - Maximum length of 128 characters
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "name contains invalid control characters")
		}
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidName, "name cannot contain path traversal sequences (..)")
	}

	if !nameRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid name: %q", name)
	}

	return nil
}

// ValidateLabels checks that labels, when given, name every element of a
// permutation of the given length exactly once.
func ValidateLabels(labels []string, length int) error {
	if len(labels) == 0 {
		return nil
	}
	if len(labels) != length {
		return New(ErrCodeInvalidInput, "got %d labels for %d elements", len(labels), length)
	}

	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if strings.TrimSpace(l) == "" {
			return New(ErrCodeInvalidInput, "labels cannot be blank")
		}
		if seen[l] {
			return New(ErrCodeInvalidInput, "duplicate label %q", l)
		}
		seen[l] = true
	}
	return nil
}
