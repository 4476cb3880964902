package errors

import (
	"strings"
	"unicode"
)

// ValidateSheetFilename validates a sheet filename received from an
// untrusted source (CLI argument, HTTP path segment) before it is
// joined to a base directory. It ensures the name is a simple basename
// that cannot traverse outside the directory.
//
// The rules are intentionally conservative:
//   - No empty names
//   - Maximum length of 256 characters
//   - No control characters or null bytes
//   - No path separators (the name must be a basename)
//   - No parent-directory sequences (..)
//   - No hidden files (leading .)
func ValidateSheetFilename(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "", "sheet filename cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "", "sheet filename too long (max 256 characters)")
	}

	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "", "sheet filename contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "", "sheet filename cannot contain path separators")
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "", "sheet filename cannot contain parent-directory sequences")
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidInput, "", "sheet filename cannot be a hidden file")
	}

	return nil
}
