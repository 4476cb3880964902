package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeTypeMismatch, "meta.size.w", "expected a number, got %q", "wide")

	if err.Code != ErrCodeTypeMismatch {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeTypeMismatch)
	}

	if err.Path != "meta.size.w" {
		t.Errorf("Path = %v, want %v", err.Path, "meta.size.w")
	}

	if err.Message != `expected a number, got "wide"` {
		t.Errorf("Message = %v, want %v", err.Message, `expected a number, got "wide"`)
	}

	expected := `TYPE_MISMATCH: meta.size.w: expected a number, got "wide"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestNewWithoutPath(t *testing.T) {
	err := New(ErrCodeInvalidInput, "", "no input files")

	expected := "INVALID_INPUT: no input files"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeFileNotFound, cause, "open sheet")

	if err.Code != ErrCodeFileNotFound {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeFileNotFound)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeMalformedShape, "frames", "frames must be an array or object"),
			code:     ErrCodeMalformedShape,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeMalformedShape, "frames", "frames must be an array or object"),
			code:     ErrCodeTypeMismatch,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInternal, New(ErrCodeColorDigit, "meta.layers[0].color", "bad digit"), "decode"),
			code:     ErrCodeInternal,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInternal,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeUnknownEnum, "meta.frameTags[0].direction", "bogus")); got != ErrCodeUnknownEnum {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeUnknownEnum)
	}

	if got := GetCode(errors.New("plain")); got != Code("") {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestGetPath(t *testing.T) {
	if got := GetPath(New(ErrCodeMissingField, "frames[2].duration", "field is required")); got != "frames[2].duration" {
		t.Errorf("GetPath() = %v, want %v", got, "frames[2].duration")
	}

	if got := GetPath(errors.New("plain")); got != "" {
		t.Errorf("GetPath() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "structured error with path",
			err:      New(ErrCodeColorLength, "meta.slices[0].color", "expected 9 characters, got 6"),
			expected: "meta.slices[0].color: expected 9 characters, got 6",
		},
		{
			name:     "structured error without path",
			err:      New(ErrCodeInvalidInput, "", "no input files"),
			expected: "no input files",
		},
		{
			name:     "plain error",
			err:      errors.New("something broke"),
			expected: "something broke",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}
