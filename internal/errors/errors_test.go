package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestUserError_Error(t *testing.T) {
	tests := []struct {
		name     string
		userErr  *UserError
		expected []string // Substrings that should be present
	}{
		{
			name: "complete error with all fields",
			userErr: &UserError{
				Title:       "❌ Test Error",
				Message:     "Something went wrong",
				Remediation: "Try running the fix",
				Cause:       fmt.Errorf("underlying cause"),
			},
			expected: []string{"❌ Test Error", "Something went wrong", "💡 Try running the fix"},
		},
		{
			name: "error without title",
			userErr: &UserError{
				Message:     "Just a message",
				Remediation: "Just a fix",
			},
			expected: []string{"Just a message", "💡 Just a fix"},
		},
		{
			name: "error without remediation",
			userErr: &UserError{
				Title:   "❌ Simple Error",
				Message: "Something failed",
			},
			expected: []string{"❌ Simple Error", "Something failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.userErr.Error()
			for _, expected := range tt.expected {
				if !strings.Contains(result, expected) {
					t.Errorf("Expected error message to contain %q, but got: %s", expected, result)
				}
			}
		})
	}
}

func TestNewTargetDirError(t *testing.T) {
	cause := fmt.Errorf("no such file or directory")
	err := NewTargetDirError("/data/gifs", cause)

	result := err.Error()

	expectedParts := []string{
		"❌ Target Directory Error",
		"/data/gifs",
		"💡 Check the path exists",
		"vgpc config set target_dir",
	}

	for _, part := range expectedParts {
		if !strings.Contains(result, part) {
			t.Errorf("Expected error message to contain %q, but got: %s", part, result)
		}
	}

	// Check that it unwraps correctly
	if err.Unwrap() != cause {
		t.Errorf("Expected Unwrap() to return %v, got %v", cause, err.Unwrap())
	}
}

func TestNewDownloadsDirError(t *testing.T) {
	err := NewDownloadsDirError("/data/downloads", fmt.Errorf("permission denied"))

	result := err.Error()

	expectedParts := []string{
		"❌ Downloads Directory Error",
		"/data/downloads",
		"vgpc config set downloads_dir",
	}

	for _, part := range expectedParts {
		if !strings.Contains(result, part) {
			t.Errorf("Expected error message to contain %q, but got: %s", part, result)
		}
	}
}

func TestNewDisposalError(t *testing.T) {
	tests := []struct {
		name        string
		cause       error
		remediation string
	}{
		{"permission problem", fmt.Errorf("unlinkat: permission denied"), "permissions"},
		{"busy file", fmt.Errorf("device or resource busy"), "Close any player"},
		{"generic", fmt.Errorf("input/output error"), "--no-trash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDisposalError("/data/downloads/video.mp4", tt.cause)
			result := err.Error()
			if !strings.Contains(result, "❌ Disposal Error") {
				t.Errorf("missing title in: %s", result)
			}
			if !strings.Contains(result, tt.remediation) {
				t.Errorf("Expected remediation containing %q, got: %s", tt.remediation, result)
			}
		})
	}
}

func TestNewThresholdError(t *testing.T) {
	err := NewThresholdError("abc")
	result := err.Error()
	if !strings.Contains(result, `"abc"`) {
		t.Errorf("threshold value missing from: %s", result)
	}
	if !strings.Contains(result, "--threshold") {
		t.Errorf("remediation missing from: %s", result)
	}
}

func TestNewConfigError(t *testing.T) {
	tests := []struct {
		name        string
		cause       error
		remediation string
	}{
		{"permission", fmt.Errorf("open config: permission denied"), "chmod 644"},
		{"missing", fmt.Errorf("no such file"), "vgpc setup"},
		{"invalid", fmt.Errorf("toml: decode error"), "vgpc config doctor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfigError("load", tt.cause)
			result := err.Error()
			if !strings.Contains(result, tt.remediation) {
				t.Errorf("Expected remediation containing %q, got: %s", tt.remediation, result)
			}
		})
	}
}

func TestWrapWithContext(t *testing.T) {
	// An existing UserError passes through untouched.
	original := NewNotConfiguredError()
	if wrapped := WrapWithContext(original, "anything"); wrapped != original {
		t.Errorf("UserError should pass through WrapWithContext unchanged")
	}

	// Known contexts map to specific constructors.
	err := WrapWithContext(fmt.Errorf("disk full"), "config_save")
	if userErr, ok := err.(*UserError); !ok || !strings.Contains(userErr.Title, "Configuration") {
		t.Errorf("config_save context produced %v", err)
	}

	err = WrapWithContext(fmt.Errorf("mkdir failed"), "trash")
	if userErr, ok := err.(*UserError); !ok || !strings.Contains(userErr.Title, "Trash") {
		t.Errorf("trash context produced %v", err)
	}

	// Unknown contexts still gain structure.
	err = WrapWithContext(fmt.Errorf("mystery"), "unknown_context")
	if userErr, ok := err.(*UserError); !ok || !strings.Contains(userErr.Error(), "--verbose") {
		t.Errorf("generic wrap produced %v", err)
	}
}
