package errors

import (
	"fmt"
	"strings"
)

// UserError represents an error with user-friendly messaging and remediation hints
type UserError struct {
	Title       string // Brief title of the error
	Message     string // Detailed error message
	Remediation string // What the user can do to fix it
	Cause       error  // Underlying error, if any
}

func (e *UserError) Error() string {
	var parts []string

	if e.Title != "" {
		parts = append(parts, e.Title)
	}

	if e.Message != "" {
		parts = append(parts, e.Message)
	}

	if e.Remediation != "" {
		parts = append(parts, fmt.Sprintf("💡 %s", e.Remediation))
	}

	return strings.Join(parts, "\n")
}

func (e *UserError) Unwrap() error {
	return e.Cause
}

// Common error constructors with built-in remediation

func NewTargetDirError(dir string, err error) *UserError {
	return &UserError{
		Title:       "❌ Target Directory Error",
		Message:     fmt.Sprintf("Cannot read the target directory %s.", dir),
		Remediation: "Check the path exists and is readable, or set it with: vgpc config set target_dir <path>",
		Cause:       err,
	}
}

func NewDownloadsDirError(dir string, err error) *UserError {
	return &UserError{
		Title:       "❌ Downloads Directory Error",
		Message:     fmt.Sprintf("Cannot read the downloads directory %s.", dir),
		Remediation: "Check the path exists and is readable, or set it with: vgpc config set downloads_dir <path>",
		Cause:       err,
	}
}

func NewNotConfiguredError() *UserError {
	return &UserError{
		Title:       "Not Configured",
		Message:     "No target or downloads directory is configured.",
		Remediation: "Run: vgpc setup, or set VGPC_TARGET_DIR and VGPC_DOWNLOADS_DIR",
		Cause:       nil,
	}
}

func NewThresholdError(value string) *UserError {
	return &UserError{
		Title:       "❌ Invalid Threshold",
		Message:     fmt.Sprintf("Threshold %q is not a number between 0.3 and 0.95.", value),
		Remediation: "Pass --threshold with a value like 0.65, or run: vgpc config set strict_threshold 0.65",
		Cause:       nil,
	}
}

func NewDisposalError(path string, err error) *UserError {
	errStr := ""
	if err != nil {
		errStr = err.Error()
	}
	var remediation string

	switch {
	case strings.Contains(errStr, "permission denied"):
		remediation = "Check the file permissions and ownership of " + path
	case strings.Contains(errStr, "device or resource busy") || strings.Contains(errStr, "being used"):
		remediation = "Close any player or indexer holding the file open and retry"
	default:
		remediation = "Retry with --no-trash to delete permanently, or remove it by hand"
	}

	return &UserError{
		Title:       "❌ Disposal Error",
		Message:     fmt.Sprintf("Failed to remove %s: %s", path, errStr),
		Remediation: remediation,
		Cause:       err,
	}
}

func NewTrashUnavailableError(err error) *UserError {
	return &UserError{
		Title:       "❌ Trash Unavailable",
		Message:     "Could not move items to the trash directory.",
		Remediation: "Run with --no-trash to delete permanently, or check that your home directory is writable",
		Cause:       err,
	}
}

func NewConfigError(operation string, err error) *UserError {
	var remediation string
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "permission denied"):
		remediation = "Check file permissions. Run: chmod 644 ~/.config/vgpc/config.toml"
	case strings.Contains(errStr, "no such file"):
		remediation = "Run: vgpc setup to create a configuration file"
	case strings.Contains(errStr, "decode") || strings.Contains(errStr, "parse"):
		remediation = "Configuration file format is invalid. Run: vgpc config doctor"
	default:
		remediation = "Run: vgpc config doctor to diagnose configuration issues"
	}

	return &UserError{
		Title:       "❌ Configuration Error",
		Message:     fmt.Sprintf("Failed to %s configuration: %s", operation, errStr),
		Remediation: remediation,
		Cause:       err,
	}
}

// Helper function to wrap existing errors with better messaging
func WrapWithContext(err error, context string) error {
	if userErr, ok := err.(*UserError); ok {
		// Already a user error, just return it
		return userErr
	}

	switch context {
	case "config_load", "config_save":
		return NewConfigError(context, err)
	case "trash":
		return NewTrashUnavailableError(err)
	default:
		// Generic wrapper that at least adds some structure
		return &UserError{
			Title:       "❌ Error",
			Message:     err.Error(),
			Remediation: "Run with --verbose flag for more details",
			Cause:       err,
		}
	}
}
