// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Folder operations
	OpFolderOpen  Op = "open folder"
	OpFolderScan  Op = "scan folder"
	OpFolderWatch Op = "watch folder"

	// File operations
	OpFileDelete     Op = "delete file"
	OpDuplicateCheck Op = "check duplicates"

	// Playback operations
	OpPlaybackStart Op = "start playback"

	// Statistics
	OpStatsRecord Op = "record play"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// ForAction maps a background action name to its operation.
func ForAction(name string) Op {
	switch name {
	case "open_folder":
		return OpFolderScan
	case "watch":
		return OpFolderWatch
	case "delete":
		return OpFileDelete
	case "check_duplicates":
		return OpDuplicateCheck
	default:
		return Op("run " + name)
	}
}
