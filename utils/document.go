package utils

import (
	"fmt"
	"strings"
)

// FormatFileSize renders a byte count as a human-readable label
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 KB"
	}

	kb := float64(bytes) / 1024
	mb := kb / 1024

	if mb >= 1 {
		return fmt.Sprintf("%.1f MB", mb)
	}
	return fmt.Sprintf("%.1f KB", kb)
}

// FileExtension returns the uppercase extension of a filename, or "FILE"
// when there is none
func FileExtension(filename string) string {
	if filename == "" {
		return "FILE"
	}

	parts := strings.Split(filename, ".")
	if len(parts) < 2 || parts[len(parts)-1] == "" {
		return "FILE"
	}
	return strings.ToUpper(parts[len(parts)-1])
}
