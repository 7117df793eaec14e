package utils

import (
	"path"
	"strings"
)

// SanitizeFilename reduces a client-supplied filename to a safe flat
// name: no separators, no traversal sequences, whitelisted characters
// only. Returns "" when nothing usable remains.
func SanitizeFilename(name string) string {
	clean := strings.TrimSpace(name)
	clean = strings.ReplaceAll(clean, "\\", "/")
	clean = path.Base(clean)
	clean = strings.ReplaceAll(clean, " ", "_")

	var b strings.Builder
	for _, r := range clean {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	clean = strings.TrimLeft(b.String(), ".")
	if clean == "" || strings.Contains(clean, "..") {
		return ""
	}
	return clean
}

// SanitizeHeaderFilename removes characters that can break headers.
func SanitizeHeaderFilename(name string) string {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return "download"
	}
	clean = strings.ReplaceAll(clean, "\r", "")
	clean = strings.ReplaceAll(clean, "\n", "")
	clean = strings.ReplaceAll(clean, "\"", "")
	return clean
}
