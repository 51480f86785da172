package sanitize

import "strings"

// Apply masks every builtin pattern occurrence in s.
func Apply(s string) string {
	for _, p := range builtinPatterns {
		s = p.Regex.ReplaceAllString(s, p.Replacement)
	}
	return s
}

// IsRedactedKey reports whether an attribute key must have its value
// replaced outright (passwords and credentials).
func IsRedactedKey(key string) bool {
	return redactedKeys[strings.ToLower(key)]
}

// Redacted is the placeholder for fully redacted values.
const Redacted = "[REDACTED]"
