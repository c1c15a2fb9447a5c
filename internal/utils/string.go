// Package utils holds small shared helpers: TOML load/save, filesystem
// checks, and the string handling used by the editor and the IPC server.
package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitLastWord splits s on its last space. When s holds more than one
// segment it returns the part before the last space and the number of
// display columns occupied by the dropped space plus trailing word. ok is
// false when s holds a single word (no space at all).
func SplitLastWord(s string) (head string, removed int, ok bool) {
	idx := strings.LastIndex(s, " ")
	if idx < 0 {
		return "", 0, false
	}
	head = s[:idx]
	removed = utf8.RuneCountInString(s[idx:])
	return head, removed, true
}

// IsBlank reports whether s is empty or all whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// HasControlChars reports whether s contains control characters.
// Entries carrying them would corrupt the display when listed.
func HasControlChars(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// IsValidEntry checks if an entry should be accepted into the history.
// Blank entries and entries with control characters are rejected.
func IsValidEntry(s string) bool {
	if IsBlank(s) {
		return false
	}
	return !HasControlChars(s)
}

// IsExitWord reports whether input matches any of words case-insensitively.
func IsExitWord(input string, words []string) bool {
	lowered := strings.ToLower(strings.TrimSpace(input))
	for _, w := range words {
		if lowered == strings.ToLower(w) {
			return true
		}
	}
	return false
}
